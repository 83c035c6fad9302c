package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atres-cli/atres/color"
	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/style"
)

// bind is a menu entry that is not a page item.
type bind string

const (
	more    bind = "Load more"
	search  bind = "Search"
	back    bind = "Back"
	replay  bind = "Play again"
	browser bind = "Open in browser"
	quit    bind = "Quit"
)

func (b bind) String() string {
	return style.Fg(color.Yellow)(string(b))
}

func surveySelect(message string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}, &index)
	return index, err
}

func surveyInput(message, suggestion string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: suggestion,
	}, &answer)
	return answer, err
}

func (m *mini) title(s string) {
	fmt.Fprintln(m.options.Out, style.Title(s))
}

func (m *mini) fail(s string) {
	fmt.Fprintln(m.options.Out, icon.Get(icon.Fail)+" "+style.Fg(color.Red)(s))
}

// menu asks to pick one of items followed by binds.
// It returns either the picked item index or the picked bind.
func (m *mini) menu(message string, items []string, binds ...bind) (int, bind, error) {
	options := make([]string, 0, len(items)+len(binds))
	options = append(options, items...)
	for _, b := range binds {
		options = append(options, b.String())
	}

	index, err := m.options.Select(message, options)
	if err != nil {
		return -1, "", err
	}

	if index >= len(items) {
		return -1, binds[index-len(items)], nil
	}

	return index, "", nil
}
