package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

const defaultWrapWidth = 60

// wrapWidth is the width descriptions are wrapped at, or 0 when wrapping is off.
func wrapWidth() int {
	if !viper.GetBool(key.CliWrap) {
		return 0
	}

	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		return util.Max(w/2, 20)
	}

	return defaultWrapWidth
}

// renderPage writes the items of p as a table. Tokens are listed below it when asked.
func renderPage(out io.Writer, p *page.Page, tokens bool) {
	fmt.Fprintln(out, style.Title(p.Title))

	width := wrapWidth()

	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "", "Title", "Details"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: width},
	})

	for i, item := range p.Items {
		if item.Kind == page.KindSeparator {
			tw.AppendSeparator()
			tw.AppendRow(table.Row{"", icon.Get(icon.Separator), style.Bold(item.Title), ""})
			tw.AppendSeparator()
			continue
		}

		details := item.Description
		if width > 0 {
			details = wordwrap.String(details, width)
		}

		tw.AppendRow(table.Row{strconv.Itoa(i), kindIcon(item.Kind), item.Title, details})
	}

	footer := util.Quantify(len(p.Items), "item", "items")
	if p.More() {
		footer += ", more available"
	}
	tw.AppendFooter(table.Row{"", "", footer, ""})

	tw.Render()

	if !tokens {
		return
	}

	fmt.Fprintln(out)
	for i, item := range p.Items {
		if item.URI == "" {
			continue
		}
		fmt.Fprintf(out, "%s %s\n", style.Faint(strconv.Itoa(i)), item.URI)
	}
}

func kindIcon(kind page.Kind) string {
	switch kind {
	case page.KindVideo:
		return icon.Get(icon.Video)
	case page.KindSeparator:
		return icon.Get(icon.Separator)
	default:
		return icon.Get(icon.Directory)
	}
}
