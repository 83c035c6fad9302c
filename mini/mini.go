// Package mini implements a line-oriented catalog browser built on terminal prompts.
package mini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/uri"
	"github.com/atres-cli/atres/util"
	"github.com/samber/lo"
)

// Navigator opens catalog pages.
type Navigator interface {
	Open(ctx context.Context, token string) (*page.Page, error)
	SearchPage(ctx context.Context, query string) (*page.Page, error)
}

// Selector asks to pick one of options and returns its index.
type Selector func(message string, options []string) (int, error)

// Inputer asks for a line of text, offering suggestion as the default.
type Inputer func(message, suggestion string) (string, error)

type Options struct {
	Navigator Navigator
	// Start is the token opened first. Empty means the start page.
	Start string
	// Search starts with a search instead.
	Search bool

	Play func(*page.Page) error
	// OpenURL opens a video source in the browser.
	OpenURL func(string) error

	Select Selector
	Input  Inputer
	Out    io.Writer
}

type mini struct {
	ctx     context.Context
	options *Options

	state         state
	statesHistory util.Stack[state]

	pages util.Stack[*page.Page]
	video *page.Page
}

func newMini(ctx context.Context, options *Options) *mini {
	if options.Select == nil {
		options.Select = surveySelect
	}
	if options.Input == nil {
		options.Input = surveyInput
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	return &mini{
		ctx:           ctx,
		options:       options,
		statesHistory: util.Stack[state]{},
		pages:         util.Stack[*page.Page]{},
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if m.state != 0 && !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run browses until the user quits or interrupts.
func Run(ctx context.Context, options *Options) error {
	if options.Navigator == nil {
		return errors.New("no navigator")
	}

	m := newMini(ctx, options)

	if options.Search {
		m.state = searchState
	} else {
		start := lo.Ternary(options.Start != "", options.Start, uri.Start())
		if err := m.open(start); err != nil {
			return err
		}
		if m.state == 0 {
			if m.pages.Len() == 0 {
				return nil
			}
			m.state = pageState
		}
	}

	for m.state != quitState {
		err := m.handleState()
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case searchState:
		return m.handleSearchState()
	case pageState:
		return m.handlePageState()
	case videoState:
		return m.handleVideoState()
	default:
		return fmt.Errorf("unknown state %d", m.state)
	}
}
