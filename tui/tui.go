// Package tui is the full screen catalog browser.
package tui

import (
	"context"

	"github.com/atres-cli/atres/page"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigator builds the pages the browser shows.
type Navigator interface {
	Open(ctx context.Context, token string) (*page.Page, error)
	SearchPage(ctx context.Context, query string) (*page.Page, error)
}

// Options configure the browser.
type Options struct {
	// Start is the token of the first page.
	Start string
	// Search, when set, starts on the results of this query instead.
	Search string
	// Play opens a resolved video page.
	Play func(*page.Page) error
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, navigator Navigator, options *Options) error {
	bubble := newBubble(ctx, navigator, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
