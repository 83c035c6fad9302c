package tui

import (
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/query"
	tea "github.com/charmbracelet/bubbletea"
)

type pageOpenedMsg struct {
	page *page.Page
}

type pageGrownMsg struct {
	err error
}

type playedMsg struct {
	title string
}

func (b *statefulBubble) openPage(token string) tea.Cmd {
	return func() tea.Msg {
		p, err := b.navigator.Open(b.ctx, token)
		if err != nil {
			return err
		}
		return pageOpenedMsg{page: p}
	}
}

func (b *statefulBubble) searchPage(q string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(q, 1); err != nil {
			log.Warnf("remember query: %s", err)
		}

		p, err := b.navigator.SearchPage(b.ctx, q)
		if err != nil {
			return err
		}
		return pageOpenedMsg{page: p}
	}
}

func (b *statefulBubble) growPage(p *page.Page) tea.Cmd {
	return func() tea.Msg {
		p.Advance()
		return pageGrownMsg{err: p.Paginator.Err()}
	}
}

func (b *statefulBubble) play(p *page.Page) tea.Cmd {
	return func() tea.Msg {
		if b.options.Play == nil {
			return playedMsg{title: p.Title}
		}
		if err := b.options.Play(p); err != nil {
			return err
		}
		return playedMsg{title: p.Title}
	}
}
