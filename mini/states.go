package mini

import (
	"fmt"
	"strings"

	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/query"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/util"
	"github.com/samber/lo"
)

type state int

const (
	pageState state = iota + 1
	searchState
	videoState
	quitState
)

// open opens token and moves to the state presenting it.
// Unavailable videos are reported and leave the state untouched.
func (m *mini) open(token string) error {
	erase := util.PrintErasable(icon.Get(icon.Progress) + " Loading...")
	p, err := m.options.Navigator.Open(m.ctx, token)
	erase()
	if err != nil {
		return err
	}

	m.show(p)
	return nil
}

func (m *mini) show(p *page.Page) {
	switch p.Type {
	case page.Video:
		m.video = p
		m.newState(videoState)
		m.play()
	case page.Unavailable:
		m.fail(fmt.Sprintf("%s: %s", p.Title, p.Reason))
	default:
		m.pages.Push(p)
		if m.state != 0 {
			m.newState(pageState)
		}
	}
}

func (m *mini) play() {
	if m.options.Play == nil {
		return
	}

	if err := m.options.Play(m.video); err != nil {
		m.fail(err.Error())
	}
}

func (m *mini) handleSearchState() error {
	m.title("Search")

	q, err := m.options.Input("Query", query.Suggest("").OrEmpty())
	if err != nil {
		return err
	}

	q = strings.TrimSpace(q)
	if q == "" {
		if m.pages.Len() == 0 {
			m.setState(quitState)
		} else {
			m.previousState()
		}
		return nil
	}

	if err := query.Remember(q, 1); err != nil {
		log.Warnf("remember query: %s", err)
	}

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Searching...")
	p, err := m.options.Navigator.SearchPage(m.ctx, q)
	erase()
	if err != nil {
		return err
	}

	if len(p.Items) == 0 && !p.More() {
		m.fail("No search results found")
		return nil
	}

	m.pages.Push(p)
	m.setState(pageState)
	return nil
}

func (m *mini) handlePageState() error {
	p := m.pages.Peek()

	titles := lo.Map(p.Items, func(item *page.Item, _ int) string {
		if item.Kind == page.KindSeparator {
			return style.Faint("── " + item.Title + " ──")
		}
		return item.Title
	})

	var binds []bind
	if p.More() {
		binds = append(binds, more)
	}
	binds = append(binds, search)
	if m.pages.Len() > 1 {
		binds = append(binds, back)
	}
	binds = append(binds, quit)

	index, b, err := m.menu(p.Title, titles, binds...)
	if err != nil {
		return err
	}

	switch b {
	case more:
		p.Advance()
		if err := p.Paginator.Err(); err != nil {
			m.fail(err.Error())
		}
		return nil
	case search:
		m.newState(searchState)
		return nil
	case back:
		m.pages.Pop()
		return nil
	case quit:
		m.setState(quitState)
		return nil
	}

	item := p.Items[index]
	if item.Kind == page.KindSeparator || item.URI == "" {
		return nil
	}

	return m.open(item.URI)
}

func (m *mini) handleVideoState() error {
	m.title(m.video.Title)
	for _, src := range m.video.Video.Sources {
		fmt.Fprintln(m.options.Out, style.Faint(src))
	}

	binds := []bind{replay}
	if m.options.OpenURL != nil {
		binds = append(binds, browser)
	}
	binds = append(binds, back, quit)

	_, b, err := m.menu("Video", nil, binds...)
	if err != nil {
		return err
	}

	switch b {
	case replay:
		m.play()
	case browser:
		if err := m.options.OpenURL(m.video.Video.Preferred()); err != nil {
			m.fail(err.Error())
		}
	case back:
		m.video = nil
		if m.statesHistory.Len() == 0 {
			m.setState(quitState)
		} else {
			m.previousState()
		}
	case quit:
		m.setState(quitState)
	}

	return nil
}
