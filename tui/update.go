package tui

import (
	"github.com/atres-cli/atres/open"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/query"
	"github.com/atres-cli/atres/uri"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.options.Search != "" {
		b.startLoading("Searching " + b.options.Search)
		return tea.Batch(b.spinnerC.Tick, b.searchPage(b.options.Search))
	}

	start := b.options.Start
	if start == "" {
		start = uri.Start()
	}

	b.startLoading("Loading catalog")
	return tea.Batch(b.spinnerC.Tick, b.openPage(start))
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if b.busy {
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case searchState:
		return b.updateSearch(msg)
	case pageState:
		return b.updatePage(msg)
	case videoState:
		return b.updateVideo(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageOpenedMsg:
		b.stopLoading()
		return b, b.onPageOpened(msg.page)
	case pageGrownMsg:
		b.stopLoading()
		b.previousState()
		if msg.err != nil {
			b.raiseError(msg.err)
			return b, nil
		}
		b.current().selected = b.pageC.Index()
		b.show()
		return b, nil
	}

	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) onPageOpened(p *page.Page) tea.Cmd {
	switch p.Type {
	case page.Video:
		b.video = p
		b.setState(videoState)
		return b.play(p)
	case page.Unavailable:
		b.previousState()
		return b.pageC.NewStatusMessage(p.Title + ": " + p.Reason)
	default:
		if f := b.current(); f != nil {
			f.selected = b.pageC.Index()
		}
		b.frames.Push(&frame{page: p})
		b.statesHistory.Pop()
		b.setState(pageState)
		b.show()
		return nil
	}
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			b.inputC.Blur()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := b.inputC.Value()
			if q == "" {
				return b, nil
			}
			b.inputC.Blur()
			b.startLoading("Searching " + q)
			return b, tea.Batch(b.spinnerC.Tick, b.searchPage(q))
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.searchSuggestion = query.Suggest(b.inputC.Value())
	return b, cmd
}

func (b *statefulBubble) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.pageC.FilterState() == list.Unfiltered {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			if b.frames.Len() > 1 {
				b.frames.Pop()
				b.show()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			b.inputC.SetValue("")
			return b, textinput.Blink
		case bubblesKey.Matches(msg, b.keymap.more):
			return b, b.grow()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			selected, ok := b.pageC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			if selected.isMore() {
				return b, b.grow()
			}
			if selected.item.URI == "" {
				return b, nil
			}
			b.startLoading("Opening " + selected.item.Title)
			return b, tea.Batch(b.spinnerC.Tick, b.openPage(selected.item.URI))
		}
	}

	var cmd tea.Cmd
	b.pageC, cmd = b.pageC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) grow() tea.Cmd {
	f := b.current()
	if f == nil || !f.page.More() {
		return nil
	}

	b.startLoading("Loading more of " + f.page.Title)
	return tea.Batch(b.spinnerC.Tick, b.growPage(f.page))
}

func (b *statefulBubble) updateVideo(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case playedMsg:
		b.status = "Opened " + msg.title
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.video = nil
			b.status = ""
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.play):
			return b, b.play(b.video)
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if err := open.URL(b.video.Video.Preferred()); err != nil {
				b.raiseError(err)
			}
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
