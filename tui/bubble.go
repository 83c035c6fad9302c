package tui

import (
	"context"
	"time"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/style"
	"github.com/atres-cli/atres/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// frame is a page on the navigation stack, with the cursor position to restore.
type frame struct {
	page     *page.Page
	selected int
}

type statefulBubble struct {
	ctx       context.Context
	navigator Navigator
	options   *Options

	state         state
	statesHistory util.Stack[state]
	busy          bool

	keymap *statefulKeymap

	spinnerC spinner.Model
	inputC   textinput.Model
	pageC    list.Model
	helpC    help.Model

	frames util.Stack[*frame]
	video  *page.Page

	status           string
	lastError        error
	searchSuggestion mo.Option[string]

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.pageC.SetSize(width-xx, height-yy)
	b.pageC.Help.Width = width - xx
	b.helpC.Width = width - xx
	b.inputC.Width = width - x

	b.width = width - x
	b.height = height - y
}

func (b *statefulBubble) startLoading(status string) {
	b.busy = true
	b.status = status
	b.newState(loadingState)
}

func (b *statefulBubble) stopLoading() {
	b.busy = false
	b.status = ""
}

// current returns the page on top of the stack.
func (b *statefulBubble) current() *frame {
	return b.frames.Peek()
}

// show puts the top page in the list.
func (b *statefulBubble) show() {
	f := b.current()
	if f == nil {
		return
	}

	items := lo.Map(f.page.Items, func(item *page.Item, _ int) list.Item {
		return &listItem{item: item}
	})
	if f.page.More() {
		items = append(items, &listItem{})
	}

	b.pageC.Title = f.page.Title
	b.pageC.SetItems(items)
	b.pageC.Select(f.selected)
	b.pageC.SetStatusBarItemName("item", "items")
}

func newBubble(ctx context.Context, navigator Navigator, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := &statefulBubble{
		ctx:           ctx,
		navigator:     navigator,
		options:       options,
		keymap:        keymap,
		statesHistory: util.Stack[state]{},
		frames:        util.Stack[*frame]{},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle.Foreground(style.Subtext)

	bubble.pageC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.pageC.KeyMap = keymap.forList()
	bubble.pageC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.pageC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.pageC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1)
	bubble.pageC.Styles.NoItems = paddingStyle
	bubble.pageC.StatusMessageLifetime = 3 * time.Second

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search " + constant.Title
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = "> "

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(pageState)
	return bubble
}
