package tui

import (
	"strings"

	"github.com/atres-cli/atres/icon"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/style"
)

// listItem is a row of the page list. A nil item is the "load more" row.
type listItem struct {
	item *page.Item
}

func (t *listItem) isMore() bool {
	return t.item == nil
}

func (t *listItem) Title() string {
	if t.isMore() {
		return icon.Get(icon.More) + " " + style.Faint("Load more")
	}

	switch t.item.Kind {
	case page.KindSeparator:
		return icon.Get(icon.Separator) + " " + style.Bold(t.item.Title)
	case page.KindVideo:
		return icon.Get(icon.Video) + " " + t.item.Title
	default:
		return icon.Get(icon.Directory) + " " + t.item.Title
	}
}

func (t *listItem) Description() string {
	if t.isMore() || t.item.Description == "" {
		return ""
	}

	// the list delegate renders a single line
	return strings.ReplaceAll(t.item.Description, "\n", " · ")
}

func (t *listItem) FilterValue() string {
	if t.isMore() {
		return ""
	}
	return t.item.Title
}
