// Package page holds the value filled by the catalog page handlers and rendered by the front ends.
package page

import (
	"github.com/atres-cli/atres/source"
	"github.com/samber/lo"
)

// Type tells a front end how to present a page.
type Type string

const (
	Directory   Type = "directory"
	Video       Type = "video"
	Unavailable Type = "unavailable"
)

// Kind is the presentation of a single item.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindVideo     Kind = "video"
	KindSeparator Kind = "separator"
)

// Metadata is the display data of an item.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Item is an entry of a page. Separators have no URI.
type Item struct {
	URI  string `json:"uri,omitempty"`
	Kind Kind   `json:"kind"`
	Metadata
}

// Paginator is the incremental listing attached to a page.
type Paginator interface {
	// Advance appends the next batch to the page and reports whether more are available.
	Advance() bool
	// More reports whether Advance may still append a batch.
	More() bool
	// Err returns the failure that ended the listing.
	Err() error
}

// Page is the outcome of opening a token.
type Page struct {
	Type  Type    `json:"type"`
	Title string  `json:"title"`
	Logo  string  `json:"logo,omitempty"`
	Items []*Item `json:"items"`
	// Entries counts the video items appended by the paginator.
	Entries int `json:"entries"`
	// Video is set on video pages.
	Video *source.VideoBundle `json:"video,omitempty"`
	// Reason explains an unavailable page.
	Reason string `json:"reason,omitempty"`

	Paginator Paginator `json:"-"`
}

// New returns an empty directory page.
func New(title string) *Page {
	return &Page{Type: Directory, Title: title, Items: []*Item{}}
}

// Append adds an item to the page.
func (p *Page) Append(uri string, kind Kind, metadata Metadata) *Item {
	item := &Item{URI: uri, Kind: kind, Metadata: metadata}
	p.Items = append(p.Items, item)
	return item
}

// More reports whether the page can grow.
func (p *Page) More() bool {
	return p.Paginator != nil && p.Paginator.More()
}

// Advance grows the page by one batch.
func (p *Page) Advance() bool {
	if p.Paginator == nil {
		return false
	}
	return p.Paginator.Advance()
}

// Videos returns the items that can be played.
func (p *Page) Videos() []*Item {
	return lo.Filter(p.Items, func(item *Item, _ int) bool {
		return item.Kind == KindVideo
	})
}
