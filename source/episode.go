package source

import "github.com/samber/mo"

// Episode is a playable item of a season, or a search hit navigated as one.
type Episode struct {
	ID          mo.Option[string] `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	// Absolute URL of the thumbnail.
	Icon string `json:"icon"`
	// Absolute URL of the episode page. This is what the resolver is asked about.
	URL      string            `json:"url"`
	Date     mo.Option[string] `json:"date"`
	Subtitle mo.Option[string] `json:"subtitle"`
}

// String returns the display title, joined with the subtitle when present.
func (e *Episode) String() string {
	if subtitle, ok := e.Subtitle.Get(); ok && subtitle != "" {
		return e.Title + " - " + subtitle
	}
	return e.Title
}
