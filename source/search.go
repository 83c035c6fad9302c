package source

import "github.com/samber/mo"

// SearchResult is a card of the search results page.
type SearchResult struct {
	Icon        string `json:"icon"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}

func (r *SearchResult) String() string {
	return r.Title
}

// Episode converts the result into the episode it points to.
func (r *SearchResult) Episode() *Episode {
	subtitle := mo.None[string]()
	if r.Subtitle != "" {
		subtitle = mo.Some(r.Subtitle)
	}

	return &Episode{
		ID:          mo.None[string](),
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		URL:         r.URL,
		Date:        mo.None[string](),
		Subtitle:    subtitle,
	}
}
