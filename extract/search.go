package extract

import (
	"regexp"

	"github.com/atres-cli/atres/source"
)

// Search page markers.
const (
	resultsContainer = `<div class="resultSet">`
	resultsPost      = `<div class="post">`
	resultsEnd       = `<div class="Pagination">`
)

// Captures, in order: icon, url, title, subtitle, description.
var resultPattern = regexp.MustCompile(`<img *src *= *"(.*?)".*href *= *"(.*?)" *>(.*?)<.*?<p.*?>(.*?)</.*<p.*?>(.*?)<`)

// SearchResults extracts the result cards of a search page.
// The region stops at the pagination controls, or at the end of the page when there are none.
func SearchResults(base string) Strategy[*source.SearchResult] {
	return &markup[*source.SearchResult]{
		name: "search",
		region: Region{
			Start: []string{resultsContainer, resultsPost},
			End:   resultsEnd,
		},
		delimiter: resultsPost,
		pattern:   resultPattern,
		build: func(g []string) *source.SearchResult {
			return &source.SearchResult{
				Icon:        Absolute(base, g[1]),
				URL:         Absolute(base, g[2]),
				Title:       text(g[3]),
				Subtitle:    text(g[4]),
				Description: text(g[5]),
			}
		},
	}
}
