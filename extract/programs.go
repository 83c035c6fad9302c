package extract

import (
	"html"
	"regexp"
	"strings"

	"github.com/atres-cli/atres/source"
	"github.com/samber/mo"
)

// Category page markers.
const (
	programsContainer = `<div class="container_12 clearfix pad_10 black_13">`
	programsPromo     = `<div class="mod_promo`
	programsEnd       = `<div class="shell relative">`
)

// Captures, in order: channel label, title, program url, icon url.
var programPattern = regexp.MustCompile(` +(.*?) *".*?title *= *"(.*?)".*?href *= *"(.*?)".*?img.*?src *= *"(.*?)".*`)

// Programs extracts the programs of a category page.
func Programs(base string) Strategy[*source.Program] {
	return &markup[*source.Program]{
		name: "programs",
		region: Region{
			Start: []string{programsContainer, programsPromo},
			End:   programsEnd,
		},
		delimiter: programsPromo,
		pattern:   programPattern,
		build: func(g []string) *source.Program {
			return &source.Program{
				ID:      mo.None[string](),
				URL:     Absolute(base, g[3]),
				Title:   text(g[2]),
				Channel: text(g[1]),
				Icon:    Absolute(base, g[4]),
			}
		},
	}
}

// text unescapes entities and trims the captured markup text.
func text(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}
