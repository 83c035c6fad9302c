package catalog

import (
	"strings"

	"github.com/atres-cli/atres/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// FindCategory returns the category whose id or title is closest to name.
// The flag is false when name matches neither exactly.
func FindCategory(name string) (*source.Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	categories := source.Categories()

	if exact, ok := lo.Find(categories, func(c *source.Category) bool {
		return c.ID == name || strings.ToLower(c.Title) == name
	}); ok {
		return exact, true
	}

	distance := func(c *source.Category) int {
		return min(
			levenshtein.Distance(name, c.ID),
			levenshtein.Distance(name, strings.ToLower(c.Title)),
		)
	}

	return lo.MinBy(categories, func(a, b *source.Category) bool {
		return distance(a) < distance(b)
	}), false
}
