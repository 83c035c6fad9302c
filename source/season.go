package source

import "github.com/samber/mo"

// DefaultSeasonTitle names the season synthesized for programs without a season list.
const DefaultSeasonTitle = "Season 1"

// Season groups the episodes of a program. Seasons are not addressable on their own,
// they only drive the episode listing of a program page.
type Season struct {
	ID    mo.Option[string] `json:"id"`
	URL   string            `json:"url"`
	Title string            `json:"title"`
}

func (s *Season) String() string {
	return s.Title
}

// DefaultSeason returns the single season standing in for a program without season markup.
func DefaultSeason(program *Program) *Season {
	return &Season{
		ID:    mo.None[string](),
		URL:   program.URL,
		Title: DefaultSeasonTitle,
	}
}
