package extract

import (
	"regexp"

	"github.com/atres-cli/atres/source"
	"github.com/samber/mo"
)

// Program page markers.
const (
	seasonsList = `<ul class="fn_lay`
	seasonsItem = `<li`
	seasonsEnd  = `</ul>`
)

// Captures, in order: season url, title.
var seasonPattern = regexp.MustCompile(`.*href *= *"(.*?)" *>(.*?)<.*`)

type seasons struct {
	program *source.Program
	markup  *markup[*source.Season]
}

// Seasons extracts the season list of a program page. A page without a season list,
// or whose list yields nothing, gets the single default season of the program.
func Seasons(base string, program *source.Program) Strategy[*source.Season] {
	return &seasons{
		program: program,
		markup: &markup[*source.Season]{
			name: "seasons",
			region: Region{
				Start: []string{seasonsList, seasonsItem},
				End:   seasonsEnd,
			},
			delimiter: seasonsItem,
			pattern:   seasonPattern,
			build: func(g []string) *source.Season {
				return &source.Season{
					ID:    mo.None[string](),
					URL:   Absolute(base, g[1]),
					Title: text(g[2]),
				}
			},
		},
	}
}

func (s *seasons) Name() string {
	return s.markup.Name()
}

func (s *seasons) Extract(raw string) (Result[*source.Season], error) {
	result, err := s.markup.Extract(raw)
	if err != nil {
		return result, err
	}

	if len(result.Items) == 0 {
		result.Items = []*source.Season{source.DefaultSeason(s.program)}
	}

	return result, nil
}
