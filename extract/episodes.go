package extract

import (
	"encoding/json"
	"fmt"

	"github.com/atres-cli/atres/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// carouselItem is an element of a season's carousel.json.
type carouselItem struct {
	Title      string `json:"title"`
	TextButton string `json:"textButton"`
	SrcImage   string `json:"srcImage"`
	HrefHTML   string `json:"hrefHtml"`
}

type episodes struct {
	base string
}

// Episodes extracts the episodes of a season from its carousel JSON.
// Every element of the array becomes one episode; nothing is dropped.
func Episodes(base string) Strategy[*source.Episode] {
	return &episodes{base: base}
}

func (e *episodes) Name() string {
	return "episodes"
}

func (e *episodes) Extract(raw string) (Result[*source.Episode], error) {
	var items []carouselItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return Result[*source.Episode]{}, fmt.Errorf("decode carousel: %w", err)
	}

	return Result[*source.Episode]{
		Items: lo.Map(items, func(item carouselItem, _ int) *source.Episode {
			return &source.Episode{
				ID:          mo.None[string](),
				Title:       item.Title,
				Description: item.TextButton,
				Icon:        Absolute(e.base, item.SrcImage),
				URL:         Absolute(e.base, item.HrefHTML),
			}
		}),
		Stats: Stats{Seen: len(items), Matched: len(items)},
	}, nil
}
