package source

import "github.com/samber/mo"

// Program is a show listed on a category page.
type Program struct {
	// Server-side identifier. Never known when scraping; identity travels in the navigation token.
	ID mo.Option[string] `json:"id"`
	// Absolute URL of the program page.
	URL   string `json:"url"`
	Title string `json:"title"`
	// Network label (e.g. "antena3", "lasexta").
	Channel string `json:"cadena"`
	// Absolute URL of the promo image.
	Icon string `json:"icon"`
}

func (p *Program) String() string {
	return p.Title
}
