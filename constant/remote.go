package constant

// Remote endpoints consumed by the catalog.
const (
	// BaseURL is the catalog origin; relative links scraped from its pages are resolved against it.
	BaseURL = "http://www.atresplayer.com"

	// AuthURL is the origin of the login service.
	AuthURL = "https://servicios.atresplayer.com"

	// ResolverURL is the third-party metadata resolver turning an episode page into video sources.
	ResolverURL = "http://www.pydowntv.com/api"

	// Logo is the catalog logo shown on the start page.
	Logo = "http://www.atresplayer.com/static/imgs/atres_logo.png"
)
