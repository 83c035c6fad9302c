// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Endpoints - these keys allow pointing the scraper at mirrors or local fixtures.
const (
	CatalogBaseURL     = "catalog.base_url"
	CatalogAuthURL     = "catalog.auth_url"
	CatalogResolverURL = "catalog.resolver_url"
)

// Network Transport - these keys tune the shared HTTP client.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// Authentication - these keys govern the login flow gating video resolution.
const (
	AuthEnable = "auth.enable"
)

// Search Interaction - these keys define the UI/UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchPages                = "search.pages"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys select the external application used to open resolved sources.
const (
	Player = "player.default"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliWrap         = "cli.wrap"
)
