// Package catalog navigates the atresplayer catalog: it fetches pages, extracts their entities and
// assembles the pages the front ends render.
package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/extract"
	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/resolver"
	"github.com/atres-cli/atres/session"
	"github.com/atres-cli/atres/source"
	"github.com/spf13/viper"
)

// Options configure a Catalog. Empty endpoints fall back to the public ones.
type Options struct {
	BaseURL     string
	AuthURL     string
	ResolverURL string

	// LoginOnStart makes the start page log in, as a way to ask for credentials early.
	LoginOnStart bool

	Prompter session.Prompter
	Notifier session.Notifier
}

// Catalog is the source.Source of atresplayer, plus its page handlers.
type Catalog struct {
	fetcher      network.Fetcher
	sessions     *session.Manager
	resolver     *resolver.Resolver
	baseURL      string
	loginOnStart bool
}

// New returns a catalog fetching through fetcher.
func New(fetcher network.Fetcher, options Options) *Catalog {
	base := strings.TrimSuffix(options.BaseURL, "/")
	if base == "" {
		base = constant.BaseURL
	}

	return &Catalog{
		fetcher:      fetcher,
		sessions:     session.NewManager(fetcher, options.AuthURL, options.Prompter, options.Notifier),
		resolver:     resolver.New(fetcher, options.ResolverURL),
		baseURL:      base,
		loginOnStart: options.LoginOnStart,
	}
}

// Default returns the catalog described by the configuration.
func Default(prompter session.Prompter, notifier session.Notifier) *Catalog {
	return New(network.Default(), Options{
		BaseURL:      viper.GetString(key.CatalogBaseURL),
		AuthURL:      viper.GetString(key.CatalogAuthURL),
		ResolverURL:  viper.GetString(key.CatalogResolverURL),
		LoginOnStart: viper.GetBool(key.AuthEnable),
		Prompter:     prompter,
		Notifier:     notifier,
	})
}

// Sessions returns the session manager of the catalog.
func (c *Catalog) Sessions() *session.Manager {
	return c.sessions
}

// Resolver returns the video resolver of the catalog.
func (c *Catalog) Resolver() *resolver.Resolver {
	return c.resolver
}

func (c *Catalog) Name() string {
	return constant.Title
}

func (c *Catalog) Categories() []*source.Category {
	return source.Categories()
}

func (c *Catalog) ProgramsOf(ctx context.Context, category *source.Category) ([]*source.Program, error) {
	return run(ctx, c, c.baseURL+"/television/"+category.ID, nil, extract.Programs(c.baseURL))
}

func (c *Catalog) SeasonsOf(ctx context.Context, program *source.Program) ([]*source.Season, error) {
	return run(ctx, c, program.URL, nil, extract.Seasons(c.baseURL, program))
}

func (c *Catalog) EpisodesOf(ctx context.Context, season *source.Season) ([]*source.Episode, error) {
	return run(ctx, c, strings.TrimSuffix(season.URL, "/")+"/carousel.json", nil, extract.Episodes(c.baseURL))
}

func (c *Catalog) Search(ctx context.Context, query string, page int) ([]*source.SearchResult, error) {
	args := map[string]string{
		"buscar": query,
		"pag":    strconv.Itoa(page),
	}

	return run(ctx, c, c.baseURL+"/buscador/getResultsHtml/", args, extract.SearchResults(c.baseURL))
}

// run fetches target and extracts it with strategy.
func run[T any](ctx context.Context, c *Catalog, target string, args map[string]string, strategy extract.Strategy[T]) ([]T, error) {
	raw, err := c.fetcher.Fetch(ctx, target, &network.Options{Args: args})
	if err != nil {
		return nil, err
	}

	result, err := strategy.Extract(raw)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s: %d of %d fragments from %s", strategy.Name(), result.Stats.Matched, result.Stats.Seen, target)
	return result.Items, nil
}
