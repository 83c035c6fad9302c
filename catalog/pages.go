package catalog

import (
	"context"
	"fmt"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/paginator"
	"github.com/atres-cli/atres/session"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/uri"
	"github.com/samber/lo"
)

// Reasons shown on unavailable pages.
const (
	ReasonLogin       = "Login required to play this episode"
	ReasonUnavailable = "No playable source found for this episode"
)

// Open decodes token and builds the page it points to.
func (c *Catalog) Open(ctx context.Context, token string) (*page.Page, error) {
	entity, err := uri.Decode(token)
	if err != nil {
		return nil, err
	}

	switch entity.Kind {
	case uri.KindStart:
		return c.StartPage(ctx)
	case uri.KindCategory:
		return c.CategoryPage(ctx, entity.Category)
	case uri.KindProgram:
		return c.ProgramPage(ctx, entity.Program)
	case uri.KindEpisode:
		return c.episodePage(ctx, entity.Episode, func(s *session.Session) (*source.VideoBundle, error) {
			return c.resolver.ResolveToken(ctx, token, s)
		})
	default:
		return nil, fmt.Errorf("%w: %s", uri.ErrUnknownKind, entity.Kind)
	}
}

// StartPage lists the categories.
func (c *Catalog) StartPage(ctx context.Context) (*page.Page, error) {
	p := page.New(constant.Title)
	p.Logo = constant.Logo

	for _, category := range c.Categories() {
		token, err := uri.CategoryURI(category)
		if err != nil {
			return nil, err
		}
		p.Append(token, page.KindDirectory, page.Metadata{Title: category.Title})
	}

	if c.loginOnStart {
		if _, err := c.sessions.Ensure(ctx, ""); err != nil {
			log.Warnf("login on start: %s", err)
		}
	}

	return p, nil
}

// CategoryPage lists the programs of a category.
func (c *Catalog) CategoryPage(ctx context.Context, category *source.Category) (*page.Page, error) {
	programs, err := c.ProgramsOf(ctx, category)
	if err != nil {
		return nil, err
	}

	p := page.New(category.Title)
	p.Logo = constant.Logo

	for _, program := range programs {
		token, err := uri.ProgramURI(program)
		if err != nil {
			return nil, err
		}
		p.Append(token, page.KindDirectory, ProgramMetadata(program))
	}

	return p, nil
}

// ProgramPage lists the episodes of a program one season per batch.
// The first season is loaded before the page is returned. Seasons are announced by separators
// only when there is more than one.
func (c *Catalog) ProgramPage(ctx context.Context, program *source.Program) (*page.Page, error) {
	seasons, err := c.SeasonsOf(ctx, program)
	if err != nil {
		return nil, err
	}

	p := page.New(program.Title)
	p.Logo = program.Icon

	cursor := paginator.Bounded(
		seasons,
		func(season *source.Season, _ int) ([]*source.Episode, error) {
			return c.EpisodesOf(ctx, season)
		},
		func(index int, episodes []*source.Episode) {
			if len(seasons) > 1 {
				p.Append("", page.KindSeparator, SeasonMetadata(seasons[index]))
			}
			appendEpisodes(p, episodes)
		},
	)
	p.Paginator = cursor

	if _, err := paginator.Start(cursor); err != nil {
		return nil, err
	}

	return p, nil
}

// SearchPage lists the search results of query one result page per batch, until a page comes
// back empty. The first page is loaded before the page is returned.
func (c *Catalog) SearchPage(ctx context.Context, query string) (*page.Page, error) {
	log.Infof("Searching: %s", query)

	p := page.New(query)
	p.Logo = constant.Logo

	cursor := paginator.Unbounded(
		query,
		1,
		func(query string, pag int) ([]*source.SearchResult, error) {
			return c.Search(ctx, query, pag)
		},
		func(_ int, results []*source.SearchResult) {
			appendEpisodes(p, lo.Map(results, func(r *source.SearchResult, _ int) *source.Episode {
				return r.Episode()
			}))
		},
	)
	p.Paginator = cursor

	if _, err := paginator.Start(cursor); err != nil {
		return nil, err
	}

	return p, nil
}

// EpisodePage resolves the video sources of an episode, logging in first when needed.
func (c *Catalog) EpisodePage(ctx context.Context, episode *source.Episode) (*page.Page, error) {
	return c.episodePage(ctx, episode, func(s *session.Session) (*source.VideoBundle, error) {
		return c.resolver.Resolve(ctx, episode, s)
	})
}

func (c *Catalog) episodePage(
	ctx context.Context,
	episode *source.Episode,
	resolve func(*session.Session) (*source.VideoBundle, error),
) (*page.Page, error) {
	p := page.New(episode.String())
	p.Logo = episode.Icon

	s, err := c.sessions.Ensure(ctx, "")
	if err != nil {
		return nil, err
	}

	active, ok := s.Get()
	if !ok {
		p.Type = page.Unavailable
		p.Reason = ReasonLogin
		return p, nil
	}

	bundle, err := resolve(active)
	if err != nil {
		return nil, err
	}

	if bundle == nil {
		p.Type = page.Unavailable
		p.Reason = ReasonUnavailable
		return p, nil
	}

	log.Infof("Playing: %s", bundle.Preferred())

	p.Type = page.Video
	p.Title = bundle.Title
	p.Video = bundle
	return p, nil
}

func appendEpisodes(p *page.Page, episodes []*source.Episode) {
	for _, episode := range episodes {
		p.Append(uri.MustEncode(uri.Entity{Kind: uri.KindEpisode, Episode: episode}), page.KindVideo, EpisodeMetadata(episode))
	}
	p.Entries += len(episodes)
}
