// Package resolver turns an episode into playable video sources through the third-party resolver API.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/log"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/session"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/uri"
	"github.com/samber/lo"
)

// ErrNoSession is returned when resolution is attempted without an authenticated session.
var ErrNoSession = errors.New("resolver: no session")

// response is the body returned by the resolver API.
type response struct {
	Exito  bool `json:"exito"`
	Videos []struct {
		URLVideo []string `json:"url_video"`
	} `json:"videos"`
	Titulos []string `json:"titulos"`
}

// Resolver queries the resolver API.
type Resolver struct {
	fetcher  network.Fetcher
	endpoint string
}

// New returns a resolver querying endpoint. An empty endpoint means the public API.
func New(fetcher network.Fetcher, endpoint string) *Resolver {
	if endpoint == "" {
		endpoint = constant.ResolverURL
	}

	return &Resolver{fetcher: fetcher, endpoint: endpoint}
}

// Cookie returns the header value authenticating s against the resolver.
func Cookie(s *session.Session) string {
	return "a3user=" + s.Username + "; a3pass=" + s.Password
}

// Resolve returns the video sources of episode.
//
// A nil bundle with a nil error means there is nothing to play: the resolver reported
// a failure or returned no source. Callers must not treat it as an error.
func (r *Resolver) Resolve(ctx context.Context, episode *source.Episode, s *session.Session) (*source.VideoBundle, error) {
	token, err := uri.EpisodeURI(episode)
	if err != nil {
		return nil, err
	}

	return r.resolve(ctx, episode, token, s)
}

// ResolveToken decodes an episode token and resolves it. The bundle keeps token as its canonical URI.
func (r *Resolver) ResolveToken(ctx context.Context, token string, s *session.Session) (*source.VideoBundle, error) {
	entity, err := uri.Decode(token)
	if err != nil {
		return nil, err
	}

	if entity.Kind != uri.KindEpisode {
		return nil, fmt.Errorf("%w: %s is not an episode", uri.ErrUnknownKind, entity.Kind)
	}

	return r.resolve(ctx, entity.Episode, token, s)
}

func (r *Resolver) resolve(ctx context.Context, episode *source.Episode, token string, s *session.Session) (*source.VideoBundle, error) {
	if s == nil {
		return nil, ErrNoSession
	}

	log.Infof("session %s: resolving %s", s.ID, episode.URL)

	body, err := r.fetcher.Fetch(ctx, r.endpoint, &network.Options{
		Args:    map[string]string{"url": episode.URL},
		Headers: map[string]string{"Cookie": Cookie(s)},
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", episode.URL, err)
	}

	var res response
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("decode resolver response: %w", err)
	}

	if !res.Exito {
		log.Infof("session %s: resolver has nothing for %s", s.ID, episode.URL)
		return nil, nil
	}

	if len(res.Videos) == 0 || len(res.Videos[0].URLVideo) == 0 {
		log.Warnf("session %s: resolver succeeded without sources for %s", s.ID, episode.URL)
		return nil, nil
	}

	title, ok := lo.First(res.Titulos)
	if !ok || title == "" {
		title = episode.Title
	}

	bundle := &source.VideoBundle{
		Sources:      append([]string(nil), res.Videos[0].URLVideo...),
		Title:        title,
		CanonicalURI: token,
	}

	log.Debugf("session %s: %d sources for %s", s.ID, len(bundle.Sources), episode.URL)
	return bundle, nil
}
