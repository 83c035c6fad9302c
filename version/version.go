// Package version checks whether a newer release of the application was published.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the endpoint describing the latest published release.
const ReleasesURL = "https://api.github.com/repos/atres-cli/atres/releases/latest"

var latestCache = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the latest released version, without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context, fetcher network.Fetcher) (string, error) {
	cached, expired, err := latestCache.Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetchLatest(ctx, fetcher, ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = latestCache.Set(latest)
	return latest, nil
}

func fetchLatest(ctx context.Context, fetcher network.Fetcher, endpoint string) (string, error) {
	body, err := fetcher.Fetch(ctx, endpoint, &network.Options{
		Headers: map[string]string{"Accept": "application/vnd.github+json"},
	})
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.Unmarshal([]byte(body), &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
