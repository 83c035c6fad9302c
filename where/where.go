// Package where resolves the paths of the config file, the logs and the caches.
package where

import (
	"os"
	"path/filepath"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "ATRES_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the config directory: EnvConfigPath when set, the user config dir otherwise.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Atres))
}

// Cache returns the cache directory, falling back to ./cache.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Atres))
}

// Logs returns the directory of the daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries returns the file of the search history.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp returns a scratch directory, removed at startup.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Atres))
}
