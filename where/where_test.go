package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atres-cli/atres/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directories are created on demand", t, func() {
		for _, dir := range []func() string{Config, Cache, Logs, Temp} {
			path := dir()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		}
	})

	Convey("The query history lives in the cache", t, func() {
		So(filepath.Dir(Queries()), ShouldEqual, Cache())
		So(filepath.Base(Queries()), ShouldEqual, "queries.json")
	})

	Convey("The config directory can be overridden", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/atres"), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		So(Config(), ShouldEqual, "/custom/atres")
		So(Logs(), ShouldEqual, filepath.Join("/custom/atres", "logs"))
	})
}
