package config

import (
	"os"
	"testing"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given no config file", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Every key has its default", func() {
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("The catalog points at the public endpoints", func() {
			So(viper.GetString(key.CatalogBaseURL), ShouldEqual, constant.BaseURL)
			So(viper.GetString(key.CatalogResolverURL), ShouldEqual, constant.ResolverURL)
			So(viper.GetBool(key.AuthEnable), ShouldBeTrue)
		})
	})

	Convey("Environment variables override defaults", t, func() {
		So(os.Setenv("ATRES_CATALOG_BASE_URL", "http://localhost:8080"), ShouldBeNil)
		defer os.Unsetenv("ATRES_CATALOG_BASE_URL")

		So(Setup(), ShouldBeNil)
		So(viper.GetString(key.CatalogBaseURL), ShouldEqual, "http://localhost:8080")
	})
}

func TestField(t *testing.T) {
	Convey("Given a field", t, func() {
		field := Default[key.SearchShowQuerySuggestions]

		Convey("Its env name is prefixed and upper case", func() {
			So(field.Env(), ShouldEqual, "ATRES_SEARCH_SHOW_QUERY_SUGGESTIONS")
		})

		Convey("Its pretty form names the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.SearchShowQuerySuggestions)
		})

		Convey("Its json form carries the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"bool"`)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Values are parsed into the default's type", t, func() {
		pages := Default[key.SearchPages]
		v, err := pages.Parse([]string{"3"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 3)

		_, err = pages.Parse([]string{"three"})
		So(err, ShouldNotBeNil)

		enable := Default[key.AuthEnable]
		v, err = enable.Parse([]string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		player := Default[key.Player]
		v, err = player.Parse([]string{"mpv"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "mpv")

		_, err = player.Parse([]string{"mpv", "vlc"})
		So(err, ShouldNotBeNil)
	})
}
