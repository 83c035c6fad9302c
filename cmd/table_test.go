package cmd

import (
	"bytes"
	"testing"

	"github.com/atres-cli/atres/key"
	"github.com/atres-cli/atres/page"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRenderPage(t *testing.T) {
	Convey("Given a program page", t, func() {
		viper.Set(key.CliWrap, false)

		p := page.New("Los Simpson")
		p.Append("", page.KindSeparator, page.Metadata{Title: "Temporada 1"})
		p.Append("atres:episode:u1", page.KindVideo, page.Metadata{Title: "Episodio 1", Description: "Fecha: 01/01/2015\nHomer"})

		var out bytes.Buffer

		Convey("The table lists the items", func() {
			renderPage(&out, p, false)
			So(out.String(), ShouldContainSubstring, "Los Simpson")
			So(out.String(), ShouldContainSubstring, "Temporada 1")
			So(out.String(), ShouldContainSubstring, "Episodio 1")
			So(out.String(), ShouldNotContainSubstring, "atres:episode:u1")
		})

		Convey("Tokens are listed when asked", func() {
			renderPage(&out, p, true)
			So(out.String(), ShouldContainSubstring, "atres:episode:u1")
		})
	})
}

func TestTokens(t *testing.T) {
	Convey("Arguments are turned into tokens", t, func() {
		token, err := programToken("atres:program:{}")
		So(err, ShouldBeNil)
		So(token, ShouldEqual, "atres:program:{}")

		token, err = programToken("http://www.atresplayer.com/television/series/los-simpson/")
		So(err, ShouldBeNil)
		So(token, ShouldStartWith, "atres:program:")

		token, err = episodeToken("https://www.atresplayer.com/television/series/x/capitulo-1.html")
		So(err, ShouldBeNil)
		So(token, ShouldStartWith, "atres:episode:")

		_, err = episodeToken("los simpson")
		So(err, ShouldNotBeNil)
	})
}
