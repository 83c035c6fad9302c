package uri

import (
	"errors"
	"testing"

	"github.com/atres-cli/atres/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoundTrip(t *testing.T) {
	Convey("Given entities of every addressable kind", t, func() {
		entities := []Entity{
			{Kind: KindStart},
			{Kind: KindCategory, Category: &source.Category{ID: "series", Title: "Series"}},
			{Kind: KindProgram, Program: &source.Program{
				ID:      mo.None[string](),
				URL:     "http://www.atresplayer.com/television/series/el-internado/",
				Title:   "El Internado",
				Channel: "antena3",
				Icon:    "http://www.atresplayer.com/clipping/internado.jpg",
			}},
			{Kind: KindProgram, Program: &source.Program{ID: mo.Some("p-1"), Title: "with id"}},
			{Kind: KindEpisode, Episode: &source.Episode{
				ID:          mo.None[string](),
				Title:       "Capítulo 1",
				Description: "Un \"nuevo\" alumno: llega",
				Icon:        "http://www.atresplayer.com/a.jpg",
				URL:         "http://www.atresplayer.com/television/series/x/capitulo-1.html",
				Date:        mo.Some("12/03/2014"),
				Subtitle:    mo.Some("Temporada 2"),
			}},
			{Kind: KindEpisode, Episode: &source.Episode{Title: "bare"}},
			{Kind: KindEpisode, Episode: &source.Episode{Title: "empty subtitle", Subtitle: mo.Some("")}},
		}

		Convey("decode(encode(e)) should equal e", func() {
			for _, e := range entities {
				token, err := Encode(e)
				So(err, ShouldBeNil)

				decoded, err := Decode(token)
				So(err, ShouldBeNil)
				So(decoded, ShouldResemble, e)
			}
		})

		Convey("Tokens should carry the prefix and kind", func() {
			token := MustEncode(entities[1])
			So(token, ShouldStartWith, "atres:category:{")
			So(Start(), ShouldEqual, "atres:start")
		})
	})
}

func TestDecode(t *testing.T) {
	Convey("Decode", t, func() {
		Convey("Should accept a hand written episode token", func() {
			e, err := Decode(`atres:episode:{"url":"/x","title":"Ep1"}`)
			So(err, ShouldBeNil)
			So(e.Kind, ShouldEqual, KindEpisode)
			So(e.Episode.URL, ShouldEqual, "/x")
			So(e.Episode.Title, ShouldEqual, "Ep1")
			So(e.Episode.ID.IsAbsent(), ShouldBeTrue)
			So(e.Episode.Date.IsAbsent(), ShouldBeTrue)
		})

		Convey("Should reject foreign prefixes", func() {
			_, err := Decode(`other:episode:{}`)
			So(errors.Is(err, ErrForeignPrefix), ShouldBeTrue)
		})

		Convey("Should reject unknown kinds", func() {
			_, err := Decode(`atres:season:{"url":"x"}`)
			So(errors.Is(err, ErrUnknownKind), ShouldBeTrue)
		})

		Convey("Should reject broken payloads", func() {
			_, err := Decode(`atres:program:{"url":`)
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)

			_, err = Decode(`atres:program`)
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode", t, func() {
		Convey("Should fail on a kind without its entity", func() {
			_, err := Encode(Entity{Kind: KindEpisode})
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)
		})

		Convey("Should fail on unknown kinds", func() {
			_, err := Encode(Entity{Kind: "season"})
			So(errors.Is(err, ErrUnknownKind), ShouldBeTrue)
		})
	})
}
