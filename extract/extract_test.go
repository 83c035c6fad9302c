package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atres-cli/atres/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

const base = "http://www.atresplayer.com"

func fixture(name string) string {
	return string(lo.Must(os.ReadFile(filepath.Join("testdata", name))))
}

func TestRegion(t *testing.T) {
	Convey("Region", t, func() {
		r := Region{Start: []string{"<a>", "<b>"}, End: "<end>"}

		Convey("Should bound the document with the anchors in sequence", func() {
			region, ok := r.Slice("<b>skip<a>x<b>keep<end>tail")
			So(ok, ShouldBeTrue)
			So(region, ShouldEqual, "<b>keep")
		})

		Convey("Should yield no region when a start anchor is missing", func() {
			region, ok := r.Slice("<b>only b<end>")
			So(ok, ShouldBeFalse)
			So(region, ShouldBeEmpty)
		})

		Convey("Should run to the end of the document without an end anchor", func() {
			region, ok := r.Slice("<a><b>rest")
			So(ok, ShouldBeTrue)
			So(region, ShouldEqual, "<b>rest")
		})
	})
}

func TestAbsolute(t *testing.T) {
	Convey("Absolute", t, func() {
		So(Absolute(base, "/television/series/"), ShouldEqual, base+"/television/series/")
		So(Absolute(base, "television/series/"), ShouldEqual, base+"/television/series/")
		So(Absolute(base, "http://cdn.example.com/a.jpg"), ShouldEqual, "http://cdn.example.com/a.jpg")
		So(Absolute(base, "//cdn.example.com/a.jpg"), ShouldEqual, "http://cdn.example.com/a.jpg")
		So(Absolute(base, base+"/x"), ShouldEqual, base+"/x")
		So(Absolute(base, ""), ShouldBeEmpty)
	})
}

func TestPrograms(t *testing.T) {
	Convey("Given a category page with well-formed and malformed promos", t, func() {
		result, err := Programs(base).Extract(fixture("category.html"))
		So(err, ShouldBeNil)

		Convey("It should keep only the well-formed promos, in source order", func() {
			So(result.Items, ShouldHaveLength, 3)
			So(lo.Map(result.Items, func(p *source.Program, _ int) string { return p.Title }), ShouldResemble,
				[]string{"El Internado", "Los Simpson & Co", "Física o Química"})
		})

		Convey("It should count what it dropped", func() {
			So(result.Stats, ShouldResemble, Stats{Seen: 5, Matched: 3})
			So(result.Stats.Dropped(), ShouldEqual, 2)
		})

		Convey("It should capture channel, url and icon as absolute urls", func() {
			p := result.Items[0]
			So(p.ID.IsAbsent(), ShouldBeTrue)
			So(p.Channel, ShouldEqual, "antena3")
			So(p.URL, ShouldEqual, base+"/television/series/el-internado/")
			So(p.Icon, ShouldEqual, base+"/clipping/2014/01/internado.jpg")

			So(result.Items[1].URL, ShouldEqual, base+"/television/series/los-simpson/")
			So(result.Items[1].Icon, ShouldEqual, "http://static.atresplayer.com/simpson.jpg")
		})

		Convey("It should ignore promos outside the content container", func() {
			for _, p := range result.Items {
				So(p.Title, ShouldNotContainSubstring, "promo")
			}
		})
	})

	Convey("Given a page without the content container", t, func() {
		result, err := Programs(base).Extract(`<div class="mod_promo antena3"><a title="x" href="/x"><img src="/x.jpg"></a></div>`)

		Convey("It should return an empty listing", func() {
			So(err, ShouldBeNil)
			So(result.Items, ShouldBeEmpty)
			So(result.Stats.Seen, ShouldEqual, 0)
		})
	})
}

func TestSeasons(t *testing.T) {
	program := &source.Program{URL: base + "/television/series/el-internado/", Title: "El Internado"}

	Convey("Given a program page with a season list", t, func() {
		result, err := Seasons(base, program).Extract(fixture("program.html"))
		So(err, ShouldBeNil)

		Convey("It should return the listed seasons", func() {
			So(result.Items, ShouldHaveLength, 3)
			So(result.Items[0].Title, ShouldEqual, "Temporada 1")
			So(result.Items[0].URL, ShouldEqual, base+"/television/series/el-internado/temporada-1/")
			So(result.Items[1].Title, ShouldEqual, "Temporada 2")
			So(result.Items[2].URL, ShouldEqual, base+"/television/series/el-internado/temporada-3/")
			So(result.Stats, ShouldResemble, Stats{Seen: 4, Matched: 3})
		})

		Convey("It should not read past the season list", func() {
			for _, s := range result.Items {
				So(s.Title, ShouldNotEqual, "Other list")
			}
		})
	})

	Convey("Given a program page without a season list", t, func() {
		result, err := Seasons(base, program).Extract(fixture("program_single.html"))
		So(err, ShouldBeNil)

		Convey("It should synthesize exactly one season pointing at the program", func() {
			So(result.Items, ShouldHaveLength, 1)
			So(result.Items[0].Title, ShouldEqual, source.DefaultSeasonTitle)
			So(result.Items[0].URL, ShouldEqual, program.URL)
			So(result.Items[0].ID.IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a season list with no usable item", t, func() {
		result, err := Seasons(base, program).Extract(`<ul class="fn_lay"><li>soon</li></ul>`)
		So(err, ShouldBeNil)

		Convey("It should still never be empty", func() {
			So(result.Items, ShouldHaveLength, 1)
			So(result.Items[0].URL, ShouldEqual, program.URL)
			So(result.Stats, ShouldResemble, Stats{Seen: 1, Matched: 0})
		})
	})
}

func TestEpisodes(t *testing.T) {
	Convey("Given a carousel", t, func() {
		result, err := Episodes(base).Extract(fixture("carousel.json"))
		So(err, ShouldBeNil)

		Convey("It should map every element to one episode", func() {
			So(result.Items, ShouldHaveLength, 3)
			So(result.Stats, ShouldResemble, Stats{Seen: 3, Matched: 3})
		})

		Convey("It should map the carousel fields", func() {
			e := result.Items[0]
			So(e.Title, ShouldEqual, "Capítulo 1")
			So(e.Description, ShouldEqual, "Un nuevo alumno llega al internado")
			So(e.Icon, ShouldEqual, base+"/clipping/cap1.jpg")
			So(e.URL, ShouldEqual, base+"/television/series/el-internado/temporada-1/capitulo-1.html")
			So(e.ID.IsAbsent(), ShouldBeTrue)
			So(e.Date.IsAbsent(), ShouldBeTrue)

			So(result.Items[1].Icon, ShouldEqual, "http://cdn.atresplayer.com/cap2.jpg")
		})
	})

	Convey("Given an empty carousel", t, func() {
		result, err := Episodes(base).Extract(`[]`)
		So(err, ShouldBeNil)
		So(result.Items, ShouldBeEmpty)
	})

	Convey("Given something that is not a carousel", t, func() {
		_, err := Episodes(base).Extract(`<html>maintenance</html>`)
		So(err, ShouldNotBeNil)
	})
}

func TestSearchResults(t *testing.T) {
	Convey("Given a search page with pagination", t, func() {
		result, err := SearchResults(base).Extract(fixture("search.html"))
		So(err, ShouldBeNil)

		Convey("It should extract the well-formed cards before the pagination controls", func() {
			So(result.Items, ShouldHaveLength, 2)
			So(result.Stats, ShouldResemble, Stats{Seen: 3, Matched: 2})
		})

		Convey("It should capture every field", func() {
			r := result.Items[0]
			So(r.Icon, ShouldEqual, base+"/clipping/r1.jpg")
			So(r.URL, ShouldEqual, base+"/television/series/el-internado/temporada-1/capitulo-1.html")
			So(r.Title, ShouldEqual, "Capítulo 1")
			So(r.Subtitle, ShouldEqual, "El Internado")
			So(r.Description, ShouldEqual, "Un nuevo alumno llega")

			So(result.Items[1].Title, ShouldEqual, "Capítulo 5")
			So(result.Items[1].Description, ShouldEqual, "Vuelven las clases")
		})
	})

	Convey("Given the last search page", t, func() {
		result, err := SearchResults(base).Extract(fixture("search_last.html"))
		So(err, ShouldBeNil)
		So(result.Items, ShouldHaveLength, 1)
		So(result.Items[0].Subtitle, ShouldEqual, "Programa X")
	})

	Convey("Given a page past the last one", t, func() {
		result, err := SearchResults(base).Extract(fixture("search_empty.html"))
		So(err, ShouldBeNil)
		So(result.Items, ShouldBeEmpty)
	})

	Convey("Given line breaks inside a card", t, func() {
		card := strings.Join([]string{
			`<div class="resultSet"><div class="post"><img src="/a.jpg">`,
			`<a href="/b.html">`,
			`Title</a><p>Sub</p>`,
			`<p>Desc</p></div>`,
		}, "\r\n")
		result, err := SearchResults(base).Extract(card)
		So(err, ShouldBeNil)
		So(result.Items, ShouldHaveLength, 1)
		So(result.Items[0].Title, ShouldEqual, "Title")
	})
}
