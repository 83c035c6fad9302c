package mini

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/atres-cli/atres/filesystem"
	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/source"
	"github.com/atres-cli/atres/uri"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type navigator struct {
	pages  map[string]*page.Page
	opened []string
}

func (n *navigator) Open(_ context.Context, token string) (*page.Page, error) {
	n.opened = append(n.opened, token)
	p, ok := n.pages[token]
	if !ok {
		return nil, errors.New("unknown token " + token)
	}
	return p, nil
}

func (n *navigator) SearchPage(_ context.Context, query string) (*page.Page, error) {
	p := page.New("Search: " + query)
	p.Append("atres:episode:found", page.KindVideo, page.Metadata{Title: "Found"})
	return p, nil
}

func newNavigator() *navigator {
	start := page.New("atresplayer")
	start.Append("atres:category:series", page.KindDirectory, page.Metadata{Title: "Series"})

	series := page.New("Series")
	series.Append("", page.KindSeparator, page.Metadata{Title: "Temporada 1"})
	series.Append("atres:episode:u1", page.KindVideo, page.Metadata{Title: "Episodio 1"})
	series.Append("atres:episode:u2", page.KindVideo, page.Metadata{Title: "Episodio 2"})

	video := &page.Page{Type: page.Video, Title: "Episodio 1", Video: &source.VideoBundle{Sources: []string{"http://v/1.mp4"}}}

	return &navigator{pages: map[string]*page.Page{
		uri.Start():             start,
		"atres:category:series": series,
		"atres:episode:u1":      video,
		"atres:episode:found":   video,
		"atres:episode:u2":      {Type: page.Unavailable, Title: "Episodio 2", Reason: "login required"},
	}}
}

// script answers the prompts in order, by option label for selects.
type script struct {
	answers []string
	menus   [][]string
}

func (s *script) next() string {
	if len(s.answers) == 0 {
		return ""
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a
}

func (s *script) selector(_ string, options []string) (int, error) {
	s.menus = append(s.menus, options)
	answer := s.next()
	if answer == "" {
		return -1, terminal.InterruptErr
	}

	for i, option := range options {
		if option == answer || option == bind(answer).String() {
			return i, nil
		}
	}
	return -1, errors.New("no option " + answer)
}

func (s *script) inputer(string, string) (string, error) {
	return s.next(), nil
}

func TestRun(t *testing.T) {
	Convey("Given a navigator", t, func() {
		nav := newNavigator()
		var played []string
		var out bytes.Buffer

		run := func(s *script, search bool) error {
			return Run(context.Background(), &Options{
				Navigator: nav,
				Search:    search,
				Select:    s.selector,
				Input:     s.inputer,
				Out:       &out,
				Play: func(p *page.Page) error {
					played = append(played, p.Video.Preferred())
					return nil
				},
			})
		}

		Convey("Picking an episode plays it", func() {
			s := &script{answers: []string{"Series", "Episodio 1", "Back", "Back", "Quit"}}
			So(run(s, false), ShouldBeNil)
			So(played, ShouldResemble, []string{"http://v/1.mp4"})
			So(nav.opened, ShouldResemble, []string{uri.Start(), "atres:category:series", "atres:episode:u1"})
			So(s.answers, ShouldBeEmpty)
		})

		Convey("An unavailable episode is reported and the page stays", func() {
			s := &script{answers: []string{"Series", "Episodio 2", "Quit"}}
			So(run(s, false), ShouldBeNil)
			So(played, ShouldBeEmpty)
			So(out.String(), ShouldContainSubstring, "login required")
			So(s.answers, ShouldBeEmpty)
		})

		Convey("Back is only offered below the start page", func() {
			s := &script{answers: []string{"Series", "Quit"}}
			So(run(s, false), ShouldBeNil)
			So(s.menus[0], ShouldNotContain, back.String())
			So(s.menus[1], ShouldContain, back.String())
		})

		Convey("Starting with a search", func() {
			s := &script{answers: []string{"simpson", "Found", "Quit"}}
			So(run(s, true), ShouldBeNil)
			So(played, ShouldResemble, []string{"http://v/1.mp4"})
		})

		Convey("An empty first search quits", func() {
			s := &script{answers: []string{""}}
			So(run(s, true), ShouldBeNil)
		})

		Convey("An interrupt ends the session quietly", func() {
			s := &script{}
			So(run(s, false), ShouldBeNil)
		})
	})
}
