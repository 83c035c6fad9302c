package session

import (
	"context"
	"errors"
	"testing"

	"github.com/atres-cli/atres/network"
	"github.com/atres-cli/atres/source"
	. "github.com/smartystreets/goconvey/convey"
)

type prompt struct {
	reason string
	force  bool
}

// scriptedPrompter answers with the queued credentials, one per call.
type scriptedPrompter struct {
	answers []*source.Credentials
	asked   []prompt
	kept    []*source.Credentials
}

func (p *scriptedPrompter) Credentials(reason string, force bool) (*source.Credentials, error) {
	p.asked = append(p.asked, prompt{reason: reason, force: force})
	if len(p.asked) > len(p.answers) {
		return nil, nil
	}
	return p.answers[len(p.asked)-1], nil
}

func (p *scriptedPrompter) Keep(c *source.Credentials) error {
	p.kept = append(p.kept, c)
	return nil
}

// loginServer accepts a single password.
type loginServer struct {
	password string
	posts    []map[string]string
	err      error
}

func (s *loginServer) Fetch(_ context.Context, _ string, opts *network.Options) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.posts = append(s.posts, opts.PostData)
	if opts.PostData["j_password"] != s.password {
		return `{"error":true,"message":"bad credentials"}`, nil
	}
	return `{"error":false}`, nil
}

type notifications []string

func (n *notifications) Notify(msg string) {
	*n = append(*n, msg)
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()

	Convey("Given stored credentials that are accepted", t, func() {
		prompter := &scriptedPrompter{answers: []*source.Credentials{{Username: "ana", Password: "ok"}}}
		server := &loginServer{password: "ok"}
		notes := &notifications{}
		m := NewManager(server, "https://auth.test/login", prompter, notes)

		s, err := m.Ensure(ctx, "")

		Convey("It should authenticate without forcing a prompt", func() {
			So(err, ShouldBeNil)
			So(s.IsPresent(), ShouldBeTrue)
			So(s.MustGet().Username, ShouldEqual, "ana")
			So(s.MustGet().ID, ShouldNotBeEmpty)
			So(m.State(), ShouldEqual, Authenticated)
			So(prompter.asked, ShouldResemble, []prompt{{reason: DefaultReason, force: false}})
		})

		Convey("It should post the credentials as form fields", func() {
			So(server.posts, ShouldResemble, []map[string]string{{"j_username": "ana", "j_password": "ok"}})
		})

		Convey("It should not notify nor keep anything", func() {
			So(*notes, ShouldBeEmpty)
			So(prompter.kept, ShouldBeEmpty)
		})

		Convey("It should create the session only once", func() {
			again, err := m.Ensure(ctx, "")
			So(err, ShouldBeNil)
			So(again.MustGet(), ShouldEqual, s.MustGet())
			So(m.Logins(), ShouldEqual, 1)
		})
	})

	Convey("Given credentials that fail once then succeed", t, func() {
		prompter := &scriptedPrompter{answers: []*source.Credentials{
			{Username: "ana", Password: "old"},
			{Username: "ana", Password: "ok"},
		}}
		server := &loginServer{password: "ok"}
		notes := &notifications{}
		m := NewManager(server, "", prompter, notes)

		s, err := m.Ensure(ctx, "Login to watch")

		Convey("It should end authenticated after one additional prompt", func() {
			So(err, ShouldBeNil)
			So(s.IsPresent(), ShouldBeTrue)
			So(m.State(), ShouldEqual, Authenticated)
			So(m.Prompts(), ShouldEqual, 1)
			So(m.Logins(), ShouldEqual, 2)
		})

		Convey("The retry prompt should be forced and explain the failure", func() {
			So(prompter.asked, ShouldResemble, []prompt{
				{reason: "Login to watch", force: false},
				{reason: RetryReason, force: true},
			})
		})

		Convey("It should notify once and keep the accepted credentials", func() {
			So(*notes, ShouldResemble, notifications{SuccessMessage})
			So(prompter.kept, ShouldHaveLength, 1)
			So(prompter.kept[0].Password, ShouldEqual, "ok")
		})
	})

	Convey("Given a prompt the user dismisses", t, func() {
		prompter := &scriptedPrompter{answers: []*source.Credentials{{Rejected: true}}}
		server := &loginServer{password: "ok"}
		m := NewManager(server, "", prompter, nil)

		s, err := m.Ensure(ctx, "")

		Convey("It should abandon without calling the login endpoint", func() {
			So(err, ShouldBeNil)
			So(s.IsAbsent(), ShouldBeTrue)
			So(m.State(), ShouldEqual, Abandoned)
			So(server.posts, ShouldBeEmpty)
		})
	})

	Convey("Given no stored credentials", t, func() {
		Convey("When the forced prompt returns credentials", func() {
			prompter := &scriptedPrompter{answers: []*source.Credentials{nil, {Username: "ana", Password: "ok"}}}
			notes := &notifications{}
			m := NewManager(&loginServer{password: "ok"}, "", prompter, notes)

			s, err := m.Ensure(ctx, "")

			So(err, ShouldBeNil)
			So(s.IsPresent(), ShouldBeTrue)
			So(prompter.asked[1].force, ShouldBeTrue)
			So(*notes, ShouldResemble, notifications{SuccessMessage})
		})

		Convey("When the forced prompt returns empty credentials", func() {
			prompter := &scriptedPrompter{answers: []*source.Credentials{nil, {Username: "ana"}}}
			server := &loginServer{password: "ok"}
			m := NewManager(server, "", prompter, nil)

			s, err := m.Ensure(ctx, "")

			So(err, ShouldBeNil)
			So(s.IsAbsent(), ShouldBeTrue)
			So(m.State(), ShouldEqual, Abandoned)
			So(prompter.asked, ShouldHaveLength, 2)
			So(server.posts, ShouldBeEmpty)
		})
	})

	Convey("Given a login endpoint that cannot be reached", t, func() {
		boom := errors.New("connection refused")
		prompter := &scriptedPrompter{answers: []*source.Credentials{{Username: "ana", Password: "ok"}}}
		m := NewManager(&loginServer{err: boom}, "", prompter, nil)

		s, err := m.Ensure(ctx, "")

		Convey("It should surface the transport failure", func() {
			So(errors.Is(err, boom), ShouldBeTrue)
			So(s.IsAbsent(), ShouldBeTrue)
			So(m.State(), ShouldEqual, NoCredentials)
		})
	})

	Convey("Given an abandoned flow", t, func() {
		prompter := &scriptedPrompter{answers: []*source.Credentials{
			{Rejected: true},
			{Username: "ana", Password: "ok"},
		}}
		m := NewManager(&loginServer{password: "ok"}, "", prompter, nil)

		first, _ := m.Ensure(ctx, "")
		second, err := m.Ensure(ctx, "")

		Convey("A later call should start over", func() {
			So(first.IsAbsent(), ShouldBeTrue)
			So(err, ShouldBeNil)
			So(second.IsPresent(), ShouldBeTrue)
		})
	})
}
