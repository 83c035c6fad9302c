package credentials

import (
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/atres-cli/atres/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestKeyring(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		keyring.MockInit()

		Convey("Load should return nothing", func() {
			c, err := Load()
			So(err, ShouldBeNil)
			So(c, ShouldBeNil)
		})

		Convey("Delete should succeed", func() {
			So(Delete(), ShouldBeNil)
		})

		Convey("When credentials are saved", func() {
			So(Save(&source.Credentials{Username: "ana", Password: "secret"}), ShouldBeNil)

			Convey("They should load back", func() {
				c, err := Load()
				So(err, ShouldBeNil)
				So(c, ShouldResemble, &source.Credentials{Username: "ana", Password: "secret"})
			})

			Convey("They should be gone after Delete", func() {
				So(Delete(), ShouldBeNil)
				c, err := Load()
				So(err, ShouldBeNil)
				So(c, ShouldBeNil)
			})
		})
	})
}

func TestPrompter(t *testing.T) {
	stored := &source.Credentials{Username: "ana", Password: "stored"}

	Convey("Given a prompter", t, func() {
		var asked []string
		var kept []*source.Credentials
		answer := func(username, password string, err error) Asker {
			return func(reason string) (string, string, error) {
				asked = append(asked, reason)
				return username, password, err
			}
		}

		p := &Prompter{
			load:  func() (*source.Credentials, error) { return stored, nil },
			store: func(c *source.Credentials) error { kept = append(kept, c); return nil },
		}

		Convey("A non-forced request should answer from the store without asking", func() {
			p.ask = answer("x", "y", nil)
			c, err := p.Credentials("reason", false)
			So(err, ShouldBeNil)
			So(c, ShouldEqual, stored)
			So(asked, ShouldBeEmpty)
		})

		Convey("A non-forced request should swallow keyring failures", func() {
			p.load = func() (*source.Credentials, error) { return nil, errors.New("no dbus") }
			c, err := p.Credentials("reason", false)
			So(err, ShouldBeNil)
			So(c, ShouldBeNil)
		})

		Convey("A forced request should ask with the reason", func() {
			p.ask = answer(" ana ", "typed", nil)
			c, err := p.Credentials("Wrong password", true)
			So(err, ShouldBeNil)
			So(c, ShouldResemble, &source.Credentials{Username: "ana", Password: "typed"})
			So(asked, ShouldResemble, []string{"Wrong password"})
		})

		Convey("An interrupted prompt should be reported as rejected", func() {
			p.ask = answer("", "", terminal.InterruptErr)
			c, err := p.Credentials("reason", true)
			So(err, ShouldBeNil)
			So(c.Rejected, ShouldBeTrue)
		})

		Convey("Without an asker a forced request should be rejected", func() {
			c, err := p.Credentials("reason", true)
			So(err, ShouldBeNil)
			So(c.Rejected, ShouldBeTrue)
		})

		Convey("Keep should store the credentials", func() {
			So(p.Keep(stored), ShouldBeNil)
			So(kept, ShouldResemble, []*source.Credentials{stored})
		})
	})
}
