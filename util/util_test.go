package util

import (
	"testing"

	"github.com/atres-cli/atres/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(0, "episode", "episodes"), ShouldEqual, "0 episodes")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("queries history"), ShouldEqual, "Queries history")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		So(fs.MkdirAll("/tmp/atres/nested", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/atres/nested/file", []byte("x"), 0o644), ShouldBeNil)

		Convey("Directories are removed recursively", func() {
			So(Delete("/tmp/atres"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/atres/nested/file")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths are an error", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
