package paginator

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recorder struct {
	fetched []int
	emitted [][]string
}

func (r *recorder) emit(_ int, batch []string) {
	r.emitted = append(r.emitted, batch)
}

func TestBounded(t *testing.T) {
	Convey("Given a bounded cursor over three seasons", t, func() {
		rec := &recorder{}
		seasons := []string{"s1", "s2", "s3"}
		fetch := func(key string, index int) ([]string, error) {
			rec.fetched = append(rec.fetched, index)
			return []string{key + "e1", key + "e2"}, nil
		}

		cursor, err := Start(Bounded(seasons, fetch, rec.emit))
		So(err, ShouldBeNil)

		Convey("The first batch should be produced eagerly", func() {
			So(rec.emitted, ShouldHaveLength, 1)
			So(rec.emitted[0], ShouldResemble, []string{"s1e1", "s1e2"})
			So(cursor.More(), ShouldBeTrue)
		})

		Convey("It should emit exactly one batch per season, in order", func() {
			So(cursor.Advance(), ShouldBeTrue)
			So(cursor.Advance(), ShouldBeFalse)
			So(rec.emitted, ShouldHaveLength, 3)
			So(rec.emitted[2], ShouldResemble, []string{"s3e1", "s3e2"})
			So(rec.fetched, ShouldResemble, []int{0, 1, 2})
		})

		Convey("It should never exceed the known count", func() {
			So(cursor.Drain(), ShouldBeNil)
			for i := 0; i < 5; i++ {
				So(cursor.Advance(), ShouldBeFalse)
			}
			So(cursor.Batches(), ShouldEqual, 3)
			So(rec.fetched, ShouldHaveLength, 3)
		})

		Convey("It should not be restartable", func() {
			_, err := Start(cursor)
			So(err, ShouldEqual, ErrExhausted)
		})
	})

	Convey("Given a single season", t, func() {
		rec := &recorder{}
		cursor, err := Start(Bounded([]string{"only"}, func(key string, _ int) ([]string, error) {
			return []string{key}, nil
		}, rec.emit))

		Convey("The cursor should be done after the eager batch", func() {
			So(err, ShouldBeNil)
			So(cursor.More(), ShouldBeFalse)
			So(rec.emitted, ShouldHaveLength, 1)
		})
	})

	Convey("Given a bounded cursor whose batches are empty", t, func() {
		rec := &recorder{}
		cursor := Bounded([]string{"a", "b"}, func(string, int) ([]string, error) {
			return nil, nil
		}, rec.emit)

		Convey("Empty batches should not end it early", func() {
			So(cursor.Drain(), ShouldBeNil)
			So(cursor.Batches(), ShouldEqual, 2)
		})
	})

	Convey("Given no keys at all", t, func() {
		called := false
		cursor, err := Start(Bounded([]string{}, func(string, int) ([]string, error) {
			called = true
			return nil, nil
		}, nil))

		So(err, ShouldBeNil)
		So(called, ShouldBeFalse)
		So(cursor.More(), ShouldBeFalse)
	})
}

func TestUnbounded(t *testing.T) {
	Convey("Given a search that has two non-empty pages", t, func() {
		rec := &recorder{}
		pages := map[int][]string{1: {"a", "b"}, 2: {"c"}}
		fetch := func(query string, page int) ([]string, error) {
			rec.fetched = append(rec.fetched, page)
			return pages[page], nil
		}

		cursor, err := Start(Unbounded("internado", 1, fetch, rec.emit))
		So(err, ShouldBeNil)

		Convey("It should stop on the first empty page", func() {
			So(cursor.Advance(), ShouldBeTrue)
			So(cursor.Advance(), ShouldBeFalse)
			So(rec.emitted, ShouldResemble, [][]string{{"a", "b"}, {"c"}})
			So(cursor.Batches(), ShouldEqual, 2)
		})

		Convey("It should never fetch after termination", func() {
			So(cursor.Drain(), ShouldBeNil)
			So(cursor.Advance(), ShouldBeFalse)
			So(cursor.Advance(), ShouldBeFalse)
			So(rec.fetched, ShouldResemble, []int{1, 2, 3})
		})
	})

	Convey("Given a search without results", t, func() {
		rec := &recorder{}
		cursor, err := Start(Unbounded("nothing", 1, func(string, int) ([]string, error) {
			return nil, nil
		}, rec.emit))

		Convey("The eager batch should end the cursor without emitting", func() {
			So(err, ShouldBeNil)
			So(cursor.More(), ShouldBeFalse)
			So(rec.emitted, ShouldBeEmpty)
		})
	})

	Convey("Given a fetch that fails on the second page", t, func() {
		boom := errors.New("connection refused")
		calls := 0
		cursor, err := Start(Unbounded("q", 1, func(string, int) ([]string, error) {
			calls++
			if calls == 2 {
				return nil, boom
			}
			return []string{"x"}, nil
		}, nil))
		So(err, ShouldBeNil)

		Convey("The cursor should end and keep the error", func() {
			So(cursor.Advance(), ShouldBeFalse)
			So(errors.Is(cursor.Err(), boom), ShouldBeTrue)
			So(cursor.Advance(), ShouldBeFalse)
			So(calls, ShouldEqual, 2)
		})
	})

	Convey("Given a fetch that fails on the first page", t, func() {
		boom := errors.New("timeout")
		_, err := Start(Unbounded("q", 1, func(string, int) ([]string, error) {
			return nil, boom
		}, nil))

		So(errors.Is(err, boom), ShouldBeTrue)
	})
}
