package mini

import (
	"errors"
	"testing"

	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/history"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/ops"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestExecute(t *testing.T) {
	Convey("Given a mini session", t, func() {
		viper.Set(key.HistorySave, true)
		viper.Set(key.HistorySuggest, true)
		So(history.Clear(), ShouldBeNil)
		m := newMini(&Options{Capacity: 4})

		Convey("Instructions run against the machine", func() {
			_, err := m.execute("push a b")
			So(err, ShouldBeNil)

			step, err := m.execute("pop")
			So(err, ShouldBeNil)
			So(step.MustGet().Result, ShouldEqual, "b")
			So(step.MustGet().Line, ShouldEqual, 2)
		})

		Convey("Comments produce no step", func() {
			step, err := m.execute("# nothing")
			So(err, ShouldBeNil)
			So(step.IsAbsent(), ShouldBeTrue)
		})

		Convey("Unchecked ops on an empty stack are refused", func() {
			_, err := m.execute("top!")
			So(errors.Is(err, ops.ErrEmptyStack), ShouldBeTrue)
		})

		Convey("Executed lines are suggested back", func() {
			_, err := m.execute("push  Hello")
			So(err, ShouldBeNil)
			So(suggest("push h"), ShouldContain, "push hello")
		})
	})
}

func TestSuggest(t *testing.T) {
	Convey("suggest completes op names", t, func() {
		viper.Set(key.HistorySuggest, false)
		So(suggest("dr"), ShouldResemble, []string{"drain"})
		So(suggest("pop"), ShouldContain, "pop!")
		So(suggest("push "), ShouldBeEmpty)
	})
}

func TestStates(t *testing.T) {
	Convey("State transitions", t, func() {
		m := newMini(&Options{})

		Convey("Help returns to the prompt", func() {
			m.newState(helpState)
			So(m.handleState(), ShouldBeNil)
			So(m.state, ShouldEqual, inputState)
		})

		Convey("Entering the same state twice is a no-op", func() {
			m.newState(inputState)
			So(m.statesHistory.IsEmpty(), ShouldBeTrue)
		})
	})
}
