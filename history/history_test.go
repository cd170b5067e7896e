package history

import (
	"testing"

	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given remembered instructions", t, func() {
		viper.Set(key.HistorySave, true)
		viper.Set(key.HistorySuggest, true)
		So(Clear(), ShouldBeNil)

		So(Remember("push 1", 1), ShouldBeNil)
		So(Remember("  POP  ", 5), ShouldBeNil)
		So(Remember("push 2", 1), ShouldBeNil)
		So(Remember("push 1", 1), ShouldBeNil)

		Convey("Suggestions are ranked", func() {
			So(SuggestMany("push"), ShouldResemble, []string{"push 1", "push 2"})
			So(Suggest("").MustGet(), ShouldEqual, "pop")
		})

		Convey("Input is sanitized", func() {
			So(sanitize("  PUSH   a  b "), ShouldEqual, "push a b")
			So(Suggest("po").MustGet(), ShouldEqual, "pop")
		})

		Convey("Arguments keep their case", func() {
			So(sanitize("PUSH Hello WORLD"), ShouldEqual, "push Hello WORLD")
			So(Remember("Push Hello", 10), ShouldBeNil)
			So(Suggest("push h").MustGet(), ShouldEqual, "push Hello")
			So(SuggestMany("push"), ShouldNotContain, "push hello")
		})

		Convey("Blank lines are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(len(SuggestMany("")), ShouldEqual, 3)
		})

		Convey("Nothing matches an unrelated prefix", func() {
			So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Suggestions can be disabled", func() {
			viper.Set(key.HistorySuggest, false)
			So(SuggestMany("push"), ShouldBeEmpty)
		})

		Convey("Saving can be disabled", func() {
			viper.Set(key.HistorySave, false)
			So(Remember("clear", 100), ShouldBeNil)
			So(SuggestMany("clear"), ShouldBeEmpty)
		})

		Convey("Count reports distinct lines", func() {
			So(Count(), ShouldEqual, 3)
		})

		Convey("Clear forgets everything", func() {
			So(Clear(), ShouldBeNil)
			So(SuggestMany(""), ShouldBeEmpty)
		})
	})
}
