package icon

import (
	"testing"

	"github.com/dsakit/dsakit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for _, target := range []Icon{Success, Fail, Top, Empty, Lua} {
			Convey("It renders for each variant", func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown icon", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Icon(0)), ShouldBeEmpty)
		})
	})
}
