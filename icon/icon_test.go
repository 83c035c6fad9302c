package icon

import (
	"fmt"
	"testing"

	"github.com/atres-cli/atres/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every icon", t, func() {
		for i := Success; i <= More; i++ {
			for _, variant := range AvailableVariants() {
				Convey(fmt.Sprintf("It renders icon %d for variant=%s", i, variant), func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				})
			}
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}
