package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vnkit/vnkit/color"
)

func TestRender(t *testing.T) {
	Convey("Given a terminal without colors", t, func() {
		lipgloss.SetColorProfile(termenv.Ascii)

		Convey("Styles should keep the text", func() {
			So(Fg(color.Red)("vn"), ShouldEqual, "vn")
			So(Bold("vn"), ShouldEqual, "vn")
			So(Faint("vn"), ShouldEqual, "vn")
		})

		Convey("Banners should be padded", func() {
			So(Title("vnkit"), ShouldEqual, " vnkit ")
			So(ErrorTitle("error"), ShouldEqual, " error ")
		})
	})
}
