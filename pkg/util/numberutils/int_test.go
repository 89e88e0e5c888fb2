package numberutils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestToLenientInt(t *testing.T) {
	Convey("ToLenientInt reads spreadsheet numbers", t, func() {
		cases := []struct {
			in   string
			want int
			ok   bool
		}{
			{"60", 60, true},
			{" 127 ", 127, true},
			{"60.0", 60, true},
			{"60.9", 60, true},
			{"-3.5", -3, true},
			{"6E1", 60, true},
			{"", 0, false},
			{"abc", 0, false},
			{"NaN", 0, false},
			{"1e20", 0, false},
		}
		for _, c := range cases {
			got, ok := ToLenientInt(c.in)
			So(ok, ShouldEqual, c.ok)
			So(got, ShouldEqual, c.want)
		}
	})
}

func TestIntHelpers(t *testing.T) {
	Convey("Integer helpers", t, func() {
		_, err := ToIntWithError("1.5")
		So(err, ShouldNotBeNil)
		So(ClampInt(9, 10, 12), ShouldEqual, 10)
		So(ClampInt(13, 10, 12), ShouldEqual, 12)
		So(IsIntInRange(23, 0, 23), ShouldBeTrue)
		So(IsIntNegative(-1), ShouldBeTrue)
		So(IsDigits("0500"), ShouldBeTrue)
		So(IsDigits("05:00"), ShouldBeFalse)
	})
}
