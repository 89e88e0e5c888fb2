package weather

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBaseTimePolicy(t *testing.T) {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, 3, day, hour, minute, 0, 0, kst)
	}

	Convey("Given the fixed policy", t, func() {
		policy, err := NewBaseTimePolicy(BaseTimePolicyFixed, "")
		So(err, ShouldBeNil)

		Convey("It uses today with 0500 by default", func() {
			date, baseTime := policy.BaseDateTime(at(10, 1, 0))
			So(date, ShouldEqual, "20240310")
			So(baseTime, ShouldEqual, "0500")
		})

		Convey("The date is taken in Korean time", func() {
			date, _ := policy.BaseDateTime(time.Date(2024, 3, 9, 16, 0, 0, 0, time.UTC))
			So(date, ShouldEqual, "20240310")
		})
	})

	Convey("Given the latest policy", t, func() {
		policy, err := NewBaseTimePolicy(BaseTimePolicyLatest, "")
		So(err, ShouldBeNil)

		Convey("It picks the latest published issuance", func() {
			date, baseTime := policy.BaseDateTime(at(10, 5, 10))
			So(date, ShouldEqual, "20240310")
			So(baseTime, ShouldEqual, "0500")

			_, baseTime = policy.BaseDateTime(at(10, 5, 9))
			So(baseTime, ShouldEqual, "0200")

			_, baseTime = policy.BaseDateTime(at(10, 23, 59))
			So(baseTime, ShouldEqual, "2300")
		})

		Convey("Before 02:10 it falls back to the previous day's last issuance", func() {
			date, baseTime := policy.BaseDateTime(at(10, 2, 9))
			So(date, ShouldEqual, "20240309")
			So(baseTime, ShouldEqual, "2300")

			date, baseTime = policy.BaseDateTime(at(1, 0, 5))
			So(date, ShouldEqual, "20240229")
			So(baseTime, ShouldEqual, "2300")
		})
	})

	Convey("Invalid configurations are rejected", t, func() {
		_, err := NewBaseTimePolicy("hourly", "")
		So(err, ShouldNotBeNil)

		_, err = NewBaseTimePolicy(BaseTimePolicyFixed, "2500")
		So(err, ShouldNotBeNil)

		_, err = NewBaseTimePolicy(BaseTimePolicyFixed, "05:00")
		So(err, ShouldNotBeNil)

		policy, err := NewBaseTimePolicy(BaseTimePolicyFixed, "1100")
		So(err, ShouldBeNil)
		_, baseTime := policy.BaseDateTime(time.Now())
		So(baseTime, ShouldEqual, "1100")
	})
}
