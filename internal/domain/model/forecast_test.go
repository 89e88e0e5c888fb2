package model

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestForecastRecord(t *testing.T) {
	Convey("Given an empty forecast record", t, func() {
		record := NewForecastRecord()

		Convey("It marshals to an empty object", func() {
			data, err := json.Marshal(record)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})

		Convey("When labels are put out of alphabetical order", func() {
			record.Put("하늘상태", "맑음")
			record.Put("1시간 기온(°C)", "23")
			record.Put("강수형태", "없음")

			Convey("Labels keep insertion order", func() {
				So(record.Labels(), ShouldResemble, []string{"하늘상태", "1시간 기온(°C)", "강수형태"})
			})

			Convey("JSON keys keep insertion order", func() {
				data, err := json.Marshal(record)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, `{"하늘상태":"맑음","1시간 기온(°C)":"23","강수형태":"없음"}`)
			})

			Convey("Putting a label again replaces its value in place", func() {
				record.Put("하늘상태", "흐림")
				So(record.Len(), ShouldEqual, 3)
				So(record.Entries()[0], ShouldResemble, ForecastEntry{Label: "하늘상태", Value: "흐림"})

				value, ok := record.Get("하늘상태")
				So(ok, ShouldBeTrue)
				So(value, ShouldEqual, "흐림")
			})
		})
	})
}

func TestProviderError(t *testing.T) {
	Convey("ProviderError unwraps to its kind", t, func() {
		err := error(&ProviderError{Kind: ErrProviderFault, Code: "03", Message: "NO_DATA"})

		So(errors.Is(err, ErrProviderFault), ShouldBeTrue)
		So(errors.Is(err, ErrMalformedResponse), ShouldBeFalse)
		So(err.Error(), ShouldEqual, "provider fault: NO_DATA (resultCode=03)")

		var providerErr *ProviderError
		So(errors.As(err, &providerErr), ShouldBeTrue)
		So(providerErr.Code, ShouldEqual, "03")
	})
}
