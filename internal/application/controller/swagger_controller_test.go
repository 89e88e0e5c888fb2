package controller

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tidwall/gjson"

	_ "kma-forecast/docs"
)

func TestSwaggerController(t *testing.T) {
	Convey("Given the swagger routes", t, func() {
		e := echo.New()
		NewSwaggerController(e.Group("/kma-forecast")).InitSwaggerRoutes()

		Convey("The document lists the forecast route", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/swagger/doc.json", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(gjson.Get(rec.Body.String(), "paths./forecast.get.summary").Exists(), ShouldBeTrue)
		})

		Convey("The UI is served", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/swagger/index.html", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}
