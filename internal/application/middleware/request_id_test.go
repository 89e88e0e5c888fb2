package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRequestLogger(t *testing.T) {
	Convey("Given a server with the request middlewares", t, func() {
		e := echo.New()
		SetupRequestLogger(e)
		e.GET("/ping", func(c echo.Context) error {
			return c.String(http.StatusOK, "pong")
		})

		Convey("A request without an id is given a UUID", func() {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			_, err := uuid.Parse(rec.Header().Get(echo.HeaderXRequestID))
			So(err, ShouldBeNil)
		})

		Convey("A caller supplied id is kept", func() {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(echo.HeaderXRequestID, "caller-id")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			So(rec.Header().Get(echo.HeaderXRequestID), ShouldEqual, "caller-id")
		})
	})
}
