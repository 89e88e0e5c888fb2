package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/smartystreets/goconvey/convey"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/usecase/weather"
)

type fakeWeather struct {
	err          error
	coordinates  []model.Coordinate
	places       []model.PlaceQuery
	addressIndex *address.Index
}

func (f *fakeWeather) record() *model.ForecastRecord {
	record := model.NewForecastRecord()
	record.Put("하늘상태", "맑음")
	record.Put("1시간 기온(°C)", "5")
	return record
}

func (f *fakeWeather) GetForecast(_ context.Context, coordinate model.Coordinate) (*model.ForecastRecord, error) {
	f.coordinates = append(f.coordinates, coordinate)
	if f.err != nil {
		return nil, f.err
	}
	return f.record(), nil
}

func (f *fakeWeather) GetForecastByPlace(ctx context.Context, province, city, neighborhood string) (*model.ForecastRecord, error) {
	f.places = append(f.places, model.PlaceQuery{Province: province, City: city, Neighborhood: neighborhood})
	coordinate, err := f.addressIndex.Resolve(province, city, neighborhood)
	if err != nil {
		return nil, err
	}
	return f.GetForecast(ctx, coordinate)
}

func (f *fakeWeather) GetHourlyForecast(_ context.Context, coordinate model.Coordinate) ([]model.HourlyForecast, error) {
	f.coordinates = append(f.coordinates, coordinate)
	if f.err != nil {
		return nil, f.err
	}
	return []model.HourlyForecast{{FcstDate: "20240101", FcstTime: "0600", Record: f.record()}}, nil
}

func (f *fakeWeather) CheckCredential(context.Context) error {
	return f.err
}

func (f *fakeWeather) ProbeCredential(context.Context, string) bool {
	return f.err == nil
}

func (f *fakeWeather) WithCredential(string) weather.UseCase {
	return f
}

type fakeSession struct {
	service weather.UseCase
	status  model.CredentialStatus
}

func (s *fakeSession) Service() (weather.UseCase, error) {
	if s.status.State != model.StateReady {
		return nil, model.ErrCredentialRequired
	}
	return s.service, nil
}

func (s *fakeSession) Status() model.CredentialStatus {
	return s.status
}

func (s *fakeSession) Submit(_ context.Context, serviceKey string, keepLogin bool) error {
	if serviceKey == "raced" {
		return model.ErrCredentialSuperseded
	}
	if serviceKey != "good" {
		s.status = model.CredentialStatus{State: model.StateAwaitingCredential}
		return model.ErrCredentialInvalid
	}
	s.status = model.CredentialStatus{State: model.StateReady, KeepLogin: keepLogin}
	return nil
}

func (s *fakeSession) Reset(context.Context) error {
	s.status = model.CredentialStatus{State: model.StateAwaitingCredential}
	return nil
}

func newTestIndex() *address.Index {
	return address.Build([][]string{
		{"구분", "코드", "1단계", "2단계", "3단계", "격자 X", "격자 Y"},
		{"kor", "0", "서울특별시", "", "", "60", "127"},
		{"kor", "0", "서울특별시", "종로구", "", "60", "127"},
		{"kor", "0", "서울특별시", "종로구", "청운효자동", "60", "127"},
		{"kor", "0", "부산광역시", "중구", "중앙동", "97", "74"},
	})
}

func newTestServer(session *fakeSession, index *address.Index) *echo.Echo {
	e := echo.New()
	group := e.Group("/kma-forecast")
	NewAddressController(group, index).InitAddressRoutes()
	NewForecastController(group, session, index).InitForecastRoutes()
	NewCredentialController(group, session).InitCredentialRoutes()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorKind(rec *httptest.ResponseRecorder) string {
	var body ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body.Kind
}

func TestAddressController(t *testing.T) {
	Convey("Given the address routes", t, func() {
		e := newTestServer(&fakeSession{}, newTestIndex())

		Convey("Provinces are listed in table order", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/provinces", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `["서울특별시","부산광역시"]`)
		})

		Convey("Cities of an encoded province are listed", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/provinces/"+url.PathEscape("서울특별시")+"/cities", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `["","종로구"]`)
		})

		Convey("Neighborhoods of a city are listed", func() {
			target := fmt.Sprintf("/kma-forecast/address/provinces/%s/cities/%s/neighborhoods",
				url.PathEscape("서울특별시"), url.PathEscape("종로구"))
			rec := serve(e, http.MethodGet, target, "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `["","청운효자동"]`)
		})

		Convey("Neighborhoods under the empty city are listed by query", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/neighborhoods?province="+url.QueryEscape("서울특별시"), "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `[""]`)

			query := url.Values{"province": {"서울특별시"}, "city": {"종로구"}}
			rec = serve(e, http.MethodGet, "/kma-forecast/address/neighborhoods?"+query.Encode(), "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `["","청운효자동"]`)
		})

		Convey("The neighborhood query needs a province", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/neighborhoods", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("An unknown province is not found", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/provinces/"+url.PathEscape("제주도")+"/cities", "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			So(errorKind(rec), ShouldEqual, KindPlaceNotFound)
		})

		Convey("Resolve returns the place with its coordinate", func() {
			query := url.Values{"province": {"부산광역시"}, "city": {"중구"}, "neighborhood": {"중앙동"}}
			rec := serve(e, http.MethodGet, "/kma-forecast/address/resolve?"+query.Encode(), "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var place model.Place
			So(json.Unmarshal(rec.Body.Bytes(), &place), ShouldBeNil)
			So(place.Coordinate, ShouldResemble, model.NewCoordinate(97, 74))
		})

		Convey("Resolve addresses empty levels by omission", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/resolve?province="+url.QueryEscape("서울특별시"), "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Resolve needs a province", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/address/resolve", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(errorKind(rec), ShouldEqual, KindBadRequest)
		})
	})
}

func TestForecastController(t *testing.T) {
	Convey("Given the forecast routes with an accepted credential", t, func() {
		index := newTestIndex()
		service := &fakeWeather{addressIndex: index}
		session := &fakeSession{service: service, status: model.CredentialStatus{State: model.StateReady}}
		e := newTestServer(session, index)

		Convey("A forecast by coordinate keeps record order", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/forecast?nx=60&ny=127", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"forecast":{"하늘상태":"맑음","1시간 기온(°C)":"5"}`)
			So(service.coordinates, ShouldResemble, []model.Coordinate{model.NewCoordinate(60, 127)})
		})

		Convey("A forecast by place goes through the place lookup", func() {
			query := url.Values{"province": {"서울특별시"}, "city": {"종로구"}, "neighborhood": {"청운효자동"}}
			rec := serve(e, http.MethodGet, "/kma-forecast/forecast?"+query.Encode(), "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(service.places, ShouldHaveLength, 1)
		})

		Convey("An hourly forecast by place is resolved by the controller", func() {
			query := url.Values{"province": {"부산광역시"}, "city": {"중구"}, "neighborhood": {"중앙동"}}
			rec := serve(e, http.MethodGet, "/kma-forecast/forecast/hourly?"+query.Encode(), "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(service.coordinates, ShouldResemble, []model.Coordinate{model.NewCoordinate(97, 74)})

			var body struct {
				Hours []struct {
					FcstTime string `json:"fcstTime"`
				} `json:"hours"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
			So(body.Hours, ShouldHaveLength, 1)
			So(body.Hours[0].FcstTime, ShouldEqual, "0600")
		})

		Convey("Bad selectors are rejected", func() {
			for _, target := range []string{
				"/kma-forecast/forecast",
				"/kma-forecast/forecast?nx=60",
				"/kma-forecast/forecast?nx=a&ny=1",
				"/kma-forecast/forecast?nx=-1&ny=1",
				"/kma-forecast/forecast?nx=60&ny=127&province=x",
			} {
				rec := serve(e, http.MethodGet, target, "")
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			}
			So(service.coordinates, ShouldBeEmpty)
		})

		Convey("An unknown place is not found", func() {
			query := url.Values{"province": {"서울특별시"}, "city": {"강남구"}}
			rec := serve(e, http.MethodGet, "/kma-forecast/forecast?"+query.Encode(), "")
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Provider failures are mapped to gateway statuses", func() {
			cases := []struct {
				err    error
				status int
				kind   string
			}{
				{fmt.Errorf("%w: %w", model.ErrFetchFailed, &model.ProviderError{Kind: model.ErrCredentialRejected}), http.StatusUnauthorized, KindCredentialRejected},
				{fmt.Errorf("%w: %w", model.ErrFetchFailed, &model.ProviderError{Kind: model.ErrProviderFault, Code: "03", Message: "NO_DATA"}), http.StatusBadGateway, KindProviderFault},
				{fmt.Errorf("%w: %w", model.ErrFetchFailed, model.ErrTransport), http.StatusGatewayTimeout, KindTransport},
				{fmt.Errorf("%w: %w", model.ErrFetchFailed, &model.ProviderError{Kind: model.ErrMalformedResponse}), http.StatusBadGateway, KindMalformedResponse},
				{errors.New("boom"), http.StatusInternalServerError, KindInternal},
			}
			for _, c := range cases {
				service.err = c.err
				rec := serve(e, http.MethodGet, "/kma-forecast/forecast?nx=60&ny=127", "")
				So(rec.Code, ShouldEqual, c.status)
				So(errorKind(rec), ShouldEqual, c.kind)
			}
		})
	})

	Convey("Given the forecast routes without a credential", t, func() {
		e := newTestServer(&fakeSession{status: model.CredentialStatus{State: model.StateAwaitingCredential}}, newTestIndex())

		Convey("A forecast requires a credential", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/forecast?nx=60&ny=127", "")
			So(rec.Code, ShouldEqual, http.StatusPreconditionRequired)
			So(errorKind(rec), ShouldEqual, KindCredentialRequired)
		})
	})
}

func TestCredentialController(t *testing.T) {
	Convey("Given the credential routes", t, func() {
		session := &fakeSession{status: model.CredentialStatus{State: model.StateAwaitingCredential}}
		e := newTestServer(session, newTestIndex())

		Convey("The state is reported", func() {
			rec := serve(e, http.MethodGet, "/kma-forecast/credential", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"state":"AWAITING_CREDENTIAL","keepLogin":false}`)
		})

		Convey("An accepted key makes the session ready", func() {
			rec := serve(e, http.MethodPut, "/kma-forecast/credential", `{"serviceKey":"good","keepLogin":true}`)
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(strings.TrimSpace(rec.Body.String()), ShouldEqual, `{"state":"READY","keepLogin":true}`)
		})

		Convey("A rejected key is unauthorized", func() {
			rec := serve(e, http.MethodPut, "/kma-forecast/credential", `{"serviceKey":"bad"}`)
			So(rec.Code, ShouldEqual, http.StatusUnauthorized)
			So(errorKind(rec), ShouldEqual, KindCredentialInvalid)
		})

		Convey("A key overtaken by a reset is a conflict", func() {
			rec := serve(e, http.MethodPut, "/kma-forecast/credential", `{"serviceKey":"raced"}`)
			So(rec.Code, ShouldEqual, http.StatusConflict)
			So(errorKind(rec), ShouldEqual, KindCredentialSuperseded)
		})

		Convey("A malformed body is a bad request", func() {
			rec := serve(e, http.MethodPut, "/kma-forecast/credential", `{"serviceKey":`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Delete resets the session", func() {
			session.status = model.CredentialStatus{State: model.StateReady}
			rec := serve(e, http.MethodDelete, "/kma-forecast/credential", "")
			So(rec.Code, ShouldEqual, http.StatusNoContent)
			So(session.status.State, ShouldEqual, model.StateAwaitingCredential)
		})
	})
}
