package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/mapper"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/parser"
)

const (
	validKey = "valid-key"

	okBody = `{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},"body":{"items":{"item":[` +
		`{"category":"TMP","fcstDate":"20240101","fcstTime":"0600","fcstValue":"5"},` +
		`{"category":"SKY","fcstDate":"20240101","fcstTime":"0600","fcstValue":"1"},` +
		`{"category":"TMP","fcstDate":"20240101","fcstTime":"0700","fcstValue":"4"}]}}}}`
	rejectedBody = `<OpenAPI_ServiceResponse><cmmMsgHeader><returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg></cmmMsgHeader></OpenAPI_ServiceResponse>`
)

// fakeGateway serves okBody to validKey and an unregistered key fault to anything else.
type fakeGateway struct {
	queries     []model.ForecastQuery
	credentials []string
	err         error
}

func (g *fakeGateway) FetchForecast(_ context.Context, credential string, query model.ForecastQuery) (string, error) {
	g.queries = append(g.queries, query)
	g.credentials = append(g.credentials, credential)
	if g.err != nil {
		return "", g.err
	}
	if credential != validKey {
		return rejectedBody, nil
	}
	return okBody, nil
}

func newTestUseCase(gateway *fakeGateway, credential string) UseCase {
	index := address.Build([][]string{
		{"구분", "코드", "1단계", "2단계", "3단계", "격자 X", "격자 Y"},
		{"kor", "0", "서울특별시", "종로구", "청운효자동", "60", "127"},
	})
	policy, _ := NewBaseTimePolicy(BaseTimePolicyFixed, "")
	clock := func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, kst) }

	return NewWeatherUseCase(credential, gateway, parser.NewResponseParser(mapper.NewFcstCodeMapper()),
		index, policy, WithClock(clock))
}

func TestGetForecast(t *testing.T) {
	Convey("Given a weather use case bound to a valid key", t, func() {
		gateway := &fakeGateway{}
		useCase := newTestUseCase(gateway, validKey)
		ctx := context.Background()

		Convey("GetForecast folds the items of the grid point", func() {
			record, err := useCase.GetForecast(ctx, model.NewCoordinate(98, 76))
			So(err, ShouldBeNil)
			So(record.Labels(), ShouldResemble, []string{mapper.LabelFcstDate, mapper.LabelFcstTime, "1시간 기온(°C)", "하늘상태"})

			value, _ := record.Get("1시간 기온(°C)")
			So(value, ShouldEqual, "4")
			value, _ = record.Get(mapper.LabelFcstTime)
			So(value, ShouldEqual, "0600")

			So(gateway.queries, ShouldResemble, []model.ForecastQuery{{
				BaseDate:   "20240101",
				BaseTime:   "0500",
				Coordinate: model.NewCoordinate(98, 76),
			}})
		})

		Convey("GetForecastByPlace resolves the place first", func() {
			_, err := useCase.GetForecastByPlace(ctx, "서울특별시", "종로구", "청운효자동")
			So(err, ShouldBeNil)
			So(gateway.queries[0].Coordinate, ShouldResemble, model.NewCoordinate(60, 127))
		})

		Convey("An unknown place fails without calling the provider", func() {
			_, err := useCase.GetForecastByPlace(ctx, "서울특별시", "종로구", "없는동")
			So(errors.Is(err, model.ErrPlaceNotFound), ShouldBeTrue)
			So(errors.Is(err, model.ErrFetchFailed), ShouldBeFalse)
			So(gateway.queries, ShouldBeEmpty)
		})

		Convey("GetHourlyForecast returns one record per forecast hour", func() {
			hours, err := useCase.GetHourlyForecast(ctx, model.NewCoordinate(60, 127))
			So(err, ShouldBeNil)
			So(hours, ShouldHaveLength, 2)
			So(hours[0].Record.Len(), ShouldEqual, 2)
			So(hours[1].FcstTime, ShouldEqual, "0700")
		})
	})

	Convey("Given a weather use case bound to an unregistered key", t, func() {
		useCase := newTestUseCase(&fakeGateway{}, "unknown")

		Convey("The failure carries both the fetch failure and its cause", func() {
			_, err := useCase.GetForecast(context.Background(), model.NewCoordinate(60, 127))
			So(errors.Is(err, model.ErrFetchFailed), ShouldBeTrue)
			So(errors.Is(err, model.ErrCredentialRejected), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable provider", t, func() {
		useCase := newTestUseCase(&fakeGateway{err: model.ErrTransport}, validKey)

		Convey("The transport error is wrapped as a fetch failure", func() {
			_, err := useCase.GetForecast(context.Background(), model.NewCoordinate(60, 127))
			So(errors.Is(err, model.ErrFetchFailed), ShouldBeTrue)
			So(errors.Is(err, model.ErrTransport), ShouldBeTrue)
		})
	})
}

func TestProbeCredential(t *testing.T) {
	Convey("Given an unbound weather use case", t, func() {
		gateway := &fakeGateway{}
		useCase := newTestUseCase(gateway, "")
		ctx := context.Background()

		Convey("A key served by the provider is valid", func() {
			So(useCase.ProbeCredential(ctx, validKey), ShouldBeTrue)
			So(gateway.queries[0].Coordinate, ShouldResemble, ProbeCoordinate)
			So(gateway.credentials, ShouldResemble, []string{validKey})
		})

		Convey("A rejected key is invalid", func() {
			So(useCase.ProbeCredential(ctx, "unknown"), ShouldBeFalse)
		})

		Convey("An empty key is still sent to the provider", func() {
			So(useCase.ProbeCredential(ctx, ""), ShouldBeFalse)
			So(gateway.credentials, ShouldResemble, []string{""})
		})

		Convey("A transport failure is invalid", func() {
			gateway.err = model.ErrTransport
			So(useCase.ProbeCredential(ctx, validKey), ShouldBeFalse)
		})

		Convey("WithCredential binds another key and leaves the receiver unbound", func() {
			bound := useCase.WithCredential(validKey)
			_, err := bound.GetForecast(ctx, ProbeCoordinate)
			So(err, ShouldBeNil)

			_, err = useCase.GetForecast(ctx, ProbeCoordinate)
			So(errors.Is(err, model.ErrCredentialRejected), ShouldBeTrue)
		})

		Convey("CheckCredential tells a rejected key from a transport failure", func() {
			So(useCase.WithCredential(validKey).CheckCredential(ctx), ShouldBeNil)

			err := useCase.WithCredential("unknown").CheckCredential(ctx)
			So(errors.Is(err, model.ErrCredentialRejected), ShouldBeTrue)

			gateway.err = model.ErrTransport
			err = useCase.WithCredential(validKey).CheckCredential(ctx)
			So(errors.Is(err, model.ErrTransport), ShouldBeTrue)
			So(errors.Is(err, model.ErrCredentialRejected), ShouldBeFalse)
			So(gateway.queries[len(gateway.queries)-1].Coordinate, ShouldResemble, ProbeCoordinate)
		})
	})
}
