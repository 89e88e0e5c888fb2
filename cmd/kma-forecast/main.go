package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"kma-forecast/configs"
	"kma-forecast/docs"
	"kma-forecast/internal/application/controller"
	"kma-forecast/internal/application/middleware"
	"kma-forecast/internal/application/schedule"
	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/gateway/api"
	"kma-forecast/internal/domain/gateway/store"
	"kma-forecast/internal/domain/mapper"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/parser"
	"kma-forecast/internal/domain/usecase/credential"
	"kma-forecast/internal/domain/usecase/health"
	"kma-forecast/internal/domain/usecase/weather"
	httpclient "kma-forecast/pkg/http"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
	"kma-forecast/pkg/redis"
	"kma-forecast/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

// @title KMA Forecast API
// @version 1.0
// @description Village forecasts of the Korea Meteorological Administration by place or grid point.
// @BasePath /kma-forecast
func main() {
	defer log.Sync()

	if err := resource.Init(resource.PathFromEnv()); err != nil {
		log.Fatalf("Failed to load properties: %v", err)
	}
	if path := os.Getenv("MESSAGES_FILE_PATH"); path != "" {
		if err := msg.Init(path); err != nil {
			log.Fatalf("Failed to load messages: %v", err)
		}
	}
	log.SetLevel(resource.GetString("app.log.level"))

	appName := resource.GetString("app.name")
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	addressIndex, err := address.LoadFile(resource.GetString("address.source-path"))
	if err != nil {
		log.Fatal("Failed to load address table", zap.Error(err))
	}

	credentialStore, closeStore, err := newCredentialStore()
	if err != nil {
		log.Fatal("Failed to init credential store", zap.Error(err))
	}
	defer closeStore()

	// Init Gateway
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("weather.api.base-url"),
		resource.GetInt("weather.api.num-of-rows"),
		httpclient.ClientOptions{
			ConnectionTimeout: resource.GetDuration("weather.api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("weather.api.read-timeout"),
			Logger:            httpclient.NewZapHTTPLogger("serviceKey"),
		})
	weatherGateway = api.NewRateLimitedWeatherGateway(weatherGateway, resource.GetFloat64("weather.api.rate-limit"), 1)

	// Init UseCase
	baseTimePolicy, err := weather.NewBaseTimePolicy(
		resource.GetString("weather.base-time.policy"),
		resource.GetString("weather.base-time.fixed"))
	if err != nil {
		log.Fatal("Invalid base time configuration", zap.Error(err))
	}

	weatherUseCase := weather.NewWeatherUseCase("", weatherGateway,
		parser.NewResponseParser(mapper.NewFcstCodeMapper()),
		addressIndex, baseTimePolicy,
		weather.WithProbeCoordinate(model.NewCoordinate(
			resource.GetInt("weather.probe.nx"),
			resource.GetInt("weather.probe.ny"))))

	fallbackKey := resource.GetString("credential.service-key")
	if fallbackKey == "" {
		fallbackKey = configs.Env.ServiceKey
	}
	session := credential.NewSession(credentialStore, credential.NewProbe(weatherUseCase), fallbackKey)
	if err := session.Start(ctx); err != nil {
		log.Error("Failed to restore credential", zap.Error(err))
	}

	healthUseCase := health.NewHealthUseCase(credentialStore, addressIndex, session)

	// Init Controller
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	group := e.Group(resource.GetString("app.server.context-path"))

	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewAddressController(group, addressIndex).InitAddressRoutes()
	controller.NewForecastController(group, session, addressIndex).InitForecastRoutes()
	controller.NewCredentialController(group, session).InitCredentialRoutes()
	docs.SwaggerInfo.BasePath = resource.GetString("app.server.context-path")
	controller.NewSwaggerController(group).InitSwaggerRoutes()

	// Init Schedule
	credentialScheduler := schedule.NewCredentialScheduler(ctx, session, resource.GetString("credential.revalidate-cron"))
	if err := credentialScheduler.InitCredentialScheduleTasks(); err != nil {
		log.Fatal("Failed to start credential scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	credentialScheduler.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to stop server", zap.Error(err))
	}
	if err := session.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to clear credential on shutdown", zap.Error(err))
	}
}

// newCredentialStore builds the store selected by credential.store and a function releasing it.
func newCredentialStore() (store.CredentialStore, func(), error) {
	switch backend := resource.GetString("credential.store"); backend {
	case "redis":
		config := redis.NewRedisConfig().
			WithHost(resource.GetString("credential.redis.host")).
			WithPort(resource.GetInt("credential.redis.port")).
			WithPassword(resource.GetString("credential.redis.password")).
			WithDatabase(resource.GetInt("credential.redis.database"))

		client, err := redis.NewClient(config)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warn("Failed to close redis client", zap.Error(err))
			}
		}
		return store.NewRedisCredentialStore(client, resource.GetString("credential.redis.key-prefix")), closeClient, nil
	case "file", "":
		fileStore, err := store.NewFileCredentialStore(resource.GetString("credential.file.path"))
		if err != nil {
			return nil, nil, err
		}
		return fileStore, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential store %q", backend)
	}
}
