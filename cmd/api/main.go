package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/messagecloud/internal/api"
	v1 "github.com/Behyna/sms-services/messagecloud/internal/api/v1"
	"github.com/Behyna/sms-services/messagecloud/internal/api/validator"
	"github.com/Behyna/sms-services/messagecloud/internal/config"
	apperrors "github.com/Behyna/sms-services/messagecloud/internal/errors"
	"github.com/Behyna/sms-services/messagecloud/internal/logging"
	"github.com/Behyna/sms-services/messagecloud/internal/metrics"
	"github.com/Behyna/sms-services/messagecloud/internal/service"
	"github.com/Behyna/sms-services/messagecloud/pkg/httpclient"
	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const collectInterval = 15 * time.Second

func main() {
	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			config.Load,
			logging.NewFromConfig,
			newRegistry,
			newMetrics,
			newRecorder,
			newTransport,
			newApp,
			newValidate,
			validator.NewXValidator,
			service.NewSendService,
			v1.NewHandler,
		),
		fx.Invoke(startCollector, startServer),
	).Run()
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func newValidate() *playground.Validate {
	return playground.New()
}

func newMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func newRecorder(m *metrics.Metrics) messagecloud.Recorder {
	return m
}

func newTransport(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Gateway.Timeout)
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler:          apperrors.ErrorHandler(),
		DisableStartupMessage: true,
	})
}

func startCollector(m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	collector := metrics.NewSystemCollector(m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(collectInterval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func startServer(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, reg *prometheus.Registry,
	cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, reg, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("HTTP server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer logger.Sync()
			return app.ShutdownWithContext(ctx)
		},
	})
}
