package api

import (
	v1 "github.com/Behyna/sms-services/messagecloud/internal/api/v1"
	"github.com/Behyna/sms-services/messagecloud/internal/api/v1/middleware"
	"github.com/Behyna/sms-services/messagecloud/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	serviceName = "messagecloud"
	prefixV1    = "/api/v1/"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer,
	logger *zap.Logger) {
	app.Use(requestid.New())
	app.Use(middleware.HealthCheckMiddleware(serviceName))
	app.Use(middleware.HTTPMetricsMiddleware(m, logger))

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Post(prefixV1+"messages", handler.SendMessage)
}
