package main

import (
	"context"

	"github.com/Tyler2517/creditkeeper/internal/api"
	"github.com/Tyler2517/creditkeeper/internal/api/middleware"
	v1 "github.com/Tyler2517/creditkeeper/internal/api/v1"
	"github.com/Tyler2517/creditkeeper/internal/api/validator"
	"github.com/Tyler2517/creditkeeper/internal/config"
	"github.com/Tyler2517/creditkeeper/internal/metrics"
	"github.com/Tyler2517/creditkeeper/internal/service"
	"github.com/Tyler2517/creditkeeper/internal/session"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/Tyler2517/creditkeeper/pkg/httpclient"
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			playgroundvalidator.New,
			validator.NewXValidator,
			newHTTPClient,
			newBackendClient,
			newDirectory,
			session.NewManager,
			newFiber,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Backend.Timeout)
}

func newBackendClient(cfg *config.Config, client httpclient.HTTPClient) backend.Client {
	return backend.NewClient(cfg.Backend, client)
}

func newDirectory(cfg *config.Config, backendClient backend.Client, logger *zap.Logger) service.DirectoryService {
	return service.NewDirectoryService(backendClient, cfg.UI.PageSize, logger)
}

func newFiber() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, manager *session.Manager,
	m *metrics.Metrics, logger *zap.Logger, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, middleware.Session(manager), metrics.HTTPMetricsMiddleware(m, logger))

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
