package api

import (
	v1 "github.com/Tyler2517/creditkeeper/internal/api/v1"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, sessionMW fiber.Handler, metricsMW fiber.Handler) {
	app.Use(metricsMW)

	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", sessionMW)

	api.Get("/customers", handler.ListCustomers)
	api.Post("/customers", handler.AddCustomer)
	api.Get("/customers/:id", handler.CustomerDetail)

	api.Post("/customers/:id/edit", handler.BeginEdit)
	api.Delete("/customers/:id/edit", handler.CancelEdit)
	api.Put("/customers/:id/draft", handler.EditField)
	api.Post("/customers/:id/save", handler.RequestSave)
	api.Post("/customers/:id/justification", handler.ConfirmJustification)
	api.Delete("/customers/:id/justification", handler.CancelJustification)

	api.Post("/analytics/selection/:id", handler.ToggleSelection)
	api.Get("/analytics/summary", handler.Summary)
	api.Get("/analytics/export", handler.ExportSelection)
}
