package httpapi

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

// Controller is the part of weather.Controller the routes drive.
type Controller interface {
	SubmitQuery(ctx context.Context, raw string) bool
	ReQuery(ctx context.Context, city string)
	Refresh(ctx context.Context) bool
	ToggleDisplayMode() weather.DisplayMode
	Snapshot() weather.State
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Lookup failures
// are part of the returned view, never an HTTP error status.
func RegisterRoutes(app *fiber.App, ctrl Controller) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/state", func(c *fiber.Ctx) error {
		return renderView(c, ctrl)
	})

	v1.Post("/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		// Blank queries are ignored and simply return the current view.
		ctrl.SubmitQuery(c.UserContext(), req.Query)
		return renderView(c, ctrl)
	})

	v1.Post("/history/requery", func(c *fiber.Ctx) error {
		var req requeryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		ctrl.ReQuery(c.UserContext(), req.City)
		return renderView(c, ctrl)
	})

	v1.Post("/refresh", func(c *fiber.Ctx) error {
		ctrl.Refresh(c.UserContext())
		return renderView(c, ctrl)
	})

	v1.Get("/theme", func(c *fiber.Ctx) error {
		return c.JSON(themeResponse{Theme: ctrl.Snapshot().Mode})
	})

	v1.Post("/theme/toggle", func(c *fiber.Ctx) error {
		return c.JSON(themeResponse{Theme: ctrl.ToggleDisplayMode()})
	})
}

func renderView(c *fiber.Ctx, ctrl Controller) error {
	return c.JSON(weather.BuildView(ctrl.Snapshot()))
}

// searchRequest is the body of a free-text search.
type searchRequest struct {
	Query string `json:"query"`
}

// requeryRequest selects a city from history (or any known-clean name).
type requeryRequest struct {
	City string `json:"city" validate:"required"`
}

type themeResponse struct {
	Theme weather.DisplayMode `json:"theme"`
}
