package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

// InstallRouter registers the rate-limited /api prefix. The versioned alias
// keeps old storefront clients working while they migrate to the root paths.
func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"name":    "waveforge",
			"version": "v1",
		})
	})

	v1 := api.Group("/v1")
	v1.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
