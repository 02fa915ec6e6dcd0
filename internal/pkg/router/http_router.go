package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/internal/pkg/middleware"
	"github.com/waveforge/waveforge/internal/pkg/oauth"
	"github.com/waveforge/waveforge/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
