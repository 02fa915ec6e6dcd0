package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/controllers"
	"github.com/waveforge/waveforge/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// catalog
	app.Get("/products", controllers.HandleListProducts)
	app.Get("/products/:slug", controllers.HandleGetProduct)
	app.Get("/bundles", controllers.HandleListBundles)
	app.Get("/bundles/:slug", controllers.HandleGetBundle)

	// checkout support
	app.Post("/promo-code/validate", controllers.HandleValidatePromoCode)
	app.Post("/contact", controllers.HandleContact)

	// local auth
	app.Post("/auth/register", controllers.HandleRegister)
	app.Get("/auth/activate", controllers.HandleActivate)
	app.Post("/auth/login", controllers.HandleLogin)
	app.Post("/auth/logout", controllers.HandleLogout)

	// oauth (google, discord)
	app.Get("/auth/:provider", controllers.HandleOAuthBegin)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)

	// account area
	account := app.Group("", middleware.RequireAuth)
	account.Get("/me", controllers.HandleMe)
	account.Get("/my-products", controllers.HandleMyProducts)
	account.Get("/orders", controllers.HandleListOrders)
	account.Get("/orders/count", controllers.HandleCountOrders)
	account.Get("/subscriptions/bundles", controllers.HandleListSubscribedBundles)
	account.Post("/subscriptions/:id/reactivate", controllers.HandleReactivateSubscription)
	account.Post("/redeem", controllers.HandleRedeemCode)

	// token-authorized, no session required so download managers work
	app.Get("/download/:id", controllers.HandleDownloadProduct)
}
