package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/waveforge/waveforge/app/controllers"
	"github.com/waveforge/waveforge/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.RequireAuth, middleware.RequireAdmin)

	// products
	admin.Get("/products", controllers.HandleAdminListProducts)
	admin.Post("/products", controllers.HandleAdminCreateProduct)
	admin.Get("/products/:id", controllers.HandleAdminGetProduct)
	admin.Put("/products/:id", controllers.HandleAdminUpdateProduct)
	admin.Delete("/products/:id", controllers.HandleAdminArchiveProduct)
	admin.Post("/products/:id/artwork", controllers.HandleAdminUploadArtwork)
	admin.Post("/products/:id/installer", controllers.HandleAdminUploadInstaller)

	// product relationships
	admin.Get("/products/:id/relationships", controllers.HandleAdminListRelationships)
	admin.Post("/products/:id/relationships", controllers.HandleAdminCreateRelationship)
	admin.Put("/relationships/:relID", controllers.HandleAdminUpdateRelationship)
	admin.Delete("/relationships/:relID", controllers.HandleAdminDeleteRelationship)

	// audio demos
	admin.Get("/products/:id/demos", controllers.HandleAdminListAudioDemos)
	admin.Post("/products/:id/demos", controllers.HandleAdminCreateAudioDemo)
	admin.Put("/demos/:demoID", controllers.HandleAdminUpdateAudioDemo)
	admin.Delete("/demos/:demoID", controllers.HandleAdminDeleteAudioDemo)

	// bundles, tiers, composition
	admin.Get("/bundles", controllers.HandleAdminListBundles)
	admin.Post("/bundles", controllers.HandleAdminCreateBundle)
	admin.Get("/bundles/:id", controllers.HandleAdminGetBundle)
	admin.Put("/bundles/:id", controllers.HandleAdminUpdateBundle)
	admin.Delete("/bundles/:id", controllers.HandleAdminArchiveBundle)
	admin.Get("/bundles/:id/tiers", controllers.HandleAdminListTiers)
	admin.Post("/bundles/:id/tiers", controllers.HandleAdminCreateTier)
	admin.Put("/tiers/:tierID", controllers.HandleAdminUpdateTier)
	admin.Delete("/tiers/:tierID", controllers.HandleAdminDeleteTier)
	admin.Post("/bundles/:id/products", controllers.HandleAdminAddBundleProduct)
	admin.Delete("/bundles/:id/products/:productID", controllers.HandleAdminRemoveBundleProduct)
	admin.Put("/bundle-products/:linkID", controllers.HandleAdminReorderBundleProduct)

	// resellers and redemption codes
	admin.Get("/resellers", controllers.HandleAdminListResellers)
	admin.Post("/resellers", controllers.HandleAdminCreateReseller)
	admin.Put("/resellers/:id", controllers.HandleAdminUpdateReseller)
	admin.Delete("/resellers/:id", controllers.HandleAdminDeleteReseller)
	admin.Post("/resellers/:id/codes", controllers.HandleAdminGenerateCodes)
	admin.Get("/resellers/:id/codes", controllers.HandleAdminListCodes)
	admin.Get("/resellers/:id/codes.csv", controllers.HandleAdminExportCodesCSV)

	// users and grants
	admin.Get("/users", controllers.HandleAdminSearchUsers)
	admin.Get("/users/:id/grants", controllers.HandleAdminListUserGrants)
	admin.Post("/users/:id/grants", controllers.HandleAdminCreateGrant)
	admin.Delete("/grants/:grantID", controllers.HandleAdminRevokeGrant)

	// storage
	admin.Get("/storage/buckets", controllers.HandleAdminListBuckets)
	admin.Post("/storage/buckets", controllers.HandleAdminCreateBucket)
	admin.Get("/storage/objects", controllers.HandleAdminListObjects)

	// dashboard and queue
	admin.Get("/stats", controllers.HandleAdminStats)
	admin.Get("/queue/keys", controllers.HandleAdminListQueueKeys)
	admin.Delete("/queue/keys", controllers.HandleAdminDeleteQueueKey)
}
