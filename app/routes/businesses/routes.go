package businesses

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBusinessesRoutes(app *fiber.App) {
	api := app.Group("/api/businesses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetBusinessesAPI)
	api.Post("/", CreateBusinessAPI)
	api.Get("/:id", GetBusinessAPI)
	api.Get("/:id/sites", GetSitesAPI)
	api.Post("/:id/sites", CreateSiteAPI)
}
