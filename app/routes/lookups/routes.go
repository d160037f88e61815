package lookups

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLookupsRoutes(app *fiber.App) {
	api := app.Group("/api/lookups")
	api.Use(auth.AuthMiddleware)

	api.Get("/states", GetStatesAPI)
	api.Get("/states/:abbr/counties", GetCountiesAPI)
	api.Get("/subsidy-rules", GetSubsidyRulesAPI)
}
