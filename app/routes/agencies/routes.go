package agencies

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAgenciesRoutes(app *fiber.App) {
	api := app.Group("/api/agencies")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAgenciesAPI)
	api.Post("/", CreateAgencyAPI)
}
