package casecycles

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCaseCyclesRoutes(app *fiber.App) {
	api := app.Group("/api/case-cycles")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCaseCyclesAPI)
	api.Post("/", CreateCaseCycleAPI)
	api.Get("/:id/children", GetChildCaseCyclesAPI)
	api.Post("/:id/children", CreateChildCaseCycleAPI)
}
