package children

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupChildrenRoutes(app *fiber.App) {
	api := app.Group("/api/children")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetChildrenAPI)
	api.Post("/", CreateChildAPI)
	api.Get("/:id", GetChildAPI)
	api.Put("/:id", UpdateChildAPI)
	api.Delete("/:id", DeleteChildAPI)
}
