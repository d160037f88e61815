package payments

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Post("/", CreatePaymentAPI)
	api.Get("/site/:siteId", GetPaymentsBySiteAPI)
}
