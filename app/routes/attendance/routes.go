package attendance

import (
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/child/:childId", GetAttendanceByChildAPI)
	api.Get("/child/:childId/:date", GetAttendanceByChildAndDateAPI)
	api.Post("/", CreateAttendanceAPI)
}
