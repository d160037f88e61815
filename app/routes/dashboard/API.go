package dashboard

import (
	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"
	"pieforproviders/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, GetDashboard)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
	api.Get("/users", GetDashboardUsersAPI)
}

// GetDashboard handles the dashboard page
func GetDashboard(c *fiber.Ctx) error {
	// Get user from context (set by auth middleware)
	user := c.Locals("user").(*models.User)

	return c.Render("dashboard/index", fiber.Map{
		"Title":        "Dashboard",
		"CurrentPage":  "dashboard",
		"FullName":     user.FullName,
		"GreetingName": user.GreetingName,
		"Email":        user.Email,
		"user":         user,
	})
}

// GetDashboardStatsAPI returns dashboard statistics as JSON
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetDashboardUsersAPI returns the user listing shown on the dashboard
func GetDashboardUsersAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 25)
	offset := c.QueryInt("offset", 0)

	users, err := database.GetAllUsers(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}
