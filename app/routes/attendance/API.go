package attendance

import (
	"time"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAttendanceByChildAPI(c *fiber.Ctx) error {
	child := loadOwnedChild(c)
	if child == nil {
		return nil
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	attendances, err := database.GetAttendanceByChild(config.GetDB(), child.ID, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendances": attendances,
		"count":       len(attendances),
	})
}

func GetAttendanceByChildAndDateAPI(c *fiber.Ctx) error {
	child := loadOwnedChild(c)
	if child == nil {
		return nil
	}

	date, err := time.Parse("2006-01-02", c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date. Use YYYY-MM-DD"})
	}

	attendances, err := database.GetAttendanceByChildAndDate(config.GetDB(), child.ID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendances": attendances,
		"count":       len(attendances),
	})
}

func CreateAttendanceAPI(c *fiber.Ctx) error {
	type CreateAttendanceRequest struct {
		ChildSiteID      string `json:"child_site_id" validate:"required,uuid"`
		ChildCaseCycleID string `json:"child_case_cycle_id" validate:"required,uuid"`
		CheckIn          string `json:"check_in" validate:"required"`
		CheckOut         string `json:"check_out" validate:"required"`
	}

	var req CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid check_in. Use RFC3339"})
	}
	checkOut, err := time.Parse(time.RFC3339, req.CheckOut)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid check_out. Use RFC3339"})
	}
	if !checkIn.Before(checkOut) {
		return c.Status(400).JSON(fiber.Map{"error": "check_in must be before check_out"})
	}

	attendance := &models.Attendance{
		ChildSiteID:      req.ChildSiteID,
		ChildCaseCycleID: req.ChildCaseCycleID,
		StartsOn:         time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, checkIn.Location()),
		CheckIn:          checkIn,
		CheckOut:         checkOut,
	}

	attendance, err = database.FindOrCreateAttendance(config.GetDB(), attendance)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create attendance"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Attendance created successfully",
		"attendance": attendance,
	})
}

// loadOwnedChild fetches the child in the :childId param and checks it belongs
// to the authenticated user. On failure the response is already written and
// nil is returned.
func loadOwnedChild(c *fiber.Ctx) *models.Child {
	childID := c.Params("childId")
	userID := c.Locals("user_id").(string)

	child, err := database.GetChildByID(config.GetDB(), childID)
	if err != nil {
		c.Status(404).JSON(fiber.Map{"error": "Child not found"})
		return nil
	}
	if child.UserID != userID {
		c.Status(403).JSON(fiber.Map{"error": "You do not own this child record"})
		return nil
	}
	return child
}
