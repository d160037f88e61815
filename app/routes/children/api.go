package children

import (
	"database/sql"
	"time"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetChildrenAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	limit := c.QueryInt("limit", 25)
	offset := c.QueryInt("offset", 0)

	children, err := database.GetChildrenByUser(config.GetDB(), userID, limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch children"})
	}

	return c.JSON(fiber.Map{
		"children": children,
		"count":    len(children),
	})
}

func GetChildAPI(c *fiber.Ctx) error {
	childID := c.Params("id")

	child, err := database.GetChildByID(config.GetDB(), childID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Child not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch child"})
	}

	if child.UserID != c.Locals("user_id").(string) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	return c.JSON(fiber.Map{"child": child})
}

func CreateChildAPI(c *fiber.Ctx) error {
	type CreateChildRequest struct {
		FullName    string `json:"full_name" validate:"required"`
		DateOfBirth string `json:"date_of_birth" validate:"required"`
	}

	var req CreateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}
	if dob.After(time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": "Date of birth cannot be in the future"})
	}

	child := &models.Child{
		UserID:      c.Locals("user_id").(string),
		FullName:    req.FullName,
		DateOfBirth: dob,
	}

	child, err = database.FindOrCreateChild(config.GetDB(), child)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create child"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Child created successfully",
		"child":   child,
	})
}

func UpdateChildAPI(c *fiber.Ctx) error {
	type UpdateChildRequest struct {
		FullName    string `json:"full_name" validate:"required"`
		DateOfBirth string `json:"date_of_birth" validate:"required"`
	}

	childID := c.Params("id")

	var req UpdateChildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	child, err := database.GetChildByID(config.GetDB(), childID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Child not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch child"})
	}
	if child.UserID != c.Locals("user_id").(string) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	if err := database.UpdateChild(config.GetDB(), childID, req.FullName, dob); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update child"})
	}

	return c.JSON(fiber.Map{"message": "Child updated successfully"})
}

func DeleteChildAPI(c *fiber.Ctx) error {
	childID := c.Params("id")

	child, err := database.GetChildByID(config.GetDB(), childID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Child not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch child"})
	}
	if child.UserID != c.Locals("user_id").(string) {
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}

	if err := database.DeleteChild(config.GetDB(), childID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete child"})
	}

	return c.JSON(fiber.Map{"message": "Child deleted successfully"})
}
