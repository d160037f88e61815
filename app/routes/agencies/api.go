package agencies

import (
	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetAgenciesAPI(c *fiber.Ctx) error {
	agencies, err := database.GetAgencies(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch agencies"})
	}

	return c.JSON(fiber.Map{
		"agencies": agencies,
		"count":    len(agencies),
	})
}

func CreateAgencyAPI(c *fiber.Ctx) error {
	type CreateAgencyRequest struct {
		Name      string `json:"name" validate:"required"`
		StateName string `json:"state_name" validate:"required"`
		StateAbbr string `json:"state_abbr" validate:"required,len=2"`
	}

	var req CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()

	state, err := database.FindOrCreateState(db, req.StateName, req.StateAbbr)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve state"})
	}

	agency := &models.Agency{
		StateID:  state.ID,
		Name:     req.Name,
		IsActive: true,
	}

	agency, err = database.FindOrCreateAgency(db, agency)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create agency"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Agency created successfully",
		"agency":  agency,
	})
}
