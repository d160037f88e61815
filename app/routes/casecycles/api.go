package casecycles

import (
	"time"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetCaseCyclesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	cycles, err := database.GetCaseCyclesByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch case cycles"})
	}

	return c.JSON(fiber.Map{
		"case_cycles": cycles,
		"count":       len(cycles),
	})
}

func CreateCaseCycleAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type CreateCaseCycleRequest struct {
		Status         string `json:"status" validate:"required,oneof=pending submitted approved denied expired"`
		CopayCents     int64  `json:"copay_cents" validate:"gte=0"`
		CopayFrequency string `json:"copay_frequency" validate:"required,oneof=daily weekly monthly"`
		EffectiveOn    string `json:"effective_on" validate:"required"`
		ExpiresOn      string `json:"expires_on" validate:"required"`
		SubmittedOn    string `json:"submitted_on" validate:"required"`
		NotifiedOn     string `json:"notified_on"`
	}

	var req CreateCaseCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	effectiveOn, err := time.Parse("2006-01-02", req.EffectiveOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid effective_on date. Use YYYY-MM-DD"})
	}
	expiresOn, err := time.Parse("2006-01-02", req.ExpiresOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expires_on date. Use YYYY-MM-DD"})
	}
	submittedOn, err := time.Parse("2006-01-02", req.SubmittedOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid submitted_on date. Use YYYY-MM-DD"})
	}
	if expiresOn.Before(effectiveOn) {
		return c.Status(400).JSON(fiber.Map{"error": "expires_on must not be before effective_on"})
	}

	var notifiedOn *time.Time
	if req.NotifiedOn != "" {
		parsed, err := time.Parse("2006-01-02", req.NotifiedOn)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid notified_on date. Use YYYY-MM-DD"})
		}
		notifiedOn = &parsed
	}

	cycle := &models.CaseCycle{
		UserID:         userID,
		Status:         models.CaseCycleStatus(req.Status),
		CopayCents:     req.CopayCents,
		CopayFrequency: models.CopayFrequency(req.CopayFrequency),
		EffectiveOn:    effectiveOn,
		ExpiresOn:      expiresOn,
		SubmittedOn:    submittedOn,
		NotifiedOn:     notifiedOn,
	}

	cycle, err = database.FindOrCreateCaseCycle(config.GetDB(), cycle)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create case cycle"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Case cycle created successfully",
		"case_cycle": cycle,
	})
}

func GetChildCaseCyclesAPI(c *fiber.Ctx) error {
	cycle := loadOwnedCaseCycle(c)
	if cycle == nil {
		return nil
	}

	allowances, err := database.GetChildCaseCyclesByCaseCycle(config.GetDB(), cycle.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch child case cycles"})
	}

	return c.JSON(fiber.Map{
		"child_case_cycles": allowances,
		"count":             len(allowances),
	})
}

func CreateChildCaseCycleAPI(c *fiber.Ctx) error {
	cycle := loadOwnedCaseCycle(c)
	if cycle == nil {
		return nil
	}

	type CreateChildCaseCycleRequest struct {
		ChildID         string `json:"child_id" validate:"required,uuid"`
		SubsidyRuleID   string `json:"subsidy_rule_id" validate:"required,uuid"`
		PartDaysAllowed int    `json:"part_days_allowed" validate:"gt=0"`
		FullDaysAllowed int    `json:"full_days_allowed" validate:"gt=0"`
	}

	var req CreateChildCaseCycleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Locals("user_id").(string)
	child, err := database.GetChildByID(config.GetDB(), req.ChildID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Child not found"})
	}
	if child.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "You do not own this child record"})
	}

	ccc := &models.ChildCaseCycle{
		ChildID:         req.ChildID,
		CaseCycleID:     cycle.ID,
		SubsidyRuleID:   req.SubsidyRuleID,
		PartDaysAllowed: req.PartDaysAllowed,
		FullDaysAllowed: req.FullDaysAllowed,
	}

	ccc, err = database.FindOrCreateChildCaseCycle(config.GetDB(), ccc)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create child case cycle"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":          "Child case cycle created successfully",
		"child_case_cycle": ccc,
	})
}

// loadOwnedCaseCycle fetches the cycle in the :id param and checks it belongs
// to the authenticated user. On failure the response is already written and
// nil is returned.
func loadOwnedCaseCycle(c *fiber.Ctx) *models.CaseCycle {
	cycleID := c.Params("id")
	userID := c.Locals("user_id").(string)

	cycles, err := database.GetCaseCyclesByUser(config.GetDB(), userID)
	if err != nil {
		c.Status(500).JSON(fiber.Map{"error": "Failed to fetch case cycles"})
		return nil
	}
	for _, cycle := range cycles {
		if cycle.ID == cycleID {
			return cycle
		}
	}
	c.Status(404).JSON(fiber.Map{"error": "Case cycle not found"})
	return nil
}
