package lookups

import (
	"pieforproviders/app/config"
	"pieforproviders/app/database"

	"github.com/gofiber/fiber/v2"
)

func GetStatesAPI(c *fiber.Ctx) error {
	states, err := database.GetStates(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch states"})
	}

	return c.JSON(fiber.Map{
		"states": states,
		"count":  len(states),
	})
}

func GetCountiesAPI(c *fiber.Ctx) error {
	abbr := c.Params("abbr")
	if abbr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "State abbreviation is required"})
	}

	counties, err := database.GetCountiesByStateAbbr(config.GetDB(), abbr)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch counties"})
	}

	return c.JSON(fiber.Map{
		"counties": counties,
		"count":    len(counties),
	})
}

func GetSubsidyRulesAPI(c *fiber.Ctx) error {
	rules, err := database.GetSubsidyRules(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subsidy rules"})
	}

	return c.JSON(fiber.Map{
		"subsidy_rules": rules,
		"count":         len(rules),
	})
}
