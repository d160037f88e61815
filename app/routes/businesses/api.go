package businesses

import (
	"database/sql"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetBusinessesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	businesses, err := database.GetBusinessesByUser(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch businesses"})
	}

	return c.JSON(fiber.Map{
		"businesses": businesses,
		"count":      len(businesses),
	})
}

func GetBusinessAPI(c *fiber.Ctx) error {
	business := loadOwnedBusiness(c)
	if business == nil {
		return nil
	}
	return c.JSON(fiber.Map{"business": business})
}

func CreateBusinessAPI(c *fiber.Ctx) error {
	type CreateBusinessRequest struct {
		Name        string `json:"name" validate:"required"`
		LicenseType string `json:"license_type" validate:"required,oneof=licensed_center licensed_family_home licensed_group_home license_exempt_home license_exempt_center"`
	}

	var req CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	business := &models.Business{
		UserID:      c.Locals("user_id").(string),
		Name:        req.Name,
		LicenseType: models.LicenseType(req.LicenseType),
		IsActive:    true,
	}

	business, err := database.FindOrCreateBusiness(config.GetDB(), business)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create business"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Business created successfully",
		"business": business,
	})
}

func GetSitesAPI(c *fiber.Ctx) error {
	business := loadOwnedBusiness(c)
	if business == nil {
		return nil
	}

	sites, err := database.GetSitesByBusiness(config.GetDB(), business.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sites"})
	}

	return c.JSON(fiber.Map{
		"sites": sites,
		"count": len(sites),
	})
}

func CreateSiteAPI(c *fiber.Ctx) error {
	type CreateSiteRequest struct {
		Name       string `json:"name" validate:"required"`
		Address    string `json:"address"`
		StateName  string `json:"state_name" validate:"required"`
		StateAbbr  string `json:"state_abbr" validate:"required,len=2"`
		CountyName string `json:"county_name" validate:"required"`
		CityName   string `json:"city_name" validate:"required"`
		Zipcode    string `json:"zipcode"`
		QrisRating *int   `json:"qris_rating" validate:"omitempty,min=1,max=5"`
	}

	business := loadOwnedBusiness(c)
	if business == nil {
		return nil
	}

	var req CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()

	// Resolve the geographic lookups, creating missing rows along the way.
	state, err := database.FindOrCreateState(db, req.StateName, req.StateAbbr)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve state"})
	}
	county, err := database.FindOrCreateCounty(db, state.ID, req.CountyName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve county"})
	}
	city, err := database.FindOrCreateCity(db, state.ID, county.ID, req.CityName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve city"})
	}

	site := &models.Site{
		BusinessID: business.ID,
		Name:       req.Name,
		Address:    req.Address,
		CityID:     &city.ID,
		CountyID:   &county.ID,
		StateID:    &state.ID,
		QrisRating: req.QrisRating,
		IsActive:   true,
	}

	if req.Zipcode != "" {
		zip, err := database.FindOrCreateZipcode(db, city.ID, req.Zipcode)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve zipcode"})
		}
		site.ZipcodeID = &zip.ID
	}

	site, err = database.FindOrCreateSite(db, site)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create site"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Site created successfully",
		"site":    site,
	})
}

// loadOwnedBusiness fetches :id and enforces that the caller owns it. When it
// returns nil the error response has already been written.
func loadOwnedBusiness(c *fiber.Ctx) *models.Business {
	businessID := c.Params("id")

	business, err := database.GetBusinessByID(config.GetDB(), businessID)
	if err != nil {
		if err == sql.ErrNoRows {
			c.Status(404).JSON(fiber.Map{"error": "Business not found"})
		} else {
			c.Status(500).JSON(fiber.Map{"error": "Failed to fetch business"})
		}
		return nil
	}
	if business.UserID != c.Locals("user_id").(string) {
		c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		return nil
	}
	return business
}
