package payments

import (
	"time"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetPaymentsAPI(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 25)
	offset := c.QueryInt("offset", 0)

	payments, err := database.GetPayments(config.GetDB(), limit, offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

func GetPaymentsBySiteAPI(c *fiber.Ctx) error {
	siteID := c.Params("siteId")
	if siteID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Site ID is required"})
	}

	payments, err := database.GetPaymentsBySite(config.GetDB(), siteID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	type CreatePaymentRequest struct {
		AgencyID         string `json:"agency_id" validate:"required,uuid"`
		SiteID           string `json:"site_id" validate:"required,uuid"`
		PaidOn           string `json:"paid_on" validate:"required"`
		CareStartedOn    string `json:"care_started_on" validate:"required"`
		CareFinishedOn   string `json:"care_finished_on" validate:"required"`
		AmountCents      int64  `json:"amount_cents" validate:"gt=0"`
		DiscrepancyCents int64  `json:"discrepancy_cents"`
	}

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	paidOn, err := time.Parse("2006-01-02", req.PaidOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid paid_on date. Use YYYY-MM-DD"})
	}
	careStarted, err := time.Parse("2006-01-02", req.CareStartedOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid care_started_on date. Use YYYY-MM-DD"})
	}
	careFinished, err := time.Parse("2006-01-02", req.CareFinishedOn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid care_finished_on date. Use YYYY-MM-DD"})
	}
	if careStarted.After(careFinished) {
		return c.Status(400).JSON(fiber.Map{"error": "care_started_on must not be after care_finished_on"})
	}

	payment := &models.Payment{
		AgencyID:         req.AgencyID,
		SiteID:           req.SiteID,
		PaidOn:           paidOn,
		CareStartedOn:    careStarted,
		CareFinishedOn:   careFinished,
		AmountCents:      req.AmountCents,
		DiscrepancyCents: req.DiscrepancyCents,
	}

	payment, err = database.FindOrCreatePayment(config.GetDB(), payment)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment created successfully",
		"payment": payment,
	})
}
