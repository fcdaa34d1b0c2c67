package handlers

import (
	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRuleRequest struct {
	TariffID          *string  `json:"tariff_id,omitempty" validate:"omitempty,uuid"`
	RuleType          string   `json:"rule_type" validate:"required,oneof=require_deposit"`
	DepositAmount     *float64 `json:"deposit_amount,omitempty" validate:"omitempty,gt=0"`
	DepositPercentage *float64 `json:"deposit_percentage,omitempty" validate:"omitempty,gt=0,lte=100"`
}

func ListBookingRules(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var rules []models.BookingRule
	if err := database.DB.Where("club_id = ?", clubID).Order("created_at desc").Find(&rules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load booking rules"})
	}
	return c.JSON(rules)
}

func CreateBookingRule(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var club models.Club
	if err := database.DB.First(&club, "id = ?", clubID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Club not found"})
	}

	var req CreateBookingRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.DepositAmount == nil && req.DepositPercentage == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A deposit rule requires an amount or a percentage"})
	}

	rule := models.BookingRule{
		ClubID:            club.ID,
		RuleType:          req.RuleType,
		DepositAmount:     req.DepositAmount,
		DepositPercentage: req.DepositPercentage,
	}
	if req.TariffID != nil {
		tariffID, _ := uuid.Parse(*req.TariffID)
		var tariff models.Tariff
		if err := database.DB.First(&tariff, "id = ? AND club_id = ?", tariffID, club.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tariff not found in this club"})
		}
		rule.TariffID = &tariff.ID
	}

	if err := database.DB.Create(&rule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking rule"})
	}
	return c.Status(fiber.StatusCreated).JSON(rule)
}

func DeleteBookingRule(c *fiber.Ctx) error {
	ruleID, err := uuid.Parse(c.Params("ruleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rule id"})
	}

	if err := database.DB.Delete(&models.BookingRule{}, "id = ?", ruleID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking rule"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
