package handlers

import (
	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TariffMonthRequest struct {
	Month  int     `json:"month" validate:"required,min=1,max=12"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type CreateTariffRequest struct {
	Name   string               `json:"name" validate:"required,min=2"`
	Type   string               `json:"type" validate:"required,oneof=season monthly"`
	Amount float64              `json:"amount" validate:"omitempty,gt=0"`
	Months []TariffMonthRequest `json:"months" validate:"omitempty,dive"`
}

func ListTariffs(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var tariffs []models.Tariff
	if err := database.DB.Preload("Months", func(db *gorm.DB) *gorm.DB {
		return db.Order("tariff_months.month asc")
	}).Where("club_id = ?", clubID).Find(&tariffs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tariffs"})
	}
	return c.JSON(tariffs)
}

// CreateTariff rejects invalid pricing configuration up front: a season tariff
// needs a positive amount, a monthly one a non-empty month set with positive
// amounts and no duplicate months.
func CreateTariff(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var club models.Club
	if err := database.DB.First(&club, "id = ?", clubID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Club not found"})
	}

	var req CreateTariffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch models.TariffType(req.Type) {
	case models.TariffTypeSeason:
		if req.Amount <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A season tariff requires a positive amount"})
		}
	case models.TariffTypeMonthly:
		if len(req.Months) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A monthly tariff requires at least one month"})
		}
		if club.Season == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Club has no season year configured for monthly tariffs"})
		}
		seen := make(map[int]bool)
		for _, m := range req.Months {
			if seen[m.Month] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Duplicate month in tariff"})
			}
			seen[m.Month] = true
		}
	}

	var tariff models.Tariff
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		tariff = models.Tariff{
			ClubID: club.ID,
			Name:   req.Name,
			Type:   models.TariffType(req.Type),
			Amount: req.Amount,
		}
		if err := tx.Create(&tariff).Error; err != nil {
			return err
		}

		for _, m := range req.Months {
			month := models.TariffMonth{TariffID: tariff.ID, Month: m.Month, Amount: m.Amount}
			if err := tx.Create(&month).Error; err != nil {
				return err
			}
			tariff.Months = append(tariff.Months, month)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tariff"})
	}

	return c.Status(fiber.StatusCreated).JSON(tariff)
}

func DeleteTariff(c *fiber.Ctx) error {
	tariffID, err := uuid.Parse(c.Params("tariffId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tariff id"})
	}

	var count int64
	database.DB.Model(&models.Booking{}).Where("tariff_id = ?", tariffID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Tariff is referenced by bookings"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tariff_id = ?", tariffID).Delete(&models.TariffMonth{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tariff{}, "id = ?", tariffID).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tariff"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
