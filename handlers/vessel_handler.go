package handlers

import (
	"errors"

	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateVesselRequest struct {
	Name               string  `json:"name" validate:"required,min=2"`
	RegistrationNumber string  `json:"registration_number" validate:"required,min=3,max=50"`
	LengthM            float64 `json:"length_m" validate:"required,gt=0"`
	WidthM             float64 `json:"width_m" validate:"omitempty,gt=0"`
	DraftM             float64 `json:"draft_m" validate:"omitempty,gt=0"`
	PhotoURL           *string `json:"photo_url,omitempty"`
}

func ListMyVessels(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	var vessels []models.Vessel
	if err := database.DB.Where("owner_id = ?", ownerID).Order("name asc").Find(&vessels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load vessels"})
	}
	return c.JSON(vessels)
}

func CreateVessel(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateVesselRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vessel := models.Vessel{
		OwnerID:            ownerID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		LengthM:            req.LengthM,
		WidthM:             req.WidthM,
		DraftM:             req.DraftM,
		PhotoURL:           req.PhotoURL,
	}
	if err := database.DB.Create(&vessel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Registration number already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register vessel"})
	}
	return c.Status(fiber.StatusCreated).JSON(vessel)
}

func UpdateVesselPhoto(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	ownerID, _ := uuid.Parse(claims["user_id"].(string))

	vesselID, err := uuid.Parse(c.Params("vesselId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vessel id"})
	}

	var vessel models.Vessel
	if err := database.DB.First(&vessel, "id = ? AND owner_id = ?", vesselID, ownerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vessel not found"})
	}

	var req struct {
		PhotoURL string `json:"photo_url" validate:"required,url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vessel.PhotoURL = &req.PhotoURL
	if err := database.DB.Save(&vessel).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vessel"})
	}
	return c.JSON(vessel)
}
