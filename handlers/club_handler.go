package handlers

import (
	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateClubRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	City     *string `json:"city,omitempty"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Season   *int    `json:"season,omitempty" validate:"omitempty,min=2000,max=2100"`
}

type UpdateClubRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Currency *string `json:"currency" validate:"omitempty,len=3"`
	Season   *int    `json:"season" validate:"omitempty,min=2000,max=2100"`
}

func ListClubs(c *fiber.Ctx) error {
	var clubs []models.Club
	if err := database.DB.Order("name asc").Find(&clubs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load clubs"})
	}
	return c.JSON(clubs)
}

func GetClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var club models.Club
	if err := database.DB.Preload("Berths").Preload("Tariffs.Months").First(&club, "id = ?", clubID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Club not found"})
	}
	return c.JSON(club)
}

func CreateClub(c *fiber.Ctx) error {
	var req CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	club := models.Club{
		Name:     req.Name,
		City:     req.City,
		Currency: req.Currency,
		Season:   req.Season,
	}
	if err := database.DB.Create(&club).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create club"})
	}
	return c.Status(fiber.StatusCreated).JSON(club)
}

func UpdateClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var club models.Club
	if err := database.DB.First(&club, "id = ?", clubID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Club not found"})
	}

	var req UpdateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.City != nil {
		club.City = req.City
	}
	if req.Currency != nil {
		club.Currency = *req.Currency
	}
	if req.Season != nil {
		club.Season = req.Season
	}

	if err := database.DB.Save(&club).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update club"})
	}
	return c.JSON(club)
}

type CreateBerthRequest struct {
	Code      string  `json:"code" validate:"required,min=1,max=20"`
	LengthM   float64 `json:"length_m" validate:"required,gt=0"`
	WidthM    float64 `json:"width_m" validate:"required,gt=0"`
	DepthM    float64 `json:"depth_m" validate:"omitempty,gt=0"`
	DailyRate float64 `json:"daily_rate" validate:"omitempty,gte=0"`
}

func ListBerths(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var berths []models.Berth
	if err := database.DB.Where("club_id = ?", clubID).Order("code asc").Find(&berths).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load berths"})
	}
	return c.JSON(berths)
}

func CreateBerth(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid club id"})
	}

	var club models.Club
	if err := database.DB.First(&club, "id = ?", clubID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Club not found"})
	}

	var req CreateBerthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	berth := models.Berth{
		ClubID:    club.ID,
		Code:      req.Code,
		LengthM:   req.LengthM,
		WidthM:    req.WidthM,
		DepthM:    req.DepthM,
		DailyRate: req.DailyRate,
	}
	if err := database.DB.Create(&berth).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create berth"})
	}
	return c.Status(fiber.StatusCreated).JSON(berth)
}

func DeactivateBerth(c *fiber.Ctx) error {
	berthID, err := uuid.Parse(c.Params("berthId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid berth id"})
	}

	var berth models.Berth
	if err := database.DB.First(&berth, "id = ?", berthID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Berth not found"})
	}

	berth.IsActive = false
	if err := database.DB.Save(&berth).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate berth"})
	}
	return c.JSON(berth)
}
