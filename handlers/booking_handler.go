package handlers

import (
	"math"
	"time"

	"github.com/dkoval85/yacht_club/database"
	"github.com/dkoval85/yacht_club/models"
	"github.com/dkoval85/yacht_club/services"
	"github.com/dkoval85/yacht_club/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var scheduleEngine = services.NewScheduleEngine(zerolog.Nop())

// InitScheduleEngine injects the application logger into the scheduling
// engine. Called once from main before routes are served.
func InitScheduleEngine(log zerolog.Logger) {
	scheduleEngine = services.NewScheduleEngine(log)
}

type CreateBookingRequest struct {
	VesselID  string  `json:"vessel_id" validate:"required,uuid"`
	BerthID   string  `json:"berth_id" validate:"required,uuid"`
	TariffID  *string `json:"tariff_id,omitempty" validate:"omitempty,uuid"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	customerID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if !startDate.Before(endDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start date must be before end date"})
	}

	vesselID, _ := uuid.Parse(req.VesselID)
	var vessel models.Vessel
	if err := database.DB.First(&vessel, "id = ? AND owner_id = ?", vesselID, customerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vessel not found"})
	}

	berthID, _ := uuid.Parse(req.BerthID)
	var berth models.Berth
	if err := database.DB.Preload("Club").First(&berth, "id = ?", berthID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Berth not found"})
	}
	club := berth.Club

	var tariff *models.Tariff
	if req.TariffID != nil {
		tariffID, _ := uuid.Parse(*req.TariffID)
		var t models.Tariff
		err := database.DB.Preload("Months", func(db *gorm.DB) *gorm.DB {
			return db.Order("tariff_months.month asc")
		}).First(&t, "id = ? AND club_id = ?", tariffID, club.ID).Error
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tariff not found in this club"})
		}
		tariff = &t
	}

	totalPrice, err := bookingPrice(berth, tariff, startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	var payments []models.Payment
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&berth, "id = ?", berthID).Error; err != nil {
			return err
		}
		if !berth.IsActive {
			return errors.New("this berth is no longer available")
		}

		var overlapping int64
		err := tx.Model(&models.Booking{}).
			Where("berth_id = ? AND status NOT IN ? AND start_date < ? AND end_date > ?",
				berth.ID, []string{models.BookingStatusCancelled}, endDate, startDate).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return errors.New("the berth is already booked for these dates")
		}

		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return errors.New("failed to generate booking reference")
		}

		booking = models.Booking{
			Reference:  reference,
			CustomerID: customerID,
			VesselID:   vessel.ID,
			ClubID:     club.ID,
			BerthID:    berth.ID,
			StartDate:  startDate,
			EndDate:    endDate,
			TotalPrice: totalPrice,
			Currency:   club.Currency,
			Status:     models.BookingStatusPendingPayment,
		}
		if tariff != nil {
			booking.TariffID = &tariff.ID
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		deposit, err := scheduleEngine.ResolveDeposit(tx, club, tariff, totalPrice)
		if err != nil {
			return err
		}
		items, err := scheduleEngine.BuildSchedule(booking, club, tariff, deposit, time.Now())
		if err != nil {
			return err
		}
		payments, err = scheduleEngine.Materialize(tx, booking, club, items)
		return err
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTariffConfig) ||
			errors.Is(err, services.ErrInvalidDepositRule) ||
			errors.Is(err, services.ErrScheduleMismatch) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Booking created. The payment schedule has been issued.",
		"booking":  booking,
		"payments": payments,
	})
}

// bookingPrice derives the total from the tariff when one is chosen, otherwise
// from the berth's daily rate.
func bookingPrice(berth models.Berth, tariff *models.Tariff, startDate, endDate time.Time) (float64, error) {
	if tariff == nil {
		if berth.DailyRate <= 0 {
			return 0, errors.New("berth has no daily rate; choose a tariff")
		}
		days := math.Ceil(endDate.Sub(startDate).Hours() / 24)
		return berth.DailyRate * days, nil
	}

	switch tariff.Type {
	case models.TariffTypeSeason:
		return tariff.Amount, nil
	case models.TariffTypeMonthly:
		var total float64
		for _, m := range tariff.Months {
			total += m.Amount
		}
		if total <= 0 {
			return 0, errors.New("monthly tariff has no priced months")
		}
		return total, nil
	default:
		return 0, errors.Errorf("unknown tariff type %q", tariff.Type)
	}
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	customerID, _ := uuid.Parse(claims["user_id"].(string))

	var bookings []models.Booking
	err := database.DB.
		Preload("Vessel").
		Preload("Berth").
		Preload("Club").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}
	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	err = database.DB.
		Preload("Vessel").
		Preload("Berth").
		Preload("Club").
		Preload("Tariff.Months").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	schedule, err := scheduleEngine.GetSchedule(database.DB, booking.ID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payment schedule"})
	}

	return c.JSON(fiber.Map{
		"booking":  booking,
		"schedule": schedule,
	})
}

// ConfirmBooking moves a booking to confirmed once the deposit and the first
// principal payment are settled.
func ConfirmBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.Status != models.BookingStatusPendingPayment {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking is not awaiting confirmation"})
	}

	ok, err := scheduleEngine.CanConfirm(database.DB, booking.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check payments"})
	}
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Required payments have not been settled yet"})
	}

	booking.Status = models.BookingStatusConfirmed
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to confirm booking"})
	}
	return c.JSON(booking)
}

func CancelBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	customerID, _ := uuid.Parse(claims["user_id"].(string))
	role := claims["role"].(string)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.CustomerID != customerID && role != "admin" && role != "manager" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Booking can no longer be cancelled"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		booking.Status = models.BookingStatusCancelled
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Payment{}).
			Where("booking_id = ? AND status IN ?", booking.ID,
				[]string{models.PaymentStatusPending, models.PaymentStatusOverdue}).
			Update("status", models.PaymentStatusCancelled).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}
	return c.JSON(booking)
}
