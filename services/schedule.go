package services

import (
	"math"
	"time"

	"github.com/dkoval85/yacht_club/models"
	"github.com/pkg/errors"
)

const (
	// FULL payments fall due two weeks before the stay begins, monthly
	// installments one week before the 1st of their month.
	fullPaymentLeadDays = 14
	monthlyLeadDays     = 7

	// Tolerance for comparing numeric(10,2) sums.
	amountEpsilon = 0.005
)

// ScheduleItem is one line of a computed payment schedule, not yet persisted.
type ScheduleItem struct {
	Type    string
	Amount  float64
	DueDate time.Time
	Order   int
	Month   *int
}

// BuildSchedule derives the payment obligations for a booking. Pure: it reads
// its inputs and the supplied clock only. Orders are gapless; 0 is the deposit
// slot, principal obligations start at 1.
func (e *ScheduleEngine) BuildSchedule(booking models.Booking, club models.Club, tariff *models.Tariff, deposit float64, now time.Time) ([]ScheduleItem, error) {
	if deposit < 0 {
		return nil, errors.Wrapf(ErrInvalidDepositRule, "booking %s resolved a negative deposit", booking.ID)
	}
	if deposit > booking.TotalPrice+amountEpsilon {
		return nil, errors.Wrapf(ErrScheduleMismatch, "deposit %.2f exceeds booking total %.2f", deposit, booking.TotalPrice)
	}

	if tariff == nil {
		return e.standardSchedule(booking, deposit, now), nil
	}

	switch tariff.Type {
	case models.TariffTypeSeason:
		return e.seasonSchedule(booking, deposit, now)
	case models.TariffTypeMonthly:
		return e.monthlySchedule(booking, club, tariff, deposit, now)
	default:
		return nil, errors.Wrapf(ErrInvalidTariffConfig, "tariff %s has unknown type %q", tariff.ID, tariff.Type)
	}
}

// standardSchedule covers bookings priced off the berth with no tariff:
// an optional deposit due immediately, the balance due before arrival.
func (e *ScheduleEngine) standardSchedule(booking models.Booking, deposit float64, now time.Time) []ScheduleItem {
	fullDue := booking.StartDate.AddDate(0, 0, -fullPaymentLeadDays)

	if deposit > 0 {
		return []ScheduleItem{
			{Type: models.PaymentTypeDeposit, Amount: deposit, DueDate: now, Order: 0},
			{Type: models.PaymentTypeFull, Amount: booking.TotalPrice - deposit, DueDate: fullDue, Order: 1},
		}
	}
	return []ScheduleItem{
		{Type: models.PaymentTypeFull, Amount: booking.TotalPrice, DueDate: fullDue, Order: 1},
	}
}

// seasonSchedule covers season tariffs, which are settled in a single charge.
// With a deposit rule in place only the deposit is scheduled, so the deposit
// must cover the whole season price; anything else would leave part of the
// total without an obligation, which we refuse to persist.
func (e *ScheduleEngine) seasonSchedule(booking models.Booking, deposit float64, now time.Time) ([]ScheduleItem, error) {
	if deposit > 0 {
		if math.Abs(deposit-booking.TotalPrice) > amountEpsilon {
			return nil, errors.Wrapf(ErrScheduleMismatch,
				"season tariff deposit %.2f does not cover booking total %.2f", deposit, booking.TotalPrice)
		}
		return []ScheduleItem{
			{Type: models.PaymentTypeDeposit, Amount: deposit, DueDate: now, Order: 0},
		}, nil
	}
	return []ScheduleItem{
		{Type: models.PaymentTypeFull, Amount: booking.TotalPrice, DueDate: now, Order: 1},
	}, nil
}

// monthlySchedule emits one installment per configured tariff month, due a week
// before the 1st of that month in the club's season year. Months are taken in
// stored order. The deposit does not reduce the installments.
func (e *ScheduleEngine) monthlySchedule(booking models.Booking, club models.Club, tariff *models.Tariff, deposit float64, now time.Time) ([]ScheduleItem, error) {
	if len(tariff.Months) == 0 {
		return nil, errors.Wrapf(ErrInvalidTariffConfig, "monthly tariff %s has no months configured", tariff.ID)
	}
	if club.Season == nil {
		return nil, errors.Wrapf(ErrInvalidTariffConfig, "club %s has no season year to anchor monthly due dates", club.ID)
	}

	var items []ScheduleItem
	order := 1
	if deposit > 0 {
		items = append(items, ScheduleItem{Type: models.PaymentTypeDeposit, Amount: deposit, DueDate: now, Order: 0})
	}

	var installmentSum float64
	for _, tm := range tariff.Months {
		if tm.Month < 1 || tm.Month > 12 {
			return nil, errors.Wrapf(ErrInvalidTariffConfig, "monthly tariff %s has month %d outside 1..12", tariff.ID, tm.Month)
		}
		if tm.Amount <= 0 {
			return nil, errors.Wrapf(ErrInvalidTariffConfig, "monthly tariff %s has a non-positive amount for month %d", tariff.ID, tm.Month)
		}

		month := tm.Month
		firstOfMonth := time.Date(*club.Season, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		items = append(items, ScheduleItem{
			Type:    models.PaymentTypeMonthly,
			Amount:  tm.Amount,
			DueDate: firstOfMonth.AddDate(0, 0, -monthlyLeadDays),
			Order:   order,
			Month:   &month,
		})
		order++
		installmentSum += tm.Amount
	}

	if math.Abs(installmentSum-booking.TotalPrice) > amountEpsilon {
		e.log.Warn().
			Str("booking_id", booking.ID.String()).
			Str("tariff_id", tariff.ID.String()).
			Float64("installment_sum", installmentSum).
			Float64("total_price", booking.TotalPrice).
			Msg("monthly installments do not sum to booking total")
	}

	return items, nil
}
