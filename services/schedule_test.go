package services

import (
	"testing"
	"time"

	"github.com/dkoval85/yacht_club/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *ScheduleEngine {
	return NewScheduleEngine(zerolog.Nop())
}

func testBooking(total float64, start time.Time) models.Booking {
	return models.Booking{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 30),
		TotalPrice: total,
		Currency:   "EUR",
	}
}

func TestBuildScheduleNoTariffNoDeposit(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	booking := testBooking(4200, start)

	items, err := testEngine().BuildSchedule(booking, models.Club{}, nil, 0, now)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, models.PaymentTypeFull, items[0].Type)
	assert.Equal(t, 4200.0, items[0].Amount)
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, start.AddDate(0, 0, -14), items[0].DueDate)
}

func TestBuildScheduleNoTariffWithDeposit(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	booking := testBooking(4200, start)

	items, err := testEngine().BuildSchedule(booking, models.Club{}, nil, 1000, now)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.PaymentTypeDeposit, items[0].Type)
	assert.Equal(t, 1000.0, items[0].Amount)
	assert.Equal(t, 0, items[0].Order)
	assert.Equal(t, now, items[0].DueDate)

	assert.Equal(t, models.PaymentTypeFull, items[1].Type)
	assert.Equal(t, 3200.0, items[1].Amount)
	assert.Equal(t, 1, items[1].Order)
	assert.Equal(t, start.AddDate(0, 0, -14), items[1].DueDate)

	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	assert.InDelta(t, booking.TotalPrice, sum, amountEpsilon)
}

func TestBuildScheduleSeasonTariffNoDeposit(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	booking := testBooking(9000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{ID: uuid.New(), Type: models.TariffTypeSeason, Amount: 9000}

	items, err := testEngine().BuildSchedule(booking, models.Club{}, tariff, 0, now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PaymentTypeFull, items[0].Type)
	assert.Equal(t, 9000.0, items[0].Amount)
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, now, items[0].DueDate)
}

func TestBuildScheduleSeasonTariffDepositMustCoverTotal(t *testing.T) {
	now := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	booking := testBooking(9000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{ID: uuid.New(), Type: models.TariffTypeSeason, Amount: 9000}

	_, err := testEngine().BuildSchedule(booking, models.Club{}, tariff, 900, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScheduleMismatch))

	items, err := testEngine().BuildSchedule(booking, models.Club{}, tariff, 9000, now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PaymentTypeDeposit, items[0].Type)
	assert.Equal(t, 9000.0, items[0].Amount)
	assert.Equal(t, 0, items[0].Order)
}

func TestBuildScheduleMonthlyTariff(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	season := 2025
	club := models.Club{ID: uuid.New(), Season: &season}
	booking := testBooking(9000, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{
		ID:   uuid.New(),
		Type: models.TariffTypeMonthly,
		Months: []models.TariffMonth{
			{Month: 3, Amount: 3000},
			{Month: 6, Amount: 3000},
			{Month: 9, Amount: 3000},
		},
	}

	items, err := testEngine().BuildSchedule(booking, club, tariff, 0, now)
	require.NoError(t, err)
	require.Len(t, items, 3)

	expectedDue := []time.Time{
		time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
	}
	expectedMonths := []int{3, 6, 9}
	for i, item := range items {
		assert.Equal(t, models.PaymentTypeMonthly, item.Type)
		assert.Equal(t, 3000.0, item.Amount)
		assert.Equal(t, i+1, item.Order)
		assert.Equal(t, expectedDue[i], item.DueDate)
		require.NotNil(t, item.Month)
		assert.Equal(t, expectedMonths[i], *item.Month)
	}
}

func TestBuildScheduleMonthlyTariffWithDeposit(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	season := 2025
	club := models.Club{ID: uuid.New(), Season: &season}
	booking := testBooking(9000, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{
		ID:   uuid.New(),
		Type: models.TariffTypeMonthly,
		Months: []models.TariffMonth{
			{Month: 3, Amount: 3000},
			{Month: 6, Amount: 3000},
			{Month: 9, Amount: 3000},
		},
	}

	// 10% deposit on 9000; the installments keep their configured amounts.
	items, err := testEngine().BuildSchedule(booking, club, tariff, 900, now)
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, models.PaymentTypeDeposit, items[0].Type)
	assert.Equal(t, 900.0, items[0].Amount)
	assert.Equal(t, 0, items[0].Order)
	assert.Equal(t, now, items[0].DueDate)

	for i, item := range items[1:] {
		assert.Equal(t, models.PaymentTypeMonthly, item.Type)
		assert.Equal(t, 3000.0, item.Amount)
		assert.Equal(t, i+1, item.Order)
	}
}

func TestBuildScheduleSingleJuneInstallment(t *testing.T) {
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	season := 2025
	club := models.Club{ID: uuid.New(), Season: &season}
	booking := testBooking(15000, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{
		ID:     uuid.New(),
		Type:   models.TariffTypeMonthly,
		Months: []models.TariffMonth{{Month: 6, Amount: 15000}},
	}

	items, err := testEngine().BuildSchedule(booking, club, tariff, 0, now)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.PaymentTypeMonthly, items[0].Type)
	assert.Equal(t, 15000.0, items[0].Amount)
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC), items[0].DueDate)
}

func TestBuildScheduleMonthlyTariffInvalidConfig(t *testing.T) {
	now := time.Now()
	season := 2025
	club := models.Club{ID: uuid.New(), Season: &season}
	booking := testBooking(5000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	noMonths := &models.Tariff{ID: uuid.New(), Type: models.TariffTypeMonthly}
	_, err := testEngine().BuildSchedule(booking, club, noMonths, 0, now)
	assert.True(t, errors.Is(err, ErrInvalidTariffConfig))

	zeroAmount := &models.Tariff{
		ID:     uuid.New(),
		Type:   models.TariffTypeMonthly,
		Months: []models.TariffMonth{{Month: 6, Amount: 0}},
	}
	_, err = testEngine().BuildSchedule(booking, club, zeroAmount, 0, now)
	assert.True(t, errors.Is(err, ErrInvalidTariffConfig))

	badMonth := &models.Tariff{
		ID:     uuid.New(),
		Type:   models.TariffTypeMonthly,
		Months: []models.TariffMonth{{Month: 13, Amount: 100}},
	}
	_, err = testEngine().BuildSchedule(booking, club, badMonth, 0, now)
	assert.True(t, errors.Is(err, ErrInvalidTariffConfig))

	noSeason := &models.Tariff{
		ID:     uuid.New(),
		Type:   models.TariffTypeMonthly,
		Months: []models.TariffMonth{{Month: 6, Amount: 100}},
	}
	_, err = testEngine().BuildSchedule(booking, models.Club{ID: uuid.New()}, noSeason, 0, now)
	assert.True(t, errors.Is(err, ErrInvalidTariffConfig))
}

func TestBuildScheduleDepositExceedingTotal(t *testing.T) {
	booking := testBooking(1000, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	_, err := testEngine().BuildSchedule(booking, models.Club{}, nil, 1500, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScheduleMismatch))
}

func TestBuildScheduleUnknownTariffType(t *testing.T) {
	booking := testBooking(1000, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	tariff := &models.Tariff{ID: uuid.New(), Type: "weekly"}
	_, err := testEngine().BuildSchedule(booking, models.Club{}, tariff, 0, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTariffConfig))
}
