package services

import (
	"testing"

	"github.com/dkoval85/yacht_club/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestDepositFromRuleFixedAmount(t *testing.T) {
	rule := models.BookingRule{
		ID:            uuid.New(),
		RuleType:      models.RuleTypeRequireDeposit,
		DepositAmount: floatPtr(500),
	}

	deposit, err := DepositFromRule(rule, 4000)
	require.NoError(t, err)
	assert.Equal(t, 500.0, deposit)
}

func TestDepositFromRuleFixedAmountWinsOverPercentage(t *testing.T) {
	rule := models.BookingRule{
		ID:                uuid.New(),
		RuleType:          models.RuleTypeRequireDeposit,
		DepositAmount:     floatPtr(500),
		DepositPercentage: floatPtr(50),
	}

	deposit, err := DepositFromRule(rule, 4000)
	require.NoError(t, err)
	assert.Equal(t, 500.0, deposit)
}

func TestDepositFromRulePercentage(t *testing.T) {
	rule := models.BookingRule{
		ID:                uuid.New(),
		RuleType:          models.RuleTypeRequireDeposit,
		DepositPercentage: floatPtr(10),
	}

	deposit, err := DepositFromRule(rule, 9000)
	require.NoError(t, err)
	assert.Equal(t, 900.0, deposit)
}

func TestDepositFromRulePercentageOutOfRange(t *testing.T) {
	for _, pct := range []float64{-1, 100.5, 250} {
		rule := models.BookingRule{
			ID:                uuid.New(),
			RuleType:          models.RuleTypeRequireDeposit,
			DepositPercentage: floatPtr(pct),
		}
		_, err := DepositFromRule(rule, 9000)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDepositRule))
	}
}

func TestDepositFromRuleWithoutParameters(t *testing.T) {
	rule := models.BookingRule{ID: uuid.New(), RuleType: models.RuleTypeRequireDeposit}
	_, err := DepositFromRule(rule, 9000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDepositRule))
}

func TestDepositFromRuleNegativeAmount(t *testing.T) {
	rule := models.BookingRule{
		ID:            uuid.New(),
		RuleType:      models.RuleTypeRequireDeposit,
		DepositAmount: floatPtr(-10),
	}
	_, err := DepositFromRule(rule, 9000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDepositRule))
}
