package services

import (
	"github.com/dkoval85/yacht_club/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ResolveDeposit looks up the require-deposit rule for the booking's exact
// (club, tariff) key and returns the resulting deposit amount. A rule stored
// with a nil tariff only matches bookings made without a tariff; it is not a
// catch-all for the whole club. When several rules share the key, the most
// recently created one wins. No rule means no deposit.
func (e *ScheduleEngine) ResolveDeposit(tx *gorm.DB, club models.Club, tariff *models.Tariff, totalPrice float64) (float64, error) {
	q := tx.Where("club_id = ? AND rule_type = ?", club.ID, models.RuleTypeRequireDeposit)
	if tariff != nil {
		q = q.Where("tariff_id = ?", tariff.ID)
	} else {
		q = q.Where("tariff_id IS NULL")
	}

	var rules []models.BookingRule
	if err := q.Order("created_at DESC").Find(&rules).Error; err != nil {
		return 0, errors.Wrap(err, "failed to load booking rules")
	}
	if len(rules) == 0 {
		e.log.Debug().Str("club_id", club.ID.String()).Msg("no deposit rule found")
		return 0, nil
	}

	rule := rules[0]
	deposit, err := DepositFromRule(rule, totalPrice)
	if err != nil {
		e.log.Error().Err(err).Str("rule_id", rule.ID.String()).Msg("deposit rule validation failed")
		return 0, err
	}

	e.log.Info().
		Str("club_id", club.ID.String()).
		Str("rule_id", rule.ID.String()).
		Float64("deposit", deposit).
		Msg("deposit rule resolved")
	return deposit, nil
}

// DepositFromRule computes the deposit a single rule demands. A fixed amount
// takes precedence over a percentage.
func DepositFromRule(rule models.BookingRule, totalPrice float64) (float64, error) {
	switch {
	case rule.DepositAmount != nil:
		if *rule.DepositAmount < 0 {
			return 0, errors.Wrapf(ErrInvalidDepositRule, "rule %s has a negative deposit amount", rule.ID)
		}
		return *rule.DepositAmount, nil
	case rule.DepositPercentage != nil:
		pct := *rule.DepositPercentage
		if pct < 0 || pct > 100 {
			return 0, errors.Wrapf(ErrInvalidDepositRule, "rule %s has deposit percentage %.2f outside [0,100]", rule.ID, pct)
		}
		return totalPrice * pct / 100, nil
	default:
		return 0, errors.Wrapf(ErrInvalidDepositRule, "rule %s carries neither a deposit amount nor a percentage", rule.ID)
	}
}
