package services

import "github.com/pkg/errors"

// Engine error taxonomy. Configuration problems should have been rejected when
// the tariff or rule was created; the engine re-validates and fails fast
// instead of emitting zero or negative amounts.
var (
	ErrInvalidTariffConfig = errors.New("invalid tariff configuration")
	ErrInvalidDepositRule  = errors.New("invalid deposit rule")
	ErrScheduleMismatch    = errors.New("schedule total does not match booking price")
	ErrScheduleExists      = errors.New("payment schedule already exists for booking")
)
