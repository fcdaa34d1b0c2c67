package services

import (
	"github.com/rs/zerolog"
)

// ScheduleEngine produces the payment obligations for a booking: it resolves
// the club's deposit rule, builds the schedule line items and persists them as
// pending payments inside the booking-creation transaction. It owns no entity
// lifecycle beyond creating payments.
type ScheduleEngine struct {
	log zerolog.Logger
}

func NewScheduleEngine(log zerolog.Logger) *ScheduleEngine {
	return &ScheduleEngine{log: log}
}
