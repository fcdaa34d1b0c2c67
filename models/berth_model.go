package models

import (
	"time"

	"github.com/google/uuid"
)

type Berth struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ClubID uuid.UUID `gorm:"not null;index" json:"club_id"`
	Code   string    `gorm:"size:20;not null" json:"code"`

	LengthM float64 `gorm:"type:numeric(6,2);not null" json:"length_m"`
	WidthM  float64 `gorm:"type:numeric(6,2);not null" json:"width_m"`
	DepthM  float64 `gorm:"type:numeric(6,2)" json:"depth_m"`

	DailyRate float64 `gorm:"type:numeric(10,2);not null;default:0.00" json:"daily_rate"`
	IsActive  bool    `gorm:"default:true" json:"is_active"`

	Club Club `gorm:"foreignkey:ClubID" json:"club,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
