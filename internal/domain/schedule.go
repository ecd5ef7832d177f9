package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Schedule is a dated, capacity-bounded offering occurrence. MaxParticipants
// is a static ceiling set by staff; booking operations only consume it.
// A nil MaxParticipants is the explicit unbounded mode: reservations always
// succeed and the sum check is skipped.
type Schedule struct {
	ID                  string          `json:"id"`
	TenantID            string          `json:"tenant_id"`
	LocationID          string          `json:"location_id"`
	StartAt             time.Time       `json:"start_at"`
	MaxParticipants     *int            `json:"max_participants,omitempty"`
	PricePerParticipant decimal.Decimal `json:"price_per_participant"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Unbounded reports whether the schedule has no capacity ceiling.
func (s *Schedule) Unbounded() bool { return s.MaxParticipants == nil }

// ScheduleAvailability is a schedule with its booked count derived from
// active bookings. Available is nil for unbounded schedules.
type ScheduleAvailability struct {
	Schedule  Schedule `json:"schedule"`
	Booked    int      `json:"booked"`
	Available *int     `json:"available,omitempty"`
}

type CreateScheduleInput struct {
	LocationID          string
	StartAt             time.Time
	MaxParticipants     *int
	PricePerParticipant decimal.Decimal
}
