package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCheckedIn BookingStatus = "checked_in"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// ActiveStatuses are the statuses that consume schedule capacity.
// Cancelled and no-show bookings release their seats.
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusCompleted,
}

type BookingEvent string

const (
	EventConfirm  BookingEvent = "confirm"
	EventCheckIn  BookingEvent = "check_in"
	EventCheckOut BookingEvent = "check_out"
	EventCancel   BookingEvent = "cancel"
	EventNoShow   BookingEvent = "no_show"
)

// transitions is the full lifecycle of a booking. Any (status, event) pair
// not listed here is illegal; there is no other code path that changes a
// booking's status.
var transitions = map[BookingEvent]map[BookingStatus]BookingStatus{
	EventConfirm: {
		BookingStatusPending: BookingStatusConfirmed,
	},
	EventCheckIn: {
		BookingStatusConfirmed: BookingStatusCheckedIn,
	},
	EventCheckOut: {
		BookingStatusCheckedIn: BookingStatusCompleted,
	},
	EventCancel: {
		BookingStatusPending:   BookingStatusCancelled,
		BookingStatusConfirmed: BookingStatusCancelled,
	},
	EventNoShow: {
		BookingStatusConfirmed: BookingStatusNoShow,
	},
}

// NextStatus returns the status a booking moves to when event is applied,
// or an InvalidTransitionError naming the current status and the event.
func NextStatus(current BookingStatus, event BookingEvent) (BookingStatus, error) {
	next, ok := transitions[event][current]
	if !ok {
		return "", &InvalidTransitionError{Current: current, Event: event}
	}
	return next, nil
}

// ReleasesCapacity reports whether a booking in this status no longer
// counts against its schedule's capacity.
func (s BookingStatus) ReleasesCapacity() bool {
	return s == BookingStatusCancelled || s == BookingStatusNoShow
}

type Booking struct {
	ID               string        `json:"id"`
	TenantID         string        `json:"tenant_id"`
	LocationID       string        `json:"location_id"`
	ScheduleID       string        `json:"schedule_id"`
	MemberID         string        `json:"member_id"`
	ParticipantCount int           `json:"participant_count"`
	Status           BookingStatus `json:"status"`

	// Financial projection, recomputed from the payments ledger on every
	// ledger mutation. AmountPaid + BalanceDue == TotalAmount always.
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
	PaymentStatus PaymentStatus   `json:"payment_status"`

	Notes        string     `json:"notes,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	CheckedInBy  *string    `json:"checked_in_by,omitempty"`
	CheckedOutBy *string    `json:"checked_out_by,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CreateBookingInput struct {
	ScheduleID       string
	MemberID         string
	ParticipantCount int
	Notes            string
}

// TransitionRequest carries everything a status transition needs: the
// event plus the audit fields stamped by its side effects.
type TransitionRequest struct {
	TenantID  string
	BookingID string
	Event     BookingEvent
	StaffID   string
	Reason    string
}
