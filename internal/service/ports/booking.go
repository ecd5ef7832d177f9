package ports

import (
	"context"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
)

type BookingRepo interface {
	// Create reserves capacity on the booking's schedule and inserts the
	// booking in one transaction. Returns CapacityExceededError when the
	// schedule is full and ErrLockTimeout when the schedule lock cannot
	// be acquired within the bounded wait.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error)
	// Transition applies a state machine event atomically with its audit
	// stamps. Returns InvalidTransitionError for illegal events.
	Transition(ctx context.Context, req domain.TransitionRequest) (*domain.Booking, error)
	ListBySchedule(ctx context.Context, tenantID, scheduleID string) ([]*domain.Booking, error)
	// CancelStalePending cancels pending bookings older than the hold
	// window across all tenants and returns them.
	CancelStalePending(ctx context.Context, hold time.Duration) ([]*domain.Booking, error)
}
