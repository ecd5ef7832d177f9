package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrTenantSuspended = errors.New("tenant is suspended")
)

var (
	// ErrAccessDenied covers every tenant-scoped lookup miss. It makes no
	// distinction between "belongs to another tenant" and "does not exist",
	// so probing ids reveals nothing.
	ErrAccessDenied = errors.New("access denied")

	// ErrLockTimeout means the schedule row lock could not be acquired
	// within the bounded wait. Retryable with backoff.
	ErrLockTimeout = errors.New("lock acquisition timed out")
)

var (
	ErrValidation      = errors.New("validation error")
	ErrDuplicateTenant = errors.New("tenant name is already taken")
	ErrPaymentNotFinal = errors.New("payment is not in a refundable state")
)

// CapacityExceededError reports a failed reservation with the precise
// remaining availability so the caller can present it.
type CapacityExceededError struct {
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, available %d", e.Requested, e.Available)
}

// InvalidTransitionError names the current status and the attempted event.
type InvalidTransitionError struct {
	Current BookingStatus
	Event   BookingEvent
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s a %s booking", e.Event, e.Current)
}

// RefundExceedsPaymentError reports how much of the original payment is
// still refundable.
type RefundExceedsPaymentError struct {
	Requested  decimal.Decimal
	Refundable decimal.Decimal
}

func (e *RefundExceedsPaymentError) Error() string {
	return fmt.Sprintf("refund exceeds payment: requested %s, refundable %s",
		e.Requested.StringFixed(2), e.Refundable.StringFixed(2))
}
