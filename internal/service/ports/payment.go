package ports

import (
	"context"

	"github.com/avelins/slotkeeper/internal/domain"
)

type PaymentRepo interface {
	// Record inserts a payment or deposit against its booking and
	// resolves the attempt in one transaction: succeeded attempts
	// recompute the booking projection, attempts carrying a failure
	// reason land as failed with the projection untouched. A repeated
	// idempotency key returns the previously recorded payment.
	Record(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	// Refund inserts a refund referencing the original payment, enforcing
	// the refundable bound, and recomputes the projection atomically.
	// Returns RefundExceedsPaymentError when the bound is exceeded.
	Refund(ctx context.Context, tenantID, originalPaymentID string, refund *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Payment, error)
	ListByBooking(ctx context.Context, tenantID, bookingID string) ([]*domain.Payment, error)
}
