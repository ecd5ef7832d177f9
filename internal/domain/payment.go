package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentKind string

const (
	PaymentKindPayment PaymentKind = "payment"
	PaymentKindDeposit PaymentKind = "deposit"
	PaymentKindRefund  PaymentKind = "refund"
)

// PaymentState is the lifecycle of a single payment row. A failed payment
// is a normal terminal outcome, never affects booking totals, and keeps
// its failure reason.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateSucceeded PaymentState = "succeeded"
	PaymentStateFailed    PaymentState = "failed"
)

// PaymentStatus is the booking-level projection derived from the ledger.
// It is never set directly.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusDepositPaid   PaymentStatus = "deposit_paid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusFullyPaid     PaymentStatus = "fully_paid"
)

// Payment is an atomic monetary event tied to exactly one booking.
// Immutable once succeeded, except for being referenced by later refunds.
type Payment struct {
	ID                string          `json:"id"`
	TenantID          string          `json:"tenant_id"`
	BookingID         string          `json:"booking_id"`
	PaymentNumber     string          `json:"payment_number"`
	Amount            decimal.Decimal `json:"amount"`
	Kind              PaymentKind     `json:"kind"`
	State             PaymentState    `json:"state"`
	Method            string          `json:"method"`
	OriginalPaymentID *string         `json:"original_payment_id,omitempty"`
	FailureReason     *string         `json:"failure_reason,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	IdempotencyKey    *string         `json:"idempotency_key,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Projection is the financial state of a booking as derived from its ledger.
type Projection struct {
	AmountPaid decimal.Decimal
	BalanceDue decimal.Decimal
	Status     PaymentStatus
}

// ProjectTotals recomputes a booking's financial projection from its
// payments. Only succeeded rows count; refunds subtract. The booking row
// caches the result but the ledger stays the source of truth.
func ProjectTotals(totalAmount decimal.Decimal, payments []*Payment) Projection {
	paid := decimal.Zero
	hasDeposit := false

	for _, p := range payments {
		if p.State != PaymentStateSucceeded {
			continue
		}
		switch p.Kind {
		case PaymentKindRefund:
			paid = paid.Sub(p.Amount)
		case PaymentKindDeposit:
			paid = paid.Add(p.Amount)
			hasDeposit = true
		default:
			paid = paid.Add(p.Amount)
		}
	}

	return Projection{
		AmountPaid: paid,
		BalanceDue: totalAmount.Sub(paid),
		Status:     derivePaymentStatus(totalAmount, paid, hasDeposit),
	}
}

func derivePaymentStatus(total, paid decimal.Decimal, hasDeposit bool) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentStatusPending
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusFullyPaid
	case hasDeposit:
		return PaymentStatusDepositPaid
	default:
		return PaymentStatusPartiallyPaid
	}
}

// RefundableAmount returns how much of a payment remains refundable:
// its amount minus all succeeded refunds that reference it.
func RefundableAmount(original *Payment, refunds []*Payment) decimal.Decimal {
	remaining := original.Amount
	for _, r := range refunds {
		if r.State != PaymentStateSucceeded || r.Kind != PaymentKindRefund {
			continue
		}
		if r.OriginalPaymentID == nil || *r.OriginalPaymentID != original.ID {
			continue
		}
		remaining = remaining.Sub(r.Amount)
	}
	return remaining
}

type RecordPaymentInput struct {
	BookingID string
	Amount    decimal.Decimal
	Kind      PaymentKind
	Method    string
	Notes     string
	// FailureReason marks the attempt as declined: it is stored failed
	// with this reason and never touches the booking projection.
	FailureReason  string
	IdempotencyKey string
}

type RefundPaymentInput struct {
	PaymentID string
	Amount    decimal.Decimal
}
