package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, tenant_id, booking_id, payment_number, amount, kind, state, method,
		original_payment_id, failure_reason, notes, idempotency_key, created_at, updated_at`

type PaymentRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewPaymentRepo(db *dbpg.DB, lockTimeout time.Duration) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		lockTimeout: lockTimeout,
	}
}

// Record inserts a payment or deposit and resolves the attempt in one
// transaction: it is captured as succeeded and the booking projection is
// recomputed, or, when the attempt carries a failure reason, stored as
// failed with the projection untouched. The booking row lock serializes
// all ledger mutations for a booking, so the projection is always
// computed over a stable set of rows.
func (r *PaymentRepository) Record(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	totalAmount, err := r.lockBooking(ctx, tx, p.TenantID, p.BookingID)
	if err != nil {
		return nil, err
	}

	if p.IdempotencyKey != nil {
		existing, err := r.findByIdempotencyKey(ctx, tx, p.TenantID, *p.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	if err = r.insert(ctx, tx, p); err != nil {
		return nil, err
	}

	// No external gateway is modeled: the attempt resolves synchronously
	// within the same transaction. A declined attempt lands as failed,
	// keeps its reason and never enters the projection.
	if p.FailureReason != nil {
		if err = r.setState(ctx, tx, p, domain.PaymentStateFailed); err != nil {
			return nil, err
		}
		if err = tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return p, nil
	}

	if err = r.setState(ctx, tx, p, domain.PaymentStateSucceeded); err != nil {
		return nil, err
	}

	if err = r.recomputeProjection(ctx, tx, p.TenantID, p.BookingID, totalAmount); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return p, nil
}

// Refund inserts a refund referencing the original payment. The refundable
// remainder is derived from succeeded refunds under the booking row lock,
// so two racing refunds can never overdraw the original payment.
func (r *PaymentRepository) Refund(ctx context.Context, tenantID, originalPaymentID string, refund *domain.Payment) (*domain.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// the payment row lock below is the first wait; bound it up front
	if err = r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	original, err := r.getInTx(ctx, tx, tenantID, originalPaymentID)
	if err != nil {
		return nil, err
	}

	if original.State != domain.PaymentStateSucceeded || original.Kind == domain.PaymentKindRefund {
		return nil, domain.ErrPaymentNotFinal
	}

	totalAmount, err := r.lockBooking(ctx, tx, tenantID, original.BookingID)
	if err != nil {
		return nil, err
	}

	refundedQuery := `SELECT COALESCE(SUM(amount), 0)
					  FROM payments
					  WHERE original_payment_id = $1 AND tenant_id = $2 AND kind = $3 AND state = $4`
	var refunded decimal.Decimal
	if err = tx.QueryRowContext(
		ctx, refundedQuery, original.ID, tenantID,
		domain.PaymentKindRefund, domain.PaymentStateSucceeded,
	).Scan(&refunded); err != nil {
		return nil, fmt.Errorf("sum refunds: %w", err)
	}

	refundable := original.Amount.Sub(refunded)
	if refund.Amount.GreaterThan(refundable) {
		return nil, &domain.RefundExceedsPaymentError{
			Requested:  refund.Amount,
			Refundable: refundable,
		}
	}

	refund.BookingID = original.BookingID
	refund.Kind = domain.PaymentKindRefund
	refund.Method = original.Method
	refund.OriginalPaymentID = &original.ID

	if err = r.insert(ctx, tx, refund); err != nil {
		return nil, err
	}
	if err = r.setState(ctx, tx, refund, domain.PaymentStateSucceeded); err != nil {
		return nil, err
	}

	if err = r.recomputeProjection(ctx, tx, tenantID, original.BookingID, totalAmount); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return refund, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 AND tenant_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = scanPayment(row.Scan, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, tenantID, bookingID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE booking_id=$1 AND tenant_id=$2
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = scanPayment(rows.Scan, &p); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

// setLockTimeout bounds every row lock wait in the transaction. Applied
// right after BeginTx so the first FOR UPDATE is already covered.
func (r *PaymentRepository) setLockTimeout(ctx context.Context, tx *sql.Tx) error {
	query := `SELECT set_config('lock_timeout', $1, true)`
	if _, err := tx.ExecContext(ctx, query, fmt.Sprintf("%dms", r.lockTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}
	return nil
}

// lockBooking takes the booking row lock and returns the booking's total
// amount for the projection recompute.
func (r *PaymentRepository) lockBooking(ctx context.Context, tx *sql.Tx, tenantID, bookingID string) (decimal.Decimal, error) {
	query := `SELECT total_amount FROM bookings WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	var total decimal.Decimal
	if err := tx.QueryRowContext(ctx, query, bookingID, tenantID).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrAccessDenied
		}
		if isPGCode(err, pgLockNotAvailable) {
			return decimal.Zero, domain.ErrLockTimeout
		}
		return decimal.Zero, fmt.Errorf("lock booking: %w", err)
	}

	return total, nil
}

func (r *PaymentRepository) insert(ctx context.Context, tx *sql.Tx, p *domain.Payment) error {
	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('payment_numbers')`).Scan(&seq); err != nil {
		return fmt.Errorf("next payment number: %w", err)
	}
	p.PaymentNumber = fmt.Sprintf("PAY-%06d", seq)
	p.State = domain.PaymentStatePending

	query := `INSERT INTO payments (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := tx.ExecContext(
		ctx, query,
		p.ID, p.TenantID, p.BookingID, p.PaymentNumber, p.Amount, p.Kind, p.State, p.Method,
		p.OriginalPaymentID, p.FailureReason, p.Notes, p.IdempotencyKey, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) setState(ctx context.Context, tx *sql.Tx, p *domain.Payment, state domain.PaymentState) error {
	now := time.Now().UTC()
	query := `UPDATE payments SET state=$3, updated_at=$4 WHERE id=$1 AND tenant_id=$2`
	if _, err := tx.ExecContext(ctx, query, p.ID, p.TenantID, state, now); err != nil {
		return fmt.Errorf("set payment state: %w", err)
	}

	p.State = state
	p.UpdatedAt = now
	return nil
}

// recomputeProjection rebuilds the booking's cached financial state from
// the ledger. The ledger stays the source of truth; the booking columns
// are always recomputable from it.
func (r *PaymentRepository) recomputeProjection(ctx context.Context, tx *sql.Tx, tenantID, bookingID string, totalAmount decimal.Decimal) error {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id=$1 AND tenant_id=$2`
	rows, err := tx.QueryContext(ctx, query, bookingID, tenantID)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = scanPayment(rows.Scan, &p); err != nil {
			return fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	projection := domain.ProjectTotals(totalAmount, payments)

	updateQuery := `UPDATE bookings
					SET amount_paid=$3, balance_due=$4, payment_status=$5, updated_at=now()
					WHERE id=$1 AND tenant_id=$2`
	if _, err = tx.ExecContext(
		ctx, updateQuery, bookingID, tenantID,
		projection.AmountPaid, projection.BalanceDue, projection.Status,
	); err != nil {
		return fmt.Errorf("update projection: %w", err)
	}

	return nil
}

func (r *PaymentRepository) getInTx(ctx context.Context, tx *sql.Tx, tenantID, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 AND tenant_id=$2 FOR UPDATE`

	var p domain.Payment
	if err := scanPayment(tx.QueryRowContext(ctx, query, id, tenantID).Scan, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		if isPGCode(err, pgLockNotAvailable) {
			return nil, domain.ErrLockTimeout
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &p, nil
}

func (r *PaymentRepository) findByIdempotencyKey(ctx context.Context, tx *sql.Tx, tenantID, key string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id=$1 AND idempotency_key=$2`

	var p domain.Payment
	if err := scanPayment(tx.QueryRowContext(ctx, query, tenantID, key).Scan, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find by idempotency key: %w", err)
	}

	return &p, nil
}

func scanPayment(scan func(...any) error, p *domain.Payment) error {
	return scan(
		&p.ID, &p.TenantID, &p.BookingID, &p.PaymentNumber, &p.Amount, &p.Kind, &p.State, &p.Method,
		&p.OriginalPaymentID, &p.FailureReason, &p.Notes, &p.IdempotencyKey, &p.CreatedAt, &p.UpdatedAt,
	)
}
