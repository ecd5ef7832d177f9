package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, tenant_id, location_id, schedule_id, member_id, participant_count, status,
		total_amount, amount_paid, balance_due, payment_status,
		notes, cancel_reason, checked_in_by, checked_out_by,
		checked_in_at, checked_out_at, cancelled_at, created_at, updated_at`

type BookingRepository struct {
	db          *dbpg.DB
	strategy    retry.Strategy
	lockTimeout time.Duration
}

func NewBookingRepo(db *dbpg.DB, lockTimeout time.Duration) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		lockTimeout: lockTimeout,
	}
}

// Create reserves capacity and inserts the booking in one transaction.
// The schedule row is locked for the whole check-and-insert sequence, so
// two concurrent creations against the same schedule are fully serialized
// while different schedules never block each other. The booked count is
// derived by summing active bookings under the lock; there is no stored
// counter to drift.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	maxParticipants, err := r.lockSchedule(ctx, tx, b.TenantID, b.ScheduleID)
	if err != nil {
		return err
	}

	bookedQuery := `SELECT COALESCE(SUM(participant_count), 0)
					FROM bookings
					WHERE schedule_id = $1 AND tenant_id = $2 AND status = ANY($3)`
	var booked int
	if err = tx.QueryRowContext(
		ctx, bookedQuery, b.ScheduleID, b.TenantID,
		pq.Array(domain.ActiveStatuses),
	).Scan(&booked); err != nil {
		return fmt.Errorf("sum active bookings: %w", err)
	}

	// nil ceiling is the explicit unbounded mode: skip the sum check
	if maxParticipants != nil {
		available := *maxParticipants - booked
		if b.ParticipantCount > available {
			return &domain.CapacityExceededError{
				Requested: b.ParticipantCount,
				Available: available,
			}
		}
	}

	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.TenantID, b.LocationID, b.ScheduleID, b.MemberID, b.ParticipantCount, b.Status,
		b.TotalAmount, b.AmountPaid, b.BalanceDue, b.PaymentStatus,
		b.Notes, b.CancelReason, b.CheckedInBy, b.CheckedOutBy,
		b.CheckedInAt, b.CheckedOutAt, b.CancelledAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// lockSchedule takes the exclusive schedule row lock with a bounded wait
// and returns the capacity ceiling. The lock is held until the enclosing
// transaction commits or rolls back.
func (r *BookingRepository) lockSchedule(ctx context.Context, tx *sql.Tx, tenantID, scheduleID string) (*int, error) {
	timeoutQuery := `SELECT set_config('lock_timeout', $1, true)`
	if _, err := tx.ExecContext(ctx, timeoutQuery, fmt.Sprintf("%dms", r.lockTimeout.Milliseconds())); err != nil {
		return nil, fmt.Errorf("set lock timeout: %w", err)
	}

	lockQuery := `SELECT max_participants FROM schedules WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	var maxParticipants *int
	if err := tx.QueryRowContext(ctx, lockQuery, scheduleID, tenantID).Scan(&maxParticipants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		if isPGCode(err, pgLockNotAvailable) {
			return nil, domain.ErrLockTimeout
		}
		return nil, fmt.Errorf("lock schedule: %w", err)
	}

	return maxParticipants, nil
}

// Transition applies a state machine event and its audit stamps
// atomically. Capacity released by cancellation or no-show is implicit:
// availability is always derived from statuses, inside the same
// transaction as the status flip.
func (r *BookingRepository) Transition(ctx context.Context, req domain.TransitionRequest) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND tenant_id = $2 FOR UPDATE`
	var b domain.Booking
	if err = scanBooking(tx.QueryRowContext(ctx, query, req.BookingID, req.TenantID).Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	next, err := domain.NextStatus(b.Status, req.Event)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b.Status = next
	b.UpdatedAt = now

	switch req.Event {
	case domain.EventCancel:
		b.CancelledAt = &now
		if req.Reason != "" {
			reason := req.Reason
			b.CancelReason = &reason
		}
	case domain.EventCheckIn:
		b.CheckedInAt = &now
		if req.StaffID != "" {
			staff := req.StaffID
			b.CheckedInBy = &staff
		}
	case domain.EventCheckOut:
		b.CheckedOutAt = &now
		if req.StaffID != "" {
			staff := req.StaffID
			b.CheckedOutBy = &staff
		}
	}

	updateQuery := `UPDATE bookings
					SET status = $3, cancel_reason = $4, checked_in_by = $5, checked_out_by = $6,
						checked_in_at = $7, checked_out_at = $8, cancelled_at = $9, updated_at = $10
					WHERE id = $1 AND tenant_id = $2`
	if _, err = tx.ExecContext(
		ctx, updateQuery, b.ID, b.TenantID,
		b.Status, b.CancelReason, b.CheckedInBy, b.CheckedOutBy,
		b.CheckedInAt, b.CheckedOutAt, b.CancelledAt, b.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1 AND tenant_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = scanBooking(row.Scan, &b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListBySchedule(ctx context.Context, tenantID, scheduleID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE schedule_id=$1 AND tenant_id=$2
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, scheduleID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by schedule: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// CancelStalePending cancels pending bookings whose hold window ran out,
// releasing their capacity by the status flip alone.
func (r *BookingRepository) CancelStalePending(ctx context.Context, hold time.Duration) ([]*domain.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, cancel_reason = $3, cancelled_at = NOW(), updated_at = NOW()
		WHERE status = $1
		  AND created_at + make_interval(secs => $4) < NOW()
		RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		"booking hold expired", hold.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(...any) error, b *domain.Booking) error {
	return scan(
		&b.ID, &b.TenantID, &b.LocationID, &b.ScheduleID, &b.MemberID, &b.ParticipantCount, &b.Status,
		&b.TotalAmount, &b.AmountPaid, &b.BalanceDue, &b.PaymentStatus,
		&b.Notes, &b.CancelReason, &b.CheckedInBy, &b.CheckedOutBy,
		&b.CheckedInAt, &b.CheckedOutAt, &b.CancelledAt, &b.CreatedAt, &b.UpdatedAt,
	)
}
