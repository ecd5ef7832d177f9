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

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (id, tenant_id, location_id, start_at, max_participants, price_per_participant, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.TenantID, s.LocationID, s.StartAt,
		s.MaxParticipants, s.PricePerParticipant, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Schedule, error) {
	query := `SELECT id, tenant_id, location_id, start_at, max_participants, price_per_participant, created_at, updated_at
			  FROM schedules
			  WHERE id=$1 AND tenant_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	var s domain.Schedule
	if err = scanSchedule(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return &s, nil
}

func (r *ScheduleRepository) List(ctx context.Context, tenantID string) ([]*domain.Schedule, error) {
	query := `SELECT id, tenant_id, location_id, start_at, max_participants, price_per_participant, created_at, updated_at
			  FROM schedules
			  WHERE tenant_id=$1
			  ORDER BY start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var res []*domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		if err = scanSchedule(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// GetAvailability derives the booked count by summing active bookings.
// The count is never stored, so it cannot drift.
func (r *ScheduleRepository) GetAvailability(ctx context.Context, tenantID, id string) (*domain.ScheduleAvailability, error) {
	query := `
		SELECT
			s.id, s.tenant_id, s.location_id, s.start_at,
			s.max_participants, s.price_per_participant, s.created_at, s.updated_at,
			COALESCE(SUM(b.participant_count), 0) AS booked
		FROM schedules s
		LEFT JOIN bookings b
			ON b.schedule_id = s.id
			AND b.tenant_id = s.tenant_id
			AND b.status = ANY($3)
		WHERE s.id = $1 AND s.tenant_id = $2
		GROUP BY s.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, tenantID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var a domain.ScheduleAvailability
	err = row.Scan(
		&a.Schedule.ID, &a.Schedule.TenantID, &a.Schedule.LocationID, &a.Schedule.StartAt,
		&a.Schedule.MaxParticipants, &a.Schedule.PricePerParticipant,
		&a.Schedule.CreatedAt, &a.Schedule.UpdatedAt,
		&a.Booked,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccessDenied
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}

	if a.Schedule.MaxParticipants != nil {
		available := *a.Schedule.MaxParticipants - a.Booked
		a.Available = &available
	}

	return &a, nil
}

func scanSchedule(scan func(...any) error, s *domain.Schedule) error {
	return scan(
		&s.ID, &s.TenantID, &s.LocationID, &s.StartAt,
		&s.MaxParticipants, &s.PricePerParticipant, &s.CreatedAt, &s.UpdatedAt,
	)
}
