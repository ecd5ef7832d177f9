package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TenantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTenantRepo(db *dbpg.DB) *TenantRepository {
	return &TenantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	query := `INSERT INTO tenants (id, name, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.Name, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isPGCode(err, pgUniqueViolation) {
			return domain.ErrDuplicateTenant
		}
		return fmt.Errorf("insert tenant: %w", err)
	}

	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	query := `SELECT id, name, status, created_at, updated_at
			  FROM tenants
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}

	var t domain.Tenant
	if err = row.Scan(&t.ID, &t.Name, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("scan tenant: %w", err)
	}

	return &t, nil
}

func (r *TenantRepository) Suspend(ctx context.Context, id string) error {
	query := `UPDATE tenants SET status=$2, updated_at=now() WHERE id=$1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.TenantStatusSuspended)
	if err != nil {
		return fmt.Errorf("suspend tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("tenant rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTenantNotFound
	}

	return nil
}
