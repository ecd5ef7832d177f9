package ports

import (
	"context"

	"github.com/avelins/slotkeeper/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Schedule, error)
	List(ctx context.Context, tenantID string) ([]*domain.Schedule, error)
	GetAvailability(ctx context.Context, tenantID, id string) (*domain.ScheduleAvailability, error)
}
