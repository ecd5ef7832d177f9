package ports

import (
	"context"

	"github.com/avelins/slotkeeper/internal/domain"
)

type TenantRepo interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Suspend(ctx context.Context, id string) error
}
