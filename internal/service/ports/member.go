package ports

import (
	"context"

	"github.com/avelins/slotkeeper/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Member, error)
	List(ctx context.Context, tenantID string) ([]*domain.Member, error)
}
