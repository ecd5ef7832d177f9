package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/google/uuid"
)

type TenantService struct {
	repo ports.TenantRepo
}

func NewTenantService(repo ports.TenantRepo) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, input domain.CreateTenantInput) (*domain.Tenant, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Status:    domain.TenantStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}

	return tenant, nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return s.repo.GetByID(ctx, id)
}

// Suspend soft-disables a tenant; tenants are never hard-deleted.
func (s *TenantService) Suspend(ctx context.Context, id string) error {
	return s.repo.Suspend(ctx, id)
}
