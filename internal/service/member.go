package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/google/uuid"
)

type MemberService struct {
	repo ports.MemberRepo
}

func NewMemberService(repo ports.MemberRepo) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) Create(ctx context.Context, tenantID string, input domain.CreateMemberInput) (*domain.Member, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Name:           input.Name,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) List(ctx context.Context, tenantID string) ([]*domain.Member, error) {
	return s.repo.List(ctx, tenantID)
}
