package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/google/uuid"
)

type ScheduleService struct {
	repo ports.ScheduleRepo
}

func NewScheduleService(repo ports.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) Create(ctx context.Context, tenantID string, input domain.CreateScheduleInput) (*domain.Schedule, error) {
	if input.LocationID == "" {
		return nil, fmt.Errorf("%w: location_id is required", domain.ErrValidation)
	}
	if input.StartAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: start_at must be in the future", domain.ErrValidation)
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, fmt.Errorf("%w: max_participants must be positive or omitted for unbounded", domain.ErrValidation)
	}
	if input.PricePerParticipant.IsNegative() {
		return nil, fmt.Errorf("%w: price_per_participant must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	schedule := &domain.Schedule{
		ID:                  uuid.New().String(),
		TenantID:            tenantID,
		LocationID:          input.LocationID,
		StartAt:             input.StartAt,
		MaxParticipants:     input.MaxParticipants,
		PricePerParticipant: input.PricePerParticipant,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	return schedule, nil
}

func (s *ScheduleService) List(ctx context.Context, tenantID string) ([]*domain.Schedule, error) {
	return s.repo.List(ctx, tenantID)
}

func (s *ScheduleService) GetAvailability(ctx context.Context, tenantID, id string) (*domain.ScheduleAvailability, error) {
	return s.repo.GetAvailability(ctx, tenantID, id)
}
