package service

import (
	"context"
	"testing"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_Create_Success(t *testing.T) {
	repo := mocks.NewMockScheduleRepo(t)
	svc := NewScheduleService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	max := 8
	schedule, err := svc.Create(context.Background(), "t1", domain.CreateScheduleInput{
		LocationID:          "reef-north",
		StartAt:             time.Now().Add(48 * time.Hour),
		MaxParticipants:     &max,
		PricePerParticipant: decimal.RequireFromString("75.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "t1", schedule.TenantID)
	assert.Equal(t, "reef-north", schedule.LocationID)
	require.NotNil(t, schedule.MaxParticipants)
	assert.Equal(t, 8, *schedule.MaxParticipants)
	assert.False(t, schedule.Unbounded())
}

func TestScheduleService_Create_Unbounded(t *testing.T) {
	repo := mocks.NewMockScheduleRepo(t)
	svc := NewScheduleService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	schedule, err := svc.Create(context.Background(), "t1", domain.CreateScheduleInput{
		LocationID:          "open-water",
		StartAt:             time.Now().Add(24 * time.Hour),
		PricePerParticipant: decimal.Zero,
	})

	require.NoError(t, err)
	assert.Nil(t, schedule.MaxParticipants)
	assert.True(t, schedule.Unbounded())
}

func TestScheduleService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockScheduleRepo(t)
	svc := NewScheduleService(repo)

	zero := 0
	tests := []struct {
		name  string
		input domain.CreateScheduleInput
	}{
		{
			name: "missing location",
			input: domain.CreateScheduleInput{
				StartAt:             time.Now().Add(time.Hour),
				PricePerParticipant: decimal.Zero,
			},
		},
		{
			name: "start in the past",
			input: domain.CreateScheduleInput{
				LocationID:          "loc",
				StartAt:             time.Now().Add(-time.Hour),
				PricePerParticipant: decimal.Zero,
			},
		},
		{
			name: "zero capacity",
			input: domain.CreateScheduleInput{
				LocationID:          "loc",
				StartAt:             time.Now().Add(time.Hour),
				MaxParticipants:     &zero,
				PricePerParticipant: decimal.Zero,
			},
		},
		{
			name: "negative price",
			input: domain.CreateScheduleInput{
				LocationID:          "loc",
				StartAt:             time.Now().Add(time.Hour),
				PricePerParticipant: decimal.RequireFromString("-1.00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "t1", tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestScheduleService_GetAvailability(t *testing.T) {
	repo := mocks.NewMockScheduleRepo(t)
	svc := NewScheduleService(repo)

	available := 5
	availability := &domain.ScheduleAvailability{
		Schedule:  domain.Schedule{ID: "s1", TenantID: "t1"},
		Booked:    3,
		Available: &available,
	}
	repo.EXPECT().GetAvailability(mock.Anything, "t1", "s1").Return(availability, nil)

	result, err := svc.GetAvailability(context.Background(), "t1", "s1")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Booked)
	require.NotNil(t, result.Available)
	assert.Equal(t, 5, *result.Available)
}
