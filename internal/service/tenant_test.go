package service

import (
	"context"
	"testing"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTenantService_Create_Success(t *testing.T) {
	repo := mocks.NewMockTenantRepo(t)
	svc := NewTenantService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	tenant, err := svc.Create(context.Background(), domain.CreateTenantInput{Name: "acme-dive"})

	require.NoError(t, err)
	assert.Equal(t, "acme-dive", tenant.Name)
	assert.Equal(t, domain.TenantStatusActive, tenant.Status)
	assert.NotEmpty(t, tenant.ID)
}

func TestTenantService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockTenantRepo(t)
	svc := NewTenantService(repo)

	_, err := svc.Create(context.Background(), domain.CreateTenantInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTenantService_Create_DuplicateName(t *testing.T) {
	repo := mocks.NewMockTenantRepo(t)
	svc := NewTenantService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateTenant)

	_, err := svc.Create(context.Background(), domain.CreateTenantInput{Name: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateTenant)
}

func TestTenantService_Suspend(t *testing.T) {
	repo := mocks.NewMockTenantRepo(t)
	svc := NewTenantService(repo)

	repo.EXPECT().Suspend(mock.Anything, "t1").Return(nil)

	require.NoError(t, svc.Suspend(context.Background(), "t1"))
}
