package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo  *mocks.MockBookingRepo
	scheduleRepo *mocks.MockScheduleRepo
	memberRepo   *mocks.MockMemberRepo
	notifier     *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo:  mocks.NewMockBookingRepo(t),
		scheduleRepo: mocks.NewMockScheduleRepo(t),
		memberRepo:   mocks.NewMockMemberRepo(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(m.bookingRepo, m.scheduleRepo, m.memberRepo, m.notifier, 15*time.Minute, newTestLogger(t))
	return svc, m
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, m := newBookingService(t)

	schedule := &domain.Schedule{
		ID:                  "s1",
		TenantID:            "t1",
		LocationID:          "loc-1",
		PricePerParticipant: decimal.RequireFromString("40.00"),
	}
	member := &domain.Member{ID: "m1", TenantID: "t1", Name: "alice"}

	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "s1",
		MemberID:         "m1",
		ParticipantCount: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "t1", booking.TenantID)
	assert.Equal(t, "loc-1", booking.LocationID)
	assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("120.00")))
	assert.True(t, booking.AmountPaid.IsZero())
	assert.True(t, booking.BalanceDue.Equal(booking.TotalAmount))
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Create_InvalidCount(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "s1",
		MemberID:         "m1",
		ParticipantCount: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_ForeignSchedule(t *testing.T) {
	svc, m := newBookingService(t)

	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "other").Return(nil, domain.ErrAccessDenied)

	_, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "other",
		MemberID:         "m1",
		ParticipantCount: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Create_ForeignMember(t *testing.T) {
	svc, m := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", TenantID: "t1", PricePerParticipant: decimal.Zero}
	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "stranger").Return(nil, domain.ErrAccessDenied)

	_, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "s1",
		MemberID:         "stranger",
		ParticipantCount: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Create_CapacityExceeded(t *testing.T) {
	svc, m := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", TenantID: "t1", PricePerParticipant: decimal.Zero}
	member := &domain.Member{ID: "m1", TenantID: "t1"}

	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.CapacityExceededError{Requested: 4, Available: 2})

	_, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "s1",
		MemberID:         "m1",
		ParticipantCount: 4,
	})

	require.Error(t, err)
	var capErr *domain.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Available)
}

func TestBookingService_Create_LockTimeout(t *testing.T) {
	svc, m := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", TenantID: "t1", PricePerParticipant: decimal.Zero}
	member := &domain.Member{ID: "m1", TenantID: "t1"}

	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member, nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrLockTimeout)

	_, err := svc.Create(context.Background(), "t1", domain.CreateBookingInput{
		ScheduleID:       "s1",
		MemberID:         "m1",
		ParticipantCount: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockTimeout)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:         "b1",
		TenantID:   "t1",
		ScheduleID: "s1",
		MemberID:   "m1",
		Status:     domain.BookingStatusConfirmed,
	}
	member := &domain.Member{ID: "m1", TenantID: "t1"}
	schedule := &domain.Schedule{ID: "s1", TenantID: "t1"}

	m.bookingRepo.EXPECT().Transition(mock.Anything, domain.TransitionRequest{
		TenantID:  "t1",
		BookingID: "b1",
		Event:     domain.EventConfirm,
	}).Return(booking, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member, nil)
	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, member, schedule).Return()

	result, err := svc.Confirm(context.Background(), "t1", "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Confirm_InvalidTransition(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().Transition(mock.Anything, mock.Anything).
		Return(nil, &domain.InvalidTransitionError{
			Current: domain.BookingStatusCancelled,
			Event:   domain.EventConfirm,
		})

	_, err := svc.Confirm(context.Background(), "t1", "b1")

	require.Error(t, err)
	var trErr *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &trErr)
}

func TestBookingService_CheckIn_PassesStaff(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCheckedIn}
	m.bookingRepo.EXPECT().Transition(mock.Anything, domain.TransitionRequest{
		TenantID:  "t1",
		BookingID: "b1",
		Event:     domain.EventCheckIn,
		StaffID:   "staff-7",
	}).Return(booking, nil)

	result, err := svc.CheckIn(context.Background(), "t1", "b1", "staff-7")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCheckedIn, result.Status)
}

func TestBookingService_Cancel_Notifies(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{
		ID:         "b1",
		TenantID:   "t1",
		ScheduleID: "s1",
		MemberID:   "m1",
		Status:     domain.BookingStatusCancelled,
	}
	member := &domain.Member{ID: "m1", TenantID: "t1"}
	schedule := &domain.Schedule{ID: "s1", TenantID: "t1"}

	m.bookingRepo.EXPECT().Transition(mock.Anything, domain.TransitionRequest{
		TenantID:  "t1",
		BookingID: "b1",
		Event:     domain.EventCancel,
		Reason:    "changed plans",
	}).Return(booking, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member, nil)
	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, member, schedule).Return()

	result, err := svc.Cancel(context.Background(), "t1", "b1", "changed plans")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_MarkNoShow_Success(t *testing.T) {
	svc, m := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusNoShow}
	m.bookingRepo.EXPECT().Transition(mock.Anything, domain.TransitionRequest{
		TenantID:  "t1",
		BookingID: "b1",
		Event:     domain.EventNoShow,
	}).Return(booking, nil)

	result, err := svc.MarkNoShow(context.Background(), "t1", "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusNoShow, result.Status)
}

func TestBookingService_ListBySchedule_ChecksTenant(t *testing.T) {
	svc, m := newBookingService(t)

	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(nil, domain.ErrAccessDenied)

	_, err := svc.ListBySchedule(context.Background(), "t1", "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_CancelStale_Success(t *testing.T) {
	svc, m := newBookingService(t)

	cancelled := []*domain.Booking{
		{ID: "b1", TenantID: "t1", ScheduleID: "s1", MemberID: "m1"},
		{ID: "b2", TenantID: "t2", ScheduleID: "s2", MemberID: "m2"},
	}
	member1 := &domain.Member{ID: "m1", TenantID: "t1"}
	member2 := &domain.Member{ID: "m2", TenantID: "t2"}
	schedule1 := &domain.Schedule{ID: "s1", TenantID: "t1"}
	schedule2 := &domain.Schedule{ID: "s2", TenantID: "t2"}

	m.bookingRepo.EXPECT().CancelStalePending(mock.Anything, 15*time.Minute).Return(cancelled, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t1", "m1").Return(member1, nil)
	m.memberRepo.EXPECT().GetByID(mock.Anything, "t2", "m2").Return(member2, nil)
	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t1", "s1").Return(schedule1, nil)
	m.scheduleRepo.EXPECT().GetByID(mock.Anything, "t2", "s2").Return(schedule2, nil)
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, member1, schedule1).Return()
	m.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, member2, schedule2).Return()

	result, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_CancelStale_NoneStale(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().CancelStalePending(mock.Anything, 15*time.Minute).Return(nil, nil)

	result, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_CancelStale_RepoError(t *testing.T) {
	svc, m := newBookingService(t)

	m.bookingRepo.EXPECT().CancelStalePending(mock.Anything, 15*time.Minute).
		Return(nil, errors.New("db error"))

	_, err := svc.CancelStale(context.Background())

	require.Error(t, err)
}
