package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/metrics"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// BookingService composes the capacity allocator, the booking state
// machine and the tenant scope into atomic use cases. Every entry point
// takes the acting tenant first; entity ids outside that tenant fail
// with ErrAccessDenied before any business logic runs.
type BookingService struct {
	bookingRepo  ports.BookingRepo
	scheduleRepo ports.ScheduleRepo
	memberRepo   ports.MemberRepo
	notifier     ports.BookingNotifier
	holdWindow   time.Duration
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	scheduleRepo ports.ScheduleRepo,
	memberRepo ports.MemberRepo,
	notifier ports.BookingNotifier,
	holdWindow time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
		notifier:     notifier,
		holdWindow:   holdWindow,
		logger:       logger,
	}
}

func (s *BookingService) Create(ctx context.Context, tenantID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.ParticipantCount <= 0 {
		return nil, fmt.Errorf("%w: participant_count must be positive", domain.ErrValidation)
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, tenantID, input.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}

	if _, err = s.memberRepo.GetByID(ctx, tenantID, input.MemberID); err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	total := schedule.PricePerParticipant.Mul(decimal.NewFromInt(int64(input.ParticipantCount)))

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		TenantID:         tenantID,
		LocationID:       schedule.LocationID,
		ScheduleID:       input.ScheduleID,
		MemberID:         input.MemberID,
		ParticipantCount: input.ParticipantCount,
		Status:           domain.BookingStatusPending,
		TotalAmount:      total,
		AmountPaid:       decimal.Zero,
		BalanceDue:       total,
		PaymentStatus:    domain.PaymentStatusPending,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		var capacity *domain.CapacityExceededError
		if errors.As(err, &capacity) {
			metrics.CapacityRejections.WithLabelValues(tenantID).Inc()
		}
		if errors.Is(err, domain.ErrLockTimeout) {
			metrics.LockTimeouts.WithLabelValues(tenantID).Inc()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.WithLabelValues(tenantID).Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("tenant_id", tenantID),
		logger.String("schedule_id", input.ScheduleID),
		logger.Int("participant_count", input.ParticipantCount),
	)

	return booking, nil
}

func (s *BookingService) Confirm(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, domain.TransitionRequest{
		TenantID:  tenantID,
		BookingID: bookingID,
		Event:     domain.EventConfirm,
	})
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("tenant_id", tenantID),
	)

	go s.notifyConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) CheckIn(ctx context.Context, tenantID, bookingID, staffID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, domain.TransitionRequest{
		TenantID:  tenantID,
		BookingID: bookingID,
		Event:     domain.EventCheckIn,
		StaffID:   staffID,
	})
	if err != nil {
		return nil, fmt.Errorf("check in booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) CheckOut(ctx context.Context, tenantID, bookingID, staffID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, domain.TransitionRequest{
		TenantID:  tenantID,
		BookingID: bookingID,
		Event:     domain.EventCheckOut,
		StaffID:   staffID,
	})
	if err != nil {
		return nil, fmt.Errorf("check out booking: %w", err)
	}

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, tenantID, bookingID, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, domain.TransitionRequest{
		TenantID:  tenantID,
		BookingID: bookingID,
		Event:     domain.EventCancel,
		Reason:    reason,
	})
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("tenant_id", tenantID),
	)

	go s.notifyCancelled(context.WithoutCancel(ctx), []*domain.Booking{booking})

	return booking, nil
}

func (s *BookingService) MarkNoShow(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, domain.TransitionRequest{
		TenantID:  tenantID,
		BookingID: bookingID,
		Event:     domain.EventNoShow,
	})
	if err != nil {
		return nil, fmt.Errorf("mark no-show: %w", err)
	}

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, tenantID, id)
}

func (s *BookingService) ListBySchedule(ctx context.Context, tenantID, scheduleID string) ([]*domain.Booking, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, tenantID, scheduleID); err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}
	return s.bookingRepo.ListBySchedule(ctx, tenantID, scheduleID)
}

// CancelStale cancels pending bookings older than the hold window,
// releasing their seats. Invoked by the scheduler.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStalePending(ctx, s.holdWindow)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyConfirmed(ctx context.Context, b *domain.Booking) {
	member, schedule, ok := s.notificationTargets(ctx, b)
	if !ok {
		return
	}
	s.notifier.NotifyBookingConfirmed(ctx, member, schedule)
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		member, schedule, ok := s.notificationTargets(ctx, b)
		if !ok {
			continue
		}
		s.notifier.NotifyBookingCancelled(ctx, member, schedule)
	}
}

func (s *BookingService) notificationTargets(ctx context.Context, b *domain.Booking) (*domain.Member, *domain.Schedule, bool) {
	member, err := s.memberRepo.GetByID(ctx, b.TenantID, b.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", b.MemberID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, b.TenantID, b.ScheduleID)
	if err != nil {
		s.logger.Error("failed to get schedule for notification",
			logger.String("schedule_id", b.ScheduleID),
			logger.String("error", err.Error()),
		)
		return nil, nil, false
	}

	return member, schedule, true
}
