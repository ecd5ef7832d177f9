package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/metrics"
	"github.com/avelins/slotkeeper/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// PaymentService is the coordinator entry point for the payment ledger.
// The tenant check happens against the booking the payment belongs to,
// inside the same transaction as the ledger mutation.
type PaymentService struct {
	repo   ports.PaymentRepo
	logger logger.Logger
}

func NewPaymentService(repo ports.PaymentRepo, logger logger.Logger) *PaymentService {
	return &PaymentService{repo: repo, logger: logger}
}

func (s *PaymentService) Record(ctx context.Context, tenantID string, input domain.RecordPaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Kind != domain.PaymentKindPayment && input.Kind != domain.PaymentKindDeposit {
		return nil, fmt.Errorf("%w: kind must be payment or deposit", domain.ErrValidation)
	}
	if input.Method == "" {
		return nil, fmt.Errorf("%w: method is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		BookingID: input.BookingID,
		Amount:    input.Amount,
		Kind:      input.Kind,
		Method:    input.Method,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.IdempotencyKey != "" {
		key := input.IdempotencyKey
		payment.IdempotencyKey = &key
	}
	if input.FailureReason != "" {
		reason := input.FailureReason
		payment.FailureReason = &reason
	}

	recorded, err := s.repo.Record(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if recorded.State == domain.PaymentStateFailed {
		metrics.PaymentsFailed.WithLabelValues(tenantID).Inc()
		s.logger.Info("payment declined",
			logger.String("payment_id", recorded.ID),
			logger.String("payment_number", recorded.PaymentNumber),
			logger.String("booking_id", recorded.BookingID),
			logger.String("tenant_id", tenantID),
		)
		return recorded, nil
	}

	metrics.PaymentsRecorded.WithLabelValues(tenantID).Inc()
	s.logger.Info("payment recorded",
		logger.String("payment_id", recorded.ID),
		logger.String("payment_number", recorded.PaymentNumber),
		logger.String("booking_id", recorded.BookingID),
		logger.String("tenant_id", tenantID),
		logger.String("amount", recorded.Amount.StringFixed(2)),
	)

	return recorded, nil
}

func (s *PaymentService) Refund(ctx context.Context, tenantID string, input domain.RefundPaymentInput) (*domain.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	refund := &domain.Payment{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Amount:    input.Amount,
		Kind:      domain.PaymentKindRefund,
		CreatedAt: now,
		UpdatedAt: now,
	}

	recorded, err := s.repo.Refund(ctx, tenantID, input.PaymentID, refund)
	if err != nil {
		return nil, fmt.Errorf("refund payment: %w", err)
	}

	metrics.RefundsRecorded.WithLabelValues(tenantID).Inc()
	s.logger.Info("refund recorded",
		logger.String("payment_id", recorded.ID),
		logger.String("original_payment_id", input.PaymentID),
		logger.String("tenant_id", tenantID),
		logger.String("amount", recorded.Amount.StringFixed(2)),
	)

	return recorded, nil
}

func (s *PaymentService) ListByBooking(ctx context.Context, tenantID, bookingID string) ([]*domain.Payment, error) {
	return s.repo.ListByBooking(ctx, tenantID, bookingID)
}
