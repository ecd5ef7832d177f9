package dto

import (
	"time"

	"github.com/avelins/slotkeeper/internal/domain"
)

type TenantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Token     string `json:"token"`
	CreatedAt string `json:"created_at"`
}

type ScheduleResponse struct {
	ID                  string `json:"id"`
	LocationID          string `json:"location_id"`
	StartAt             string `json:"start_at"`
	MaxParticipants     *int   `json:"max_participants,omitempty"`
	PricePerParticipant string `json:"price_per_participant"`
	CreatedAt           string `json:"created_at"`
}

type ScheduleAvailabilityResponse struct {
	Schedule  ScheduleResponse `json:"schedule"`
	Booked    int              `json:"booked"`
	Available *int             `json:"available,omitempty"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	ScheduleID       string  `json:"schedule_id"`
	MemberID         string  `json:"member_id"`
	LocationID       string  `json:"location_id"`
	ParticipantCount int     `json:"participant_count"`
	Status           string  `json:"status"`
	TotalAmount      string  `json:"total_amount"`
	AmountPaid       string  `json:"amount_paid"`
	BalanceDue       string  `json:"balance_due"`
	PaymentStatus    string  `json:"payment_status"`
	Notes            string  `json:"notes,omitempty"`
	CancelReason     *string `json:"cancel_reason,omitempty"`
	CheckedInAt      *string `json:"checked_in_at,omitempty"`
	CheckedOutAt     *string `json:"checked_out_at,omitempty"`
	CancelledAt      *string `json:"cancelled_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type BookingDetailsResponse struct {
	Booking  BookingResponse   `json:"booking"`
	Payments []PaymentResponse `json:"payments"`
}

type PaymentResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	PaymentNumber     string  `json:"payment_number"`
	Amount            string  `json:"amount"`
	Kind              string  `json:"kind"`
	State             string  `json:"state"`
	Method            string  `json:"method"`
	OriginalPaymentID *string `json:"original_payment_id,omitempty"`
	FailureReason     *string `json:"failure_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ErrorResponse carries enough detail for the caller to decide next
// action: remaining capacity, current booking status, or refundable
// amount, depending on what failed.
type ErrorResponse struct {
	Error         string `json:"error"`
	Available     *int   `json:"available,omitempty"`
	CurrentStatus string `json:"current_status,omitempty"`
	Refundable    string `json:"refundable,omitempty"`
}

func ToTenantResponse(t *domain.Tenant, token string) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    string(t.Status),
		Token:     token,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToScheduleResponse(s *domain.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:                  s.ID,
		LocationID:          s.LocationID,
		StartAt:             s.StartAt.Format(time.RFC3339),
		MaxParticipants:     s.MaxParticipants,
		PricePerParticipant: s.PricePerParticipant.StringFixed(2),
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
	}
}

func ToScheduleAvailabilityResponse(a *domain.ScheduleAvailability) ScheduleAvailabilityResponse {
	return ScheduleAvailabilityResponse{
		Schedule:  ToScheduleResponse(&a.Schedule),
		Booked:    a.Booked,
		Available: a.Available,
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		ScheduleID:       b.ScheduleID,
		MemberID:         b.MemberID,
		LocationID:       b.LocationID,
		ParticipantCount: b.ParticipantCount,
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount.StringFixed(2),
		AmountPaid:       b.AmountPaid.StringFixed(2),
		BalanceDue:       b.BalanceDue.StringFixed(2),
		PaymentStatus:    string(b.PaymentStatus),
		Notes:            b.Notes,
		CancelReason:     b.CancelReason,
		CheckedInAt:      formatTimePtr(b.CheckedInAt),
		CheckedOutAt:     formatTimePtr(b.CheckedOutAt),
		CancelledAt:      formatTimePtr(b.CancelledAt),
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingDetailsResponse(b *domain.Booking, payments []*domain.Payment) BookingDetailsResponse {
	resp := BookingDetailsResponse{
		Booking:  ToBookingResponse(b),
		Payments: make([]PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, ToPaymentResponse(p))
	}
	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		BookingID:         p.BookingID,
		PaymentNumber:     p.PaymentNumber,
		Amount:            p.Amount.StringFixed(2),
		Kind:              string(p.Kind),
		State:             string(p.State),
		Method:            p.Method,
		OriginalPaymentID: p.OriginalPaymentID,
		FailureReason:     p.FailureReason,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
