package dto

type CreateTenantRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateScheduleRequest struct {
	LocationID          string `json:"location_id" binding:"required"`
	StartAt             string `json:"start_at" binding:"required"`
	MaxParticipants     *int   `json:"max_participants"`
	PricePerParticipant string `json:"price_per_participant" binding:"required"`
}

type CreateMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateBookingRequest struct {
	ScheduleID       string `json:"schedule_id" binding:"required,uuid"`
	MemberID         string `json:"member_id" binding:"required,uuid"`
	ParticipantCount int    `json:"participant_count" binding:"required"`
	Notes            string `json:"notes"`
}

type CheckInRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

type CheckOutRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type RecordPaymentRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Kind           string `json:"kind" binding:"required,oneof=payment deposit"`
	Method         string `json:"method" binding:"required"`
	Notes          string `json:"notes"`
	// FailureReason reports a declined attempt: the payment is stored
	// failed and booking totals stay untouched.
	FailureReason  string `json:"failure_reason"`
	IdempotencyKey string `json:"idempotency_key"`
}

type RefundPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}
