package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avelins/slotkeeper/internal/auth"
	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type TenantSvc interface {
	Create(ctx context.Context, input domain.CreateTenantInput) (*domain.Tenant, error)
}

type ScheduleSvc interface {
	Create(ctx context.Context, tenantID string, input domain.CreateScheduleInput) (*domain.Schedule, error)
	List(ctx context.Context, tenantID string) ([]*domain.Schedule, error)
	GetAvailability(ctx context.Context, tenantID, id string) (*domain.ScheduleAvailability, error)
}

type MemberSvc interface {
	Create(ctx context.Context, tenantID string, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context, tenantID string) ([]*domain.Member, error)
}

type BookingSvc interface {
	Create(ctx context.Context, tenantID string, input domain.CreateBookingInput) (*domain.Booking, error)
	Confirm(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error)
	CheckIn(ctx context.Context, tenantID, bookingID, staffID string) (*domain.Booking, error)
	CheckOut(ctx context.Context, tenantID, bookingID, staffID string) (*domain.Booking, error)
	Cancel(ctx context.Context, tenantID, bookingID, reason string) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, tenantID, bookingID string) (*domain.Booking, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error)
	ListBySchedule(ctx context.Context, tenantID, scheduleID string) ([]*domain.Booking, error)
}

type PaymentSvc interface {
	Record(ctx context.Context, tenantID string, input domain.RecordPaymentInput) (*domain.Payment, error)
	Refund(ctx context.Context, tenantID string, input domain.RefundPaymentInput) (*domain.Payment, error)
	ListByBooking(ctx context.Context, tenantID, bookingID string) ([]*domain.Payment, error)
}

type Handler struct {
	tenantService   TenantSvc
	scheduleService ScheduleSvc
	memberService   MemberSvc
	bookingService  BookingSvc
	paymentService  PaymentSvc
}

func NewHandler(
	tenantService TenantSvc,
	scheduleService ScheduleSvc,
	memberService MemberSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
) *Handler {
	return &Handler{
		tenantService:   tenantService,
		scheduleService: scheduleService,
		memberService:   memberService,
		bookingService:  bookingService,
		paymentService:  paymentService,
	}
}

// Tenants

func (h *Handler) SignupTenant(c *ginext.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), domain.CreateTenantInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := auth.GenerateToken(tenant.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant, token))
}

// Schedules

func (h *Handler) CreateSchedule(c *ginext.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_at format, expected RFC3339",
		})
		return
	}

	price, err := decimal.NewFromString(req.PricePerParticipant)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_per_participant"})
		return
	}

	input := domain.CreateScheduleInput{
		LocationID:          req.LocationID,
		StartAt:             startAt,
		MaxParticipants:     req.MaxParticipants,
		PricePerParticipant: price,
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), auth.TenantID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScheduleResponse(schedule))
}

func (h *Handler) ListSchedules(c *ginext.Context) {
	schedules, err := h.scheduleService.List(c.Request.Context(), auth.TenantID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		resp = append(resp, dto.ToScheduleResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSchedule(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	availability, err := h.scheduleService.GetAvailability(c.Request.Context(), auth.TenantID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleAvailabilityResponse(availability))
}

func (h *Handler) ListScheduleBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	bookings, err := h.bookingService.ListBySchedule(c.Request.Context(), auth.TenantID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMemberInput{
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	}

	member, err := h.memberService.Create(c.Request.Context(), auth.TenantID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context(), auth.TenantID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		ScheduleID:       req.ScheduleID,
		MemberID:         req.MemberID,
		ParticipantCount: req.ParticipantCount,
		Notes:            req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), auth.TenantID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	tenantID := auth.TenantID(c)
	booking, err := h.bookingService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	payments, err := h.paymentService.ListByBooking(c.Request.Context(), tenantID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(booking, payments))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), auth.TenantID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckInBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CheckIn(c.Request.Context(), auth.TenantID(c), id, req.StaffID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckOutBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CheckOut(c.Request.Context(), auth.TenantID(c), id, req.StaffID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	// cancellation reason is optional, an empty body is fine
	var req dto.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	booking, err := h.bookingService.Cancel(c.Request.Context(), auth.TenantID(c), id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) MarkNoShow(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.MarkNoShow(c.Request.Context(), auth.TenantID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Payments

func (h *Handler) RecordPayment(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}

	input := domain.RecordPaymentInput{
		BookingID:      bookingID,
		Amount:         amount,
		Kind:           domain.PaymentKind(req.Kind),
		Method:         req.Method,
		Notes:          req.Notes,
		FailureReason:  req.FailureReason,
		IdempotencyKey: req.IdempotencyKey,
	}

	payment, err := h.paymentService.Record(c.Request.Context(), auth.TenantID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	paymentID := c.Param("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.RefundPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}

	input := domain.RefundPaymentInput{
		PaymentID: paymentID,
		Amount:    amount,
	}

	payment, err := h.paymentService.Refund(c.Request.Context(), auth.TenantID(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var capacityErr *domain.CapacityExceededError
	var transitionErr *domain.InvalidTransitionError
	var refundErr *domain.RefundExceedsPaymentError

	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		// same answer whether the entity belongs to another tenant or
		// does not exist at all
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "access denied"})

	case errors.As(err, &capacityErr):
		available := capacityErr.Available
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:     capacityErr.Error(),
			Available: &available,
		})

	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:         transitionErr.Error(),
			CurrentStatus: string(transitionErr.Current),
		})

	case errors.As(err, &refundErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:      refundErr.Error(),
			Refundable: refundErr.Refundable.StringFixed(2),
		})

	case errors.Is(err, domain.ErrPaymentNotFinal):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrDuplicateTenant):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrLockTimeout):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
