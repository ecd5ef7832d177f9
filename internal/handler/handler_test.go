package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelins/slotkeeper/internal/auth"
	"github.com/avelins/slotkeeper/internal/domain"
	"github.com/avelins/slotkeeper/internal/handler/dto"
	hmocks "github.com/avelins/slotkeeper/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testTenantID = "11111111-1111-1111-1111-111111111111"

type svcMocks struct {
	tenant   *hmocks.MockTenantSvc
	schedule *hmocks.MockScheduleSvc
	member   *hmocks.MockMemberSvc
	booking  *hmocks.MockBookingSvc
	payment  *hmocks.MockPaymentSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		tenant:   hmocks.NewMockTenantSvc(t),
		schedule: hmocks.NewMockScheduleSvc(t),
		member:   hmocks.NewMockMemberSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		payment:  hmocks.NewMockPaymentSvc(t),
	}

	h := NewHandler(m.tenant, m.schedule, m.member, m.booking, m.payment)

	r := ginext.New("test")
	r.POST("/api/tenants", h.SignupTenant)

	api := r.Group("/api")
	api.Use(func(c *ginext.Context) {
		c.Set("tenant_id", testTenantID)
		c.Next()
	})
	{
		api.POST("/schedules", h.CreateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.GET("/schedules/:id/bookings", h.ListScheduleBookings)
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/check-in", h.CheckInBooking)
		api.POST("/bookings/:id/check-out", h.CheckOutBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/no-show", h.MarkNoShow)
		api.POST("/bookings/:id/payments", h.RecordPayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Tenants ---

func TestHandler_SignupTenant_Success(t *testing.T) {
	auth.SetSecret("test-secret")
	m, r := setupRouter(t)

	tenant := &domain.Tenant{
		ID:        uuid.New().String(),
		Name:      "acme-dive",
		Status:    domain.TenantStatusActive,
		CreatedAt: time.Now(),
	}
	m.tenant.EXPECT().Create(mock.Anything, domain.CreateTenantInput{Name: "acme-dive"}).Return(tenant, nil)

	w := doJSON(t, r, http.MethodPost, "/api/tenants", dto.CreateTenantRequest{Name: "acme-dive"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TenantResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "acme-dive", resp.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestHandler_SignupTenant_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tenants", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SignupTenant_DuplicateName(t *testing.T) {
	m, r := setupRouter(t)

	m.tenant.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateTenant)

	w := doJSON(t, r, http.MethodPost, "/api/tenants", dto.CreateTenantRequest{Name: "taken"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Schedules ---

func TestHandler_CreateSchedule_Success(t *testing.T) {
	m, r := setupRouter(t)

	schedule := &domain.Schedule{
		ID:                  uuid.New().String(),
		TenantID:            testTenantID,
		LocationID:          "reef-north",
		StartAt:             time.Now().Add(48 * time.Hour),
		PricePerParticipant: decimal.RequireFromString("75.00"),
		CreatedAt:           time.Now(),
	}
	m.schedule.EXPECT().Create(mock.Anything, testTenantID, mock.Anything).Return(schedule, nil)

	w := doJSON(t, r, http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		LocationID:          "reef-north",
		StartAt:             time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		PricePerParticipant: "75.00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reef-north", resp.LocationID)
	assert.Equal(t, "75.00", resp.PricePerParticipant)
}

func TestHandler_CreateSchedule_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		LocationID:          "reef-north",
		StartAt:             "not-a-date",
		PricePerParticipant: "75.00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSchedule_InvalidPrice(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/schedules", dto.CreateScheduleRequest{
		LocationID:          "reef-north",
		StartAt:             time.Now().Add(time.Hour).Format(time.RFC3339),
		PricePerParticipant: "abc",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSchedule_Success(t *testing.T) {
	m, r := setupRouter(t)

	scheduleID := uuid.New().String()
	available := 5
	availability := &domain.ScheduleAvailability{
		Schedule: domain.Schedule{
			ID:                  scheduleID,
			TenantID:            testTenantID,
			LocationID:          "reef-north",
			StartAt:             time.Now(),
			PricePerParticipant: decimal.Zero,
			CreatedAt:           time.Now(),
		},
		Booked:    3,
		Available: &available,
	}
	m.schedule.EXPECT().GetAvailability(mock.Anything, testTenantID, scheduleID).Return(availability, nil)

	w := doJSON(t, r, http.MethodGet, "/api/schedules/"+scheduleID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ScheduleAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Booked)
	require.NotNil(t, resp.Available)
	assert.Equal(t, 5, *resp.Available)
}

func TestHandler_GetSchedule_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/schedules/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSchedule_Foreign(t *testing.T) {
	m, r := setupRouter(t)

	scheduleID := uuid.New().String()
	m.schedule.EXPECT().GetAvailability(mock.Anything, testTenantID, scheduleID).
		Return(nil, domain.ErrAccessDenied)

	w := doJSON(t, r, http.MethodGet, "/api/schedules/"+scheduleID, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access denied", resp.Error)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	scheduleID := uuid.New().String()
	memberID := uuid.New().String()
	booking := &domain.Booking{
		ID:               uuid.New().String(),
		TenantID:         testTenantID,
		ScheduleID:       scheduleID,
		MemberID:         memberID,
		ParticipantCount: 2,
		Status:           domain.BookingStatusPending,
		TotalAmount:      decimal.RequireFromString("150.00"),
		AmountPaid:       decimal.Zero,
		BalanceDue:       decimal.RequireFromString("150.00"),
		PaymentStatus:    domain.PaymentStatusPending,
		CreatedAt:        time.Now(),
	}
	m.booking.EXPECT().Create(mock.Anything, testTenantID, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ScheduleID:       scheduleID,
		MemberID:         memberID,
		ParticipantCount: 2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "150.00", resp.BalanceDue)
}

func TestHandler_CreateBooking_CapacityExceeded(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, testTenantID, mock.Anything).
		Return(nil, &domain.CapacityExceededError{Requested: 4, Available: 1})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ScheduleID:       uuid.New().String(),
		MemberID:         uuid.New().String(),
		ParticipantCount: 4,
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Available)
	assert.Equal(t, 1, *resp.Available)
}

func TestHandler_CreateBooking_LockTimeout(t *testing.T) {
	m, r := setupRouter(t)

	m.booking.EXPECT().Create(mock.Anything, testTenantID, mock.Anything).
		Return(nil, domain.ErrLockTimeout)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", dto.CreateBookingRequest{
		ScheduleID:       uuid.New().String(),
		MemberID:         uuid.New().String(),
		ParticipantCount: 1,
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_ConfirmBooking_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Confirm(mock.Anything, testTenantID, bookingID).
		Return(nil, &domain.InvalidTransitionError{
			Current: domain.BookingStatusCancelled,
			Event:   domain.EventConfirm,
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.CurrentStatus)
}

func TestHandler_CheckInBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		TenantID:      testTenantID,
		Status:        domain.BookingStatusCheckedIn,
		TotalAmount:   decimal.Zero,
		AmountPaid:    decimal.Zero,
		BalanceDue:    decimal.Zero,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
	m.booking.EXPECT().CheckIn(mock.Anything, testTenantID, bookingID, "staff-7").Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/check-in", dto.CheckInRequest{StaffID: "staff-7"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checked_in", resp.Status)
}

func TestHandler_CheckInBooking_MissingStaff(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/check-in", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_WithReason(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		TenantID:      testTenantID,
		Status:        domain.BookingStatusCancelled,
		TotalAmount:   decimal.Zero,
		AmountPaid:    decimal.Zero,
		BalanceDue:    decimal.Zero,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
	m.booking.EXPECT().Cancel(mock.Anything, testTenantID, bookingID, "changed plans").Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelBookingRequest{Reason: "changed plans"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_WithPayments(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:            bookingID,
		TenantID:      testTenantID,
		Status:        domain.BookingStatusConfirmed,
		TotalAmount:   decimal.RequireFromString("100.00"),
		AmountPaid:    decimal.RequireFromString("40.00"),
		BalanceDue:    decimal.RequireFromString("60.00"),
		PaymentStatus: domain.PaymentStatusPartiallyPaid,
		CreatedAt:     time.Now(),
	}
	payments := []*domain.Payment{
		{
			ID:            uuid.New().String(),
			BookingID:     bookingID,
			PaymentNumber: "PAY-000001",
			Amount:        decimal.RequireFromString("40.00"),
			Kind:          domain.PaymentKindDeposit,
			State:         domain.PaymentStateSucceeded,
			Method:        "card",
			CreatedAt:     time.Now(),
		},
	}
	m.booking.EXPECT().GetByID(mock.Anything, testTenantID, bookingID).Return(booking, nil)
	m.payment.EXPECT().ListByBooking(mock.Anything, testTenantID, bookingID).Return(payments, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "partially_paid", resp.Booking.PaymentStatus)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "PAY-000001", resp.Payments[0].PaymentNumber)
}

// --- Payments ---

func TestHandler_RecordPayment_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		TenantID:      testTenantID,
		BookingID:     bookingID,
		PaymentNumber: "PAY-000002",
		Amount:        decimal.RequireFromString("50.00"),
		Kind:          domain.PaymentKindPayment,
		State:         domain.PaymentStateSucceeded,
		Method:        "card",
		CreatedAt:     time.Now(),
	}
	m.payment.EXPECT().Record(mock.Anything, testTenantID, mock.Anything).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/payments", dto.RecordPaymentRequest{
		Amount: "50.00",
		Kind:   "payment",
		Method: "card",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAY-000002", resp.PaymentNumber)
	assert.Equal(t, "succeeded", resp.State)
}

func TestHandler_RecordPayment_InvalidKind(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/payments", dto.RecordPaymentRequest{
		Amount: "50.00",
		Kind:   "refund",
		Method: "card",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecordPayment_InvalidAmount(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/payments", dto.RecordPaymentRequest{
		Amount: "abc",
		Kind:   "payment",
		Method: "card",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RefundPayment_ExceedsBound(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()
	m.payment.EXPECT().Refund(mock.Anything, testTenantID, mock.Anything).
		Return(nil, &domain.RefundExceedsPaymentError{
			Requested:  decimal.RequireFromString("80.00"),
			Refundable: decimal.RequireFromString("30.00"),
		})

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+paymentID+"/refund", dto.RefundPaymentRequest{Amount: "80.00"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "30.00", resp.Refundable)
}

func TestHandler_RefundPayment_NotFinal(t *testing.T) {
	m, r := setupRouter(t)

	paymentID := uuid.New().String()
	m.payment.EXPECT().Refund(mock.Anything, testTenantID, mock.Anything).
		Return(nil, domain.ErrPaymentNotFinal)

	w := doJSON(t, r, http.MethodPost, "/api/payments/"+paymentID+"/refund", dto.RefundPaymentRequest{Amount: "10.00"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RecordPayment_Declined(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	reason := "card declined"
	failed := &domain.Payment{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		PaymentNumber: "PAY-000003",
		Amount:        decimal.RequireFromString("25.00"),
		Kind:          domain.PaymentKindPayment,
		State:         domain.PaymentStateFailed,
		Method:        "card",
		FailureReason: &reason,
	}
	m.payment.EXPECT().Record(mock.Anything, testTenantID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, input domain.RecordPaymentInput) (*domain.Payment, error) {
			assert.Equal(t, "card declined", input.FailureReason)
			return failed, nil
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/payments", dto.RecordPaymentRequest{
		Amount:        "25.00",
		Kind:          "payment",
		Method:        "card",
		FailureReason: "card declined",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.PaymentStateFailed), resp.State)
	require.NotNil(t, resp.FailureReason)
	assert.Equal(t, "card declined", *resp.FailureReason)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().GetByID(mock.Anything, testTenantID, bookingID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
