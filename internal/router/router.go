package router

import (
	"net/http"

	"github.com/avelins/slotkeeper/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignupTenant(c *ginext.Context)
	CreateSchedule(c *ginext.Context)
	ListSchedules(c *ginext.Context)
	GetSchedule(c *ginext.Context)
	ListScheduleBookings(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CheckInBooking(c *ginext.Context)
	CheckOutBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	MarkNoShow(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Tenant signup is the only unauthenticated API route.
	router.POST("/api/tenants", h.SignupTenant)

	api := router.Group("/api")
	api.Use(authMW)
	{
		// Schedules
		api.POST("/schedules", h.CreateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.GET("/schedules/:id/bookings", h.ListScheduleBookings)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/check-in", h.CheckInBooking)
		api.POST("/bookings/:id/check-out", h.CheckOutBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/no-show", h.MarkNoShow)

		// Payments
		api.POST("/bookings/:id/payments", h.RecordPayment)
		api.POST("/payments/:id/refund", h.RefundPayment)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metrics.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
