package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/middleware"
	ucBooking "github.com/careconnect/care-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucBooking.CreateBooking
	confirm  *ucBooking.ConfirmBooking
	decline  *ucBooking.DeclineBooking
	cancel   *ucBooking.CancelBooking
	complete *ucBooking.CompleteBooking
	list     *ucBooking.ListBookings
	cfg      *config.Config
}

func NewAppointmentHandler(
	create *ucBooking.CreateBooking,
	confirm *ucBooking.ConfirmBooking,
	decline *ucBooking.DeclineBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	list *ucBooking.ListBookings,
	cfg *config.Config,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		confirm:  confirm,
		decline:  decline,
		cancel:   cancel,
		complete: complete,
		list:     list,
		cfg:      cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CaregiverUserID uint    `json:"caregiver_user_id" binding:"required"`
	Date            string  `json:"date" binding:"required"`
	Time            string  `json:"time" binding:"required"`
	WorkHours       float64 `json:"work_hours" binding:"required"`
	Notes           string  `json:"notes"`
}

// ======================================================
// CREATE (guided booking path)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	memberID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	out, err := h.create.Execute(ctx, ucBooking.CreateBookingInput{
		CaregiverUserID: req.CaregiverUserID,
		MemberUserID:    memberID,
		Date:            req.Date,
		Time:            req.Time,
		WorkHours:       req.WorkHours,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(ctx context.Context, userID, apID uint) (any, error) {
		return h.confirm.Execute(ctx, userID, apID)
	})
}

func (h *AppointmentHandler) Decline(c *gin.Context) {
	h.transition(c, func(ctx context.Context, userID, apID uint) (any, error) {
		return h.decline.Execute(ctx, userID, apID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx context.Context, userID, apID uint) (any, error) {
		return h.cancel.Execute(ctx, userID, apID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(ctx context.Context, userID, apID uint) (any, error) {
		return h.complete.Execute(ctx, userID, apID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	exec func(ctx context.Context, userID, appointmentID uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	ap, err := exec(ctx, userID, uint(appointmentID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if c.DefaultQuery("role", "member") == "caregiver" {
		apps, err := h.list.ForCaregiver(ctx, userID, c.Query("status"))
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		httpresp.List(c, apps)
		return
	}

	apps, err := h.list.ForMember(ctx, userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, apps)
}

func (h *AppointmentHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
