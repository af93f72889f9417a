package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	appdomain "github.com/careconnect/care-marketplace/internal/domain/application"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
	"github.com/careconnect/care-marketplace/internal/timezone"
)

type ApplicationHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewApplicationHandler(db *gorm.DB, cfg *config.Config) *ApplicationHandler {
	return &ApplicationHandler{db: db, cfg: cfg}
}

// ======================================================
// REQUESTS
// ======================================================

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type TransitionApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// APPLY (caregiver bids on a job, at most once)
// ======================================================

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_job_id", "Job id must be numeric.")
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Caregiver{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_apply", "Could not submit application.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	var job models.Job
	if err := db.First(&job, jobID).Error; err != nil {
		notFoundOr(c, err, "job_not_found", "Job does not exist.")
		return
	}

	app := models.JobApplication{
		CaregiverUserID: userID,
		JobID:           uint(jobID),
		DateApplied:     timezone.Now(),
		CoverLetter:     req.CoverLetter,
		Status:          string(appdomain.InitialStatus()),
	}

	// The composite unique index is the atomic arbiter for concurrent
	// duplicate bids.
	if err := db.Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "already_applied", "Caregiver already applied to this job.")
			return
		}
		dbError(c, err, "failed_to_apply", "Could not submit application.")
		return
	}

	httpresp.Created(c, app)
}

// ======================================================
// TRANSITION (member reviews bids on their own job)
// ======================================================

func (h *ApplicationHandler) Transition(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	applicationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_application_id", "Application id must be numeric.")
		return
	}

	var req TransitionApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var app models.JobApplication
	if err := db.First(&app, applicationID).Error; err != nil {
		notFoundOr(c, err, "application_not_found", "Application does not exist.")
		return
	}

	var job models.Job
	if err := db.
		Where("id = ? AND member_user_id = ?", app.JobID, userID).
		First(&job).Error; err != nil {
		notFoundOr(c, err, "application_not_found", "Application does not exist.")
		return
	}

	if err := appdomain.CanTransition(
		appdomain.Status(app.Status),
		appdomain.Status(req.Status),
	); err != nil {
		httperr.FromError(c, err)
		return
	}

	app.Status = req.Status
	if err := db.Save(&app).Error; err != nil {
		dbError(c, err, "failed_to_update_application", "Could not update application.")
		return
	}

	httpresp.OK(c, app)
}

func (h *ApplicationHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
