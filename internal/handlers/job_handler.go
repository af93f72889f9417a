package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	jobdomain "github.com/careconnect/care-marketplace/internal/domain/job"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
	"github.com/careconnect/care-marketplace/internal/timezone"
)

type JobHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewJobHandler(db *gorm.DB, cfg *config.Config) *JobHandler {
	return &JobHandler{db: db, cfg: cfg}
}

// ======================================================
// REQUESTS
// ======================================================

type PostJobRequest struct {
	RequiredCaregivingType string   `json:"required_caregiving_type" binding:"required"`
	OtherRequirements      string   `json:"other_requirements"`
	DependentAge           *int     `json:"dependent_age"`
	PreferredTimeStart     *string  `json:"preferred_time_start"`
	PreferredTimeEnd       *string  `json:"preferred_time_end"`
	Frequency              string   `json:"frequency"`
	DurationHours          *float64 `json:"duration_hours"`
}

// ======================================================
// POST
// ======================================================

func (h *JobHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !models.IsValidCaregivingType(req.RequiredCaregivingType) {
		httperr.BadRequest(c, "invalid_caregiving_type", "Unknown caregiving type.")
		return
	}
	if err := jobdomain.ValidateDependentAge(req.DependentAge); err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := jobdomain.ValidateTimeWindow(req.PreferredTimeStart, req.PreferredTimeEnd); err != nil {
		httperr.FromError(c, err)
		return
	}
	if err := jobdomain.ValidateFrequency(req.Frequency); err != nil {
		httperr.FromError(c, err)
		return
	}
	if req.DurationHours != nil && *req.DurationHours <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Member{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_create_job", "Could not post job.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "member_not_found", "Member profile does not exist.")
		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = models.FrequencyAsNeeded
	}

	job := models.Job{
		MemberUserID:           userID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
		DatePosted:             timezone.Now(),
		Status:                 models.JobStatusOpen,
		DependentAge:           req.DependentAge,
		PreferredTimeStart:     req.PreferredTimeStart,
		PreferredTimeEnd:       req.PreferredTimeEnd,
		Frequency:              frequency,
		DurationHours:          req.DurationHours,
	}

	if err := db.Create(&job).Error; err != nil {
		dbError(c, err, "failed_to_create_job", "Could not post job.")
		return
	}

	httpresp.Created(c, job)
}

// ======================================================
// CLOSE (idempotent)
// ======================================================

func (h *JobHandler) Close(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_job_id", "Job id must be numeric.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var job models.Job
	if err := db.
		Where("id = ? AND member_user_id = ?", jobID, userID).
		First(&job).Error; err != nil {
		notFoundOr(c, err, "job_not_found", "Job does not exist.")
		return
	}

	// Closing a closed job is a no-op, not an error.
	if job.Status != models.JobStatusClosed {
		jobdomain.Close(&job)
		if err := db.Save(&job).Error; err != nil {
			dbError(c, err, "failed_to_close_job", "Could not close job.")
			return
		}
	}

	httpresp.OK(c, job)
}

// ======================================================
// MY JOBS
// ======================================================

func (h *JobHandler) MyJobs(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	var jobs []models.Job
	if err := h.db.WithContext(ctx).
		Where("member_user_id = ?", userID).
		Order("date_posted DESC").
		Find(&jobs).Error; err != nil {
		dbError(c, err, "failed_to_list_jobs", "Could not list jobs.")
		return
	}

	httpresp.List(c, jobs)
}

// ======================================================
// APPLICATIONS FOR MY JOB (joined with applicant profile)
// ======================================================

type jobApplicantRow struct {
	ApplicationID  uint    `json:"application_id"`
	Status         string  `json:"status"`
	CoverLetter    string  `json:"cover_letter"`
	CaregiverID    uint    `json:"caregiver_user_id"`
	GivenName      string  `json:"given_name"`
	Surname        string  `json:"surname"`
	CaregivingType string  `json:"caregiving_type"`
	HourlyRate     float64 `json:"hourly_rate"`
	Rating         float64 `json:"rating"`
}

func (h *JobHandler) Applications(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_job_id", "Job id must be numeric.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Job{}).
		Where("id = ? AND member_user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_list_applications", "Could not list applications.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "job_not_found", "Job does not exist.")
		return
	}

	var rows []jobApplicantRow
	if err := db.Table("job_applications").
		Select(`job_applications.id AS application_id,
			job_applications.status,
			job_applications.cover_letter,
			caregivers.user_id AS caregiver_id,
			users.given_name,
			users.surname,
			caregivers.caregiving_type,
			caregivers.hourly_rate,
			caregivers.rating`).
		Joins("JOIN caregivers ON caregivers.user_id = job_applications.caregiver_user_id").
		Joins("JOIN users ON users.id = caregivers.user_id").
		Where("job_applications.job_id = ?", jobID).
		Order("job_applications.date_applied ASC").
		Scan(&rows).Error; err != nil {
		dbError(c, err, "failed_to_list_applications", "Could not list applications.")
		return
	}

	httpresp.List(c, rows)
}

func (h *JobHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
