package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/dto"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/models"
)

// PublicHandler serves the two derived read views consumed by the outside
// world: active caregiver profiles and open jobs with live application
// counts. Both are recomputed per query.
type PublicHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPublicHandler(db *gorm.DB, cfg *config.Config) *PublicHandler {
	return &PublicHandler{db: db, cfg: cfg}
}

// ======================================================
// ACTIVE CAREGIVER PROFILES
// ======================================================

// ListCaregivers ranks profiles by rating, then review count, with ties kept
// in insertion order. This is the platform's one default-ranking policy.
func (h *PublicHandler) ListCaregivers(c *gin.Context) {
	ctx, cancel := h.opCtx(c)
	defer cancel()

	q := h.db.WithContext(ctx).Table("caregivers").
		Select(`caregivers.user_id,
			users.given_name,
			users.surname,
			users.city,
			caregivers.gender,
			caregivers.caregiving_type,
			caregivers.hourly_rate,
			caregivers.photo,
			users.profile_description,
			caregivers.rating,
			caregivers.review_count`).
		Joins("JOIN users ON users.id = caregivers.user_id")

	if c.DefaultQuery("active_only", "true") != "false" {
		q = q.Where("caregivers.active = ?", true)
	}

	if t := c.Query("caregiving_type"); t != "" {
		if !models.IsValidCaregivingType(t) {
			httperr.BadRequest(c, "invalid_caregiving_type", "Unknown caregiving type.")
			return
		}
		q = q.Where("caregivers.caregiving_type = ?", t)
	}

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(users.city) = ?", strings.ToLower(city))
	}

	var profiles []dto.CaregiverProfileDTO
	if err := q.
		Order("caregivers.rating DESC, caregivers.review_count DESC, caregivers.created_at ASC, caregivers.user_id ASC").
		Scan(&profiles).Error; err != nil {
		dbError(c, err, "failed_to_list_caregivers", "Could not list caregivers.")
		return
	}

	httpresp.List(c, profiles)
}

func (h *PublicHandler) GetCaregiver(c *gin.Context) {
	caregiverID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_caregiver_id", "Caregiver id must be numeric.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	var profile dto.CaregiverProfileDTO
	res := h.db.WithContext(ctx).Table("caregivers").
		Select(`caregivers.user_id,
			users.given_name,
			users.surname,
			users.city,
			caregivers.gender,
			caregivers.caregiving_type,
			caregivers.hourly_rate,
			caregivers.photo,
			users.profile_description,
			caregivers.rating,
			caregivers.review_count`).
		Joins("JOIN users ON users.id = caregivers.user_id").
		Where("caregivers.user_id = ?", caregiverID).
		Scan(&profile)
	if res.Error != nil {
		dbError(c, res.Error, "failed_to_get_caregiver", "Could not load caregiver.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	httpresp.OK(c, profile)
}

// ======================================================
// OPEN JOBS (with live application counts)
// ======================================================

func (h *PublicHandler) ListOpenJobs(c *gin.Context) {
	ctx, cancel := h.opCtx(c)
	defer cancel()

	q := h.db.WithContext(ctx).Table("jobs").
		Select(`jobs.id AS job_id,
			jobs.required_caregiving_type,
			jobs.other_requirements,
			jobs.date_posted,
			jobs.frequency,
			jobs.dependent_age,
			jobs.preferred_time_start,
			jobs.preferred_time_end,
			jobs.duration_hours,
			users.given_name AS member_given_name,
			users.surname AS member_surname,
			users.city AS member_city,
			members.dependent_description,
			COUNT(job_applications.id) AS application_count`).
		Joins("JOIN members ON members.user_id = jobs.member_user_id").
		Joins("JOIN users ON users.id = members.user_id").
		Joins("LEFT JOIN job_applications ON job_applications.job_id = jobs.id").
		Where("jobs.status = ?", models.JobStatusOpen)

	if t := c.Query("caregiving_type"); t != "" {
		if !models.IsValidCaregivingType(t) {
			httperr.BadRequest(c, "invalid_caregiving_type", "Unknown caregiving type.")
			return
		}
		q = q.Where("jobs.required_caregiving_type = ?", t)
	}

	if city := strings.TrimSpace(c.Query("city")); city != "" {
		q = q.Where("LOWER(users.city) = ?", strings.ToLower(city))
	}

	var jobs []dto.OpenJobDTO
	if err := q.
		Group(`jobs.id, jobs.required_caregiving_type, jobs.other_requirements,
			jobs.date_posted, jobs.frequency, jobs.dependent_age,
			jobs.preferred_time_start, jobs.preferred_time_end, jobs.duration_hours,
			users.given_name, users.surname, users.city, members.dependent_description`).
		Order("jobs.date_posted DESC").
		Scan(&jobs).Error; err != nil {
		dbError(c, err, "failed_to_list_jobs", "Could not list open jobs.")
		return
	}

	httpresp.List(c, jobs)
}

func (h *PublicHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
