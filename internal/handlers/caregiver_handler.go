package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/dto"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
)

type CaregiverHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewCaregiverHandler(db *gorm.DB, cfg *config.Config) *CaregiverHandler {
	return &CaregiverHandler{db: db, cfg: cfg}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterCaregiverRequest struct {
	Photo          string  `json:"photo"`
	Gender         string  `json:"gender" binding:"required"`
	CaregivingType string  `json:"caregiving_type" binding:"required"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type UpdateCaregiverRequest struct {
	Photo          *string  `json:"photo"`
	Gender         *string  `json:"gender"`
	CaregivingType *string  `json:"caregiving_type"`
	HourlyRate     *float64 `json:"hourly_rate"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type UpdateRatingRequest struct {
	Rating      *float64 `json:"rating" binding:"required"`
	ReviewCount *int     `json:"review_count" binding:"required"`
}

// ======================================================
// REGISTER (1:1 with the identity)
// ======================================================

func (h *CaregiverHandler) Register(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RegisterCaregiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.HourlyRate < 0 {
		httperr.BadRequest(c, "invalid_hourly_rate", "Hourly rate cannot be negative.")
		return
	}
	if !models.IsValidGender(req.Gender) {
		httperr.BadRequest(c, "invalid_gender", "Unknown gender value.")
		return
	}
	if !models.IsValidCaregivingType(req.CaregivingType) {
		httperr.BadRequest(c, "invalid_caregiving_type", "Unknown caregiving type.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		notFoundOr(c, err, "user_not_found", "User does not exist.")
		return
	}

	var count int64
	if err := db.Model(&models.Caregiver{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_register_caregiver", "Could not register caregiver.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "caregiver_already_exists", "Caregiver role already registered.")
		return
	}

	cg := models.Caregiver{
		UserID:         userID,
		Photo:          req.Photo,
		Gender:         req.Gender,
		CaregivingType: req.CaregivingType,
		HourlyRate:     req.HourlyRate,
		Active:         true,
	}

	if err := db.Create(&cg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "caregiver_already_exists", "Caregiver role already registered.")
			return
		}
		dbError(c, err, "failed_to_register_caregiver", "Could not register caregiver.")
		return
	}

	httpresp.Created(c, cg)
}

// ======================================================
// PARTIAL UPDATE
// ======================================================

func (h *CaregiverHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateCaregiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Photo != nil {
		updates["photo"] = *req.Photo
	}
	if req.Gender != nil {
		if !models.IsValidGender(*req.Gender) {
			httperr.BadRequest(c, "invalid_gender", "Unknown gender value.")
			return
		}
		updates["gender"] = *req.Gender
	}
	if req.CaregivingType != nil {
		if !models.IsValidCaregivingType(*req.CaregivingType) {
			httperr.BadRequest(c, "invalid_caregiving_type", "Unknown caregiving type.")
			return
		}
		updates["caregiving_type"] = *req.CaregivingType
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			httperr.BadRequest(c, "invalid_hourly_rate", "Hourly rate cannot be negative.")
			return
		}
		updates["hourly_rate"] = *req.HourlyRate
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var cg models.Caregiver
	if err := db.Where("user_id = ?", userID).First(&cg).Error; err != nil {
		notFoundOr(c, err, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	if len(updates) > 0 {
		if err := db.Model(&cg).Updates(updates).Error; err != nil {
			dbError(c, err, "failed_to_update_caregiver", "Could not update caregiver.")
			return
		}
	}

	httpresp.OK(c, cg)
}

// ======================================================
// ACTIVE FLAG (visibility only, history untouched)
// ======================================================

func (h *CaregiverHandler) SetActive(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var cg models.Caregiver
	if err := db.Where("user_id = ?", userID).First(&cg).Error; err != nil {
		notFoundOr(c, err, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	if err := db.Model(&cg).Update("active", *req.Active).Error; err != nil {
		dbError(c, err, "failed_to_update_caregiver", "Could not update caregiver.")
		return
	}

	httpresp.OK(c, cg)
}

// ======================================================
// RATING WRITE-THROUGH (external aggregator only)
// ======================================================

func (h *CaregiverHandler) UpdateRating(c *gin.Context) {
	// Only the rating aggregator may overwrite the stored aggregate. An
	// unset token keeps the endpoint disabled.
	if h.cfg.AggregatorToken == "" ||
		c.GetHeader("X-Aggregator-Token") != h.cfg.AggregatorToken {
		httperr.Unauthorized(c, "aggregator_token_required", "Rating updates require the aggregator credential.")
		return
	}

	caregiverID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_caregiver_id", "Caregiver id must be numeric.")
		return
	}

	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if *req.Rating < 0 || *req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "Rating must be between 0 and 5.")
		return
	}
	if *req.ReviewCount < 0 {
		httperr.BadRequest(c, "invalid_review_count", "Review count cannot be negative.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var cg models.Caregiver
	if err := db.Where("user_id = ?", caregiverID).First(&cg).Error; err != nil {
		notFoundOr(c, err, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	// Stored as-is; this core never recomputes the aggregate.
	if err := db.Model(&cg).Updates(map[string]any{
		"rating":       *req.Rating,
		"review_count": *req.ReviewCount,
	}).Error; err != nil {
		dbError(c, err, "failed_to_update_rating", "Could not update rating.")
		return
	}

	httpresp.OK(c, cg)
}

// ======================================================
// MY APPLICATIONS (joined with job and posting member)
// ======================================================

func (h *CaregiverHandler) MyApplications(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Caregiver{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_list_applications", "Could not list applications.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "caregiver_not_found", "Caregiver profile does not exist.")
		return
	}

	var rows []dto.MyApplicationDTO
	if err := db.Table("job_applications").
		Select(`job_applications.id AS application_id,
			job_applications.job_id,
			job_applications.date_applied,
			job_applications.status,
			jobs.required_caregiving_type,
			jobs.other_requirements,
			jobs.date_posted,
			users.given_name AS member_given_name,
			users.surname AS member_surname,
			users.city AS member_city`).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Joins("JOIN members ON members.user_id = jobs.member_user_id").
		Joins("JOIN users ON users.id = members.user_id").
		Where("job_applications.caregiver_user_id = ?", userID).
		Order("job_applications.date_applied DESC").
		Scan(&rows).Error; err != nil {
		dbError(c, err, "failed_to_list_applications", "Could not list applications.")
		return
	}

	httpresp.List(c, rows)
}

func (h *CaregiverHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
