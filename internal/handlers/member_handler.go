package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/httperr"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	infraRepo "github.com/careconnect/care-marketplace/internal/infra/repository"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
)

type MemberHandler struct {
	db   *gorm.DB
	repo *infraRepo.IdentityGormRepository
	cfg  *config.Config
}

func NewMemberHandler(db *gorm.DB, cfg *config.Config) *MemberHandler {
	return &MemberHandler{
		db:   db,
		repo: infraRepo.NewIdentityGormRepository(db),
		cfg:  cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertMemberRequest struct {
	HouseRules           *string `json:"house_rules"`
	DependentDescription *string `json:"dependent_description"`
}

type AddressRequest struct {
	HouseNumber string `json:"house_number" binding:"required"`
	Street      string `json:"street" binding:"required"`
	Town        string `json:"town" binding:"required"`
	IsPrimary   bool   `json:"is_primary"`
}

// ======================================================
// MEMBER PROFILE
// ======================================================

func (h *MemberHandler) Upsert(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
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

	var mb models.Member
	err := db.Where("user_id = ?", userID).First(&mb).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			dbError(c, err, "failed_to_create_member", "Could not create member profile.")
			return
		}
		mb = models.Member{UserID: userID}
		if err := db.Create(&mb).Error; err != nil {
			dbError(c, err, "failed_to_create_member", "Could not create member profile.")
			return
		}
	}

	updates := map[string]any{}
	if req.HouseRules != nil {
		updates["house_rules"] = *req.HouseRules
	}
	if req.DependentDescription != nil {
		updates["dependent_description"] = *req.DependentDescription
	}

	if len(updates) > 0 {
		if err := db.Model(&mb).Updates(updates).Error; err != nil {
			dbError(c, err, "failed_to_update_member", "Could not update member profile.")
			return
		}
	}

	httpresp.OK(c, mb)
}

// Delete removes the member role and its whole subtree, leaving the base
// identity in place.
func (h *MemberHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.repo.DeleteMemberCascade(ctx, userID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// ADDRESSES
// ======================================================

func (h *MemberHandler) ListAddresses(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	var addresses []models.Address
	if err := h.db.WithContext(ctx).
		Where("member_user_id = ?", userID).
		Order("is_primary DESC, created_at ASC").
		Find(&addresses).Error; err != nil {
		dbError(c, err, "failed_to_list_addresses", "Could not list addresses.")
		return
	}

	httpresp.List(c, addresses)
}

func (h *MemberHandler) CreateAddress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Member{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		dbError(c, err, "failed_to_create_address", "Could not save address.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "member_not_found", "Member profile does not exist.")
		return
	}

	addr := models.Address{
		MemberUserID: userID,
		HouseNumber:  req.HouseNumber,
		Street:       req.Street,
		Town:         req.Town,
		IsPrimary:    req.IsPrimary,
	}

	if err := db.Create(&addr).Error; err != nil {
		dbError(c, err, "failed_to_create_address", "Could not save address.")
		return
	}

	httpresp.Created(c, addr)
}

func (h *MemberHandler) UpdateAddress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_address_id", "Address id must be numeric.")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()
	db := h.db.WithContext(ctx)

	var addr models.Address
	if err := db.
		Where("id = ? AND member_user_id = ?", addressID, userID).
		First(&addr).Error; err != nil {
		notFoundOr(c, err, "address_not_found", "Address does not exist.")
		return
	}

	if err := db.Model(&addr).Updates(map[string]any{
		"house_number": req.HouseNumber,
		"street":       req.Street,
		"town":         req.Town,
		"is_primary":   req.IsPrimary,
	}).Error; err != nil {
		dbError(c, err, "failed_to_update_address", "Could not update address.")
		return
	}

	httpresp.OK(c, addr)
}

func (h *MemberHandler) DeleteAddress(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_address_id", "Address id must be numeric.")
		return
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	res := h.db.WithContext(ctx).
		Where("id = ? AND member_user_id = ?", addressID, userID).
		Delete(&models.Address{})
	if res.Error != nil {
		dbError(c, res.Error, "failed_to_delete_address", "Could not delete address.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "address_not_found", "Address does not exist.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MemberHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
