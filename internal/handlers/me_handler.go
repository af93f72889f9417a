package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/httperr"
	infraRepo "github.com/careconnect/care-marketplace/internal/infra/repository"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
	"github.com/careconnect/care-marketplace/internal/validators"
)

type MeHandler struct {
	db   *gorm.DB
	repo *infraRepo.IdentityGormRepository
	cfg  *config.Config
}

func NewMeHandler(db *gorm.DB, cfg *config.Config) *MeHandler {
	return &MeHandler{
		db:   db,
		repo: infraRepo.NewIdentityGormRepository(db),
		cfg:  cfg,
	}
}

type UpdateMeRequest struct {
	GivenName          *string `json:"given_name"`
	Surname            *string `json:"surname"`
	City               *string `json:"city"`
	Phone              *string `json:"phone"`
	ProfileDescription *string `json:"profile_description"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	user, err := h.repo.GetUser(ctx, userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe patches identity fields; gorm refreshes UpdatedAt on the write.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Phone != nil && !validators.IsPhoneValid(*req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Phone must be exactly 11 digits.")
		return
	}

	updates := map[string]any{}
	if req.GivenName != nil {
		updates["given_name"] = *req.GivenName
	}
	if req.Surname != nil {
		updates["surname"] = *req.Surname
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.ProfileDescription != nil {
		updates["profile_description"] = *req.ProfileDescription
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if len(updates) > 0 {
		res := h.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", userID).
			Updates(updates)
		if res.Error != nil {
			httperr.Internal(c, "failed_to_update_user", "Could not update profile.")
			return
		}
		if res.RowsAffected == 0 {
			httperr.NotFound(c, "user_not_found", "User does not exist.")
			return
		}
	}

	user, err := h.repo.GetUser(ctx, userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe tears down the whole ownership subtree in one transaction.
func (h *MeHandler) DeleteMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ctx, cancel := h.opCtx(c)
	defer cancel()

	if err := h.repo.DeleteUserCascade(ctx, userID); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MeHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
