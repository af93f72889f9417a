package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/config"
	"github.com/careconnect/care-marketplace/internal/httpresp"
	"github.com/careconnect/care-marketplace/internal/middleware"
	"github.com/careconnect/care-marketplace/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuditLogsHandler(db *gorm.DB, cfg *config.Config) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, cfg: cfg}
}

// List returns the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	ctx, cancel := h.opCtx(c)
	defer cancel()

	q := h.db.WithContext(ctx).Where("user_id = ?", userID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		dbError(c, err, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}

func (h *AuditLogsHandler) opCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.LockTimeout)
}
