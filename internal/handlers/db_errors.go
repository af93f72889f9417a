package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careconnect/care-marketplace/internal/httperr"
)

// dbError reports a storage failure. An expired lock wait surfaces as the
// retriable timeout instead of an opaque 500.
func dbError(c *gin.Context, err error, code, message string) {
	if errors.Is(err, context.DeadlineExceeded) {
		httperr.GatewayTimeout(c, "operation_timed_out", "Operation timed out, retry later.")
		return
	}
	httperr.Internal(c, code, message)
}

// notFoundOr maps a missing row to 404 and defers everything else to
// dbError.
func notFoundOr(c *gin.Context, err error, code, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, code, message)
		return
	}
	dbError(c, err, "storage_error", "Could not read from storage.")
}
