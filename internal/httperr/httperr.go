package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func GatewayTimeout(c *gin.Context, code, message string) {
	Write(c, http.StatusGatewayTimeout, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError maps a business error to its HTTP status, falling back to 500.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Invalid input.")
	case KindNotFound:
		NotFound(c, be.Code, "Resource not found.")
	case KindConflict:
		Conflict(c, be.Code, "Conflicting state.")
	case KindInvalidTransition:
		Unprocessable(c, be.Code, "Status transition not allowed.")
	case KindTimeout:
		GatewayTimeout(c, be.Code, "Operation timed out, retry later.")
	default:
		Internal(c, be.Code, "Unexpected error.")
	}
}
