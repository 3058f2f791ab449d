package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot-backend/internal/pkg/apperr"
)

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError maps service errors onto HTTP statuses. Unrecognized errors
// become a generic 500 so internal details never reach the client.
func RespondError(c *gin.Context, err error) {
	status, message := classify(err)
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{
		Code:    status,
		Message: message,
	}})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}
