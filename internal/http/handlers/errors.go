package handlers

import (
	"errors"
	"net/http"

	"tourtravel/internal/domain"
	"tourtravel/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Success:   false,
		Error:     message,
		Message:   message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal and
// gateway details stay in the logs.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsInvalidPayment(err):
		respondError(c, http.StatusBadRequest, "invalid_payment", "payment validation failed")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsTransitionRejected(err):
		respondError(c, http.StatusConflict, "transition_rejected", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsGateway(err):
		var gwErr domain.GatewayError
		_ = errors.As(err, &gwErr)
		msg := "payment gateway unreachable"
		if gwErr.Kind == domain.GatewayInitiationFailed {
			msg = "payment initialization failed"
		}
		respondError(c, http.StatusInternalServerError, string(gwErr.Kind), msg)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "database error")
	}
}
