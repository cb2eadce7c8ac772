package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

const genericErrorMessage = "An internal error occurred"

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// BuildErrorResponse maps err to a status and an envelope. Only messages and
// details marked public ever reach the caller.
func BuildErrorResponse(err error) (int, ErrorResponse) {
	detail := ErrorDetail{
		Code:    application.ToErrorCode(err),
		Message: genericErrorMessage,
	}

	if msg, ok := domain.PublicMessage(err); ok {
		detail.Message = msg
		if domainErr, ok := domain.AsDomainError(err); ok && domainErr.Public {
			detail.Details = domainErr.Details
		}
	} else if svcErr, ok := application.IsServiceError(err); ok {
		detail.Message = svcErr.Message
		if svcErr.Code == application.ErrCodeInvalidInput && svcErr.Err != nil {
			detail.Details = map[string]any{"reason": svcErr.Err.Error()}
		}
	}

	return application.ToHTTPStatus(err), ErrorResponse{Success: false, Error: detail}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	level := slog.LevelWarn
	switch application.CategorizeError(err) {
	case application.CategoryUpstream, application.CategoryInfrastructure:
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, "request failed",
		"status", statusCode,
		"code", response.Error.Code,
		"error", err,
	)

	WriteJSON(w, statusCode, response)
}
