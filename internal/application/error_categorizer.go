package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

// ErrorCategory says who has to act on a failure; it drives log levels.
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryUpstream       ErrorCategory = "UPSTREAM"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryUpstream
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeInvalidState:
			return CategoryBusinessRule
		case ErrCodeTimeout:
			return CategoryUpstream
		}
		return CategoryInfrastructure
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		switch domainErr.Kind {
		case domain.KindData, domain.KindNotFound:
			return CategoryClientError
		case domain.KindDuplicate, domain.KindPaymentIncomplete, domain.KindConstraint:
			return CategoryBusinessRule
		case domain.KindNetwork, domain.KindEndpointMissing:
			return CategoryUpstream
		}
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusGatewayTimeout
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		switch domainErr.Kind {
		case domain.KindData:
			if domainErr.Public {
				return http.StatusBadRequest
			}
			return http.StatusUnprocessableEntity
		case domain.KindNotFound:
			return http.StatusNotFound
		case domain.KindDuplicate:
			return http.StatusConflict
		case domain.KindConstraint:
			return http.StatusUnprocessableEntity
		case domain.KindPaymentIncomplete:
			return http.StatusPaymentRequired
		case domain.KindNotAllowed, domain.KindAuthentication, domain.KindNetwork, domain.KindEndpointMissing:
			return http.StatusBadGateway
		}
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	if domainErr, ok := domain.AsDomainError(err); ok {
		return string(domainErr.Kind)
	}

	return ErrCodeInternal
}
