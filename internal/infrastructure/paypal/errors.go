package paypal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

// APIError is a non-2xx response from PayPal.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	DebugID    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal error [%s]: %s (status: %d)", e.Name, e.Message, e.StatusCode)
}

func (e *APIError) details() map[string]any {
	return map[string]any{
		"status":   e.StatusCode,
		"name":     e.Name,
		"message":  e.Message,
		"debug_id": e.DebugID,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		apiErr.Name = http.StatusText(statusCode)
		apiErr.Message = string(body)
		return apiErr
	}

	apiErr.Name = resp.Name
	apiErr.Message = resp.Message
	apiErr.DebugID = resp.DebugID
	if apiErr.Name == "" {
		apiErr.Name = resp.Error
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.ErrorDescription
	}
	return apiErr
}

// toDomainError classifies a request failure. Upstream responses map by
// status; transport failures are NETWORK.
func toDomainError(err error, message string) error {
	if _, ok := domain.AsDomainError(err); ok {
		return domain.Wrap(err, message)
	}
	if apiErr, ok := IsAPIError(err); ok {
		return &domain.DomainError{
			Kind:    domain.KindFromStatus(apiErr.StatusCode),
			Message: message,
			Details: apiErr.details(),
			Err:     err,
		}
	}
	return &domain.DomainError{
		Kind:    domain.KindNetwork,
		Message: message,
		Err:     err,
	}
}

// newAuthenticationError reports a failed client-credentials exchange. A
// 401/403 from the token endpoint is NOT_ALLOWED, anything else AUTHENTICATION.
func newAuthenticationError(err error) error {
	kind := domain.KindAuthentication
	var details map[string]any
	if apiErr, ok := IsAPIError(err); ok {
		if k := domain.KindFromStatus(apiErr.StatusCode); k == domain.KindNotAllowed {
			kind = k
		}
		details = apiErr.details()
	}
	return &domain.DomainError{
		Kind:    kind,
		Message: "Could not authenticate with PayPal.",
		Details: details,
		Err:     err,
	}
}
