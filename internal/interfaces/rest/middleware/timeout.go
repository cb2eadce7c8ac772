package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest"
)

// Timeout bounds every request, including the PayPal calls made on its
// behalf, by timeout. The handler's context carries the deadline. timeout has
// to be shorter than the server's WriteTimeout or the 503 is never written.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{
			Code:    application.ErrCodeTimeout,
			Message: application.NewTimeoutError().Message,
		},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
