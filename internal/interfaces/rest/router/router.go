package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/api"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest/middleware"
	"github.com/getkin/kin-openapi/openapi3"
)

// New builds the gateway HTTP handler: docs routes, payment routes, OpenAPI
// request validation, panic recovery, request logging and the request
// timeout, outermost last.
func New(payments handlers.PaymentService, doc *openapi3.T, timeout time.Duration, logger *slog.Logger) (http.Handler, error) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handlers.NewHandlers(payments, logger).RegisterRoutes(mux)

	validate, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, err
	}

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(timeout)(handler)

	return handler, nil
}
