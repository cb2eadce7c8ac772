package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

type PaymentService interface {
	Credentials() services.Credentials
	Create(ctx context.Context, cmd services.CreatePaymentCommand) (*services.CreatedPayment, error)
	UpdateAmount(ctx context.Context, cmd services.UpdateAmountCommand) (*services.AmountUpdate, error)
	Process(ctx context.Context, paymentID string) (*services.ProcessedPayment, error)
	Void(ctx context.Context, paymentID string) (*domain.Payment, error)
	Transactions(ctx context.Context, paymentID string) ([]paypal.Transaction, error)
	Get(ctx context.Context, paymentID string) (*domain.Payment, error)
}

type Handlers struct {
	payments PaymentService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandlers(payments PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /gateway/credentials", h.GetGatewayCredentials)
	mux.HandleFunc("POST /payments", h.CreatePayment)
	mux.HandleFunc("GET /payments/{paymentId}", h.GetPayment)
	mux.HandleFunc("PATCH /payments/{paymentId}/amount", h.UpdatePaymentAmount)
	mux.HandleFunc("POST /payments/{paymentId}/process", h.ProcessPayment)
	mux.HandleFunc("POST /payments/{paymentId}/void", h.VoidPayment)
	mux.HandleFunc("GET /payments/{paymentId}/transactions", h.ListPaymentTransactions)
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handlers) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}

// paymentID binds the paymentId path segment as a UUID. The mux has already
// unescaped the segment and the binder unescapes path values once more, so it
// is handed the escaped form.
func paymentID(r *http.Request) (string, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "paymentId", url.PathEscape(r.PathValue("paymentId")), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return "", application.NewInvalidInputError(err)
	}
	return id.String(), nil
}
