package testhelpers

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal/paypaltest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// PayPalConfig points at srv with the fake server's credentials.
func PayPalConfig(srv *paypaltest.Server) config.PayPalConfig {
	return config.PayPalConfig{
		API:                srv.URL,
		ClientID:           paypaltest.ClientID,
		Secret:             paypaltest.Secret,
		BrandName:          "test-project",
		ShippingPreference: "NO_SHIPPING",
		Intent:             paypal.IntentCapture,
		Timeout:            5 * time.Second,
		TokenSafetyMargin:  5 * time.Second,
	}
}

// NewPayPalClient returns a real client talking to srv.
func NewPayPalClient(srv *paypaltest.Server) *paypal.Client {
	return paypal.NewClient(PayPalConfig(srv), paypal.NewMemoryTokenCache(nil), DiscardLogger())
}

// NewPendingPayment returns a PENDING payment with a fresh urn:uuid id.
func NewPendingPayment(t *testing.T, currency, amount string) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPayment("urn:uuid:"+uuid.New().String(), currency, amount, "test-order", "test-1")
	require.NoError(t, err)
	return payment
}

// NewOrder builds a single-unit order for payment.
func NewOrder(payment *domain.Payment, status paypal.OrderStatus) *paypal.Order {
	return &paypal.Order{
		ID:     "ORDER-" + uuid.New().String(),
		Intent: paypal.IntentCapture,
		Status: status,
		PurchaseUnits: []paypal.PurchaseUnit{{
			ReferenceID: payment.ID,
			Amount:      domain.Money{CurrencyCode: payment.Currency, Value: payment.Amount},
		}},
	}
}
