package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

// OrderGateway is the port for the PayPal orders, payments and reporting APIs.
type OrderGateway interface {
	CreateOrder(ctx context.Context, referenceID string, amount domain.Amount, intent string) (*paypal.Order, error)
	GetOrder(ctx context.Context, id string) (*paypal.Order, error)
	UpdateOrder(ctx context.Context, order *paypal.Order, patch paypal.Patch) (*paypal.Order, error)
	DeleteOrder(ctx context.Context, order *paypal.Order) error
	VoidAuthorization(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, query paypal.TransactionQuery) ([]paypal.Transaction, error)
}

// PaymentStore is the port for persistence. The store serializes writes to
// a given payment id.
type PaymentStore interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Save(ctx context.Context, payment *domain.Payment) error
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	FindAll(ctx context.Context, query domain.PaymentQuery) ([]*domain.Payment, error)
	FindStalePending(ctx context.Context, service string, olderThan time.Time, limit int) ([]*domain.Payment, error)
}
