package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

type AmountUpdate struct {
	Order   *paypal.Order   `json:"order"`
	Payment *domain.Payment `json:"payment"`
}

type ReconciliationService struct {
	gateway application.OrderGateway
	store   application.PaymentStore
	logger  *slog.Logger
}

func NewReconciliationService(
	gateway application.OrderGateway,
	store application.PaymentStore,
	logger *slog.Logger,
) *ReconciliationService {
	return &ReconciliationService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// UpdateAmount swaps the remote order amount from pending's amount to
// updated's, but only if the remote total still equals pending's amount.
// A patch that lands but fails the post-check is left in place.
func (s *ReconciliationService) UpdateAmount(ctx context.Context, pending, updated *domain.Payment) (*AmountUpdate, error) {
	order, err := getOrderFromPayment(ctx, s.gateway, s.store, s.logger, pending)
	if err != nil {
		return nil, err
	}

	currency := updated.Currency
	if currency == "" {
		currency = pending.Currency
	}
	amount, err := domain.FormatAmount(currency, updated.Amount)
	if err != nil {
		return nil, err
	}

	expected, err := domain.FormatAmount(pending.Currency, pending.Amount)
	if err != nil {
		return nil, err
	}
	if err := compareAmount(order, expected); err != nil {
		return nil, err
	}

	patch := paypal.NewAmountPatch(order.ID, pending.ID, amount.Money())
	updatedOrder, err := s.gateway.UpdateOrder(ctx, order, patch)
	if err != nil {
		return nil, err
	}

	if err := compareAmount(updatedOrder, amount); err != nil {
		s.logger.Error("paypal order patched but amount does not match",
			"payment_id", pending.ID,
			"order_id", order.ID,
			"error", err,
		)
		return nil, err
	}

	normalized := *updated
	normalized.Currency = amount.Currency
	normalized.Amount = amount.String()

	return &AmountUpdate{
		Order:   updatedOrder,
		Payment: pending.Merge(&normalized),
	}, nil
}

// compareAmount requires the order total to equal expected and expected's
// currency to be among the order's unit currencies.
func compareAmount(order *paypal.Order, expected domain.Amount) error {
	total, err := order.TotalCost()
	if err != nil {
		return err
	}
	if total.Equal(expected.Value) && order.HasCurrency(expected.Currency) {
		return nil
	}

	actual := domain.Money{
		CurrencyCode: strings.Join(order.Currencies(), ","),
		Value:        total.StringFixed(domain.DecimalPlaces(expected.Currency)),
	}
	return domain.NewAmountMismatchError(expected.Money(), actual)
}
