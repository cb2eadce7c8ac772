package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

const orderNotFoundMessage = "PayPal order not found."

// getOrderFromPayment loads the remote order backing payment. Any failure
// marks the payment FAILED and persists it before the error is returned.
func getOrderFromPayment(
	ctx context.Context,
	gateway application.OrderGateway,
	store application.PaymentStore,
	logger *slog.Logger,
	payment *domain.Payment,
) (*paypal.Order, error) {
	var (
		order *paypal.Order
		err   error
	)
	if payment.ServiceID == "" {
		err = domain.NewNotFoundError(orderNotFoundMessage, true, map[string]any{"payment_id": payment.ID})
	} else {
		order, err = gateway.GetOrder(ctx, payment.ServiceID)
	}
	if err == nil {
		return order, nil
	}

	reason := orderNotFoundMessage
	if !domain.IsKind(err, domain.KindNotFound) {
		reason = "Could not get PayPal order."
	}

	logger.Warn("paypal order lookup failed",
		"payment_id", payment.ID,
		"order_id", payment.ServiceID,
		"error", err,
	)

	if saveErr := markAndSave(ctx, store, payment, func(p *domain.Payment) { p.MarkFailed(reason) }); saveErr != nil {
		return nil, errors.Join(err, saveErr)
	}
	return nil, err
}

// markAndSave applies mark to payment and persists it.
func markAndSave(ctx context.Context, store application.PaymentStore, payment *domain.Payment, mark func(*domain.Payment)) error {
	mark(payment)
	if err := store.Save(ctx, payment); err != nil {
		return domain.Wrap(err, "Could not save PayPal payment.")
	}
	return nil
}
