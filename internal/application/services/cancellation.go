package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

const voidedMessage = "PayPal payment voided."

// CancellationService releases whatever PayPal holds for a payment that will
// not be completed.
type CancellationService struct {
	gateway application.OrderGateway
	store   application.PaymentStore
	logger  *slog.Logger
}

func NewCancellationService(
	gateway application.OrderGateway,
	store application.PaymentStore,
	logger *slog.Logger,
) *CancellationService {
	return &CancellationService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Void deletes an order the payer has not paid, or voids the open
// authorizations of an authorized one, and marks payment VOIDED. A captured
// order is a CONSTRAINT error and leaves payment as it was.
func (s *CancellationService) Void(ctx context.Context, payment *domain.Payment) error {
	order, err := getOrderFromPayment(ctx, s.gateway, s.store, s.logger, payment)
	if err != nil {
		return err
	}
	logger := s.logger.With("payment_id", payment.ID, "order_id", order.ID, "status", order.Status)

	switch order.Status {
	case paypal.OrderStatusCreated, paypal.OrderStatusSaved, paypal.OrderStatusApproved, paypal.OrderStatusPayerActionRequired:
		if err := s.gateway.DeleteOrder(ctx, order); err != nil {
			return err
		}
	case paypal.OrderStatusCompleted:
		open := order.VoidableAuthorizations()
		if order.Intent != paypal.IntentAuthorize || len(open) == 0 {
			return &domain.DomainError{
				Kind:    domain.KindConstraint,
				Message: "Captured PayPal payment cannot be voided.",
				Public:  true,
				Details: map[string]any{"order_id": order.ID},
			}
		}
		for _, auth := range open {
			if err := s.gateway.VoidAuthorization(ctx, auth.ID); err != nil {
				logger.Error("paypal authorization void failed", "authorization_id", auth.ID, "error", err)
				return err
			}
		}
	case paypal.OrderStatusVoided:
	default:
		return domain.NewDataError(
			fmt.Sprintf("Cannot void PayPal order with status %s.", order.Status),
			false,
			map[string]any{"order_id": order.ID, "status": string(order.Status)},
		)
	}

	if err := markAndSave(ctx, s.store, payment, func(p *domain.Payment) { p.MarkVoided(voidedMessage) }); err != nil {
		return err
	}

	logger.Info("paypal payment voided")
	return nil
}
