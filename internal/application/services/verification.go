package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/shopspring/decimal"
)

// VerifiedPurchase is a COMPLETED PayPal purchase unit with the order total.
type VerifiedPurchase struct {
	ReferenceID string          `json:"reference_id"`
	Amount      domain.Money    `json:"amount"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

type VerificationService struct {
	gateway application.OrderGateway
	store   application.PaymentStore
	logger  *slog.Logger
}

func NewVerificationService(
	gateway application.OrderGateway,
	store application.PaymentStore,
	logger *slog.Logger,
) *VerificationService {
	return &VerificationService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// Process fetches the order behind payment and verifies it.
func (s *VerificationService) Process(ctx context.Context, payment *domain.Payment) (*VerifiedPurchase, error) {
	order, err := getOrderFromPayment(ctx, s.gateway, s.store, s.logger, payment)
	if err != nil {
		return nil, err
	}
	return s.VerifyOrder(ctx, payment, order)
}

// VerifyOrder accepts only COMPLETED orders. A CREATED order was abandoned by
// the payer: it is deleted and the payment VOIDED. Any other status fails the
// payment.
func (s *VerificationService) VerifyOrder(ctx context.Context, payment *domain.Payment, order *paypal.Order) (*VerifiedPurchase, error) {
	logger := s.logger.With("payment_id", payment.ID, "order_id", order.ID, "status", order.Status)

	switch order.Status {
	case paypal.OrderStatusCompleted:
	case paypal.OrderStatusCreated:
		if err := s.gateway.DeleteOrder(ctx, order); err != nil {
			return nil, err
		}

		const message = "PayPal order canceled."
		if err := markAndSave(ctx, s.store, payment, func(p *domain.Payment) { p.MarkVoided(message) }); err != nil {
			return nil, err
		}

		logger.Info("abandoned paypal order canceled")
		return nil, domain.NewDataError(message, true, map[string]any{"order_id": order.ID})
	default:
		message := fmt.Sprintf("Expected PayPal Status COMPLETED got %s.", order.Status)
		if err := markAndSave(ctx, s.store, payment, func(p *domain.Payment) { p.MarkFailed(message) }); err != nil {
			return nil, err
		}

		logger.Warn("paypal order not completed")
		return nil, domain.NewDataError(message, false, map[string]any{"order_id": order.ID, "status": string(order.Status)})
	}

	if len(order.PurchaseUnits) == 0 {
		return nil, domain.NewDataError("Missing PayPal purchase(s).", false, map[string]any{"order_id": order.ID})
	}

	unit, ok := order.Unit(payment.ID)
	if !ok {
		unit = order.PurchaseUnits[0]
	}
	if len(order.PurchaseUnits) > 1 {
		logger.Warn("paypal order has more than one purchase unit", "units", len(order.PurchaseUnits))
	}

	// Guards against a payer re-using an order already attached to a payment.
	existing, err := s.store.FindAll(ctx, domain.PaymentQuery{Service: domain.ServicePayPal, ServiceID: order.ID})
	if err != nil {
		return nil, domain.Wrap(err, "Could not look up payments for PayPal order.")
	}
	if len(existing) > 1 {
		logger.Error("paypal order attached to more than one payment", "payments", len(existing))
		return nil, domain.NewDuplicateError(
			fmt.Sprintf("More than one Payment found for PayPal order %s.", order.ID),
			map[string]any{"order_id": order.ID, "payments": len(existing)},
		)
	}

	total, err := order.TotalCost()
	if err != nil {
		return nil, err
	}

	return &VerifiedPurchase{
		ReferenceID: unit.ReferenceID,
		Amount:      unit.Amount,
		TotalCost:   total,
	}, nil
}
