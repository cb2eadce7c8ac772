package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/google/uuid"
)

type ProcessedPayment struct {
	Payment  *domain.Payment   `json:"payment"`
	Purchase *VerifiedPurchase `json:"purchase"`
}

// PaymentService is the host side of the gateway: it owns payment records
// and drives the plugin.
type PaymentService struct {
	plugin *PayPalPlugin
	store  application.PaymentStore
	logger *slog.Logger
}

func NewPaymentService(
	plugin *PayPalPlugin,
	store application.PaymentStore,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		plugin: plugin,
		store:  store,
		logger: logger,
	}
}

func (s *PaymentService) Credentials() Credentials {
	return s.plugin.GetGatewayCredentials()
}

// Create registers a PENDING payment backed by a new PayPal order. Nothing is
// persisted when the order cannot be created.
func (s *PaymentService) Create(ctx context.Context, cmd CreatePaymentCommand) (*CreatedPayment, error) {
	payment, err := domain.NewPayment(uuid.New().String(), cmd.Currency, cmd.Amount, cmd.OrderService, cmd.OrderID)
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	created, err := s.plugin.CreateGatewayPayment(ctx, payment, cmd.Intent)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, created.Payment); err != nil {
		s.logger.Error("paypal order created but payment not stored",
			"payment_id", payment.ID,
			"order_id", created.Order.ID,
			"error", err,
		)
		return nil, application.NewInternalError(err)
	}

	return created, nil
}

// UpdateAmount moves a PENDING payment and its PayPal order to a new amount.
func (s *PaymentService) UpdateAmount(ctx context.Context, cmd UpdateAmountCommand) (*AmountUpdate, error) {
	pending, err := s.store.FindByID(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}
	if pending.Status != domain.StatusPending {
		return nil, application.NewInvalidStateError("Only pending payments can change amount.")
	}

	updated := &domain.Payment{
		ID:       pending.ID,
		Currency: cmd.Currency,
		Amount:   cmd.Amount,
	}

	result, err := s.plugin.UpdateGatewayPaymentAmount(ctx, pending, updated)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, result.Payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("paypal payment amount updated",
		"payment_id", pending.ID,
		"order_id", pending.ServiceID,
		"amount", result.Payment.Amount,
	)
	return result, nil
}

// Process verifies the PayPal order behind a PENDING payment and completes it.
// The payment fails when PayPal collected a different amount or currency.
func (s *PaymentService) Process(ctx context.Context, paymentID string) (*ProcessedPayment, error) {
	payment, err := s.store.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsTerminal() {
		return nil, application.NewInvalidStateError("Payment is already " + string(payment.Status) + ".")
	}

	purchase, err := s.plugin.ProcessGatewayPayment(ctx, payment)
	if err != nil {
		return nil, err
	}

	if err := matchPurchase(payment, purchase); err != nil {
		s.logger.Error("paypal purchase does not match payment",
			"payment_id", payment.ID,
			"order_id", payment.ServiceID,
			"error", err,
		)
		domainErr, _ := domain.AsDomainError(err)
		if saveErr := markAndSave(ctx, s.store, payment, func(p *domain.Payment) { p.MarkFailed(domainErr.Message) }); saveErr != nil {
			return nil, errors.Join(err, saveErr)
		}
		return nil, err
	}

	payment.MarkCompleted()
	if err := s.store.Save(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("paypal payment completed",
		"payment_id", payment.ID,
		"order_id", payment.ServiceID,
		"total_cost", purchase.TotalCost.String(),
	)
	return &ProcessedPayment{Payment: payment, Purchase: purchase}, nil
}

// matchPurchase requires the verified total and currency to equal the
// payment's amount at the currency's precision.
func matchPurchase(payment *domain.Payment, purchase *VerifiedPurchase) error {
	expected, err := domain.FormatAmount(payment.Currency, payment.Amount)
	if err != nil {
		return err
	}
	if purchase.Amount.CurrencyCode == expected.Currency && purchase.TotalCost.Equal(expected.Value) {
		return nil
	}

	return domain.NewAmountMismatchError(expected.Money(), domain.Money{
		CurrencyCode: purchase.Amount.CurrencyCode,
		Value:        purchase.TotalCost.StringFixed(domain.DecimalPlaces(expected.Currency)),
	})
}

// Void cancels a PENDING payment together with whatever PayPal holds for it.
func (s *PaymentService) Void(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.store.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.StatusPending {
		return nil, application.NewInvalidStateError("Only pending payments can be voided.")
	}

	if err := s.plugin.VoidGatewayPayment(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("paypal payment voided by host", "payment_id", payment.ID, "order_id", payment.ServiceID)
	return payment, nil
}

// Transactions lists the PayPal transactions recorded against a payment.
func (s *PaymentService) Transactions(ctx context.Context, paymentID string) ([]paypal.Transaction, error) {
	payment, err := s.store.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return s.plugin.FindGatewayTransactions(ctx, payment)
}

func (s *PaymentService) Get(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.store.FindByID(ctx, paymentID)
}
