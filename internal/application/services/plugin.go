package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

// Credentials are safe to hand to a checkout front end.
type Credentials struct {
	Service  string `json:"service"`
	ClientID string `json:"client_id"`
}

type CreatedPayment struct {
	Order   *paypal.Order   `json:"order"`
	Payment *domain.Payment `json:"payment"`
}

// PayPalPlugin is the gateway contract a host payment system calls into.
// Every error it returns keeps the kind, visibility and details of its cause.
type PayPalPlugin struct {
	clientID       string
	gateway        application.OrderGateway
	verification   *VerificationService
	reconciliation *ReconciliationService
	cancellation   *CancellationService
	now            func() time.Time
	logger         *slog.Logger
}

func NewPayPalPlugin(
	cfg config.PayPalConfig,
	gateway application.OrderGateway,
	store application.PaymentStore,
	logger *slog.Logger,
) (*PayPalPlugin, error) {
	if cfg.API == "" || cfg.ClientID == "" || cfg.Secret == "" {
		return nil, domain.NewDataError("Missing PayPal api, clientId and/or secret.", false, nil)
	}

	return &PayPalPlugin{
		clientID:       cfg.ClientID,
		gateway:        gateway,
		verification:   NewVerificationService(gateway, store, logger),
		reconciliation: NewReconciliationService(gateway, store, logger),
		cancellation:   NewCancellationService(gateway, store, logger),
		now:            time.Now,
		logger:         logger,
	}, nil
}

func (p *PayPalPlugin) GetGatewayCredentials() Credentials {
	return Credentials{Service: domain.ServicePayPal, ClientID: p.clientID}
}

// CreateGatewayPayment opens a PayPal order for payment and records it on the
// returned copy. The amount is validated before any request is made.
func (p *PayPalPlugin) CreateGatewayPayment(ctx context.Context, payment *domain.Payment, intent string) (*CreatedPayment, error) {
	amount, err := domain.FormatAmount(payment.Currency, payment.Amount)
	if err != nil {
		return nil, domain.Wrap(err, "Could not create PayPal payment.")
	}

	order, err := p.gateway.CreateOrder(ctx, payment.ID, amount, intent)
	if err != nil {
		return nil, domain.Wrap(err, "Could not create PayPal payment.")
	}

	created := *payment
	created.Amount = amount.String()
	created.AttachRemoteOrder(domain.ServicePayPal, order.ID)

	p.logger.Info("paypal payment created", "payment_id", payment.ID, "order_id", order.ID)
	return &CreatedPayment{Order: order, Payment: &created}, nil
}

func (p *PayPalPlugin) UpdateGatewayPaymentAmount(ctx context.Context, pending, updated *domain.Payment) (*AmountUpdate, error) {
	result, err := p.reconciliation.UpdateAmount(ctx, pending, updated)
	if err != nil {
		return nil, domain.Wrap(err, "Could not update PayPal payment amount.")
	}
	return result, nil
}

func (p *PayPalPlugin) ProcessGatewayPayment(ctx context.Context, payment *domain.Payment) (*VerifiedPurchase, error) {
	purchase, err := p.verification.Process(ctx, payment)
	if err != nil {
		return nil, domain.Wrap(err, "Could not process PayPal payment.")
	}
	return purchase, nil
}

func (p *PayPalPlugin) VoidGatewayPayment(ctx context.Context, payment *domain.Payment) error {
	if err := p.cancellation.Void(ctx, payment); err != nil {
		return domain.Wrap(err, "Could not void PayPal payment.")
	}
	return nil
}

// FindGatewayTransactions lists the reporting API transactions whose custom
// field is payment's id. The search starts when payment was created and spans
// at most the reporting API's window.
func (p *PayPalPlugin) FindGatewayTransactions(ctx context.Context, payment *domain.Payment) ([]paypal.Transaction, error) {
	now := p.now()
	start := payment.CreatedAt
	if start.IsZero() || start.After(now) {
		start = now.Add(-paypal.MaxTransactionWindow)
	}
	end := start.Add(paypal.MaxTransactionWindow)
	if end.After(now) {
		end = now
	}

	transactions, err := p.gateway.ListTransactions(ctx, paypal.TransactionQuery{StartDate: start, EndDate: end})
	if err != nil {
		return nil, domain.Wrap(err, "Could not find PayPal transactions.")
	}

	matched := make([]paypal.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Info.CustomField == payment.ID {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}
