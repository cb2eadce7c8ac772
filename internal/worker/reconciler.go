package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
)

type PaymentProcessor interface {
	Process(ctx context.Context, paymentID string) (*services.ProcessedPayment, error)
	Void(ctx context.Context, paymentID string) (*domain.Payment, error)
	Transactions(ctx context.Context, paymentID string) ([]paypal.Transaction, error)
}

// SweepResult counts what one reconciliation cycle did. Orphaned payments
// lost their order although PayPal reports a completed transaction for them.
type SweepResult struct {
	Checked   int
	Completed int
	Voided    int
	Settled   int
	Orphaned  int
	Errors    int
}

// Reconciler periodically verifies PENDING PayPal payments whose order has
// been open longer than StaleAfter. Abandoned orders end up VOIDED and orders
// captured out-of-band end up COMPLETED. Payments still pending after
// AbandonAfter are voided, releasing any authorization hold, unless PayPal
// already captured the funds. Every cycle is a fresh verification.
type Reconciler struct {
	store        application.PaymentStore
	processor    PaymentProcessor
	interval     time.Duration
	batchSize    int
	staleAfter   time.Duration
	abandonAfter time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

func NewReconciler(
	store application.PaymentStore,
	processor PaymentProcessor,
	cfg config.WorkerConfig,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		store:        store,
		processor:    processor,
		interval:     cfg.Interval,
		batchSize:    cfg.BatchSize,
		staleAfter:   cfg.StaleAfter,
		abandonAfter: cfg.AbandonAfter,
		now:          time.Now,
		logger:       logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting background reconciler",
		"interval", r.interval,
		"batch_size", r.batchSize,
		"stale_after", r.staleAfter,
		"abandon_after", r.abandonAfter,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping background reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle.
func (r *Reconciler) RunOnce(ctx context.Context) SweepResult {
	var result SweepResult

	now := r.now()
	cutoff := now.Add(-r.staleAfter)
	abandonCutoff := now.Add(-r.abandonAfter)
	pending, err := r.store.FindStalePending(ctx, domain.ServicePayPal, cutoff, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch stale pending payments", "error", err)
		return result
	}

	if len(pending) == 0 {
		return result
	}

	r.logger.Info("reconciling stale payments", "count", len(pending))

	for _, p := range pending {
		if ctx.Err() != nil {
			break
		}
		result.Checked++

		if r.abandonAfter > 0 && p.CreatedAt.Before(abandonCutoff) {
			voided, err := r.void(ctx, p, &result)
			if voided || err != nil {
				continue
			}
		}

		if _, err := r.processor.Process(ctx, p.ID); err != nil {
			r.classify(ctx, p, err, &result)
			continue
		}

		result.Completed++
		r.logger.Info("stale payment completed", "payment_id", p.ID, "order_id", p.ServiceID)
	}

	return result
}

// void releases an abandoned payment. It reports false with a nil error when
// the funds were captured and the payment should be processed instead.
func (r *Reconciler) void(ctx context.Context, p *domain.Payment, result *SweepResult) (bool, error) {
	_, err := r.processor.Void(ctx, p.ID)
	if err == nil {
		result.Voided++
		r.logger.Info("abandoned payment voided", "payment_id", p.ID, "order_id", p.ServiceID)
		return true, nil
	}
	if domain.IsKind(err, domain.KindConstraint) {
		r.logger.Info("abandoned payment was captured, processing instead", "payment_id", p.ID, "order_id", p.ServiceID)
		return false, nil
	}

	r.classify(ctx, p, err, result)
	return false, err
}

// classify tells apart a payment that verification moved to a terminal state
// from one that is still PENDING because the cycle failed.
func (r *Reconciler) classify(ctx context.Context, p *domain.Payment, err error, result *SweepResult) {
	if domain.IsKind(err, domain.KindNotFound) {
		r.checkTransactions(ctx, p, result)
	}

	current, findErr := r.store.FindByID(ctx, p.ID)
	if findErr == nil && current.IsTerminal() {
		result.Settled++
		r.logger.Info("stale payment settled",
			"payment_id", p.ID,
			"order_id", p.ServiceID,
			"status", current.Status,
			"reason", current.Error,
		)
		return
	}

	result.Errors++
	r.logger.Error("reconciliation failed for payment",
		"payment_id", p.ID,
		"order_id", p.ServiceID,
		"category", application.CategorizeError(err),
		"error", err,
	)
}

// checkTransactions looks for money PayPal took for a payment whose order is
// gone. Such payments need a manual refund or completion.
func (r *Reconciler) checkTransactions(ctx context.Context, p *domain.Payment, result *SweepResult) {
	transactions, err := r.processor.Transactions(ctx, p.ID)
	if err != nil {
		r.logger.Warn("transaction lookup failed", "payment_id", p.ID, "error", err)
		return
	}

	for _, tx := range transactions {
		if tx.Info.Status != paypal.TransactionStatusSuccess {
			continue
		}
		result.Orphaned++
		r.logger.Error("paypal transaction found for payment without order",
			"payment_id", p.ID,
			"order_id", p.ServiceID,
			"transaction_id", tx.Info.TransactionID,
			"amount", tx.Info.Amount,
		)
		return
	}
}
