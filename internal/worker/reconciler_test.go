package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal/paypaltest"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workerConfig() config.WorkerConfig {
	return config.WorkerConfig{
		Interval:     10 * time.Millisecond,
		BatchSize:    10,
		StaleAfter:   15 * time.Minute,
		AbandonAfter: 72 * time.Hour,
	}
}

type reconcilerEnv struct {
	server  *paypaltest.Server
	store   *testhelpers.MemoryPaymentStore
	service *services.PaymentService
}

func setupReconciler(t *testing.T) reconcilerEnv {
	t.Helper()
	server := paypaltest.NewServer()
	t.Cleanup(server.Close)

	store := testhelpers.NewMemoryPaymentStore()
	logger := testhelpers.DiscardLogger()
	plugin, err := services.NewPayPalPlugin(
		testhelpers.PayPalConfig(server),
		testhelpers.NewPayPalClient(server),
		store,
		logger,
	)
	require.NoError(t, err)

	return reconcilerEnv{
		server:  server,
		store:   store,
		service: services.NewPaymentService(plugin, store, logger),
	}
}

// createStale opens a PayPal order for a payment created an hour ago.
func (env reconcilerEnv) createStale(t *testing.T) *services.CreatedPayment {
	t.Helper()
	return env.createAged(t, time.Hour, "")
}

func (env reconcilerEnv) createAged(t *testing.T, age time.Duration, intent string) *services.CreatedPayment {
	t.Helper()
	created, err := env.service.Create(context.Background(), services.CreatePaymentCommand{
		Currency:     "USD",
		Amount:       "10.00",
		OrderService: "test-order",
		OrderID:      "test-1",
		Intent:       intent,
	})
	require.NoError(t, err)

	created.Payment.CreatedAt = time.Now().Add(-age)
	env.store.Put(created.Payment)
	return created
}

func TestReconciler_SettlesStalePayments(t *testing.T) {
	env := setupReconciler(t)
	ctx := context.Background()

	abandoned := env.createStale(t)
	captured := env.createStale(t)
	env.server.SetStatus(captured.Order.ID, paypal.OrderStatusCompleted)

	fresh, err := env.service.Create(ctx, services.CreatePaymentCommand{
		Currency: "USD", Amount: "5.00", OrderService: "test-order", OrderID: "test-2",
	})
	require.NoError(t, err)

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	result := r.RunOnce(ctx)

	assert.Equal(t, worker.SweepResult{Checked: 2, Completed: 1, Settled: 1}, result)

	stored, err := env.store.FindByID(ctx, abandoned.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVoided, stored.Status)
	assert.True(t, env.server.Deleted(abandoned.Order.ID))

	stored, err = env.store.FindByID(ctx, captured.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)

	stored, err = env.store.FindByID(ctx, fresh.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)

	assert.Equal(t, worker.SweepResult{}, r.RunOnce(ctx), "settled payments are not picked up again")
}

func TestReconciler_VoidsAbandonedAuthorization(t *testing.T) {
	env := setupReconciler(t)
	ctx := context.Background()

	created := env.createAged(t, 96*time.Hour, paypal.IntentAuthorize)
	authID, ok := env.server.Authorize(created.Order.ID)
	require.True(t, ok)

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	result := r.RunOnce(ctx)

	assert.Equal(t, worker.SweepResult{Checked: 1, Voided: 1}, result)
	auth, ok := env.server.Authorization(authID)
	require.True(t, ok)
	assert.Equal(t, paypal.AuthorizationStatusVoided, auth.Status)

	stored, err := env.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVoided, stored.Status)
}

func TestReconciler_AbandonedButCapturedIsCompleted(t *testing.T) {
	env := setupReconciler(t)
	ctx := context.Background()

	created := env.createAged(t, 96*time.Hour, "")
	env.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	result := r.RunOnce(ctx)

	assert.Equal(t, worker.SweepResult{Checked: 1, Completed: 1}, result)
	stored, err := env.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func TestReconciler_FlagsTransactionWithoutOrder(t *testing.T) {
	env := setupReconciler(t)
	ctx := context.Background()

	created := env.createStale(t)
	require.NoError(t, testhelpers.NewPayPalClient(env.server).DeleteOrder(ctx, created.Order))
	env.server.AddTransaction(paypaltest.NewTransaction(
		"TX-1",
		created.Payment.ID,
		paypal.TransactionStatusSuccess,
		created.Payment.CreatedAt.Add(time.Minute),
		domain.Money{CurrencyCode: "USD", Value: "10.00"},
	))

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	result := r.RunOnce(ctx)

	assert.Equal(t, worker.SweepResult{Checked: 1, Settled: 1, Orphaned: 1}, result)
	stored, err := env.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
	assert.Equal(t, 1, env.server.Calls("GET /v1/reporting/transactions"))
}

func TestReconciler_CountsErrors(t *testing.T) {
	env := setupReconciler(t)
	ctx := context.Background()

	created := env.createStale(t)
	env.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)
	env.store.SaveFn = func(ctx context.Context, payment *domain.Payment) error {
		return errors.New("connection reset")
	}

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	result := r.RunOnce(ctx)

	assert.Equal(t, worker.SweepResult{Checked: 1, Errors: 1}, result)
}

func TestReconciler_StartStopsOnCancel(t *testing.T) {
	env := setupReconciler(t)
	created := env.createStale(t)
	env.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	r := worker.NewReconciler(env.store, env.service, workerConfig(), testhelpers.DiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		stored, err := env.store.FindByID(context.Background(), created.Payment.ID)
		return err == nil && stored.Status == domain.StatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
