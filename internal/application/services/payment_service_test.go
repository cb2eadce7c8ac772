package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal/paypaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	server  *paypaltest.Server
	store   *testhelpers.MemoryPaymentStore
	service *services.PaymentService
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.server = paypaltest.NewServer()
	suite.store = testhelpers.NewMemoryPaymentStore()
	logger := testhelpers.DiscardLogger()

	plugin, err := services.NewPayPalPlugin(
		testhelpers.PayPalConfig(suite.server),
		testhelpers.NewPayPalClient(suite.server),
		suite.store,
		logger,
	)
	suite.Require().NoError(err)
	suite.service = services.NewPaymentService(plugin, suite.store, logger)
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

func defaultCreateCommand() services.CreatePaymentCommand {
	return services.CreatePaymentCommand{
		Currency:     "USD",
		Amount:       "10",
		OrderService: "test-order",
		OrderID:      "test-1",
	}
}

func (suite *PaymentServiceTestSuite) TestCreate() {
	t := suite.T()
	ctx := context.Background()

	created, err := suite.service.Create(ctx, defaultCreateCommand())

	require.NoError(t, err)
	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "10.00", stored.Amount)
	assert.Equal(t, created.Order.ID, stored.ServiceID)
	assert.Equal(t, "test-order", stored.OrderService)
}

func (suite *PaymentServiceTestSuite) TestCreate_InvalidAmountStoresNothing() {
	t := suite.T()
	cmd := defaultCreateCommand()
	cmd.Amount = "ten"

	_, err := suite.service.Create(context.Background(), cmd)

	msg, ok := domain.PublicMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid amount ten USD.", msg)
	assert.Equal(t, 0, suite.server.TotalCalls())
}

func (suite *PaymentServiceTestSuite) TestCreate_MissingCurrency() {
	cmd := defaultCreateCommand()
	cmd.Currency = ""

	_, err := suite.service.Create(context.Background(), cmd)

	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeInvalidInput, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) TestUpdateAmountThenProcess() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)

	result, err := suite.service.UpdateAmount(ctx, services.UpdateAmountCommand{
		PaymentID: created.Payment.ID,
		Currency:  "USD",
		Amount:    "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", result.Payment.Amount)

	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", stored.Amount)

	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	processed, err := suite.service.Process(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, processed.Payment.Status)
	assert.Equal(t, "100", processed.Purchase.TotalCost.String())

	stored, err = suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
}

func (suite *PaymentServiceTestSuite) TestProcess_AmountMismatchFailsPayment() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)

	order, ok := suite.server.Order(created.Order.ID)
	require.True(t, ok)
	order.Status = paypal.OrderStatusCompleted
	order.PurchaseUnits[0].Amount = domain.Money{CurrencyCode: "USD", Value: "0.01"}
	suite.server.PutOrder(order)

	_, err = suite.service.Process(ctx, created.Payment.ID)

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindData))
	_, public := domain.PublicMessage(err)
	assert.False(t, public)

	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
	assert.Equal(t, "Expected 10.00 USD amount got 0.01 USD.", stored.Error)
}

func (suite *PaymentServiceTestSuite) TestProcess_CurrencyMismatchFailsPayment() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)

	order, ok := suite.server.Order(created.Order.ID)
	require.True(t, ok)
	order.Status = paypal.OrderStatusCompleted
	order.PurchaseUnits[0].Amount = domain.Money{CurrencyCode: "EUR", Value: "10.00"}
	suite.server.PutOrder(order)

	_, err = suite.service.Process(ctx, created.Payment.ID)

	assert.True(t, domain.IsKind(err, domain.KindData))
	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
	assert.Equal(t, "Expected 10.00 USD amount got 10.00 EUR.", stored.Error)
}

func (suite *PaymentServiceTestSuite) TestProcess_TerminalPaymentRejected() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)
	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)
	_, err = suite.service.Process(ctx, created.Payment.ID)
	require.NoError(t, err)
	callsBefore := suite.server.TotalCalls()

	_, err = suite.service.Process(ctx, created.Payment.ID)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
	assert.Equal(t, callsBefore, suite.server.TotalCalls())

	_, err = suite.service.UpdateAmount(ctx, services.UpdateAmountCommand{PaymentID: created.Payment.ID, Currency: "USD", Amount: "1"})
	svcErr, ok = application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) TestVoid_AbandonedOrderDeleted() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)

	voided, err := suite.service.Void(ctx, created.Payment.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVoided, voided.Status)
	assert.True(t, suite.server.Deleted(created.Order.ID))

	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVoided, stored.Status)

	_, err = suite.service.Void(ctx, created.Payment.ID)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInvalidState, svcErr.Code)
}

func (suite *PaymentServiceTestSuite) TestVoid_AuthorizationReleased() {
	t := suite.T()
	ctx := context.Background()
	cmd := defaultCreateCommand()
	cmd.Intent = paypal.IntentAuthorize
	created, err := suite.service.Create(ctx, cmd)
	require.NoError(t, err)
	authID, ok := suite.server.Authorize(created.Order.ID)
	require.True(t, ok)

	voided, err := suite.service.Void(ctx, created.Payment.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVoided, voided.Status)
	auth, ok := suite.server.Authorization(authID)
	require.True(t, ok)
	assert.Equal(t, paypal.AuthorizationStatusVoided, auth.Status)
	assert.False(t, suite.server.Deleted(created.Order.ID))
}

func (suite *PaymentServiceTestSuite) TestVoid_CapturedPaymentUntouched() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)
	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	_, err = suite.service.Void(ctx, created.Payment.ID)

	assert.True(t, domain.IsKind(err, domain.KindConstraint))
	msg, ok := domain.PublicMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Captured PayPal payment cannot be voided.", msg)

	stored, err := suite.store.FindByID(ctx, created.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
}

func (suite *PaymentServiceTestSuite) TestTransactions_MatchesCustomField() {
	t := suite.T()
	ctx := context.Background()
	created, err := suite.service.Create(ctx, defaultCreateCommand())
	require.NoError(t, err)
	createdAt := time.Now().Add(-time.Hour)
	created.Payment.CreatedAt = createdAt
	suite.store.Put(created.Payment)

	amount := domain.Money{CurrencyCode: "USD", Value: "10.00"}
	suite.server.AddTransaction(paypaltest.NewTransaction("TX-1", created.Payment.ID, paypal.TransactionStatusSuccess, createdAt.Add(time.Minute), amount))
	suite.server.AddTransaction(paypaltest.NewTransaction("TX-2", "another-payment", paypal.TransactionStatusSuccess, createdAt.Add(time.Minute), amount))
	suite.server.AddTransaction(paypaltest.NewTransaction("TX-3", created.Payment.ID, paypal.TransactionStatusSuccess, createdAt.Add(-time.Hour), amount))

	transactions, err := suite.service.Transactions(ctx, created.Payment.ID)

	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "TX-1", transactions[0].Info.TransactionID)

	_, err = suite.service.Transactions(ctx, "missing")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func (suite *PaymentServiceTestSuite) TestGet_NotFound() {
	_, err := suite.service.Get(context.Background(), "missing")

	suite.True(domain.IsKind(err, domain.KindNotFound))
}
