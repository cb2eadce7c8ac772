package paypal_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal/paypaltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *paypaltest.Server
	client *paypal.Client
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = paypaltest.NewServer()
	s.client = paypal.NewClient(config.PayPalConfig{
		API:                s.server.URL,
		ClientID:           paypaltest.ClientID,
		Secret:             paypaltest.Secret,
		BrandName:          "test-project",
		ShippingPreference: "NO_SHIPPING",
		Intent:             paypal.IntentCapture,
		Timeout:            5 * time.Second,
		TokenSafetyMargin:  5 * time.Second,
	}, paypal.NewMemoryTokenCache(nil), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) createOrder(value string) *paypal.Order {
	amount, err := domain.FormatAmount("USD", value)
	s.Require().NoError(err)

	order, err := s.client.CreateOrder(s.T().Context(), "payment-1", amount, "")
	s.Require().NoError(err)
	return order
}

func (s *ClientTestSuite) TestCreateOrder() {
	t := s.T()

	order := s.createOrder("10")

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, paypal.OrderStatusCreated, order.Status)
	assert.Equal(t, paypal.IntentCapture, order.Intent)
	require.Len(t, order.PurchaseUnits, 1)
	assert.Equal(t, "payment-1", order.PurchaseUnits[0].ReferenceID)
	assert.Equal(t, "payment-1", order.PurchaseUnits[0].CustomID)
	assert.Equal(t, domain.Money{CurrencyCode: "USD", Value: "10.00"}, order.PurchaseUnits[0].Amount)
	assert.Equal(t, 1, s.server.Calls("POST /v1/oauth2/token"))
}

func (s *ClientTestSuite) TestCreateOrder_ExplicitIntent() {
	amount, err := domain.FormatAmount("JPY", "1000")
	s.Require().NoError(err)

	order, err := s.client.CreateOrder(s.T().Context(), "payment-2", amount, paypal.IntentAuthorize)

	s.Require().NoError(err)
	s.Equal(paypal.IntentAuthorize, order.Intent)
	s.Equal("1000", order.PurchaseUnits[0].Amount.Value)
}

func (s *ClientTestSuite) TestGetOrder() {
	created := s.createOrder("10.00")

	order, err := s.client.GetOrder(s.T().Context(), created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, order.ID)
	s.Equal(created.PurchaseUnits, order.PurchaseUnits)
	s.Equal(1, s.server.Calls("POST /v1/oauth2/token"), "token should be reused")
}

func (s *ClientTestSuite) TestGetOrder_NotFound() {
	t := s.T()

	_, err := s.client.GetOrder(t.Context(), "missing")

	require.Error(t, err)
	domainErr, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, domainErr.Kind)
	assert.True(t, domainErr.Public)
	assert.Equal(t, "missing", domainErr.Details["id"])

	apiErr, ok := paypal.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "RESOURCE_NOT_FOUND", apiErr.Name)
}

func (s *ClientTestSuite) TestGetOrder_StatusMapping() {
	tests := []struct {
		status int
		name   string
		want   domain.ErrorKind
	}{
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", domain.KindNetwork},
		{http.StatusConflict, "DUPLICATE_REQUEST", domain.KindDuplicate},
		{http.StatusForbidden, "NOT_AUTHORIZED", domain.KindNotAllowed},
		{http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", domain.KindData},
		{http.StatusGone, "GONE", domain.KindEndpointMissing},
	}

	created := s.createOrder("10.00")
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.server.FailNext("GET /v2/checkout/orders", tt.status, tt.name)

			_, err := s.client.GetOrder(s.T().Context(), created.ID)

			domainErr, ok := domain.AsDomainError(err)
			s.Require().True(ok)
			s.Equal(tt.want, domainErr.Kind)
			s.False(domainErr.Public)
			s.Equal(tt.status, domainErr.Details["status"])
			s.Equal(tt.name, domainErr.Details["name"])
			s.Equal("f0a1b2c3d4e5", domainErr.Details["debug_id"])
		})
	}
}

func (s *ClientTestSuite) TestUpdateOrder() {
	created := s.createOrder("10.00")
	patch := paypal.NewAmountPatch(created.ID, "payment-1", domain.Money{CurrencyCode: "USD", Value: "100.00"})

	updated, err := s.client.UpdateOrder(s.T().Context(), created, patch)

	s.Require().NoError(err)
	s.Equal("100.00", updated.PurchaseUnits[0].Amount.Value)
	s.Equal(1, s.server.Calls("PATCH /v2/checkout/orders"))
	s.Equal(1, s.server.Calls("GET /v2/checkout/orders"), "update should re-fetch the order")
}

func (s *ClientTestSuite) TestUpdateOrder_PatchForAnotherOrder() {
	created := s.createOrder("10.00")
	patch := paypal.NewAmountPatch("other", "payment-1", domain.Money{CurrencyCode: "USD", Value: "100.00"})

	_, err := s.client.UpdateOrder(s.T().Context(), created, patch)

	s.True(domain.IsKind(err, domain.KindData))
	s.Equal(0, s.server.Calls("PATCH /v2/checkout/orders"))
}

func (s *ClientTestSuite) TestUpdateOrder_UnknownReference() {
	created := s.createOrder("10.00")
	patch := paypal.NewAmountPatch(created.ID, "nope", domain.Money{CurrencyCode: "USD", Value: "100.00"})

	_, err := s.client.UpdateOrder(s.T().Context(), created, patch)

	s.True(domain.IsKind(err, domain.KindData))
	s.Equal(0, s.server.Calls("GET /v2/checkout/orders"))
}

func (s *ClientTestSuite) TestDeleteOrder() {
	created := s.createOrder("10.00")

	err := s.client.DeleteOrder(s.T().Context(), created)

	s.Require().NoError(err)
	s.True(s.server.Deleted(created.ID))

	_, err = s.client.GetOrder(s.T().Context(), created.ID)
	s.True(domain.IsKind(err, domain.KindNotFound))
}

func (s *ClientTestSuite) TestUnauthorizedInvalidatesToken() {
	created := s.createOrder("10.00")
	s.server.RevokeTokens()

	_, err := s.client.GetOrder(s.T().Context(), created.ID)
	s.True(domain.IsKind(err, domain.KindNotAllowed))
	s.Equal(1, s.server.Calls("POST /v1/oauth2/token"))

	order, err := s.client.GetOrder(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, order.ID)
	s.Equal(2, s.server.Calls("POST /v1/oauth2/token"))
}

func (s *ClientTestSuite) TestAuthenticationFailureSurfaces() {
	s.server.FailNext("POST /v1/oauth2/token", http.StatusUnauthorized, "invalid_client")

	_, err := s.client.GetOrder(s.T().Context(), "any")

	s.True(domain.IsKind(err, domain.KindNotAllowed))
	s.Equal(0, s.server.Calls("GET /v2/checkout/orders"))
}

func (s *ClientTestSuite) TestVoidAuthorization() {
	created := s.createOrder("10.00")
	authID, ok := s.server.Authorize(created.ID)
	s.Require().True(ok)

	order, err := s.client.GetOrder(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Require().Len(order.VoidableAuthorizations(), 1)

	err = s.client.VoidAuthorization(s.T().Context(), authID)

	s.Require().NoError(err)
	auth, ok := s.server.Authorization(authID)
	s.Require().True(ok)
	s.Equal(paypal.AuthorizationStatusVoided, auth.Status)

	order, err = s.client.GetOrder(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Empty(order.VoidableAuthorizations())
}

func (s *ClientTestSuite) TestVoidAuthorization_Errors() {
	t := s.T()

	err := s.client.VoidAuthorization(t.Context(), "missing")
	domainErr, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, domainErr.Kind)
	assert.Equal(t, "PayPal authorization not found.", domainErr.Message)

	created := s.createOrder("10.00")
	authID, _ := s.server.Authorize(created.ID)
	require.NoError(t, s.client.VoidAuthorization(t.Context(), authID))

	err = s.client.VoidAuthorization(t.Context(), authID)
	assert.True(t, domain.IsKind(err, domain.KindData))
	assert.Equal(t, 2, s.server.Calls("POST /v2/payments/authorizations/void"))
}

func (s *ClientTestSuite) TestListTransactions_FollowsPages() {
	t := s.T()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))
	end := start.Add(48 * time.Hour)
	amount := domain.Money{CurrencyCode: "USD", Value: "10.00"}
	for i := range 5 {
		s.server.AddTransaction(paypaltest.NewTransaction(
			fmt.Sprintf("TX-%d", i), "payment-1", paypal.TransactionStatusSuccess, start.Add(time.Duration(i)*time.Hour), amount,
		))
	}
	s.server.AddTransaction(paypaltest.NewTransaction("TX-late", "payment-1", paypal.TransactionStatusSuccess, end.Add(time.Hour), amount))
	s.server.MaxPageSize = 2

	transactions, err := s.client.ListTransactions(t.Context(), paypal.TransactionQuery{StartDate: start, EndDate: end})

	require.NoError(t, err)
	require.Len(t, transactions, 5)
	assert.Equal(t, "TX-0", transactions[0].Info.TransactionID)
	assert.Equal(t, "TX-4", transactions[4].Info.TransactionID)
	assert.Equal(t, "payment-1", transactions[4].Info.CustomField)

	queries := s.server.ReportingQueries()
	require.Len(t, queries, 3)
	for i, q := range queries {
		assert.Equal(t, "2024-02-29T23:00:00Z", q.Get("start_date"))
		assert.Equal(t, "2024-03-02T23:00:00Z", q.Get("end_date"))
		assert.Equal(t, strconv.Itoa(i+1), q.Get("page"))
	}
}

func (s *ClientTestSuite) TestListTransactions_Empty() {
	now := time.Now()

	transactions, err := s.client.ListTransactions(s.T().Context(), paypal.TransactionQuery{StartDate: now.Add(-time.Hour)})

	s.Require().NoError(err)
	s.Empty(transactions)
	s.Equal(1, s.server.Calls("GET /v1/reporting/transactions"))
}

func (s *ClientTestSuite) TestListTransactions_InvalidRange() {
	now := time.Now()

	_, err := s.client.ListTransactions(s.T().Context(), paypal.TransactionQuery{StartDate: now, EndDate: now.Add(-time.Minute)})
	s.True(domain.IsKind(err, domain.KindData))

	_, err = s.client.ListTransactions(s.T().Context(), paypal.TransactionQuery{
		StartDate: now.Add(-paypal.MaxTransactionWindow - time.Hour),
		EndDate:   now,
	})
	s.True(domain.IsKind(err, domain.KindData))
	s.Equal(0, s.server.TotalCalls())
}

func (s *ClientTestSuite) TestListTransactions_Failure() {
	s.server.FailNext("GET /v1/reporting/transactions", http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")

	_, err := s.client.ListTransactions(s.T().Context(), paypal.TransactionQuery{StartDate: time.Now().Add(-time.Hour)})

	s.True(domain.IsKind(err, domain.KindNetwork))
	msg := err.Error()
	s.Contains(msg, "Could not list PayPal transactions.")
}
