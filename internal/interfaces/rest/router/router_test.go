package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/api"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services/testhelpers"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal/paypaltest"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Error   rest.ErrorDetail `json:"error"`
}

type paymentData struct {
	Order struct {
		ID string `json:"id"`
	} `json:"order"`
	Payment struct {
		ID     string `json:"id"`
		Amount string `json:"amount"`
		Status string `json:"status"`
		Error  string `json:"error"`
	} `json:"payment"`
}

type RouterTestSuite struct {
	suite.Suite
	server  *paypaltest.Server
	store   *testhelpers.MemoryPaymentStore
	handler http.Handler
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
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

	doc, err := api.LoadDocument(suite.T().Context())
	suite.Require().NoError(err)

	suite.handler, err = router.New(services.NewPaymentService(plugin, suite.store, logger), doc, 5*time.Second, logger)
	suite.Require().NoError(err)
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *RouterTestSuite) do(method, path string, body any) (int, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()

	suite.handler.ServeHTTP(rec, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (suite *RouterTestSuite) createPayment(amount string) paymentData {
	status, env := suite.do(http.MethodPost, "/payments", map[string]string{
		"currency":      "USD",
		"amount":        amount,
		"order_service": "test-order",
		"order_id":      "test-1",
	})
	suite.Require().Equal(http.StatusCreated, status, env.Error.Message)

	var data paymentData
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	return data
}

func (suite *RouterTestSuite) TestCredentials() {
	status, env := suite.do(http.MethodGet, "/gateway/credentials", nil)

	suite.Equal(http.StatusOK, status)
	suite.True(env.Success)
	suite.JSONEq(`{"service":"paypal","client_id":"testId"}`, string(env.Data))
}

func (suite *RouterTestSuite) TestCreatePayment() {
	data := suite.createPayment("10")

	suite.NotEmpty(data.Payment.ID)
	suite.NotEmpty(data.Order.ID)
	suite.Equal("10.00", data.Payment.Amount)
	suite.Equal("PENDING", data.Payment.Status)
}

func (suite *RouterTestSuite) TestCreatePayment_SchemaViolation() {
	status, env := suite.do(http.MethodPost, "/payments", map[string]any{
		"currency":      "USD",
		"amount":        10,
		"order_service": "test-order",
		"order_id":      "test-1",
	})

	suite.Equal(http.StatusBadRequest, status)
	suite.False(env.Success)
	suite.Equal("INVALID_INPUT", env.Error.Code)
	suite.Equal(0, suite.server.TotalCalls())
}

func (suite *RouterTestSuite) TestCreatePayment_UnsupportedCurrency() {
	status, env := suite.do(http.MethodPost, "/payments", map[string]string{
		"currency":      "AWG",
		"amount":        "10.00",
		"order_service": "test-order",
		"order_id":      "test-1",
	})

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("DATA", env.Error.Code)
	suite.Equal("Unsupported PayPal currency AWG.", env.Error.Message)
	suite.Equal("AWG", env.Error.Details["currency"])
	suite.Equal(0, suite.server.TotalCalls())
}

func (suite *RouterTestSuite) TestUpdateAndProcess() {
	created := suite.createPayment("10.00")

	status, env := suite.do(http.MethodPatch, "/payments/"+created.Payment.ID+"/amount", map[string]string{
		"currency": "USD",
		"amount":   "100",
	})
	suite.Require().Equal(http.StatusOK, status, env.Error.Message)

	var updated paymentData
	suite.Require().NoError(json.Unmarshal(env.Data, &updated))
	suite.Equal("100.00", updated.Payment.Amount)

	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	status, env = suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/process", nil)
	suite.Require().Equal(http.StatusOK, status, env.Error.Message)

	var processed struct {
		Payment struct {
			Status string `json:"status"`
		} `json:"payment"`
		Purchase struct {
			TotalCost string `json:"total_cost"`
		} `json:"purchase"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &processed))
	suite.Equal("COMPLETED", processed.Payment.Status)
	suite.Equal("100", processed.Purchase.TotalCost)

	status, env = suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/process", nil)
	suite.Equal(http.StatusConflict, status)
	suite.Equal("INVALID_STATE", env.Error.Code)
}

func (suite *RouterTestSuite) TestProcess_AbandonedOrder() {
	created := suite.createPayment("10.00")

	status, env := suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/process", nil)

	suite.Equal(http.StatusBadRequest, status)
	suite.Equal("PayPal order canceled.", env.Error.Message)
	suite.True(suite.server.Deleted(created.Order.ID))

	status, env = suite.do(http.MethodGet, "/payments/"+created.Payment.ID, nil)
	suite.Equal(http.StatusOK, status)
	var payment struct {
		Status string `json:"status"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &payment))
	suite.Equal("VOIDED", payment.Status)
}

func (suite *RouterTestSuite) TestProcess_InternalMessageHidden() {
	created := suite.createPayment("10.00")
	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusVoided)

	status, env := suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/process", nil)

	suite.Equal(http.StatusUnprocessableEntity, status)
	suite.Equal("DATA", env.Error.Code)
	suite.Equal("An internal error occurred", env.Error.Message)
	suite.Empty(env.Error.Details)
}

func (suite *RouterTestSuite) TestCreatePayment_AmountOutOfBounds() {
	tests := []struct {
		name    string
		amount  string
		code    string
		message string
	}{
		{"huge exponent", "1e50000000", "DATA", "Invalid amount 1e50000000 USD."},
		{"not a number", "ten", "INVALID_INPUT", "Invalid input"},
		{"too long", strings.Repeat("1", 33), "INVALID_INPUT", "Invalid input"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			status, env := suite.do(http.MethodPost, "/payments", map[string]string{
				"currency":      "USD",
				"amount":        tt.amount,
				"order_service": "test-order",
				"order_id":      "test-1",
			})

			suite.Equal(http.StatusBadRequest, status)
			suite.Equal(tt.code, env.Error.Code)
			suite.Equal(tt.message, env.Error.Message)
		})
	}
	suite.Equal(0, suite.server.TotalCalls())
}

func (suite *RouterTestSuite) TestGetPayment_MalformedID() {
	created := suite.createPayment("10.00")

	for _, path := range []string{
		"/payments/missing",
		"/payments/" + strings.Replace(created.Payment.ID, "-", "%252D", 1),
	} {
		status, env := suite.do(http.MethodGet, path, nil)

		suite.Equal(http.StatusBadRequest, status, path)
		suite.Equal("INVALID_INPUT", env.Error.Code, path)
	}

	status, _ := suite.do(http.MethodGet, "/payments/"+strings.ToUpper(created.Payment.ID), nil)
	suite.Equal(http.StatusOK, status)
}

func (suite *RouterTestSuite) TestVoidPayment() {
	created := suite.createPayment("10.00")

	status, env := suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/void", nil)
	suite.Require().Equal(http.StatusOK, status, env.Error.Message)

	var payment struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &payment))
	suite.Equal("VOIDED", payment.Status)
	suite.Equal("PayPal payment voided.", payment.Error)
	suite.True(suite.server.Deleted(created.Order.ID))

	status, env = suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/void", nil)
	suite.Equal(http.StatusConflict, status)
	suite.Equal("INVALID_STATE", env.Error.Code)
}

func (suite *RouterTestSuite) TestVoidPayment_Captured() {
	created := suite.createPayment("10.00")
	suite.server.SetStatus(created.Order.ID, paypal.OrderStatusCompleted)

	status, env := suite.do(http.MethodPost, "/payments/"+created.Payment.ID+"/void", nil)

	suite.Equal(http.StatusUnprocessableEntity, status)
	suite.Equal("CONSTRAINT", env.Error.Code)
	suite.Equal("Captured PayPal payment cannot be voided.", env.Error.Message)
}

func (suite *RouterTestSuite) TestListPaymentTransactions() {
	created := suite.createPayment("10.00")
	payment, err := suite.store.FindByID(suite.T().Context(), created.Payment.ID)
	suite.Require().NoError(err)
	payment.CreatedAt = time.Now().Add(-time.Hour)
	suite.store.Put(payment)
	suite.server.AddTransaction(paypaltest.NewTransaction(
		"TX-1", created.Payment.ID, paypal.TransactionStatusSuccess, time.Now().Add(-30*time.Minute),
		domain.Money{CurrencyCode: "USD", Value: "10.00"},
	))

	status, env := suite.do(http.MethodGet, "/payments/"+created.Payment.ID+"/transactions", nil)

	suite.Require().Equal(http.StatusOK, status, env.Error.Message)
	var transactions []paypal.Transaction
	suite.Require().NoError(json.Unmarshal(env.Data, &transactions))
	suite.Require().Len(transactions, 1)
	suite.Equal("TX-1", transactions[0].Info.TransactionID)
	suite.Equal(created.Payment.ID, transactions[0].Info.CustomField)
}

func (suite *RouterTestSuite) TestGetPayment_NotFound() {
	status, env := suite.do(http.MethodGet, "/payments/"+uuid.NewString(), nil)

	suite.Equal(http.StatusNotFound, status)
	suite.Equal("NOT_FOUND", env.Error.Code)
	suite.Equal("Payment not found.", env.Error.Message)
}
