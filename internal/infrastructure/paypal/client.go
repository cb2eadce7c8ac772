package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/paypal")

type Client struct {
	baseURL            string
	httpClient         *http.Client
	tokens             *TokenSource
	brandName          string
	shippingPreference string
	intent             string
	logger             *slog.Logger
}

func NewClient(cfg config.PayPalConfig, cache TokenCache, logger *slog.Logger) *Client {
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	baseURL := strings.TrimRight(cfg.API, "/")

	return &Client{
		baseURL:            baseURL,
		httpClient:         httpClient,
		tokens:             NewTokenSource(httpClient, baseURL, cfg.ClientID, cfg.Secret, cfg.TokenSafetyMargin, cache),
		brandName:          cfg.BrandName,
		shippingPreference: cfg.ShippingPreference,
		intent:             cfg.Intent,
		logger:             logger,
	}
}

// CreateOrder opens an order with a single purchase unit. An empty intent
// falls back to the configured one.
func (c *Client) CreateOrder(ctx context.Context, referenceID string, amount domain.Amount, intent string) (*Order, error) {
	if intent == "" {
		intent = c.intent
	}
	if intent == "" {
		intent = IntentCapture
	}

	req := CreateOrderRequest{
		Intent: intent,
		PurchaseUnits: []PurchaseUnit{{
			ReferenceID: referenceID,
			CustomID:    referenceID,
			Amount:      amount.Money(),
		}},
		ApplicationContext: ApplicationContext{
			BrandName:          c.brandName,
			ShippingPreference: c.shippingPreference,
		},
	}

	order, err := sendRequest[CreateOrderRequest, Order](c, ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", &req)
	if err != nil {
		return nil, toDomainError(err, "Could not create PayPal order.")
	}

	c.logger.Debug("paypal order created", "order_id", order.ID, "reference_id", referenceID, "status", order.Status)
	return order, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	endpoint := fmt.Sprintf("%s/v2/checkout/orders/%s", c.baseURL, url.PathEscape(id))

	order, err := sendRequest[any, Order](c, ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, &domain.DomainError{
				Kind:    domain.KindNotFound,
				Message: "PayPal order not found.",
				Public:  true,
				Details: map[string]any{"id": id},
				Err:     err,
			}
		}
		return nil, toDomainError(err, "Could not get PayPal order.")
	}
	return order, nil
}

// UpdateOrder applies patch and returns the order as re-fetched afterwards;
// the PATCH endpoint itself answers with an empty body.
func (c *Client) UpdateOrder(ctx context.Context, order *Order, patch Patch) (*Order, error) {
	if patch.OrderID != order.ID {
		return nil, domain.NewDataError(
			"PayPal patch does not belong to order.",
			false,
			map[string]any{"order_id": order.ID, "patch_order_id": patch.OrderID},
		)
	}

	endpoint := fmt.Sprintf("%s/v2/checkout/orders/%s", c.baseURL, url.PathEscape(order.ID))
	c.logger.Debug("updating paypal order", "order_id", order.ID, "operations", len(patch.Operations))

	if _, err := sendRequest[[]PatchOperation, struct{}](c, ctx, http.MethodPatch, endpoint, &patch.Operations); err != nil {
		return nil, toDomainError(err, "Could not update PayPal order.")
	}

	return c.GetOrder(ctx, order.ID)
}

// DeleteOrder cancels an order. Only orders with no captured funds
// (CREATED or APPROVED) can be deleted.
func (c *Client) DeleteOrder(ctx context.Context, order *Order) error {
	endpoint := fmt.Sprintf("%s/v1/checkout/orders/%s", c.baseURL, url.PathEscape(order.ID))

	if _, err := sendRequest[any, struct{}](c, ctx, http.MethodDelete, endpoint, nil); err != nil {
		return toDomainError(err, "Could not delete PayPal order.")
	}

	c.logger.Debug("paypal order deleted", "order_id", order.ID)
	return nil
}

// VoidAuthorization releases the funds held by an authorization that has not
// been captured.
func (c *Client) VoidAuthorization(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/v2/payments/authorizations/%s/void", c.baseURL, url.PathEscape(id))

	if _, err := sendRequest[any, struct{}](c, ctx, http.MethodPost, endpoint, nil); err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return &domain.DomainError{
				Kind:    domain.KindNotFound,
				Message: "PayPal authorization not found.",
				Public:  true,
				Details: map[string]any{"id": id},
				Err:     err,
			}
		}
		return toDomainError(err, "Could not void PayPal authorization.")
	}

	c.logger.Debug("paypal authorization voided", "authorization_id", id)
	return nil
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, method, endpoint string, reqBody *Req) (*Resp, error) {
	ctx, span := tracer.Start(ctx, "paypal "+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	authorization, err := c.tokens.Header(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", authorization)
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.tokens.Invalidate(authorization)
		}
		apiErr := newAPIError(resp.StatusCode, body)
		span.SetStatus(codes.Error, apiErr.Name)
		span.SetAttributes(
			attribute.Int("paypal.status_code", apiErr.StatusCode),
			attribute.String("paypal.debug_id", apiErr.DebugID),
		)
		return nil, apiErr
	}

	var out Resp
	if len(bytes.TrimSpace(body)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
