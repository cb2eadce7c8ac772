package paypal

import (
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated             OrderStatus = "CREATED"
	OrderStatusSaved               OrderStatus = "SAVED"
	OrderStatusApproved            OrderStatus = "APPROVED"
	OrderStatusVoided              OrderStatus = "VOIDED"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusPayerActionRequired OrderStatus = "PAYER_ACTION_REQUIRED"
)

const (
	IntentCapture   = "CAPTURE"
	IntentAuthorize = "AUTHORIZE"
)

// PurchaseUnit is one unit of an order. CustomID carries the payment id into
// the reporting API's custom_field.
type PurchaseUnit struct {
	ReferenceID string             `json:"reference_id"`
	CustomID    string             `json:"custom_id,omitempty"`
	Amount      domain.Money       `json:"amount"`
	Payments    *PaymentCollection `json:"payments,omitempty"`
}

type AuthorizationStatus string

const (
	AuthorizationStatusCreated           AuthorizationStatus = "CREATED"
	AuthorizationStatusPending           AuthorizationStatus = "PENDING"
	AuthorizationStatusCaptured          AuthorizationStatus = "CAPTURED"
	AuthorizationStatusPartiallyCaptured AuthorizationStatus = "PARTIALLY_CAPTURED"
	AuthorizationStatusDenied            AuthorizationStatus = "DENIED"
	AuthorizationStatusVoided            AuthorizationStatus = "VOIDED"
	AuthorizationStatusExpired           AuthorizationStatus = "EXPIRED"
)

// Voidable reports whether PayPal still holds funds that a void releases.
func (s AuthorizationStatus) Voidable() bool {
	return s == AuthorizationStatusCreated || s == AuthorizationStatusPending
}

type Authorization struct {
	ID     string              `json:"id"`
	Status AuthorizationStatus `json:"status"`
	Amount *domain.Money       `json:"amount,omitempty"`
}

type Capture struct {
	ID     string        `json:"id"`
	Status string        `json:"status"`
	Amount *domain.Money `json:"amount,omitempty"`
}

// PaymentCollection lists what happened to a purchase unit after approval.
type PaymentCollection struct {
	Authorizations []Authorization `json:"authorizations,omitempty"`
	Captures       []Capture       `json:"captures,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// Order is the subset of a PayPal v2 checkout order the gateway reads.
type Order struct {
	ID            string         `json:"id"`
	Intent        string         `json:"intent,omitempty"`
	Status        OrderStatus    `json:"status"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	Links         []Link         `json:"links,omitempty"`
	CreateTime    *time.Time     `json:"create_time,omitempty"`
	UpdateTime    *time.Time     `json:"update_time,omitempty"`
}

// TotalCost sums every purchase unit's amount.
func (o *Order) TotalCost() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, unit := range o.PurchaseUnits {
		value, err := decimal.NewFromString(unit.Amount.Value)
		if err != nil {
			return decimal.Zero, domain.NewDataError(
				"Invalid PayPal purchase amount.",
				false,
				map[string]any{"order_id": o.ID, "reference_id": unit.ReferenceID, "amount": unit.Amount},
			)
		}
		total = total.Add(value)
	}
	return total, nil
}

// Currencies lists the distinct unit currencies in order of appearance.
func (o *Order) Currencies() []string {
	seen := make(map[string]struct{}, len(o.PurchaseUnits))
	currencies := make([]string, 0, len(o.PurchaseUnits))
	for _, unit := range o.PurchaseUnits {
		if _, ok := seen[unit.Amount.CurrencyCode]; ok {
			continue
		}
		seen[unit.Amount.CurrencyCode] = struct{}{}
		currencies = append(currencies, unit.Amount.CurrencyCode)
	}
	return currencies
}

// HasCurrency reports whether any purchase unit is priced in currency.
func (o *Order) HasCurrency(currency string) bool {
	for _, unit := range o.PurchaseUnits {
		if unit.Amount.CurrencyCode == currency {
			return true
		}
	}
	return false
}

// Unit returns the purchase unit carrying referenceID.
func (o *Order) Unit(referenceID string) (PurchaseUnit, bool) {
	for _, unit := range o.PurchaseUnits {
		if unit.ReferenceID == referenceID {
			return unit, true
		}
	}
	return PurchaseUnit{}, false
}

// VoidableAuthorizations lists the authorizations of every unit that still
// hold funds.
func (o *Order) VoidableAuthorizations() []Authorization {
	var open []Authorization
	for _, unit := range o.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, auth := range unit.Payments.Authorizations {
			if auth.Status.Voidable() {
				open = append(open, auth)
			}
		}
	}
	return open
}

type ApplicationContext struct {
	BrandName          string `json:"brand_name,omitempty"`
	ShippingPreference string `json:"shipping_preference,omitempty"`
}

type CreateOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []PurchaseUnit     `json:"purchase_units"`
	ApplicationContext ApplicationContext `json:"application_context"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TransactionStatusSuccess is the reporting API code for a completed transaction.
const TransactionStatusSuccess = "S"

// TransactionQuery bounds a transaction search. Zero times mean now.
type TransactionQuery struct {
	StartDate time.Time
	EndDate   time.Time
}

type Transaction struct {
	Info TransactionInfo `json:"transaction_info"`
}

// TransactionInfo is the subset of a reporting API transaction the gateway
// reads. Dates are kept as sent since PayPal omits the colon in the offset.
type TransactionInfo struct {
	TransactionID     string        `json:"transaction_id"`
	PayPalReferenceID string        `json:"paypal_reference_id,omitempty"`
	EventCode         string        `json:"transaction_event_code,omitempty"`
	InitiationDate    string        `json:"transaction_initiation_date,omitempty"`
	Amount            *domain.Money `json:"transaction_amount,omitempty"`
	Status            string        `json:"transaction_status,omitempty"`
	CustomField       string        `json:"custom_field,omitempty"`
}

// TransactionsPage is one page of GET /v1/reporting/transactions.
type TransactionsPage struct {
	TransactionDetails []Transaction `json:"transaction_details"`
	StartDate          string        `json:"start_date,omitempty"`
	EndDate            string        `json:"end_date,omitempty"`
	Page               int           `json:"page"`
	TotalItems         int           `json:"total_items"`
	TotalPages         int           `json:"total_pages"`
}

// ErrorResponse covers both the orders API error body and the OAuth error body.
type ErrorResponse struct {
	Name             string `json:"name"`
	Message          string `json:"message"`
	DebugID          string `json:"debug_id"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
