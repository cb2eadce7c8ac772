package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// https://developer.paypal.com/docs/api/reference/currency-codes/
var supportedCurrencies = map[string]struct{}{
	"AUD": {}, "BRL": {}, "CAD": {}, "CZK": {}, "DKK": {},
	"EUR": {}, "HKD": {}, "HUF": {}, "INR": {}, "ILS": {},
	"JPY": {}, "MYR": {}, "MXN": {}, "TWD": {}, "NZD": {},
	"NOK": {}, "PHP": {}, "PLN": {}, "GBP": {}, "RUB": {},
	"SGD": {}, "SEK": {}, "CHF": {}, "THB": {}, "USD": {},
}

// these currencies do not support decimal places
var noDecimalCurrencies = map[string]struct{}{
	"HUF": {}, "JPY": {}, "TWD": {},
}

// maxValueLength is the longest amount value PayPal accepts.
const maxValueLength = 32

// IsSupportedCurrency reports whether PayPal accepts currency as an ISO 4217 code.
func IsSupportedCurrency(currency string) bool {
	_, ok := supportedCurrencies[currency]
	return ok
}

// DecimalPlaces returns the canonical number of fraction digits for currency.
func DecimalPlaces(currency string) int32 {
	if _, ok := noDecimalCurrencies[currency]; ok {
		return 0
	}
	return 2
}

// Amount is a validated monetary value in a supported currency.
type Amount struct {
	Currency string
	Value    decimal.Decimal
}

// Money is the wire representation of an amount.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// FormatAmount validates currency and value and rounds value to the
// currency's precision with banker's rounding. Values whose rendering would
// not fit PayPal's 32 character limit are rejected before any rounding.
func FormatAmount(currency, value string) (Amount, error) {
	if !IsSupportedCurrency(currency) {
		return Amount{}, NewUnsupportedCurrencyError(currency)
	}

	trimmed := strings.TrimSpace(value)
	if len(trimmed) > maxValueLength {
		return Amount{}, NewInvalidAmountError(value, currency)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil || d.IsNegative() {
		return Amount{}, NewInvalidAmountError(value, currency)
	}

	// the exponent is unbounded in scientific notation ("1e50000000")
	exp := int(d.Exponent())
	if exp < -maxValueLength || d.NumDigits()+exp > maxValueLength {
		return Amount{}, NewInvalidAmountError(value, currency)
	}

	amount := Amount{
		Currency: currency,
		Value:    d.RoundBank(DecimalPlaces(currency)),
	}
	if len(amount.String()) > maxValueLength {
		return Amount{}, NewInvalidAmountError(value, currency)
	}
	return amount, nil
}

// FormatMoney is FormatAmount for wire values.
func FormatMoney(m Money) (Amount, error) {
	return FormatAmount(m.CurrencyCode, m.Value)
}

// String renders the value with exactly the currency's fraction digits.
func (a Amount) String() string {
	return a.Value.StringFixedBank(DecimalPlaces(a.Currency))
}

func (a Amount) Money() Money {
	return Money{CurrencyCode: a.Currency, Value: a.String()}
}

func (a Amount) Equal(other Amount) bool {
	return a.Currency == other.Currency && a.Value.Equal(other.Value)
}
