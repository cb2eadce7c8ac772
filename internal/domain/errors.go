package domain

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

// ErrorKind classifies a failure. The set is closed: every error raised by
// the gateway carries exactly one of these kinds.
type ErrorKind string

const (
	KindData              ErrorKind = "DATA"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindDuplicate         ErrorKind = "DUPLICATE"
	KindNotAllowed        ErrorKind = "NOT_ALLOWED"
	KindNetwork           ErrorKind = "NETWORK"
	KindConstraint        ErrorKind = "CONSTRAINT"
	KindPaymentIncomplete ErrorKind = "PAYMENT_INCOMPLETE"
	KindEndpointMissing   ErrorKind = "ENDPOINT_MISSING"
	KindAuthentication    ErrorKind = "AUTHENTICATION"
)

// DomainError represents a business logic or upstream error
type DomainError struct {
	Kind    ErrorKind
	Message string
	// Public marks the message as safe to show to end users.
	Public  bool
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches another DomainError by kind so sentinel-style checks work:
// errors.Is(err, &DomainError{Kind: KindDuplicate}).
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind ErrorKind, message string, public bool, details map[string]any) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
		Public:  public,
		Details: details,
	}
}

func NewDataError(message string, public bool, details map[string]any) *DomainError {
	return newError(KindData, message, public, details)
}

func NewNotFoundError(message string, public bool, details map[string]any) *DomainError {
	return newError(KindNotFound, message, public, details)
}

func NewDuplicateError(message string, details map[string]any) *DomainError {
	return newError(KindDuplicate, message, false, details)
}

func NewConstraintError(message string, details map[string]any) *DomainError {
	return newError(KindConstraint, message, false, details)
}

func NewUnsupportedCurrencyError(currency string) *DomainError {
	return NewDataError(
		fmt.Sprintf("Unsupported PayPal currency %s.", currency),
		true,
		map[string]any{"currency": currency},
	)
}

func NewInvalidAmountError(value, currency string) *DomainError {
	return NewDataError(
		fmt.Sprintf("Invalid amount %s %s.", value, currency),
		true,
		map[string]any{"amount": map[string]any{"currency_code": currency, "value": value}},
	)
}

func NewAmountMismatchError(expected, actual Money) *DomainError {
	return NewDataError(
		fmt.Sprintf("Expected %s %s amount got %s %s.",
			expected.Value, expected.CurrencyCode, actual.Value, actual.CurrencyCode),
		false,
		map[string]any{"expected": expected, "actual": actual},
	)
}

// KindFromStatus maps an upstream HTTP status to an error kind.
func KindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindNotAllowed
	case status == http.StatusMethodNotAllowed,
		status >= http.StatusLengthRequired && status <= http.StatusUnsupportedMediaType:
		return KindConstraint
	case status == http.StatusPaymentRequired:
		return KindPaymentIncomplete
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusRequestTimeout:
		return KindNetwork
	case status == http.StatusConflict:
		return KindDuplicate
	case status == http.StatusGone:
		return KindEndpointMissing
	case status >= http.StatusInternalServerError:
		return KindNetwork
	}
	return KindData
}

// Wrap annotates err with an operation message. The kind, visibility and
// details of a wrapped DomainError carry over; anything else becomes DATA.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	wrapped := &DomainError{Kind: KindData, Message: message, Err: err}
	if cause, ok := AsDomainError(err); ok {
		wrapped.Kind = cause.Kind
		wrapped.Public = cause.Public
		wrapped.Details = maps.Clone(cause.Details)
	}
	return wrapped
}

// AsDomainError returns the outermost DomainError in err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}

// IsKind checks if an error is a DomainError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	if domainErr, ok := AsDomainError(err); ok {
		return domainErr.Kind == kind
	}
	return false
}

// PublicMessage returns the innermost user-visible message in err's chain.
func PublicMessage(err error) (string, bool) {
	var msg string
	found := false
	for err != nil {
		if domainErr, ok := err.(*DomainError); ok && domainErr.Public {
			msg, found = domainErr.Message, true
		}
		err = errors.Unwrap(err)
	}
	return msg, found
}
