// Package domain encodes a payment entity and its attributes.
package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the current state of a payment in its lifecycle
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "PENDING"
	StatusProcessing PaymentStatus = "PROCESSING"
	StatusCompleted  PaymentStatus = "COMPLETED"
	StatusFailed     PaymentStatus = "FAILED"
	StatusVoided     PaymentStatus = "VOIDED"
)

// ServicePayPal is the remote service name stored on payments backed by a
// PayPal order.
const ServicePayPal = "paypal"

// Payment is the host's payment record. The gateway reads it and writes
// status, error and remote order reference back through the store.
type Payment struct {
	ID       string        `json:"id"`
	Currency string        `json:"currency"`
	Amount   string        `json:"amount"`
	Status   PaymentStatus `json:"status"`
	Error    string        `json:"error,omitempty"`

	// host order this payment pays for
	OrderService string `json:"order_service"`
	OrderID      string `json:"order_id"`

	// remote order backing this payment
	Service   string `json:"service,omitempty"`
	ServiceID string `json:"service_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentQuery selects payments by remote order reference.
type PaymentQuery struct {
	Service   string
	ServiceID string
}

func NewPayment(id, currency, amount, orderService, orderID string) (*Payment, error) {
	if id == "" {
		return nil, errors.New("payment ID is required")
	}
	if currency == "" {
		return nil, errors.New("currency is required")
	}

	now := time.Now().UTC()
	return &Payment{
		ID:           id,
		Currency:     currency,
		Amount:       amount,
		Status:       StatusPending,
		OrderService: orderService,
		OrderID:      orderID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AttachRemoteOrder records the remote order backing this payment.
func (p *Payment) AttachRemoteOrder(service, serviceID string) {
	p.Service = service
	p.ServiceID = serviceID
}

func (p *Payment) MarkFailed(reason string) {
	p.Status = StatusFailed
	p.Error = reason
}

func (p *Payment) MarkVoided(reason string) {
	p.Status = StatusVoided
	p.Error = reason
}

func (p *Payment) MarkCompleted() {
	p.Status = StatusCompleted
	p.Error = ""
}

func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case StatusCompleted, StatusFailed, StatusVoided:
		return true
	default:
		return false
	}
}

// Merge returns a copy of p with every non-empty field of update applied.
func (p *Payment) Merge(update *Payment) *Payment {
	merged := *p
	if update == nil {
		return &merged
	}
	setIfNotEmpty(&merged.ID, update.ID)
	setIfNotEmpty(&merged.Currency, update.Currency)
	setIfNotEmpty(&merged.Amount, update.Amount)
	setIfNotEmpty(&merged.Error, update.Error)
	setIfNotEmpty(&merged.OrderService, update.OrderService)
	setIfNotEmpty(&merged.OrderID, update.OrderID)
	setIfNotEmpty(&merged.Service, update.Service)
	setIfNotEmpty(&merged.ServiceID, update.ServiceID)
	if update.Status != "" {
		merged.Status = update.Status
	}
	if !update.UpdatedAt.IsZero() {
		merged.UpdatedAt = update.UpdatedAt
	}
	return &merged
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
