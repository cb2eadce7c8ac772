package postgres

import (
	"time"
)

// PaymentModel is the row shape of the payments table.
type PaymentModel struct {
	ID           string
	Currency     string
	Amount       string
	Status       string
	Error        string
	OrderService string
	OrderID      string
	Service      string
	ServiceID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
