package paypal

import (
	"fmt"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Patch is a JSON-Patch document bound to one order.
type Patch struct {
	OrderID    string
	Operations []PatchOperation
}

// purchaseUnitPath addresses a purchase unit field by reference id, the only
// selector syntax the orders PATCH endpoint accepts.
func purchaseUnitPath(referenceID, field string) string {
	return fmt.Sprintf("/purchase_units/@reference_id=='%s'/%s", referenceID, field)
}

// NewAmountPatch replaces the amount of the purchase unit referenced by
// referenceID on orderID.
func NewAmountPatch(orderID, referenceID string, amount domain.Money) Patch {
	return Patch{
		OrderID: orderID,
		Operations: []PatchOperation{{
			Op:    "replace",
			Path:  purchaseUnitPath(referenceID, "amount"),
			Value: amount,
		}},
	}
}
