package services

type CreatePaymentCommand struct {
	Currency     string
	Amount       string
	OrderService string
	OrderID      string
	Intent       string
}

type UpdateAmountCommand struct {
	PaymentID string
	Currency  string
	Amount    string
}
