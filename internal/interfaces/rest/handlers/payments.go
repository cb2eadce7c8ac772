package handlers

import (
	"net/http"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/application/services"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/interfaces/rest"
)

type CreatePaymentRequest struct {
	Currency     string `json:"currency" validate:"required,len=3"`
	Amount       string `json:"amount" validate:"required"`
	OrderService string `json:"order_service" validate:"required"`
	OrderID      string `json:"order_id" validate:"required"`
	Intent       string `json:"intent" validate:"omitempty,oneof=CAPTURE AUTHORIZE"`
}

type UpdateAmountRequest struct {
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Amount   string `json:"amount" validate:"required"`
}

func (h *Handlers) GetGatewayCredentials(w http.ResponseWriter, r *http.Request) {
	rest.WriteData(w, http.StatusOK, h.payments.Credentials())
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	created, err := h.payments.Create(r.Context(), services.CreatePaymentCommand{
		Currency:     req.Currency,
		Amount:       req.Amount,
		OrderService: req.OrderService,
		OrderID:      req.OrderID,
		Intent:       req.Intent,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusCreated, created)
}

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := paymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	payment, err := h.payments.Get(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, payment)
}

func (h *Handlers) UpdatePaymentAmount(w http.ResponseWriter, r *http.Request) {
	id, err := paymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req UpdateAmountRequest
	if err := h.decode(r, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.payments.UpdateAmount(r.Context(), services.UpdateAmountCommand{
		PaymentID: id,
		Currency:  req.Currency,
		Amount:    req.Amount,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, result)
}

func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	id, err := paymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	processed, err := h.payments.Process(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, processed)
}

func (h *Handlers) VoidPayment(w http.ResponseWriter, r *http.Request) {
	id, err := paymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	payment, err := h.payments.Void(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, payment)
}

func (h *Handlers) ListPaymentTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := paymentID(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	transactions, err := h.payments.Transactions(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, transactions)
}
