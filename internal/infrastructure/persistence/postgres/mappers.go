package postgres

import (
	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:           m.ID,
		Currency:     m.Currency,
		Amount:       m.Amount,
		Status:       domain.PaymentStatus(m.Status),
		Error:        m.Error,
		OrderService: m.OrderService,
		OrderID:      m.OrderID,
		Service:      m.Service,
		ServiceID:    m.ServiceID,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

// toDBModel: maps domain entity to db model
func toDBModel(p *domain.Payment) *PaymentModel {
	return &PaymentModel{
		ID:           p.ID,
		Currency:     p.Currency,
		Amount:       p.Amount,
		Status:       string(p.Status),
		Error:        p.Error,
		OrderService: p.OrderService,
		OrderID:      p.OrderID,
		Service:      p.Service,
		ServiceID:    p.ServiceID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
