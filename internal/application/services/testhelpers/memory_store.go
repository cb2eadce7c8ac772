package testhelpers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

// MemoryPaymentStore is an in-memory PaymentStore. The Fn hooks, when set,
// replace the default behaviour of the matching method.
type MemoryPaymentStore struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
	saves    int

	SaveFn    func(ctx context.Context, payment *domain.Payment) error
	FindAllFn func(ctx context.Context, query domain.PaymentQuery) ([]*domain.Payment, error)
}

func NewMemoryPaymentStore() *MemoryPaymentStore {
	return &MemoryPaymentStore{
		payments: make(map[string]*domain.Payment),
	}
}

func (m *MemoryPaymentStore) Create(ctx context.Context, payment *domain.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; ok {
		return domain.NewDuplicateError("Payment "+payment.ID+" already exists.", nil)
	}
	m.payments[payment.ID] = clonePayment(payment)
	return nil
}

func (m *MemoryPaymentStore) Save(ctx context.Context, payment *domain.Payment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[payment.ID]; !ok {
		return domain.NewNotFoundError("Payment not found.", true, nil)
	}
	payment.UpdatedAt = time.Now().UTC()
	m.payments[payment.ID] = clonePayment(payment)
	m.saves++
	return nil
}

func (m *MemoryPaymentStore) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return clonePayment(p), nil
	}
	return nil, domain.NewNotFoundError("Payment not found.", true, nil)
}

func (m *MemoryPaymentStore) FindAll(ctx context.Context, query domain.PaymentQuery) ([]*domain.Payment, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, query)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.Service == query.Service && p.ServiceID == query.ServiceID {
			out = append(out, clonePayment(p))
		}
	}
	sortByCreated(out)
	return out, nil
}

func (m *MemoryPaymentStore) FindStalePending(ctx context.Context, service string, olderThan time.Time, limit int) ([]*domain.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.Status == domain.StatusPending && p.Service == service && p.ServiceID != "" && p.CreatedAt.Before(olderThan) {
			out = append(out, clonePayment(p))
		}
	}
	sortByCreated(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Put stores payment without any checks.
func (m *MemoryPaymentStore) Put(payment *domain.Payment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = clonePayment(payment)
}

// Saves counts successful Save calls.
func (m *MemoryPaymentStore) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func clonePayment(p *domain.Payment) *domain.Payment {
	c := *p
	return &c
}

func sortByCreated(payments []*domain.Payment) {
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})
}
