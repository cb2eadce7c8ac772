package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"github.com/DanielPopoola/paypal-payment-gateway/internal/infrastructure/persistence"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPaymentNotFound = domain.NewNotFoundError("Payment not found.", true, nil)

const paymentColumns = `
	id, currency, amount, status, error,
	order_service, order_id, service, service_id,
	created_at, updated_at`

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	p := toDBModel(payment)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.Currency,
		p.Amount,
		p.Status,
		p.Error,
		p.OrderService,
		p.OrderID,
		p.Service,
		p.ServiceID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if persistence.IsUniqueViolation(err) {
			return domain.NewDuplicateError(
				fmt.Sprintf("Payment %s already exists.", p.ID),
				map[string]any{"payment_id": p.ID},
			)
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	payment.CreatedAt = p.CreatedAt
	payment.UpdatedAt = p.UpdatedAt
	return nil
}

// Save overwrites every mutable column of an existing payment.
func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET currency = $1, amount = $2, status = $3, error = $4,
			order_service = $5, order_id = $6, service = $7, service_id = $8,
			updated_at = $9
		WHERE id = $10
	`

	p := toDBModel(payment)
	now := time.Now().UTC()

	result, err := r.db.Exec(ctx, query,
		p.Currency,
		p.Amount,
		p.Status,
		p.Error,
		p.OrderService,
		p.OrderID,
		p.Service,
		p.ServiceID,
		now,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}

	payment.UpdatedAt = now
	return nil
}

// FindByID retrieves a payment
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	return scanPayment(row)
}

// FindAll retrieves every payment backed by the given remote order.
func (r *PaymentRepository) FindAll(ctx context.Context, q domain.PaymentQuery) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE service = $1 AND service_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, q.Service, q.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("query payments by service: %w", err)
	}

	results, err := pgx.CollectRows(rows, scanPaymentRow)
	if err != nil {
		return nil, fmt.Errorf("scan payments by service: %w", err)
	}
	return results, nil
}

// FindStalePending finds PENDING payments with a remote order created before olderThan
func (r *PaymentRepository) FindStalePending(ctx context.Context, service string, olderThan time.Time, limit int) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE status = 'PENDING'
		  AND service = $1
		  AND service_id <> ''
		  AND created_at < $2
		ORDER BY created_at ASC
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, service, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("query stale pending payments: %w", err)
	}

	results, err := pgx.CollectRows(rows, scanPaymentRow)
	if err != nil {
		return nil, fmt.Errorf("scan stale pending payments: %w", err)
	}
	return results, nil
}

func scanPaymentRow(row pgx.CollectableRow) (*domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.Currency, &m.Amount, &m.Status, &m.Error,
		&m.OrderService, &m.OrderID, &m.Service, &m.ServiceID,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return toDomainModel(m), err
}

// scanPayment converts a database row into a domain Payment.
// Returns ErrPaymentNotFound if the row doesn't exist.
func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.Currency, &m.Amount, &m.Status, &m.Error,
		&m.OrderService, &m.OrderID, &m.Service, &m.ServiceID,
		&m.CreatedAt, &m.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return toDomainModel(m), nil
}
