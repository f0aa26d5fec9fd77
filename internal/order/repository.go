package order

import (
	"context"
	"database/sql"
	"fmt"

	"redmedicos-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	Upsert(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetByID returns (nil, nil) when no order exists, so callers can
// distinguish absence from a store failure.
func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	const q = `
		SELECT id, user_id, user_email, product_id, quantity, amount, status, payment_key, created_at
		FROM orders
		WHERE id = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.UserID, &o.UserEmail, &o.ProductID,
		&o.Quantity, &o.Amount, &o.Status, &o.PaymentKey, &o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// Upsert creates the order or, when a concurrent writer got there first,
// merges over it. Last write wins on everything except created_at, which
// the server assigns once. Single round trip, no read-check race.
func (r *repository) Upsert(ctx context.Context, o *Order) error {
	const q = `
		INSERT INTO orders (id, user_id, user_email, product_id, quantity, amount, status, payment_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (id) DO UPDATE SET
			user_id     = EXCLUDED.user_id,
			user_email  = EXCLUDED.user_email,
			product_id  = EXCLUDED.product_id,
			quantity    = EXCLUDED.quantity,
			amount      = EXCLUDED.amount,
			status      = EXCLUDED.status,
			payment_key = EXCLUDED.payment_key
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, q,
		o.ID, o.UserID, o.UserEmail, o.ProductID,
		o.Quantity, o.Amount, o.Status, o.PaymentKey,
	).Scan(&o.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to upsert order",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}

	return err
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	const q = `
		SELECT id, user_id, user_email, product_id, quantity, amount, status, payment_key, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	const q = `
		SELECT id, user_id, user_email, product_id, quantity, amount, status, payment_key, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.UserEmail, &o.ProductID,
			&o.Quantity, &o.Amount, &o.Status, &o.PaymentKey, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateStatus overwrites the status field and nothing else.
func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
