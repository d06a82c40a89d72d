package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/henriquedps/uzzestore/internal/models"
	"github.com/henriquedps/uzzestore/internal/utils"
)

// OrderRepository persists immutable order snapshots. Item lines are stored
// as one serialized array next to the order row, so an order is written in
// a single statement and can never be half-persisted.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerRef string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	buyerJSON, err := json.Marshal(order.Buyer)
	if err != nil {
		return fmt.Errorf("failed to marshal buyer: %w", err)
	}

	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return fmt.Errorf("failed to marshal address: %w", err)
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_ref, buyer, address, payment_method, total, items, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`

	err = r.DB.QueryRowContext(dbCtx, query,
		order.ID, order.CustomerRef, buyerJSON, addressJSON,
		order.PaymentMethod, order.Total, itemsJSON, order.Status,
	).Scan(&order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{}

	query := `
		SELECT id, customer_ref, buyer, address, payment_method, total, items, status, created_at
		FROM orders
		WHERE id = $1
	`

	var buyerJSON, addressJSON, itemsJSON []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&order.ID,
		&order.CustomerRef,
		&buyerJSON,
		&addressJSON,
		&order.PaymentMethod,
		&order.Total,
		&itemsJSON,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	if err := unmarshalOrderColumns(order, buyerJSON, addressJSON, itemsJSON); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerRef string) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, customer_ref, buyer, address, payment_method, total, items, status, created_at
		FROM orders
		WHERE customer_ref = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		var order models.Order

		var buyerJSON, addressJSON, itemsJSON []byte

		err := rows.Scan(
			&order.ID,
			&order.CustomerRef,
			&buyerJSON,
			&addressJSON,
			&order.PaymentMethod,
			&order.Total,
			&itemsJSON,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the order: %w", err)
		}

		if err := unmarshalOrderColumns(&order, buyerJSON, addressJSON, itemsJSON); err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func unmarshalOrderColumns(order *models.Order, buyerJSON, addressJSON, itemsJSON []byte) error {
	if err := json.Unmarshal(buyerJSON, &order.Buyer); err != nil {
		return fmt.Errorf("failed to unmarshal buyer: %w", err)
	}

	if err := json.Unmarshal(addressJSON, &order.Address); err != nil {
		return fmt.Errorf("failed to unmarshal address: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
		return fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return nil
}
