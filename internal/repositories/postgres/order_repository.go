package postgres

import (
	"context"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) BulkCreate(ctx context.Context, orders []*models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO orders (
            order_id, value_rs, route_id, delivery_time, status,
            penalty_applied, bonus_applied
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	for _, order := range orders {
		status := order.Status
		if status == "" {
			status = models.OrderStatusPending
		}
		_, err = tx.Exec(ctx, query,
			order.ID,
			order.ValueRs,
			order.RouteID,
			order.DeliveryDeadline,
			status,
			order.PenaltyApplied,
			order.BonusApplied,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []*models.Order) error {
	if err := r.DeleteAll(ctx); err != nil {
		return err
	}
	return r.BulkCreate(ctx, orders)
}

// GetPending returns the orders a new run may decide, in id order.
func (r *OrderRepository) GetPending(ctx context.Context) ([]models.Order, error) {
	query := `
        SELECT order_id, value_rs, route_id, delivery_time,
               COALESCE(assigned_driver, ''), status,
               COALESCE(actual_delivery_time, 0), penalty_applied, bonus_applied
        FROM orders
        WHERE status = 'pending'
        ORDER BY order_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID,
			&o.ValueRs,
			&o.RouteID,
			&o.DeliveryDeadline,
			&o.AssignedDriverID,
			&o.Status,
			&o.ActualDeliveryTime,
			&o.PenaltyApplied,
			&o.BonusApplied,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	return count, err
}

func (r *OrderRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM orders`)
	return err
}
