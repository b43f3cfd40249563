package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS drivers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    shift_hours INT NOT NULL,
    past_week_hours DOUBLE PRECISION[] NOT NULL,
    is_fatigued BOOLEAN NOT NULL DEFAULT FALSE,
    current_workload DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS routes (
    route_id INT PRIMARY KEY,
    distance_km DOUBLE PRECISION NOT NULL,
    traffic_level TEXT NOT NULL,
    base_time_min INT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    order_id INT PRIMARY KEY,
    value_rs DOUBLE PRECISION NOT NULL,
    route_id INT NOT NULL,
    delivery_time TEXT NOT NULL,
    assigned_driver TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    actual_delivery_time INT,
    penalty_applied DOUBLE PRECISION NOT NULL DEFAULT 0,
    bonus_applied DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS simulations (
    simulation_id TEXT PRIMARY KEY,
    number_of_drivers INT NOT NULL,
    start_time TEXT NOT NULL,
    max_hours_per_day INT NOT NULL,
    total_profit DOUBLE PRECISION NOT NULL,
    efficiency_score INT NOT NULL,
    total_deliveries INT NOT NULL,
    on_time_deliveries INT NOT NULL,
    late_deliveries INT NOT NULL,
    total_penalties DOUBLE PRECISION NOT NULL,
    total_bonuses DOUBLE PRECISION NOT NULL,
    total_fuel_cost DOUBLE PRECISION NOT NULL,
    unassigned_orders INT NOT NULL DEFAULT 0,
    skipped_orders INT NOT NULL DEFAULT 0,
    driver_assignments JSONB NOT NULL,
    execution_time_ms BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// InitSchema creates the fleetsim tables when they do not exist yet.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
