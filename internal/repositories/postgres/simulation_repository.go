package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SimulationRepository struct {
	pool *pgxpool.Pool
}

func NewSimulationRepository(pool *pgxpool.Pool) *SimulationRepository {
	return &SimulationRepository{pool: pool}
}

// CommitRun writes the order outcomes and the run record in one transaction.
// Either the whole run lands or none of it does.
func (r *SimulationRepository) CommitRun(ctx context.Context, run *models.SimulationRun, decidedOrders []models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orderQuery := `
        UPDATE orders
        SET assigned_driver = $1, status = $2, actual_delivery_time = $3,
            penalty_applied = $4, bonus_applied = $5
        WHERE order_id = $6
    `

	for _, order := range decidedOrders {
		_, err = tx.Exec(ctx, orderQuery,
			order.AssignedDriverID,
			order.Status,
			order.ActualDeliveryTime,
			order.PenaltyApplied,
			order.BonusApplied,
			order.ID,
		)
		if err != nil {
			return fmt.Errorf("commit run %s: order %d: %w", run.ID, order.ID, err)
		}
	}

	assignments, err := json.Marshal(run.Results.DriverAssignments)
	if err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}

	runQuery := `
        INSERT INTO simulations (
            simulation_id, number_of_drivers, start_time, max_hours_per_day,
            total_profit, efficiency_score, total_deliveries,
            on_time_deliveries, late_deliveries, total_penalties,
            total_bonuses, total_fuel_cost, unassigned_orders, skipped_orders,
            driver_assignments, execution_time_ms, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
        )
    `

	_, err = tx.Exec(ctx, runQuery,
		run.ID,
		run.InputParameters.NumberOfDrivers,
		run.InputParameters.StartTime,
		run.InputParameters.MaxHoursPerDay,
		run.Results.TotalProfit,
		run.Results.EfficiencyScore,
		run.Results.TotalDeliveries,
		run.Results.OnTimeDeliveries,
		run.Results.LateDeliveries,
		run.Results.TotalPenalties,
		run.Results.TotalBonuses,
		run.Results.TotalFuelCost,
		run.Results.UnassignedOrders,
		run.Results.SkippedOrders,
		assignments,
		run.ExecutionTimeMS,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}

	return tx.Commit(ctx)
}

func (r *SimulationRepository) GetByID(ctx context.Context, id string) (*models.SimulationRun, error) {
	query := selectRuns + ` WHERE simulation_id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanRun(row)
}

func (r *SimulationRepository) ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	query := selectRuns + ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

const selectRuns = `
    SELECT simulation_id, number_of_drivers, start_time, max_hours_per_day,
           total_profit, efficiency_score, total_deliveries,
           on_time_deliveries, late_deliveries, total_penalties,
           total_bonuses, total_fuel_cost, unassigned_orders, skipped_orders,
           driver_assignments, execution_time_ms, created_at
    FROM simulations
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.SimulationRun, error) {
	var run models.SimulationRun
	var assignments []byte

	err := row.Scan(
		&run.ID,
		&run.InputParameters.NumberOfDrivers,
		&run.InputParameters.StartTime,
		&run.InputParameters.MaxHoursPerDay,
		&run.Results.TotalProfit,
		&run.Results.EfficiencyScore,
		&run.Results.TotalDeliveries,
		&run.Results.OnTimeDeliveries,
		&run.Results.LateDeliveries,
		&run.Results.TotalPenalties,
		&run.Results.TotalBonuses,
		&run.Results.TotalFuelCost,
		&run.Results.UnassignedOrders,
		&run.Results.SkippedOrders,
		&assignments,
		&run.ExecutionTimeMS,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(assignments, &run.Results.DriverAssignments); err != nil {
		return nil, fmt.Errorf("run %s: driver assignments: %w", run.ID, err)
	}

	return &run, nil
}
