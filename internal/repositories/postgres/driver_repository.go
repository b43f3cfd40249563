package postgres

import (
	"context"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DriverRepository struct {
	pool *pgxpool.Pool
}

func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{pool: pool}
}

func (r *DriverRepository) BulkCreate(ctx context.Context, drivers []*models.Driver) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO drivers (
            id, name, shift_hours, past_week_hours,
            is_fatigued, current_workload, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	for _, driver := range drivers {
		_, err = tx.Exec(ctx, query,
			driver.ID,
			driver.Name,
			driver.ShiftHours,
			driver.PastWeekHours,
			driver.IsFatigued,
			driver.CurrentWorkload,
			driver.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *DriverRepository) ReplaceAll(ctx context.Context, drivers []*models.Driver) error {
	if err := r.DeleteAll(ctx); err != nil {
		return err
	}
	return r.BulkCreate(ctx, drivers)
}

// GetAvailable returns up to limit drivers ordered by creation time then id,
// so a run always sees the same roster for the same stored fleet.
func (r *DriverRepository) GetAvailable(ctx context.Context, limit int) ([]models.Driver, error) {
	query := `
        SELECT id, name, shift_hours, past_week_hours,
               is_fatigued, current_workload, created_at
        FROM drivers
        ORDER BY created_at, id
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(
			&d.ID,
			&d.Name,
			&d.ShiftHours,
			&d.PastWeekHours,
			&d.IsFatigued,
			&d.CurrentWorkload,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, rows.Err()
}

func (r *DriverRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM drivers`).Scan(&count)
	return count, err
}

func (r *DriverRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM drivers`)
	return err
}
