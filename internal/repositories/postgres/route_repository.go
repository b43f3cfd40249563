package postgres

import (
	"context"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository struct {
	pool *pgxpool.Pool
}

func NewRouteRepository(pool *pgxpool.Pool) *RouteRepository {
	return &RouteRepository{pool: pool}
}

func (r *RouteRepository) BulkCreate(ctx context.Context, routes []*models.Route) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO routes (route_id, distance_km, traffic_level, base_time_min)
        VALUES ($1, $2, $3, $4)
    `

	for _, route := range routes {
		_, err = tx.Exec(ctx, query,
			route.ID,
			route.DistanceKM,
			route.TrafficLevel,
			route.BaseTimeMin,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *RouteRepository) ReplaceAll(ctx context.Context, routes []*models.Route) error {
	if err := r.DeleteAll(ctx); err != nil {
		return err
	}
	return r.BulkCreate(ctx, routes)
}

func (r *RouteRepository) GetAll(ctx context.Context) ([]models.Route, error) {
	query := `
        SELECT route_id, distance_km, traffic_level, base_time_min
        FROM routes
        ORDER BY route_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.DistanceKM, &rt.TrafficLevel, &rt.BaseTimeMin); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, rows.Err()
}

func (r *RouteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM routes`).Scan(&count)
	return count, err
}

func (r *RouteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM routes`)
	return err
}
