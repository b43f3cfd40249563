package repositories

import (
	"context"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

type DriverRepository interface {
	BulkCreate(ctx context.Context, drivers []*models.Driver) error
	ReplaceAll(ctx context.Context, drivers []*models.Driver) error
	// GetAvailable returns up to limit drivers in a stable order.
	GetAvailable(ctx context.Context, limit int) ([]models.Driver, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type RouteRepository interface {
	BulkCreate(ctx context.Context, routes []*models.Route) error
	ReplaceAll(ctx context.Context, routes []*models.Route) error
	GetAll(ctx context.Context) ([]models.Route, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type OrderRepository interface {
	BulkCreate(ctx context.Context, orders []*models.Order) error
	ReplaceAll(ctx context.Context, orders []*models.Order) error
	GetPending(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type SimulationRepository interface {
	// CommitRun persists the run record and all decided order updates as one
	// transaction; a failure leaves nothing behind.
	CommitRun(ctx context.Context, run *models.SimulationRun, decidedOrders []models.Order) error
	GetByID(ctx context.Context, id string) (*models.SimulationRun, error)
	// ListRecent returns up to limit runs, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error)
}
