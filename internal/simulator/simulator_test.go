package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriverRepo struct {
	drivers []models.Driver
}

func (f *fakeDriverRepo) BulkCreate(ctx context.Context, drivers []*models.Driver) error { return nil }
func (f *fakeDriverRepo) ReplaceAll(ctx context.Context, drivers []*models.Driver) error { return nil }
func (f *fakeDriverRepo) Count(ctx context.Context) (int, error) { return len(f.drivers), nil }
func (f *fakeDriverRepo) DeleteAll(ctx context.Context) error    { return nil }
func (f *fakeDriverRepo) GetAvailable(ctx context.Context, limit int) ([]models.Driver, error) {
	if limit > len(f.drivers) {
		limit = len(f.drivers)
	}
	return f.drivers[:limit], nil
}

type fakeRouteRepo struct {
	routes []models.Route
}

func (f *fakeRouteRepo) BulkCreate(ctx context.Context, routes []*models.Route) error { return nil }
func (f *fakeRouteRepo) ReplaceAll(ctx context.Context, routes []*models.Route) error { return nil }
func (f *fakeRouteRepo) GetAll(ctx context.Context) ([]models.Route, error)           { return f.routes, nil }
func (f *fakeRouteRepo) Count(ctx context.Context) (int, error)                       { return len(f.routes), nil }
func (f *fakeRouteRepo) DeleteAll(ctx context.Context) error                          { return nil }

type fakeOrderRepo struct {
	orders []models.Order
}

func (f *fakeOrderRepo) BulkCreate(ctx context.Context, orders []*models.Order) error { return nil }
func (f *fakeOrderRepo) ReplaceAll(ctx context.Context, orders []*models.Order) error { return nil }
func (f *fakeOrderRepo) GetPending(ctx context.Context) ([]models.Order, error)       { return f.orders, nil }
func (f *fakeOrderRepo) Count(ctx context.Context) (int, error)                       { return len(f.orders), nil }
func (f *fakeOrderRepo) DeleteAll(ctx context.Context) error                          { return nil }

type fakeSimulationRepo struct {
	commits        int
	committedRun   *models.SimulationRun
	committedOrder []models.Order
	failCommit     bool
}

func (f *fakeSimulationRepo) CommitRun(ctx context.Context, run *models.SimulationRun, decided []models.Order) error {
	if f.failCommit {
		return errors.New("connection reset")
	}
	f.commits++
	f.committedRun = run
	f.committedOrder = decided
	return nil
}

func (f *fakeSimulationRepo) GetByID(ctx context.Context, id string) (*models.SimulationRun, error) {
	return f.committedRun, nil
}

func (f *fakeSimulationRepo) ListRecent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	if f.committedRun == nil {
		return nil, nil
	}
	return []*models.SimulationRun{f.committedRun}, nil
}

func testConfig() *models.Config {
	return &models.Config{
		NumberOfDrivers: 2,
		StartTime:       "09:00",
		MaxHoursPerDay:  8,
		KafkaTopic:      "simulation_runs",
	}
}

func testSimulator(cfg *models.Config, sims *fakeSimulationRepo) *Simulator {
	drivers := &fakeDriverRepo{drivers: []models.Driver{
		{ID: "d1", Name: "Amit", PastWeekHours: []float64{6, 6, 6, 6, 6, 6, 6}},
		{ID: "d2", Name: "Priya", PastWeekHours: []float64{6, 6, 6, 6, 6, 6, 9}},
	}}
	routes := &fakeRouteRepo{routes: []models.Route{
		{ID: 1, DistanceKM: 10, TrafficLevel: models.TrafficLevelLow, BaseTimeMin: 30},
	}}
	orders := &fakeOrderRepo{orders: []models.Order{
		{ID: 1, ValueRs: 1500, RouteID: 1, DeliveryDeadline: "10:00", Status: models.OrderStatusPending},
		{ID: 2, ValueRs: 400, RouteID: 1, DeliveryDeadline: "09:30", Status: models.OrderStatusPending},
	}}
	return NewSimulator(cfg, drivers, routes, orders, sims)
}

func TestSimulatorRunCommitsOnce(t *testing.T) {
	sims := &fakeSimulationRepo{}
	sim := testSimulator(testConfig(), sims)

	run, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sims.commits)
	assert.Equal(t, run, sims.committedRun)
	assert.Len(t, sims.committedOrder, 2)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "09:00", run.InputParameters.StartTime)
	assert.Equal(t, 2, run.Results.TotalDeliveries)

	for _, order := range sims.committedOrder {
		assert.NotEqual(t, models.OrderStatusPending, order.Status)
		assert.NotEmpty(t, order.AssignedDriverID)
	}
}

func TestSimulatorInsufficientDriversNothingPersisted(t *testing.T) {
	cfg := testConfig()
	cfg.NumberOfDrivers = 10
	sims := &fakeSimulationRepo{}
	sim := testSimulator(cfg, sims)

	_, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "10")
	assert.Equal(t, 0, sims.commits)
}

func TestSimulatorCommitFailureAbortsRun(t *testing.T) {
	sims := &fakeSimulationRepo{failCommit: true}
	sim := testSimulator(testConfig(), sims)

	_, err := sim.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit run")
}
