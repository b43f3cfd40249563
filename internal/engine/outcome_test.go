package engine

import (
	"testing"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeOutcomeOnTimeHighValueBonus(t *testing.T) {
	order := models.Order{ID: 1, ValueRs: 1500, RouteID: 1}
	route := models.Route{ID: 1, DistanceKM: 10, TrafficLevel: models.TrafficLevelLow, BaseTimeMin: 30}
	driver := models.Driver{ID: "d1", Name: "Amit"}

	out := ComputeOutcome(order, route, driver, 30)

	assert.Equal(t, models.OrderStatusDelivered, out.Status)
	assert.Equal(t, 150.0, out.Bonus)
	assert.Equal(t, 0.0, out.Penalty)
	assert.Equal(t, 50.0, out.FuelCost)
	// 1500 + 150 - 0 - 50
	assert.Equal(t, 1600.0, out.Profit)
}

func TestComputeOutcomeLowValueNoBonus(t *testing.T) {
	order := models.Order{ID: 2, ValueRs: 500, RouteID: 1}
	route := models.Route{ID: 1, DistanceKM: 4, TrafficLevel: models.TrafficLevelLow, BaseTimeMin: 30}

	out := ComputeOutcome(order, route, models.Driver{}, 30)

	assert.Equal(t, models.OrderStatusDelivered, out.Status)
	assert.Equal(t, 0.0, out.Bonus)
}

func TestComputeOutcomeGracePeriodBoundary(t *testing.T) {
	route := models.Route{ID: 1, DistanceKM: 4, TrafficLevel: models.TrafficLevelLow, BaseTimeMin: 30}

	// 40 minutes is inside the 10-minute grace, 41 is late.
	onTime := ComputeOutcome(models.Order{ID: 3, ValueRs: 200}, route, models.Driver{}, 40)
	late := ComputeOutcome(models.Order{ID: 4, ValueRs: 200}, route, models.Driver{}, 41)

	assert.Equal(t, models.OrderStatusDelivered, onTime.Status)
	assert.Equal(t, models.OrderStatusLate, late.Status)
	assert.Equal(t, 50.0, late.Penalty)
}

func TestComputeOutcomeLateForfeitsBonus(t *testing.T) {
	order := models.Order{ID: 5, ValueRs: 2000, RouteID: 1}
	route := models.Route{ID: 1, DistanceKM: 10, TrafficLevel: models.TrafficLevelHigh, BaseTimeMin: 30}

	out := ComputeOutcome(order, route, models.Driver{}, 52)

	assert.Equal(t, models.OrderStatusLate, out.Status)
	assert.Equal(t, 0.0, out.Bonus)
	assert.Equal(t, 50.0, out.Penalty)
	assert.Equal(t, 70.0, out.FuelCost)
	// 2000 + 0 - 50 - 70
	assert.Equal(t, 1880.0, out.Profit)
}
