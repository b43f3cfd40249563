package engine

import (
	"context"
	"testing"
	"time"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fleetFixture() ([]models.Driver, []models.Route, []models.Order) {
	drivers := []models.Driver{
		{ID: "d1", Name: "Amit", ShiftHours: 8, PastWeekHours: []float64{6, 7, 6, 7, 6, 7, 6}},
		{ID: "d2", Name: "Priya", ShiftHours: 8, PastWeekHours: []float64{8, 8, 8, 8, 8, 8, 9}}, // fatigued
		{ID: "d3", Name: "Ravi", ShiftHours: 8, PastWeekHours: []float64{5, 5, 5, 5, 5, 5, 5}},
	}
	routes := []models.Route{
		{ID: 1, DistanceKM: 10, TrafficLevel: models.TrafficLevelLow, BaseTimeMin: 30},
		{ID: 2, DistanceKM: 20, TrafficLevel: models.TrafficLevelHigh, BaseTimeMin: 55},
		{ID: 3, DistanceKM: 5, TrafficLevel: models.TrafficLevelMedium, BaseTimeMin: 20},
	}
	orders := []models.Order{
		{ID: 1, ValueRs: 1500, RouteID: 1, DeliveryDeadline: "09:30"},
		{ID: 2, ValueRs: 500, RouteID: 2, DeliveryDeadline: "10:00"},
		{ID: 3, ValueRs: 1200, RouteID: 3, DeliveryDeadline: "09:00"},
		{ID: 4, ValueRs: 800, RouteID: 1, DeliveryDeadline: "11:15"},
		{ID: 5, ValueRs: 2500, RouteID: 2, DeliveryDeadline: "12:00"},
	}
	return drivers, routes, orders
}

func TestRunInsufficientDriversAborts(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 10, StartTime: "09:00", MaxHoursPerDay: 8}

	_, err := Run(context.Background(), params, drivers[:2], routes, orders)
	require.Error(t, err)

	var insufficient *InsufficientDriversError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 10, insufficient.Requested)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "10")
}

func TestRunDeterminism(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 3, StartTime: "09:00", MaxHoursPerDay: 8}

	first, err := Run(context.Background(), params, drivers, routes, orders)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Run(context.Background(), params, drivers, routes, orders)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRunCapacityInvariant(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 2, StartTime: "08:00", MaxHoursPerDay: 2}

	result, err := Run(context.Background(), params, drivers, routes, orders)
	require.NoError(t, err)

	for _, da := range result.Results.DriverAssignments {
		assert.LessOrEqual(t, da.TotalHoursWorked, params.MaxHoursPerDay)
	}
	// Not every order fits two drivers at two hours each.
	assert.Greater(t, result.Results.UnassignedOrders, 0)
	assert.Len(t, result.UnassignedOrderIDs, result.Results.UnassignedOrders)
}

func TestRunSkipsUnresolvableRouteRefs(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	orders = append(orders, models.Order{ID: 99, ValueRs: 300, RouteID: 404, DeliveryDeadline: "08:00"})
	params := Params{NumberOfDrivers: 3, StartTime: "09:00", MaxHoursPerDay: 8}

	result, err := Run(context.Background(), params, drivers, routes, orders)
	require.NoError(t, err)

	assert.Equal(t, []int{99}, result.SkippedOrderIDs)
	assert.Equal(t, 1, result.Results.SkippedOrders)
	for _, out := range result.Outcomes {
		assert.NotEqual(t, 99, out.OrderID)
	}
}

func TestRunKPIsAddUp(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 3, StartTime: "09:00", MaxHoursPerDay: 8}

	result, err := Run(context.Background(), params, drivers, routes, orders)
	require.NoError(t, err)

	r := result.Results
	assert.Equal(t, r.TotalDeliveries, r.OnTimeDeliveries+r.LateDeliveries)
	assert.Equal(t, r.TotalDeliveries, len(result.Outcomes))
	assert.Equal(t, len(orders), r.TotalDeliveries+r.UnassignedOrders+r.SkippedOrders)

	var profit float64
	for _, out := range result.Outcomes {
		profit += out.Profit
	}
	assert.InDelta(t, profit, r.TotalProfit, 0.5) // totals are rounded at finalize
}

func TestRunMalformedStartTimeFails(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 3, StartTime: "quarter past nine", MaxHoursPerDay: 8}

	_, err := Run(context.Background(), params, drivers, routes, orders)
	require.Error(t, err)
}

func TestRunHonoursContextDeadline(t *testing.T) {
	drivers, routes, orders := fleetFixture()
	params := Params{NumberOfDrivers: 3, StartTime: "09:00", MaxHoursPerDay: 8}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := Run(ctx, params, drivers, routes, orders)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
