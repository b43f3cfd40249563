package engine

import (
	"testing"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregatorEfficiencyScore(t *testing.T) {
	agg := NewAggregator()
	for i := 0; i < 8; i++ {
		agg.Add(Outcome{Status: models.OrderStatusDelivered})
	}
	for i := 0; i < 2; i++ {
		agg.Add(Outcome{Status: models.OrderStatusLate, Penalty: 50})
	}

	results := agg.Finalize(nil)

	assert.Equal(t, 10, results.TotalDeliveries)
	assert.Equal(t, 8, results.OnTimeDeliveries)
	assert.Equal(t, 2, results.LateDeliveries)
	assert.Equal(t, 80, results.EfficiencyScore)
	assert.Equal(t, 100.0, results.TotalPenalties)
}

func TestAggregatorEmptyRunScoresZero(t *testing.T) {
	results := NewAggregator().Finalize(nil)

	assert.Equal(t, 0, results.EfficiencyScore)
	assert.Equal(t, 0, results.TotalDeliveries)
}

func TestAggregatorRoundsMoneyTotals(t *testing.T) {
	agg := NewAggregator()
	agg.Add(Outcome{Status: models.OrderStatusDelivered, Profit: 100.4, FuelCost: 12.5})
	agg.Add(Outcome{Status: models.OrderStatusDelivered, Profit: 100.4, FuelCost: 12.4})

	results := agg.Finalize(nil)

	assert.Equal(t, 201.0, results.TotalProfit)
	assert.Equal(t, 25.0, results.TotalFuelCost)
}

func TestAggregatorDriverSummaries(t *testing.T) {
	states := []*DriverState{
		{Driver: models.Driver{Name: "Amit"}, CurrentHours: 5, AssignedOrders: []int{1, 3}, IsFatigued: true},
		{Driver: models.Driver{Name: "Priya"}, CurrentHours: 0, AssignedOrders: []int{}},
	}

	results := NewAggregator().Finalize(states)

	assert.Len(t, results.DriverAssignments, 2)
	assert.Equal(t, "Amit", results.DriverAssignments[0].DriverName)
	assert.Equal(t, []int{1, 3}, results.DriverAssignments[0].OrdersAssigned)
	assert.Equal(t, 5, results.DriverAssignments[0].TotalHoursWorked)
	assert.True(t, results.DriverAssignments[0].IsFatigued)
	assert.Empty(t, results.DriverAssignments[1].OrdersAssigned)
}

func TestAggregatorCountsUnassignedAndSkipped(t *testing.T) {
	agg := NewAggregator()
	agg.AddUnassigned()
	agg.AddUnassigned()
	agg.AddSkipped()

	results := agg.Finalize(nil)

	assert.Equal(t, 2, results.UnassignedOrders)
	assert.Equal(t, 1, results.SkippedOrders)
	assert.Equal(t, 0, results.TotalDeliveries)
}
