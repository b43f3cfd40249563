// Package engine implements the delivery-allocation and outcome-calculation
// core: a deterministic, single-pass greedy assignment of scheduled orders to
// fatigue-marked drivers, plus the penalty/bonus/fuel arithmetic and the KPI
// fold. The engine is pure: it reads snapshots, touches no storage, and
// materializes a complete result set for a separate commit step.
package engine

import (
	"context"
	"fmt"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

// Params are the run inputs, validated upstream.
type Params struct {
	NumberOfDrivers int
	StartTime       string // HH:MM
	MaxHoursPerDay  int
}

// Result is everything one run produced. Outcomes holds decided orders only;
// unassigned and skipped orders are listed by id and excluded from every KPI.
type Result struct {
	Results            models.SimulationResults
	Outcomes           []Outcome
	UnassignedOrderIDs []int
	SkippedOrderIDs    []int
}

// Run executes one complete simulation pass over driver, route and order
// snapshots. It aborts with InsufficientDriversError before any allocation
// when the roster is short, and honours ctx between allocation steps so an
// oversized batch cannot run unbounded.
func Run(ctx context.Context, params Params, drivers []models.Driver, routes []models.Route, orders []models.Order) (*Result, error) {
	if len(drivers) < params.NumberOfDrivers {
		return nil, &InsufficientDriversError{Available: len(drivers), Requested: params.NumberOfDrivers}
	}
	participating := drivers[:params.NumberOfDrivers]

	startMinutes, err := models.ParseClockMinutes(params.StartTime)
	if err != nil {
		return nil, fmt.Errorf("run: start time: %w", err)
	}

	routeByID := make(map[int]models.Route, len(routes))
	for _, route := range routes {
		routeByID[route.ID] = route
	}

	scheduled, err := ScheduleOrders(orders)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	allocator := NewAllocator(participating, startMinutes, params.MaxHoursPerDay)
	aggregator := NewAggregator()
	result := &Result{}

	for _, order := range scheduled {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run: allocation interrupted: %w", err)
		}

		route, ok := routeByID[order.RouteID]
		if !ok {
			// Bad reference: skip the order, keep the run going.
			result.SkippedOrderIDs = append(result.SkippedOrderIDs, order.ID)
			aggregator.AddSkipped()
			continue
		}

		assignment, ok := allocator.Assign(order, route)
		if !ok {
			result.UnassignedOrderIDs = append(result.UnassignedOrderIDs, order.ID)
			aggregator.AddUnassigned()
			continue
		}

		outcome := ComputeOutcome(order, route, assignment.State.Driver, assignment.DeliveryMinutes)
		aggregator.Add(outcome)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Results = aggregator.Finalize(allocator.States())
	return result, nil
}
