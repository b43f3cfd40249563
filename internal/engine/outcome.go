package engine

import (
	"math"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

const (
	gracePeriodMinutes  = 10
	latePenaltyRs       = 50.0
	bonusRate           = 0.10
	bonusValueThreshold = 1000.0
)

// Outcome is the decided result for one assigned order. All fields are set
// exactly once; an order never moves between delivered and late within a run.
type Outcome struct {
	OrderID         int     `json:"order_id"`
	RouteID         int     `json:"route_id"`
	DriverID        string  `json:"driver_id"`
	DriverName      string  `json:"driver_name"`
	Status          string  `json:"status"`
	DeliveryMinutes int     `json:"actual_delivery_time"`
	Value           float64 `json:"value_rs"`
	Penalty         float64 `json:"penalty_applied"`
	Bonus           float64 `json:"bonus_applied"`
	FuelCost        float64 `json:"fuel_cost"`
	Profit          float64 `json:"profit"`
}

// ComputeOutcome classifies one assigned order and derives its financials.
// A delivery is late when the fatigue-adjusted time exceeds the route's base
// time plus a 10-minute grace period: late costs a flat ₹50 and forfeits any
// bonus; on-time orders above ₹1000 earn a 10% bonus.
func ComputeOutcome(order models.Order, route models.Route, driver models.Driver, deliveryMinutes int) Outcome {
	out := Outcome{
		OrderID:         order.ID,
		RouteID:         route.ID,
		DriverID:        driver.ID,
		DriverName:      driver.Name,
		DeliveryMinutes: deliveryMinutes,
		Value:           order.ValueRs,
		FuelCost:        FuelCost(route.DistanceKM, route.TrafficLevel),
	}

	if deliveryMinutes > route.BaseTimeMin+gracePeriodMinutes {
		out.Status = models.OrderStatusLate
		out.Penalty = latePenaltyRs
	} else {
		out.Status = models.OrderStatusDelivered
		if order.ValueRs > bonusValueThreshold {
			out.Bonus = math.Round(order.ValueRs * bonusRate)
		}
	}

	out.Profit = order.ValueRs + out.Bonus - out.Penalty - out.FuelCost
	return out
}
