package engine

import "github.com/fleetsimhq/fleetsim/internal/models"

const (
	fuelCostPerKM        = 5.0
	highTrafficSurcharge = 2.0
)

// FuelCost returns the fuel cost in rupees for one traversal of a route:
// ₹5/km base, plus ₹2/km when traffic is High.
func FuelCost(distanceKM float64, trafficLevel string) float64 {
	cost := distanceKM * fuelCostPerKM
	if trafficLevel == models.TrafficLevelHigh {
		cost += distanceKM * highTrafficSurcharge
	}
	return cost
}
