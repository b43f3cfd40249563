package engine

import (
	"math"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

// Aggregator folds order outcomes into fleet-level KPIs.
type Aggregator struct {
	results models.SimulationResults
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add accumulates one decided order.
func (g *Aggregator) Add(out Outcome) {
	r := &g.results
	r.TotalDeliveries++
	r.TotalFuelCost += out.FuelCost
	r.TotalProfit += out.Profit

	if out.Status == models.OrderStatusLate {
		r.LateDeliveries++
		r.TotalPenalties += out.Penalty
	} else {
		r.OnTimeDeliveries++
		r.TotalBonuses += out.Bonus
	}
}

// AddUnassigned counts an order no driver had capacity for.
func (g *Aggregator) AddUnassigned() {
	g.results.UnassignedOrders++
}

// AddSkipped counts an order whose route reference did not resolve.
func (g *Aggregator) AddSkipped() {
	g.results.SkippedOrders++
}

// Finalize computes the efficiency score, rounds the money totals and builds
// the per-driver summaries. Efficiency is the on-time percentage of processed
// orders; an empty run scores zero rather than dividing by zero.
func (g *Aggregator) Finalize(states []*DriverState) models.SimulationResults {
	r := g.results

	if r.TotalDeliveries > 0 {
		r.EfficiencyScore = int(math.Round(float64(r.OnTimeDeliveries) / float64(r.TotalDeliveries) * 100))
	}
	r.TotalProfit = math.Round(r.TotalProfit)
	r.TotalFuelCost = math.Round(r.TotalFuelCost)

	r.DriverAssignments = make([]models.DriverAssignment, len(states))
	for i, st := range states {
		r.DriverAssignments[i] = models.DriverAssignment{
			DriverName:       st.Driver.Name,
			OrdersAssigned:   st.AssignedOrders,
			TotalHoursWorked: st.CurrentHours,
			IsFatigued:       st.IsFatigued,
		}
	}

	return r
}
