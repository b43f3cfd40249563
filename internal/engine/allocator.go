package engine

import "github.com/fleetsimhq/fleetsim/internal/models"

// DriverState is one driver's allocation bookkeeping for a single run.
// It is transient: seeded at the run's start time and discarded after commit.
type DriverState struct {
	Driver         models.Driver
	IsFatigued     bool
	CurrentHours   int
	CurrentMinutes int // clock position, minutes since midnight
	AssignedOrders []int
}

// Assignment records the outcome of one successful allocation step.
type Assignment struct {
	State           *DriverState
	DeliveryMinutes int // fatigue-adjusted time for the chosen driver
	HoursCharged    int
}

// Allocator assigns orders to drivers with a least-loaded greedy scan.
// Single pass, no backtracking: each order's booking shrinks the capacity
// seen by every later order, so processing sequence determines the result.
type Allocator struct {
	states         []*DriverState
	maxHoursPerDay int
}

func NewAllocator(drivers []models.Driver, startMinutes, maxHoursPerDay int) *Allocator {
	states := make([]*DriverState, len(drivers))
	for i, d := range drivers {
		d.IsFatigued = Fatigued(d.PastWeekHours)
		states[i] = &DriverState{
			Driver:         d,
			IsFatigued:     d.IsFatigued,
			CurrentMinutes: startMinutes,
			AssignedOrders: []int{},
		}
	}
	return &Allocator{states: states, maxHoursPerDay: maxHoursPerDay}
}

// States exposes the per-driver bookkeeping for aggregation.
func (a *Allocator) States() []*DriverState {
	return a.states
}

// Assign books an order onto the feasible driver with the fewest hours
// consumed this run. Ties keep the first driver found, which makes repeated
// runs over identical inputs reproduce the same assignment. Returns false
// when no driver can absorb the route within the daily cap; the order is
// then left unassigned, not treated as an error.
func (a *Allocator) Assign(order models.Order, route models.Route) (Assignment, bool) {
	var best *DriverState
	var bestMinutes, bestHours int

	for _, st := range a.states {
		minutes := AdjustedDeliveryTime(route.BaseTimeMin, st.IsFatigued)
		hours := hoursIncrement(minutes)
		if st.CurrentHours+hours > a.maxHoursPerDay {
			continue
		}
		if best == nil || st.CurrentHours < best.CurrentHours {
			best = st
			bestMinutes = minutes
			bestHours = hours
		}
	}

	if best == nil {
		return Assignment{}, false
	}

	best.CurrentHours += bestHours
	best.CurrentMinutes += bestMinutes
	best.AssignedOrders = append(best.AssignedOrders, order.ID)

	return Assignment{State: best, DeliveryMinutes: bestMinutes, HoursCharged: bestHours}, true
}

// hoursIncrement converts a delivery duration to whole hours, rounded up.
func hoursIncrement(deliveryMinutes int) int {
	return (deliveryMinutes + 59) / 60
}
