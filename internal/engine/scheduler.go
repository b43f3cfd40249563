package engine

import (
	"fmt"
	"sort"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

// ScheduleOrders returns a copy of the batch sorted ascending by delivery
// deadline. The sort is stable: orders with equal deadlines keep their batch
// position, so identical inputs always produce identical processing sequences.
// A malformed deadline fails the whole batch rather than sorting it wrong.
func ScheduleOrders(orders []models.Order) ([]models.Order, error) {
	type keyed struct {
		order    models.Order
		deadline int
	}

	scheduled := make([]keyed, len(orders))
	for i, order := range orders {
		minutes, err := order.DeadlineMinutes()
		if err != nil {
			return nil, fmt.Errorf("schedule orders: order %d: %w", order.ID, err)
		}
		scheduled[i] = keyed{order: order, deadline: minutes}
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].deadline < scheduled[j].deadline
	})

	out := make([]models.Order, len(scheduled))
	for i, k := range scheduled {
		out[i] = k.order
	}
	return out, nil
}
