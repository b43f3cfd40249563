package factories

import (
	"fmt"

	"github.com/fleetsimhq/fleetsim/internal/models"
)

type OrderFactory struct{}

// CreateOrder builds a pending order referencing one of routeCount routes
// (route ids are 1-based sequential, matching RouteFactory).
func (of *OrderFactory) CreateOrder(id, routeCount int) *models.Order {
	hour := fake.IntBetween(8, 21)
	minute := fake.IntBetween(0, 59)

	return &models.Order{
		ID:               id,
		ValueRs:          float64(fake.IntBetween(100, 3000)),
		RouteID:          fake.IntBetween(1, routeCount),
		DeliveryDeadline: fmt.Sprintf("%02d:%02d", hour, minute),
		Status:           models.OrderStatusPending,
	}
}
