package factories

import "github.com/fleetsimhq/fleetsim/internal/models"

var trafficLevels = []string{
	models.TrafficLevelLow,
	models.TrafficLevelMedium,
	models.TrafficLevelHigh,
}

type RouteFactory struct{}

func (rf *RouteFactory) CreateRoute(id int) *models.Route {
	return &models.Route{
		ID:           id,
		DistanceKM:   fake.Float64(1, 2, 40),
		TrafficLevel: trafficLevels[fake.IntBetween(0, len(trafficLevels)-1)],
		BaseTimeMin:  fake.IntBetween(15, 120),
	}
}
