package engine

import (
	"testing"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFuelCost(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		traffic  string
		want     float64
	}{
		{"low traffic", 10, models.TrafficLevelLow, 50},
		{"medium traffic has no surcharge", 10, models.TrafficLevelMedium, 50},
		{"high traffic surcharge", 10, models.TrafficLevelHigh, 70},
		{"fractional distance", 2.5, models.TrafficLevelLow, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FuelCost(tt.distance, tt.traffic))
		})
	}
}
