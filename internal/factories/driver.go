package factories

import (
	"time"

	"github.com/fleetsimhq/fleetsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type DriverFactory struct{}

func (df *DriverFactory) CreateDriver() *models.Driver {
	pastWeek := make([]float64, models.PastWeekDays)
	for i := range pastWeek {
		pastWeek[i] = fake.Float64(1, 4, 11)
	}

	return &models.Driver{
		ID:            cuid.New(),
		Name:          fake.Person().Name(),
		ShiftHours:    fake.IntBetween(6, 12),
		PastWeekHours: pastWeek,
		CreatedAt:     time.Now().UTC(),
	}
}
