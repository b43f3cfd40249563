package models

import "time"

// PastWeekDays is the fixed length of a driver's trailing work-hours record.
const PastWeekDays = 7

type Driver struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ShiftHours    int       `json:"shift_hours"`
	PastWeekHours []float64 `json:"past_week_hours"` // oldest to newest, always 7 entries
	IsFatigued    bool      `json:"is_fatigued"`     // derived per run, never set directly
	// Legacy column from the driver registry; the engine neither reads nor writes it.
	CurrentWorkload float64   `json:"current_workload"`
	CreatedAt       time.Time `json:"created_at"`
}

// YesterdayHours returns the most recent day's recorded hours.
func (d *Driver) YesterdayHours() float64 {
	if len(d.PastWeekHours) == 0 {
		return 0
	}
	return d.PastWeekHours[len(d.PastWeekHours)-1]
}

// WeeklyAverage returns the mean of the trailing 7-day record.
func (d *Driver) WeeklyAverage() float64 {
	if len(d.PastWeekHours) == 0 {
		return 0
	}
	var total float64
	for _, h := range d.PastWeekHours {
		total += h
	}
	return total / float64(len(d.PastWeekHours))
}
