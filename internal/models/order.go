package models

import (
	"fmt"
	"strconv"
	"strings"
)

type Order struct {
	ID               int     `json:"order_id"`
	ValueRs          float64 `json:"value_rs"`
	RouteID          int     `json:"route_id"`
	DeliveryDeadline string  `json:"delivery_time"` // HH:MM, 24-hour

	// Run-derived fields, set exactly once when a run decides the order.
	AssignedDriverID   string  `json:"assigned_driver,omitempty"`
	Status             string  `json:"status"`
	ActualDeliveryTime int     `json:"actual_delivery_time,omitempty"` // minutes
	PenaltyApplied     float64 `json:"penalty_applied"`
	BonusApplied       float64 `json:"bonus_applied"`
}

// DeadlineMinutes converts the delivery deadline to minutes since midnight.
func (o *Order) DeadlineMinutes() (int, error) {
	return ParseClockMinutes(o.DeliveryDeadline)
}

// Profit returns the order's contribution before fuel cost.
func (o *Order) Profit() float64 {
	return o.ValueRs + o.BonusApplied - o.PenaltyApplied
}

// ParseClockMinutes parses an HH:MM 24-hour clock string into minutes since
// midnight. A single-digit hour is accepted, matching upstream records.
func ParseClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hours*60 + minutes, nil
}
