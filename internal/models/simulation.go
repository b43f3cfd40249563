package models

import "time"

// SimulationInput echoes the parameters a run was invoked with. Values are
// validated upstream: drivers 1-50, max hours 1-12, start time HH:MM.
type SimulationInput struct {
	NumberOfDrivers int    `mapstructure:"number_of_drivers" json:"number_of_drivers"`
	StartTime       string `mapstructure:"start_time" json:"start_time"`
	MaxHoursPerDay  int    `mapstructure:"max_hours_per_day" json:"max_hours_per_day"`
}

// DriverAssignment summarises one driver's share of a run.
type DriverAssignment struct {
	DriverName       string `json:"driver_name"`
	OrdersAssigned   []int  `json:"orders_assigned"`
	TotalHoursWorked int    `json:"total_hours_worked"`
	IsFatigued       bool   `json:"is_fatigued"`
}

// SimulationResults holds the fleet-level KPIs for one completed run.
type SimulationResults struct {
	TotalProfit       float64            `json:"total_profit"`
	EfficiencyScore   int                `json:"efficiency_score"`
	TotalDeliveries   int                `json:"total_deliveries"`
	OnTimeDeliveries  int                `json:"on_time_deliveries"`
	LateDeliveries    int                `json:"late_deliveries"`
	TotalPenalties    float64            `json:"total_penalties"`
	TotalBonuses      float64            `json:"total_bonuses"`
	TotalFuelCost     float64            `json:"total_fuel_cost"`
	UnassignedOrders  int                `json:"unassigned_orders"`
	SkippedOrders     int                `json:"skipped_orders"`
	DriverAssignments []DriverAssignment `json:"driver_assignments"`
}

// SimulationRun is the immutable record persisted once per invocation.
type SimulationRun struct {
	ID              string            `json:"run_id"`
	InputParameters SimulationInput   `json:"input_parameters"`
	Results         SimulationResults `json:"results"`
	ExecutionTimeMS int64             `json:"execution_time_ms"`
	CreatedAt       time.Time         `json:"created_at"`
}
