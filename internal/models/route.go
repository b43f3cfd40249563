package models

// Route is a fixed delivery leg. Immutable for the duration of a run.
type Route struct {
	ID           int     `json:"route_id"`
	DistanceKM   float64 `json:"distance_km"`
	TrafficLevel string  `json:"traffic_level"` // Low, Medium or High
	BaseTimeMin  int     `json:"base_time_min"`
}
