package models

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusLate      = "late"

	TrafficLevelLow    = "Low"
	TrafficLevelMedium = "Medium"
	TrafficLevelHigh   = "High"
)
