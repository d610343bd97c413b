package models

import "time"

type RideStatus string

const (
	RideStatusRequested  RideStatus = "requested"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Ride struct {
	ID             int64      `json:"id"`
	PassengerRef   int64      `json:"passenger_ref"`
	DriverRef      int64      `json:"driver_ref"`
	Origin         Point      `json:"origin"`
	Destination    Point      `json:"destination"`
	DistanceKm     float64    `json:"distance_km"`
	DurationMin    int        `json:"duration_min"`
	EstimatedPrice float64    `json:"estimated_price"`
	FinalPrice     *float64   `json:"final_price"`
	Status         RideStatus `json:"status"`
	RequestedAt    time.Time  `json:"requested_at"`
	StartedAt      *time.Time `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at"`
}
