package domain

import "time"

// DriverLocation is one reported position. Reports are append-only; the
// newest row per driver is the driver's current position.
type DriverLocation struct {
	ID         int64
	DriverID   int64
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}
