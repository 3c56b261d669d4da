package domain

// Ride statuses as stored in the rides table.
const (
	RideStatusRequested = "requested"
	RideStatusOngoing   = "ongoing"
	RideStatusCompleted = "completed"
	RideStatusCancelled = "cancelled"
)

// Ride links a driver and a passenger. Matching/dispatch happens outside this
// service; rides arrive here already formed and are only read back as history.
type Ride struct {
	ID            int64
	DriverID      int64
	PassengerID   int64
	StartLocation string
	EndLocation   string
	Status        string
	Fare          float64
}
