package domain

import "time"

// Review is a rider's rating of a completed ride. UserID always comes from
// the verified session, never from the request body.
type Review struct {
	ID        int64
	UserID    int64
	RideID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
