package ports

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

// ProfilePatch carries the optional fields of a profile update. A nil field
// leaves the stored value unchanged; Password must already be hashed.
type ProfilePatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines persistence for accounts. Create and UpdateProfile
// return errors.ErrEmailTaken on a users.email unique violation.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) error
}

// RideRepository reads rides. Writes happen in the dispatch service, outside
// this codebase.
type RideRepository interface {
	HistoryForUser(ctx context.Context, userID int64) ([]domain.Ride, error)
}

// ReviewRepository persists ride reviews. Create returns
// errors.ErrRideNotFound when the ride foreign key does not resolve.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (int64, error)
	ListByRide(ctx context.Context, rideID int64) ([]domain.Review, error)
}

// LocationRepository persists driver position reports.
type LocationRepository interface {
	Record(ctx context.Context, loc *domain.DriverLocation) (int64, error)
	ListAll(ctx context.Context) ([]domain.DriverLocation, error)
	LatestPerDriver(ctx context.Context) ([]domain.DriverLocation, error)
}
