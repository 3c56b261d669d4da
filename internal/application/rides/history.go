package rides

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

// History lists rides where the caller was driver or passenger. The caller id
// comes from the session claims, so one account can never read another's
// history.
type History struct {
	rides ports.RideRepository
}

func NewHistory(rides ports.RideRepository) *History {
	return &History{rides: rides}
}

func (uc *History) Execute(ctx context.Context, userID int64) ([]domain.Ride, error) {
	return uc.rides.HistoryForUser(ctx, userID)
}
