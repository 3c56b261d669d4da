package reviews

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

// List returns the reviews for one ride, oldest first.
type List struct {
	reviews ports.ReviewRepository
}

func NewList(reviews ports.ReviewRepository) *List {
	return &List{reviews: reviews}
}

func (uc *List) Execute(ctx context.Context, rideID int64) ([]domain.Review, error) {
	return uc.reviews.ListByRide(ctx, rideID)
}
