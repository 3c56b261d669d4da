package reviews

import (
	"context"
	"time"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

type SubmitInput struct {
	RideID  int64
	Rating  int
	Comment string
}

// Submit records a review authored by the session user. A body-supplied
// user_id is dropped at the transport layer before it gets here; the claims
// id is the only author identity. An unresolvable ride id surfaces as
// errors.ErrRideNotFound via the store's foreign key.
type Submit struct {
	reviews ports.ReviewRepository
}

func NewSubmit(reviews ports.ReviewRepository) *Submit {
	return &Submit{reviews: reviews}
}

func (uc *Submit) Execute(ctx context.Context, userID int64, input SubmitInput) (int64, error) {
	return uc.reviews.Create(ctx, &domain.Review{
		UserID:    userID,
		RideID:    input.RideID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	})
}
