package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
	domerrors "github.com/BRAITOU555/my-ride-sharing-app/internal/domain/errors"
)

const (
	insertReviewSQL = `INSERT INTO reviews (user_id, ride_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	listReviewsByRideSQL = `SELECT id, user_id, ride_id, rating, comment, created_at
		FROM reviews WHERE ride_id = $1 ORDER BY id`
)

// ReviewRepository is the pgx-backed review store. The ride_id foreign key
// turns a dangling ride reference into ErrRideNotFound.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertReviewSQL,
		review.UserID, review.RideID, review.Rating, review.Comment, review.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isPgErr(err, codeForeignKeyViolation) {
			return 0, domerrors.ErrRideNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *ReviewRepository) ListByRide(ctx context.Context, rideID int64) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, listReviewsByRideSQL, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.RideID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
