package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

const historyForUserSQL = `SELECT id, driver_id, passenger_id, start_location, end_location, status, fare
	FROM rides WHERE driver_id = $1 OR passenger_id = $1 ORDER BY id DESC`

// RideRepository reads the rides table. Rows are written by the dispatch
// service; this service only reads them back as history.
type RideRepository struct {
	pool *pgxpool.Pool
}

func NewRideRepository(pool *pgxpool.Pool) *RideRepository {
	return &RideRepository{pool: pool}
}

func (r *RideRepository) HistoryForUser(ctx context.Context, userID int64) ([]domain.Ride, error) {
	rows, err := r.pool.Query(ctx, historyForUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Ride
	for rows.Next() {
		var rd domain.Ride
		if err := rows.Scan(&rd.ID, &rd.DriverID, &rd.PassengerID, &rd.StartLocation, &rd.EndLocation, &rd.Status, &rd.Fare); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

var _ ports.RideRepository = (*RideRepository)(nil)
