package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

const (
	insertLocationSQL = `INSERT INTO driver_locations (driver_id, latitude, longitude, recorded_at)
		VALUES ($1, $2, $3, $4) RETURNING id`
	listLocationsSQL = `SELECT id, driver_id, latitude, longitude, recorded_at
		FROM driver_locations ORDER BY id`
	latestPerDriverSQL = `SELECT DISTINCT ON (driver_id) id, driver_id, latitude, longitude, recorded_at
		FROM driver_locations ORDER BY driver_id, recorded_at DESC, id DESC`
)

// LocationRepository is the append-only position log.
type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) Record(ctx context.Context, loc *domain.DriverLocation) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertLocationSQL,
		loc.DriverID, loc.Latitude, loc.Longitude, loc.RecordedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *LocationRepository) ListAll(ctx context.Context) ([]domain.DriverLocation, error) {
	return r.query(ctx, listLocationsSQL)
}

func (r *LocationRepository) LatestPerDriver(ctx context.Context) ([]domain.DriverLocation, error) {
	return r.query(ctx, latestPerDriverSQL)
}

func (r *LocationRepository) query(ctx context.Context, sql string) ([]domain.DriverLocation, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DriverLocation
	for rows.Next() {
		var l domain.DriverLocation
		if err := rows.Scan(&l.ID, &l.DriverID, &l.Latitude, &l.Longitude, &l.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

var _ ports.LocationRepository = (*LocationRepository)(nil)
