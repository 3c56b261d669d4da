package rides

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

type ReportLocationInput struct {
	Latitude  float64
	Longitude float64
}

// ReportLocation appends a position row for the driver named by the session
// claims and refreshes the latest-position cache. The cache write is best
// effort: a redis failure is logged and the report still succeeds.
type ReportLocation struct {
	locations ports.LocationRepository
	cache     ports.LocationCache
	log       zerolog.Logger
}

func NewReportLocation(locations ports.LocationRepository, cache ports.LocationCache, log zerolog.Logger) *ReportLocation {
	return &ReportLocation{locations: locations, cache: cache, log: log}
}

func (uc *ReportLocation) Execute(ctx context.Context, driverID int64, input ReportLocationInput) error {
	loc := &domain.DriverLocation{
		DriverID:   driverID,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		RecordedAt: time.Now(),
	}
	id, err := uc.locations.Record(ctx, loc)
	if err != nil {
		return err
	}
	loc.ID = id
	if uc.cache != nil {
		if err := uc.cache.SetLatest(ctx, loc); err != nil {
			uc.log.Warn().Err(err).Int64("driver_id", driverID).Msg("latest-location cache update failed")
		}
	}
	return nil
}
