package rides

import (
	"context"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

// ListLocations returns every reported position, oldest first, straight from
// the store.
type ListLocations struct {
	locations ports.LocationRepository
}

func NewListLocations(locations ports.LocationRepository) *ListLocations {
	return &ListLocations{locations: locations}
}

func (uc *ListLocations) Execute(ctx context.Context) ([]domain.DriverLocation, error) {
	return uc.locations.ListAll(ctx)
}

// LatestLocations returns the newest position per driver, served from the
// redis cache when one is configured and falling back to the store.
type LatestLocations struct {
	locations ports.LocationRepository
	cache     ports.LocationCache
}

func NewLatestLocations(locations ports.LocationRepository, cache ports.LocationCache) *LatestLocations {
	return &LatestLocations{locations: locations, cache: cache}
}

func (uc *LatestLocations) Execute(ctx context.Context) ([]domain.DriverLocation, error) {
	if uc.cache != nil {
		if locs, err := uc.cache.Snapshot(ctx); err == nil && len(locs) > 0 {
			return locs, nil
		}
	}
	return uc.locations.LatestPerDriver(ctx)
}
