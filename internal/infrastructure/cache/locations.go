package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/application/ports"
	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

const latestLocationsKey = "drivers:locations:latest"

type cachedLocation struct {
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	RecordedAt time.Time `json:"at"`
}

// LocationCache keeps the newest position per driver in a redis hash keyed
// by driver id. It is a read accelerator only; the driver_locations table
// stays authoritative.
type LocationCache struct {
	rdb *redis.Client
}

func NewLocationCache(rdb *redis.Client) *LocationCache {
	return &LocationCache{rdb: rdb}
}

func (c *LocationCache) SetLatest(ctx context.Context, loc *domain.DriverLocation) error {
	payload, err := json.Marshal(cachedLocation{
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		RecordedAt: loc.RecordedAt,
	})
	if err != nil {
		return err
	}
	return c.rdb.HSet(ctx, latestLocationsKey, strconv.FormatInt(loc.DriverID, 10), payload).Err()
}

func (c *LocationCache) Snapshot(ctx context.Context) ([]domain.DriverLocation, error) {
	entries, err := c.rdb.HGetAll(ctx, latestLocationsKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]domain.DriverLocation, 0, len(entries))
	for field, raw := range entries {
		driverID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue // stray field, skip
		}
		var cl cachedLocation
		if err := json.Unmarshal([]byte(raw), &cl); err != nil {
			continue
		}
		out = append(out, domain.DriverLocation{
			DriverID:   driverID,
			Latitude:   cl.Latitude,
			Longitude:  cl.Longitude,
			RecordedAt: cl.RecordedAt,
		})
	}
	return out, nil
}

var _ ports.LocationCache = (*LocationCache)(nil)
