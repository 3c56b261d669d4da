package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

func newTestCache(t *testing.T) (*LocationCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewLocationCache(rdb), mr
}

func TestSetLatestAndSnapshot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	err := c.SetLatest(ctx, &domain.DriverLocation{DriverID: 7, Latitude: 48.85, Longitude: 2.35, RecordedAt: now})
	if err != nil {
		t.Fatalf("SetLatest error: %v", err)
	}

	locs, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if len(locs) != 1 {
		t.Fatalf("snapshot size: got %d want 1", len(locs))
	}
	got := locs[0]
	if got.DriverID != 7 || got.Latitude != 48.85 || got.Longitude != 2.35 {
		t.Fatalf("snapshot entry mismatch: %+v", got)
	}
	if !got.RecordedAt.Equal(now) {
		t.Fatalf("RecordedAt: got %v want %v", got.RecordedAt, now)
	}
}

func TestSetLatestOverwritesPerDriver(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_ = c.SetLatest(ctx, &domain.DriverLocation{DriverID: 7, Latitude: 1, Longitude: 2, RecordedAt: time.Now()})
	_ = c.SetLatest(ctx, &domain.DriverLocation{DriverID: 7, Latitude: 3, Longitude: 4, RecordedAt: time.Now()})
	_ = c.SetLatest(ctx, &domain.DriverLocation{DriverID: 8, Latitude: 5, Longitude: 6, RecordedAt: time.Now()})

	locs, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("snapshot size: got %d want 2", len(locs))
	}
	for _, l := range locs {
		if l.DriverID == 7 && l.Latitude != 3 {
			t.Fatalf("driver 7 not overwritten: %+v", l)
		}
	}
}

func TestSnapshotSkipsCorruptEntries(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_ = c.SetLatest(ctx, &domain.DriverLocation{DriverID: 7, Latitude: 1, Longitude: 2, RecordedAt: time.Now()})
	mr.HSet(latestLocationsKey, "not-an-id", `{"lat":1,"lng":2}`)
	mr.HSet(latestLocationsKey, "9", "not json")

	locs, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if len(locs) != 1 || locs[0].DriverID != 7 {
		t.Fatalf("expected only the valid entry, got %+v", locs)
	}
}

func TestSnapshotEmpty(t *testing.T) {
	c, _ := newTestCache(t)

	locs, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if len(locs) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", locs)
	}
}
