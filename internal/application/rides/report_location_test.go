package rides

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/BRAITOU555/my-ride-sharing-app/internal/domain"
)

type fakeLocationRepo struct {
	recorded []domain.DriverLocation
	nextID   int64

	recordErr error
	latest    []domain.DriverLocation
	latestErr error
}

func (f *fakeLocationRepo) Record(ctx context.Context, loc *domain.DriverLocation) (int64, error) {
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	f.nextID++
	stored := *loc
	stored.ID = f.nextID
	f.recorded = append(f.recorded, stored)
	return f.nextID, nil
}

func (f *fakeLocationRepo) ListAll(ctx context.Context) ([]domain.DriverLocation, error) {
	return f.recorded, nil
}

func (f *fakeLocationRepo) LatestPerDriver(ctx context.Context) ([]domain.DriverLocation, error) {
	return f.latest, f.latestErr
}

type fakeLocationCache struct {
	set      []domain.DriverLocation
	setErr   error
	snapshot []domain.DriverLocation
	snapErr  error
}

func (f *fakeLocationCache) SetLatest(ctx context.Context, loc *domain.DriverLocation) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.set = append(f.set, *loc)
	return nil
}

func (f *fakeLocationCache) Snapshot(ctx context.Context) ([]domain.DriverLocation, error) {
	return f.snapshot, f.snapErr
}

func TestReportLocationRecordsAndCaches(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{}
	cache := &fakeLocationCache{}
	uc := NewReportLocation(repo, cache, zerolog.Nop())

	err := uc.Execute(context.Background(), 7, ReportLocationInput{Latitude: 48.85, Longitude: 2.35})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("recorded rows: got %d want 1", len(repo.recorded))
	}
	got := repo.recorded[0]
	if got.DriverID != 7 || got.Latitude != 48.85 || got.Longitude != 2.35 {
		t.Fatalf("stored row mismatch: %+v", got)
	}
	if got.RecordedAt.IsZero() {
		t.Fatalf("RecordedAt must be stamped")
	}
	if len(cache.set) != 1 || cache.set[0].DriverID != 7 {
		t.Fatalf("cache not refreshed: %+v", cache.set)
	}
}

// A redis failure degrades to store-only; the report itself still succeeds.
func TestReportLocationCacheFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{}
	cache := &fakeLocationCache{setErr: errors.New("redis down")}
	uc := NewReportLocation(repo, cache, zerolog.Nop())

	if err := uc.Execute(context.Background(), 7, ReportLocationInput{Latitude: 1, Longitude: 2}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("row must still be recorded when the cache write fails")
	}
}

func TestReportLocationWithoutCache(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{}
	uc := NewReportLocation(repo, nil, zerolog.Nop())

	if err := uc.Execute(context.Background(), 3, ReportLocationInput{Latitude: 1, Longitude: 2}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("recorded rows: got %d want 1", len(repo.recorded))
	}
}

func TestReportLocationStoreFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{recordErr: errors.New("insert failed")}
	cache := &fakeLocationCache{}
	uc := NewReportLocation(repo, cache, zerolog.Nop())

	if err := uc.Execute(context.Background(), 7, ReportLocationInput{Latitude: 1, Longitude: 2}); err == nil {
		t.Fatalf("expected error when the store rejects the row")
	}
	if len(cache.set) != 0 {
		t.Fatalf("cache must not be touched when the store write fails")
	}
}

func TestLatestLocationsPrefersCache(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{latest: []domain.DriverLocation{{DriverID: 1}}}
	cache := &fakeLocationCache{snapshot: []domain.DriverLocation{{DriverID: 2}, {DriverID: 3}}}
	uc := NewLatestLocations(repo, cache)

	locs, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("expected the cache snapshot, got %+v", locs)
	}
}

func TestLatestLocationsFallsBackToStore(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{latest: []domain.DriverLocation{{DriverID: 1}}}

	for _, cache := range []*fakeLocationCache{
		nil,
		{snapErr: errors.New("redis down")},
		{snapshot: nil}, // empty cache
	} {
		var uc *LatestLocations
		if cache == nil {
			uc = NewLatestLocations(repo, nil)
		} else {
			uc = NewLatestLocations(repo, cache)
		}
		locs, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if len(locs) != 1 || locs[0].DriverID != 1 {
			t.Fatalf("expected the store fallback, got %+v", locs)
		}
	}
}

func TestListLocationsReadsStore(t *testing.T) {
	t.Parallel()

	repo := &fakeLocationRepo{}
	reporter := NewReportLocation(repo, nil, zerolog.Nop())
	_ = reporter.Execute(context.Background(), 1, ReportLocationInput{Latitude: 10, Longitude: 20})
	_ = reporter.Execute(context.Background(), 2, ReportLocationInput{Latitude: 30, Longitude: 40})

	locs, err := NewListLocations(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("locations: got %d want 2", len(locs))
	}
}
