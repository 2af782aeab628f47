package geo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-6.2088, 106.8456},
		{89.9, 179.9},
		{-45.0, -120.5},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	d1 := Haversine(25.033, 121.565, 25.047, 121.517)
	d2 := Haversine(25.047, 121.517, 25.033, 121.565)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// 0.0015 degrees of longitude on the equator is roughly 167 m.
	d := Haversine(0, 0, 0, 0.0015)
	assert.InDelta(t, 166.8, d, 0.5)

	// 0.002 degrees is roughly 222 m.
	d = Haversine(0, 0, 0, 0.002)
	assert.InDelta(t, 222.4, d, 0.5)
}

func newTestMatcher(t *testing.T, repo *mockRepo.MockLocationRepository, maxAge time.Duration) *haversineMatcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{Alert: &config.AlertConfig{MaxScan: 1000, LocationMaxAge: maxAge}}

	return NewHaversineMatcher(repo, cfg, logger).(*haversineMatcher)
}

func activeLocation(userID, externalID string, lat, lon float64) *entity.UserLocation {
	return &entity.UserLocation{
		UserID:     userID,
		ExternalID: externalID,
		Latitude:   lat,
		Longitude:  lon,
		DeviceType: "android",
		Active:     true,
		LastUpdate: time.Now(),
	}
}

func TestFindWithinRadius_ExcludesSenderAndSorts(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 0)

	repo.EXPECT().FindActiveLocations(context.Background(), 1000).Return([]*entity.UserLocation{
		activeLocation("sender", "alias-sender", 0, 0),
		activeLocation("far", "alias-far", 0, 0.0015),
		activeLocation("near", "alias-near", 0, 0.0005),
		activeLocation("outside", "alias-outside", 0, 0.002),
	}, nil)

	candidates, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, 200, "sender")

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "near", candidates[0].UserID)
	assert.Equal(t, "far", candidates[1].UserID)
	assert.LessOrEqual(t, candidates[0].DistanceMeters, candidates[1].DistanceMeters)
	for _, c := range candidates {
		assert.NotEqual(t, "sender", c.UserID)
	}
}

func TestFindWithinRadius_SortsOnFullPrecisionDistance(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 0)

	// Both distances round to the same centimeter; they differ by about
	// 3 mm, and the enumeration order is adversarial.
	repo.EXPECT().FindActiveLocations(context.Background(), 1000).Return([]*entity.UserLocation{
		activeLocation("farther", "alias-farther", 0, 0.000899357),
		activeLocation("nearer", "alias-nearer", 0, 0.000899330),
	}, nil)

	candidates, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, 200, "")

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "nearer", candidates[0].UserID)
	assert.Equal(t, "farther", candidates[1].UserID)
	assert.Equal(t, candidates[0].DistanceMeters, candidates[1].DistanceMeters)
}

func TestFindWithinRadius_BoundaryInclusive(t *testing.T) {
	exact := Haversine(0, 0, 0, 0.0015)

	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 0)
	repo.EXPECT().FindActiveLocations(context.Background(), 1000).Return([]*entity.UserLocation{
		activeLocation("edge", "alias-edge", 0, 0.0015),
	}, nil).Twice()

	// A candidate at exactly the radius is included.
	candidates, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, exact, "")
	require.NoError(t, err)
	assert.Len(t, candidates, 1)

	// One meter short of the candidate's distance excludes it.
	candidates, err = matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, exact-1, "")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFindWithinRadius_SkipsIneligible(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 0)

	inactive := activeLocation("inactive", "alias-inactive", 0, 0.0005)
	inactive.Active = false
	noAlias := activeLocation("no-alias", "", 0, 0.0005)
	noCoords := activeLocation("no-coords", "alias-no-coords", 0, 0)

	repo.EXPECT().FindActiveLocations(context.Background(), 1000).Return([]*entity.UserLocation{
		inactive,
		noAlias,
		noCoords,
		activeLocation("ok", "alias-ok", 0, 0.0005),
	}, nil)

	candidates, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, 200, "")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "ok", candidates[0].UserID)
	assert.Equal(t, "alias-ok", candidates[0].ExternalID)
}

func TestFindWithinRadius_StaleLocationsSkipped(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 30*time.Minute)

	fresh := activeLocation("fresh", "alias-fresh", 0, 0.0005)
	stale := activeLocation("stale", "alias-stale", 0, 0.0005)
	stale.LastUpdate = time.Now().Add(-time.Hour)

	repo.EXPECT().FindActiveLocations(context.Background(), 1000).Return([]*entity.UserLocation{fresh, stale}, nil)

	candidates, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, 200, "")

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "fresh", candidates[0].UserID)
}

func TestFindWithinRadius_RejectsNonPositiveRadius(t *testing.T) {
	repo := mockRepo.NewMockLocationRepository(t)
	matcher := newTestMatcher(t, repo, 0)

	_, err := matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, 0, "")
	assert.Error(t, err)

	_, err = matcher.FindWithinRadius(context.Background(), orb.Point{0, 0}, -5, "")
	assert.Error(t, err)
}

var _ service.ProximityMatcher = (*haversineMatcher)(nil)
