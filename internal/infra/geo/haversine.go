// Package geo implements proximity matching over the location directory
// with a bounded linear scan and great-circle distance.
package geo

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const earthRadiusMeters = 6371000

type haversineMatcher struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
	maxScan      int
	maxAge       time.Duration
	now          func() time.Time
}

// NewHaversineMatcher creates the default ProximityMatcher: a linear scan of
// the active directory capped at cfg.Alert.MaxScan entries. The cap trades
// completeness for bounded work; replacing this implementation with a
// store-native geo index is the intended scaling path.
func NewHaversineMatcher(locationRepo repository.LocationRepository, cfg *config.Config, logger *slog.Logger) service.ProximityMatcher {
	return &haversineMatcher{
		locationRepo: locationRepo,
		logger:       logger,
		maxScan:      cfg.Alert.MaxScan,
		maxAge:       cfg.Alert.LocationMaxAge,
		now:          time.Now,
	}
}

// FindWithinRadius filters active users into a distance-sorted candidate
// list. A candidate qualifies when it is active, has coordinates, carries a
// non-empty external id, is not the excluded sender, and lies within
// radiusMeters of center (boundary inclusive). Inclusion is tested at full
// precision; the reported distance is rounded to 2 decimal places.
func (m *haversineMatcher) FindWithinRadius(ctx context.Context, center orb.Point, radiusMeters float64, excludeUserID string) ([]*service.Candidate, error) {
	if radiusMeters <= 0 {
		return nil, errors.Errorf("radius must be positive, got %f", radiusMeters)
	}

	locations, err := m.locationRepo.FindActiveLocations(ctx, m.maxScan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan active locations")
	}
	if len(locations) == m.maxScan {
		m.logger.Debug("Directory scan truncated at cap",
			slog.Int("maxScan", m.maxScan),
		)
	}

	var cutoff time.Time
	if m.maxAge > 0 {
		cutoff = m.now().Add(-m.maxAge)
	}

	candidates := make([]*service.Candidate, 0, len(locations))
	for _, loc := range locations {
		if !m.qualifies(loc, excludeUserID, cutoff) {
			continue
		}

		distance := Haversine(center.Lat(), center.Lon(), loc.Latitude, loc.Longitude)
		if distance > radiusMeters {
			continue
		}

		candidates = append(candidates, &service.Candidate{
			UserID:         loc.UserID,
			ExternalID:     loc.ExternalID,
			DistanceMeters: distance,
		})
	}

	// Sort on the full-precision distance; stable so equal distances keep
	// the directory's enumeration order. Rounding happens after, so
	// sub-centimeter differences still decide the order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})
	for _, candidate := range candidates {
		candidate.DistanceMeters = math.Round(candidate.DistanceMeters*100) / 100
	}

	return candidates, nil
}

func (m *haversineMatcher) qualifies(loc *entity.UserLocation, excludeUserID string, cutoff time.Time) bool {
	if !loc.Active || !loc.HasCoordinates() || loc.ExternalID == "" {
		return false
	}
	if excludeUserID != "" && loc.UserID == excludeUserID {
		return false
	}
	if !cutoff.IsZero() && loc.LastUpdate.Before(cutoff) {
		return false
	}

	return true
}

// Haversine returns the great-circle distance in meters between two
// coordinate pairs given in decimal degrees, on a sphere of radius
// 6,371,000 m.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	deltaPhi := toRad(lat2 - lat1)
	deltaLambda := toRad(lon2 - lon1)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
