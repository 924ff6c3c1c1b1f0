package geo

import (
	"context"
	"sort"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/sirupsen/logrus"

	"boardscout/server/internal/models"
)

// CoordinateStore lists billboards that carry usable coordinates.
type CoordinateStore interface {
	ListBillboardsWithCoordinates(ctx context.Context) ([]models.Billboard, error)
}

// NearbyBillboard is a billboard annotated with its distance from the
// reference point.
type NearbyBillboard struct {
	models.Billboard
	DistanceKM float64 `json:"distanceKm"`
}

type NearbyFinder struct {
	store  CoordinateStore
	logger *logrus.Logger
}

func NewNearbyFinder(store CoordinateStore, logger *logrus.Logger) *NearbyFinder {
	return &NearbyFinder{store: store, logger: logger}
}

// FindNear returns billboards within radiusKM of the reference billboard,
// nearest first. The reference billboard itself is excluded.
func (f *NearbyFinder) FindNear(ctx context.Context, ref *models.Billboard, radiusKM float64) ([]NearbyBillboard, error) {
	candidates, err := f.store.ListBillboardsWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	center := orb.Point{ref.Longitude, ref.Latitude}
	var nearby []NearbyBillboard
	for _, b := range candidates {
		if b.ID == ref.ID {
			continue
		}
		distKM := orbgeo.Distance(center, orb.Point{b.Longitude, b.Latitude}) / 1000
		if distKM <= radiusKM {
			nearby = append(nearby, NearbyBillboard{Billboard: b, DistanceKM: distKM})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKM < nearby[j].DistanceKM
	})

	f.logger.WithFields(logrus.Fields{
		"billboard_id": ref.ID,
		"radius_km":    radiusKM,
		"matches":      len(nearby),
	}).Debug("Proximity search complete")

	return nearby, nil
}
