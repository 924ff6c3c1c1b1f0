package geo

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"boardscout/server/internal/models"
)

type stubStore struct {
	billboards []models.Billboard
	err        error
}

func (s *stubStore) ListBillboardsWithCoordinates(ctx context.Context) ([]models.Billboard, error) {
	return s.billboards, s.err
}

func newTestFinder(store CoordinateStore) *NearbyFinder {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewNearbyFinder(store, logger)
}

func TestFindNear_SortsByDistanceAndExcludesSelf(t *testing.T) {
	// Setup: Mumbai landmarks at known distances from CST
	ref := &models.Billboard{ID: 1, Latitude: 18.9398, Longitude: 72.8355}
	store := &stubStore{billboards: []models.Billboard{
		{ID: 1, Latitude: 18.9398, Longitude: 72.8355}, // the reference itself
		{ID: 2, Latitude: 19.0596, Longitude: 72.8295}, // Bandra, ~13km
		{ID: 3, Latitude: 18.9220, Longitude: 72.8347}, // Colaba, ~2km
	}}
	finder := newTestFinder(store)

	// Test
	nearby, err := finder.FindNear(context.Background(), ref, 20)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, nearby, 2)
	assert.Equal(t, int64(3), nearby[0].ID)
	assert.Equal(t, int64(2), nearby[1].ID)
	assert.Less(t, nearby[0].DistanceKM, nearby[1].DistanceKM)
}

func TestFindNear_RadiusCutoff(t *testing.T) {
	// Setup: Pune is ~120km from Mumbai CST
	ref := &models.Billboard{ID: 1, Latitude: 18.9398, Longitude: 72.8355}
	store := &stubStore{billboards: []models.Billboard{
		{ID: 2, Latitude: 18.5204, Longitude: 73.8567},
	}}
	finder := newTestFinder(store)

	// Test
	nearby, err := finder.FindNear(context.Background(), ref, 10)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestFindNear_StoreError(t *testing.T) {
	// Setup
	store := &stubStore{err: errors.New("db closed")}
	finder := newTestFinder(store)

	// Test
	nearby, err := finder.FindNear(context.Background(), &models.Billboard{ID: 1}, 5)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, nearby)
}
