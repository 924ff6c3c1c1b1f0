package resolver

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"boardscout/server/internal/catalog"
	"boardscout/server/internal/database"
	"boardscout/server/internal/models"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetBillboardByID(ctx context.Context, id int64) (*models.Billboard, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) FindBillboardByLocation(ctx context.Context, text string) (*models.Billboard, error) {
	args := m.Called(ctx, text)
	if b := args.Get(0); b != nil {
		return b.(*models.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) FindBillboardAcrossFields(ctx context.Context, text string) (*models.Billboard, error) {
	args := m.Called(ctx, text)
	if b := args.Get(0); b != nil {
		return b.(*models.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) FindAnyBillboard(ctx context.Context) (*models.Billboard, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.(*models.Billboard), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestResolver(store Store, cat catalog.Catalog) *Resolver {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	completer := NewCompleter(NewSeededSynth(1), true)
	return New(store, cat, completer, logger, 5*time.Second)
}

func TestResolve_ExactKey(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("GetBillboardByID", mock.Anything, int64(42)).Return(&models.Billboard{ID: 42, Location: "Mumbai"}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "42")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "FindBillboardByLocation", mock.Anything, mock.Anything)
}

func TestResolve_MalformedKeySkipsExactLookup(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "andheri").Return(&models.Billboard{ID: 7, Location: "Andheri West"}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "andheri")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(7), b.ID)
	store.AssertNotCalled(t, "GetBillboardByID", mock.Anything, mock.Anything)
}

func TestResolve_FallsThroughToMultiField(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "media ltd").Return(nil, database.ErrNotFound).Once()
	store.On("FindBillboardAcrossFields", mock.Anything, "media ltd").Return(&models.Billboard{ID: 3}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "media ltd")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(3), b.ID)
	store.AssertExpectations(t)
}

func TestResolve_CatalogKeywordOnEmptyStore(t *testing.T) {
	// Setup: every store strategy misses, the seed catalog matches "pune"
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "pune").Return(nil, database.ErrNotFound).Once()
	store.On("FindBillboardAcrossFields", mock.Anything, "pune").Return(nil, database.ErrNotFound).Once()
	r := newTestResolver(store, catalog.NewStatic())

	// Test
	b, err := r.Resolve(context.Background(), "pune")

	// Assert
	assert.NoError(t, err)
	assert.Contains(t, b.Address, "Pune")
	store.AssertNotCalled(t, "FindAnyBillboard", mock.Anything)
}

func TestResolve_AnyRecordLastResort(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "zzz").Return(nil, database.ErrNotFound).Once()
	store.On("FindBillboardAcrossFields", mock.Anything, "zzz").Return(nil, database.ErrNotFound).Once()
	store.On("FindAnyBillboard", mock.Anything).Return(&models.Billboard{ID: 1}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "zzz")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	store.AssertExpectations(t)
}

func TestResolve_NotFoundAfterAllStrategies(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "zzz").Return(nil, database.ErrNotFound).Once()
	store.On("FindBillboardAcrossFields", mock.Anything, "zzz").Return(nil, database.ErrNotFound).Once()
	store.On("FindAnyBillboard", mock.Anything).Return(nil, database.ErrNotFound).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "zzz")

	// Assert
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_StoreFailureAbortsChain(t *testing.T) {
	// Setup
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "andheri").Return(nil, errors.New("disk I/O error")).Once()
	r := newTestResolver(store, catalog.NewStatic())

	// Test
	b, err := r.Resolve(context.Background(), "andheri")

	// Assert
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	store.AssertNotCalled(t, "FindBillboardAcrossFields", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "FindAnyBillboard", mock.Anything)
}

func TestResolve_TimeoutCountsAsMiss(t *testing.T) {
	// Setup: location lookup hangs past the strategy timeout, multi-field hits
	store := &MockStore{}
	store.On("FindBillboardByLocation", mock.Anything, "slow").Return(nil, context.DeadlineExceeded).Once()
	store.On("FindBillboardAcrossFields", mock.Anything, "slow").Return(&models.Billboard{ID: 9}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "slow")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(9), b.ID)
	store.AssertExpectations(t)
}

func TestResolve_ResultIsCompleted(t *testing.T) {
	// Setup: stored record has no owner and no features
	store := &MockStore{}
	store.On("GetBillboardByID", mock.Anything, int64(5)).Return(&models.Billboard{ID: 5, Location: "Pune"}, nil).Once()
	r := newTestResolver(store, catalog.Disabled{})

	// Test
	b, err := r.Resolve(context.Background(), "5")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Billboard Media Ltd", b.Owner.Name)
	assert.Len(t, b.Features, 5)
	assert.Len(t, b.NearbyAttractions, 4)
	assert.NotEmpty(t, b.Views)
}
