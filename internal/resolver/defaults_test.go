package resolver

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"boardscout/server/internal/models"
)

func TestComplete_FillsAbsentFields(t *testing.T) {
	// Setup
	c := NewCompleter(NewSeededSynth(1), true)
	in := models.Billboard{ID: 1, Location: "Mumbai", Price: 50000}

	// Test
	out := c.Complete(in)

	// Assert
	assert.Equal(t, "Static", out.Type)
	assert.Equal(t, "week", out.PriceUnit)
	assert.Equal(t, "South", out.FacingDirection)
	assert.Equal(t, "feet", out.Size.Unit)
	assert.Equal(t, 7, out.MinBookingDays)
	assert.Equal(t, "Billboard Media Ltd", out.Owner.Name)
	assert.Equal(t, "(022) 1234-5678", out.Owner.Phone)
	assert.Equal(t, "contact@billboardmedia.com", out.Owner.Email)
	assert.Equal(t, "Usually responds within 24 hours", out.Owner.Response)
	assert.Len(t, out.Features, 5)
	assert.Len(t, out.NearbyAttractions, 4)
	assert.NotNil(t, out.Images)
}

func TestComplete_PreservesPresentFields(t *testing.T) {
	// Setup
	c := NewCompleter(NewSeededSynth(1), true)
	in := models.Billboard{
		ID:               2,
		Type:             "Digital LED",
		PriceUnit:        "month",
		FacingDirection:  "North-East",
		MinBookingDays:   30,
		Views:            "500K daily",
		DailyImpressions: 250000,
		Owner:            models.Owner{Name: "Metro Ads", Phone: "x", Email: "y", Response: "z"},
		Features:         []string{"Digital display"},
	}

	// Test
	out := c.Complete(in)

	// Assert
	assert.Equal(t, "Digital LED", out.Type)
	assert.Equal(t, "month", out.PriceUnit)
	assert.Equal(t, "North-East", out.FacingDirection)
	assert.Equal(t, 30, out.MinBookingDays)
	assert.Equal(t, "500K daily", out.Views)
	assert.Equal(t, int64(250000), out.DailyImpressions)
	assert.Equal(t, "Metro Ads", out.Owner.Name)
	assert.Equal(t, []string{"Digital display"}, out.Features)
}

func TestComplete_DoesNotMutateInput(t *testing.T) {
	// Setup
	c := NewCompleter(NewSeededSynth(1), true)
	in := models.Billboard{ID: 3}

	// Test
	_ = c.Complete(in)

	// Assert
	assert.Empty(t, in.Type)
	assert.Empty(t, in.Owner.Name)
	assert.Nil(t, in.Features)
}

func TestComplete_IdempotentExceptTraffic(t *testing.T) {
	// Setup
	c := NewCompleter(NewSeededSynth(1), true)
	in := models.Billboard{ID: 4, Location: "Pune"}

	// Test: a completed record passed through again must not change
	once := c.Complete(in)
	twice := c.Complete(once)

	// Assert
	assert.Equal(t, once, twice)
}

func TestComplete_TrafficSynthesisDisabled(t *testing.T) {
	// Setup
	c := NewCompleter(NewSeededSynth(1), false)
	in := models.Billboard{ID: 5}

	// Test
	out := c.Complete(in)

	// Assert: traffic passes through empty, fixed defaults still apply
	assert.Empty(t, out.Views)
	assert.Zero(t, out.DailyImpressions)
	assert.Equal(t, "Static", out.Type)
	assert.Equal(t, "Billboard Media Ltd", out.Owner.Name)
}

func TestSynth_Ranges(t *testing.T) {
	// Setup
	s := NewSeededSynth(7)

	// Test
	for i := 0; i < 100; i++ {
		views := s.Views()
		impressions := s.Impressions()

		// Assert
		assert.True(t, strings.HasSuffix(views, "K daily"), views)
		n, err := strconv.Atoi(strings.TrimSuffix(views, "K daily"))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 999)
		assert.GreaterOrEqual(t, impressions, int64(100000))
		assert.LessOrEqual(t, impressions, int64(999999))
	}
}
