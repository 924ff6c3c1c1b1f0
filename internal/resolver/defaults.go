package resolver

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"boardscout/server/internal/models"
)

// Placeholder owner contact used when a listing was stored without one.
const (
	defaultOwnerName     = "Billboard Media Ltd"
	defaultOwnerPhone    = "(022) 1234-5678"
	defaultOwnerEmail    = "contact@billboardmedia.com"
	defaultOwnerResponse = "Usually responds within 24 hours"
)

const (
	defaultType            = "Static"
	defaultPriceUnit       = "week"
	defaultFacingDirection = "South"
	defaultSizeUnit        = "feet"
	defaultMinBookingDays  = 7
)

var defaultFeatures = []string{
	"Illuminated 24/7",
	"Premium vinyl printing",
	"High visibility from multiple angles",
	"Weather resistant",
	"Long-term discounts available",
}

var defaultAttractions = []string{
	"Shopping District",
	"Business Center",
	"Railway Station",
	"Major Highway",
}

// Synth generates display values for traffic fields a listing was stored
// without. It is injectable so tests can pin the source.
type Synth struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSynth() *Synth {
	return &Synth{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSynth returns a synth with a fixed seed.
func NewSeededSynth(seed int64) *Synth {
	return &Synth{r: rand.New(rand.NewSource(seed))}
}

// Views returns a daily-traffic descriptor of the form "<100-999>K daily".
func (s *Synth) Views() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%dK daily", s.r.Intn(900)+100)
}

// Impressions returns a daily-impression count in [100000, 999999].
func (s *Synth) Impressions() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(s.r.Intn(900000) + 100000)
}

// Pair returns matching views and impressions values for write-time
// defaulting and the traffic backfill.
func (s *Synth) Pair() (string, int64) {
	return s.Views(), s.Impressions()
}

// Completer fills absent optional fields of a billboard so every record
// handed to a client satisfies the full display schema. Present values are
// never overwritten.
type Completer struct {
	synth *Synth

	// SynthesizeTraffic controls whether missing views/impressions are
	// invented at read time. When off, those fields pass through as stored.
	SynthesizeTraffic bool
}

func NewCompleter(synth *Synth, synthesizeTraffic bool) *Completer {
	return &Completer{synth: synth, SynthesizeTraffic: synthesizeTraffic}
}

// Complete returns a copy of b with every optional field populated. It never
// fails and never mutates its input.
func (c *Completer) Complete(b models.Billboard) models.Billboard {
	if b.Views == "" && c.SynthesizeTraffic {
		b.Views = c.synth.Views()
	}
	if b.DailyImpressions == 0 && c.SynthesizeTraffic {
		b.DailyImpressions = c.synth.Impressions()
	}
	if b.Type == "" {
		b.Type = defaultType
	}
	if b.MinBookingDays == 0 {
		b.MinBookingDays = defaultMinBookingDays
	}
	if b.FacingDirection == "" {
		b.FacingDirection = defaultFacingDirection
	}
	if b.PriceUnit == "" {
		b.PriceUnit = defaultPriceUnit
	}
	if b.Size.Unit == "" {
		b.Size.Unit = defaultSizeUnit
	}

	if b.Owner.Name == "" {
		b.Owner.Name = defaultOwnerName
	}
	if b.Owner.Phone == "" {
		b.Owner.Phone = defaultOwnerPhone
	}
	if b.Owner.Email == "" {
		b.Owner.Email = defaultOwnerEmail
	}
	if b.Owner.Response == "" {
		b.Owner.Response = defaultOwnerResponse
	}

	if len(b.Features) == 0 {
		b.Features = append([]string(nil), defaultFeatures...)
	}
	if len(b.NearbyAttractions) == 0 {
		b.NearbyAttractions = append([]string(nil), defaultAttractions...)
	}
	if b.Images == nil {
		b.Images = []string{}
	}

	return b
}
