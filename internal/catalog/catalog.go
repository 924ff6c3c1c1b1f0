// Package catalog holds the hand-authored demo billboards served when no
// stored record matches an identifier. It is injected into the resolver so
// production deployments can switch it off entirely.
package catalog

import (
	"strconv"
	"strings"

	"boardscout/server/internal/models"
)

// Catalog is the seed-data lookup the resolver consults after the store.
type Catalog interface {
	// FindByID returns the entry whose id renders to the identifier, or nil.
	FindByID(identifier string) *models.Billboard

	// MatchKeyword returns the first entry whose location equals a keyword
	// contained in the identifier, or nil.
	MatchKeyword(identifier string) *models.Billboard
}

// Disabled is a no-op catalog for deployments that must never serve demo data.
type Disabled struct{}

func (Disabled) FindByID(string) *models.Billboard     { return nil }
func (Disabled) MatchKeyword(string) *models.Billboard { return nil }

// Static serves the compiled-in demo set.
type Static struct {
	entries []models.Billboard
}

// NewStatic returns a catalog backed by the built-in demo billboards.
func NewStatic() *Static {
	return &Static{entries: demoBillboards}
}

func (s *Static) FindByID(identifier string) *models.Billboard {
	for i := range s.entries {
		if strconv.FormatInt(s.entries[i].ID, 10) == identifier {
			b := s.entries[i]
			return &b
		}
	}
	return nil
}

// keywords are matched in order; the first keyword found inside the
// identifier selects the first entry located there.
var keywords = []string{"pune", "nagar"}

func (s *Static) MatchKeyword(identifier string) *models.Billboard {
	lowered := strings.ToLower(identifier)
	for _, keyword := range keywords {
		if !strings.Contains(lowered, keyword) {
			continue
		}
		for i := range s.entries {
			if strings.ToLower(s.entries[i].Location) == keyword {
				b := s.entries[i]
				return &b
			}
		}
	}
	return nil
}
