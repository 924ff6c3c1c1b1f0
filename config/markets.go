package config

import "strings"

// Market represents a city the marketplace serves, with the map viewport the
// client should open on.
type Market struct {
	Name      string    `json:"name"`
	Center    []float64 `json:"center"`
	ZoomLevel int       `json:"zoom_level"`
}

// SupportedMarkets is a list of cities supported by the application
var SupportedMarkets = []Market{
	{
		Name:      "mumbai",
		Center:    []float64{19.0760, 72.8777},
		ZoomLevel: 12,
	},
	{
		Name:      "pune",
		Center:    []float64{18.5204, 73.8567},
		ZoomLevel: 12,
	},
	{
		Name:      "ahmednagar",
		Center:    []float64{19.0948, 74.7380},
		ZoomLevel: 13,
	},
	// Add more markets here as needed
}

// GetMarketNames returns a list of supported market names
func GetMarketNames() []string {
	names := make([]string, len(SupportedMarkets))
	for i, market := range SupportedMarkets {
		names[i] = market.Name
	}
	return names
}

// GetMarketByName returns a market configuration by name
func GetMarketByName(name string) *Market {
	normalized := NormalizeMarket(name)
	for _, market := range SupportedMarkets {
		if market.Name == normalized {
			return &market
		}
	}
	return nil
}

// NormalizeMarket converts a human-typed city name to its canonical form:
// lower case, apostrophes stripped, runs of spaces collapsed to hyphens.
func NormalizeMarket(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.Join(strings.Fields(s), "-")
	return strings.Trim(s, "-")
}
