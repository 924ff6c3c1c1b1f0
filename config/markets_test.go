package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMarketNames(t *testing.T) {
	names := GetMarketNames()

	assert.Equal(t, []string{"mumbai", "pune", "ahmednagar"}, names)
}

func TestGetMarketByName(t *testing.T) {
	m := GetMarketByName("Pune")
	require.NotNil(t, m)
	assert.Equal(t, "pune", m.Name)
	assert.Equal(t, 12, m.ZoomLevel)

	assert.Nil(t, GetMarketByName("delhi"))
}

func TestNormalizeMarket(t *testing.T) {
	cases := map[string]string{
		"Mumbai":       "mumbai",
		"  Pune  ":     "pune",
		"Navi Mumbai":  "navi-mumbai",
		"D'Souza Town": "dsouza-town",
		"New   Delhi":  "new-delhi",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeMarket(in), "input %q", in)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5250", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Resolver.StrategyTimeout)
	assert.True(t, cfg.Resolver.EnableSeedCatalog)
	assert.True(t, cfg.Resolver.CompleteOnRead)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 100, cfg.BatchImport.MaxBatchSize)
	assert.False(t, cfg.Telegram.Enabled)
}
