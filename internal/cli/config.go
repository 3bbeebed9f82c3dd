package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds defaults that can be supplied through a TOML file instead of
// flags, e.g. for a manga workflow that always reads right to left:
//
//	right_to_left = true
//	spanning_ratio = 0.6
//	gap_factor = 0.5
//	search_zone = 0.25
//	padding = 5
type Config struct {
	RightToLeft   bool    `toml:"right_to_left"`
	SpanningRatio float64 `toml:"spanning_ratio"`
	GapFactor     float64 `toml:"gap_factor"`
	SearchZone    float64 `toml:"search_zone"`
	Padding       int     `toml:"padding"`
}

// defaultConfig mirrors the library defaults.
func defaultConfig() Config {
	return Config{
		RightToLeft:   false,
		SpanningRatio: 0.6,
		GapFactor:     0.5,
		SearchZone:    0.25,
		Padding:       5,
	}
}

// loadConfig reads a TOML config file, returning defaults when no path is
// given. Values absent from the file keep their defaults.
func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config, nil
}
