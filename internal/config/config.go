// Package config loads solver settings from a JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/nishaq503/MergeSAT/pkg/sat"
)

// Config carries the tunables of a solver run.
type Config struct {
	Solver       string `mapstructure:"solver"`
	BatchCeiling int    `mapstructure:"batchCeiling"`
	Seed         int64  `mapstructure:"seed"`
	Verbose      bool   `mapstructure:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver:       "merge",
		BatchCeiling: sat.DefaultBatchCeiling,
	}
}

// Load reads a JSON config file and overlays it on the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %v", path, err)
	}

	config := Default()
	if err := mapstructure.Decode(raw, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file %v: %v", path, err)
	}
	if config.BatchCeiling <= 0 {
		return Config{}, fmt.Errorf("batchCeiling must be positive, got %v", config.BatchCeiling)
	}
	return config, nil
}
