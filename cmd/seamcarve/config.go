package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds settings that may come from a YAML file. Command-line flags
// override any value set here.
//
// Example file:
//
//	workers: 4
//	verbose: true
//	jpeg_quality: 90
type Config struct {
	Workers     int  `yaml:"workers"`
	Verbose     bool `yaml:"verbose"`
	JPEGQuality int  `yaml:"jpeg_quality"`
}

// defaultConfig returns the settings used when no file is given.
func defaultConfig() Config {
	return Config{
		Workers:     1,
		JPEGQuality: 95,
	}
}

// loadConfig reads path on top of defaultConfig. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return cfg, fmt.Errorf("config %s: jpeg_quality %d outside 1..100", path, cfg.JPEGQuality)
	}

	return cfg, nil
}
