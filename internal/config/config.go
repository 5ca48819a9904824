// Package config loads and saves the YAML-backed configuration for a
// lattelab run: lattice dimensions, viscosity, thread policy, export
// cadence, and which built-in scenario to run.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultNx          = 100
	DefaultNy          = 100
	DefaultNu          = 0.05
	DefaultTimesteps   = 1000
	DefaultExportEvery = 100
)

// Config is the on-disk shape of a lattelab run configuration.
type Config struct {
	Nx          int     `yaml:"nx"`
	Ny          int     `yaml:"ny"`
	Nu          float64 `yaml:"nu"`
	Threads     int     `yaml:"threads"`
	Timesteps   int     `yaml:"timesteps"`
	ExportEvery uint    `yaml:"export_every"`
	ExportDir   string  `yaml:"export_dir"`
	Scenario    string  `yaml:"scenario"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Nx:          DefaultNx,
		Ny:          DefaultNy,
		Nu:          DefaultNu,
		Threads:     0,
		Timesteps:   DefaultTimesteps,
		ExportEvery: DefaultExportEvery,
		ExportDir:   "exports",
		Scenario:    "lid-driven-cavity",
	}
}

// Load reads and parses a YAML config file at path, starting from
// DefaultConfig so unspecified fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
