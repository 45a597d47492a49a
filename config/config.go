// Package config loads benchmark suite definitions from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odezoo/backend"
	"github.com/san-kum/odezoo/ode"
)

const DefaultEngine = "dense"

// Config describes an engine choice and a set of problem overrides.
type Config struct {
	Engine   string                   `yaml:"engine"`
	Seed     uint64                   `yaml:"seed"`
	Problems map[string]ProblemConfig `yaml:"problems"`
}

// ProblemConfig overrides a single problem's defaults. Nil fields leave
// the factory default in place.
type ProblemConfig struct {
	InitialValues []float64 `yaml:"initial_values"`
	TimeSpan      []float64 `yaml:"time_span"`
	Parameters    []float64 `yaml:"parameters"`
}

func DefaultConfig() *Config {
	return &Config{
		Engine:   DefaultEngine,
		Problems: make(map[string]ProblemConfig),
	}
}

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

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply selects the configured engine on a fresh registry.
func (c *Config) Apply(r *backend.Registry) error {
	engine := c.Engine
	if engine == "" {
		engine = DefaultEngine
	}
	return r.Select(engine)
}

// Options translates the overrides into factory options.
func (p ProblemConfig) Options() []ode.Option {
	var opts []ode.Option
	if p.InitialValues != nil {
		opts = append(opts, ode.WithInitialValues(p.InitialValues...))
	}
	if len(p.TimeSpan) == 2 {
		opts = append(opts, ode.WithTimeSpan(p.TimeSpan[0], p.TimeSpan[1]))
	}
	if p.Parameters != nil {
		opts = append(opts, ode.WithParameters(p.Parameters...))
	}
	return opts
}
