// Package config loads problem parameters from yaml files and provides
// named presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lilvurtuzi/eulerlab/internal/ode"
)

const (
	DefaultK      = 0.1
	DefaultX0     = 0.0
	DefaultY0     = 1.0
	DefaultXFinal = 5.0
	DefaultH      = 0.1

	// Step sizes outside this range are accepted but warned about by the
	// front ends.
	RecommendedMinH = 0.001
	RecommendedMaxH = 1.0
)

type Config struct {
	K       float64 `yaml:"k"`
	X0      float64 `yaml:"x0"`
	Y0      float64 `yaml:"y0"`
	XFinal  float64 `yaml:"x_final"`
	H       float64 `yaml:"h"`
	DataDir string  `yaml:"data_dir"`
}

func Default() *Config {
	return &Config{
		K:       DefaultK,
		X0:      DefaultX0,
		Y0:      DefaultY0,
		XFinal:  DefaultXFinal,
		H:       DefaultH,
		DataDir: ".eulerlab",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// Params converts the config into a solver problem definition.
func (c *Config) Params() ode.Params {
	return ode.Params{K: c.K, X0: c.X0, Y0: c.Y0, XFinal: c.XFinal, H: c.H}
}
