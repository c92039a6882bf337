package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            int `yaml:"port"`
		ReadTimeoutSec  int `yaml:"readTimeoutSec"`
		WriteTimeoutSec int `yaml:"writeTimeoutSec"`
		IdleTimeoutSec  int `yaml:"idleTimeoutSec"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	Analysis struct {
		MaxThesisChars int `yaml:"maxThesisChars"`
	} `yaml:"analysis"`
}

// Default returns a config that works with zero setup.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeoutSec = 15
	cfg.Server.WriteTimeoutSec = 15
	cfg.Server.IdleTimeoutSec = 60
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Capacity = 30
	cfg.RateLimit.RefillRate = 1
	cfg.Analysis.MaxThesisChars = 1200
	return cfg
}

// Load reads the config.yaml at path, layering it over defaults.
// A missing file is not an error: this tool must run without setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
