// Package config loads kodept's configuration: built-in defaults,
// overlaid by kodept.yaml, overlaid by .env/process environment (spec
// §4.7). No field is required — a bare invocation with no config file at
// all gets a usable Config.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the driver and CLI consult.
type Config struct {
	LogLevel           string   `yaml:"log_level"`
	MaxParallelism     int      `yaml:"max_parallelism"`
	Passes             []string `yaml:"passes"`
	EnabledDiagnostics []string `yaml:"enabled_diagnostics"`
}

// Default returns the zero-config baseline: info-level logging, one
// worker per CPU, and no pass list or diagnostic list set.
func Default() Config {
	return Config{
		LogLevel:       "info",
		MaxParallelism: runtime.NumCPU(),
	}
}

// Load reads path (kodept.yaml) if present, then applies a .env file (if
// present in the working directory) and process environment overrides on
// top. A missing yaml file or .env file is not an error; a malformed one
// is.
func Load(path string) (Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	// godotenv.Load populates process env from .env without overwriting
	// variables already set; a missing .env is silently ignored, the same
	// zero-config-friendly posture as the yaml file above.
	_ = godotenv.Load()
	applyEnvOverrides(&cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("KODEPT_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("KODEPT_MAX_PARALLELISM"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxParallelism = n
		}
	}
}
