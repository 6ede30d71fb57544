package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for the CLI and daemon.
type Config struct {
	AttestorURL     string `yaml:"attestorUrl"`
	IntervalSeconds int    `yaml:"intervalSeconds"`
	DeviceFile      string `yaml:"deviceFile"`
	Sensor          string `yaml:"sensor"`
	MetricsAddr     string `yaml:"metricsAddr"`

	// Passphrase seals the identity record on disk when set. It is taken
	// from flags or the environment only, never from the config file.
	Passphrase string `yaml:"-"`
}

// DefaultConfig mirrors the defaults of the reference deployment.
func DefaultConfig() Config {
	return Config{
		AttestorURL:     "http://127.0.0.1:8001",
		IntervalSeconds: 10,
		DeviceFile:      defaultDeviceFile(),
		Sensor:          "mock",
	}
}

func defaultDeviceFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lcore_device.json"
	}
	return filepath.Join(home, ".lcore_device.json")
}

// Interval returns the submission interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// LoadConfig builds the effective config: defaults, then the YAML file at
// path (if given), then LCORE_* environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.IntervalSeconds <= 0 {
		return Config{}, fmt.Errorf("config: intervalSeconds must be positive, got %d", cfg.IntervalSeconds)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LCORE_ATTESTOR_URL"); v != "" {
		cfg.AttestorURL = v
	}
	if v := os.Getenv("LCORE_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IntervalSeconds = n
		}
	}
	if v := os.Getenv("LCORE_DEVICE_FILE"); v != "" {
		cfg.DeviceFile = v
	}
	if v := os.Getenv("LCORE_SENSOR"); v != "" {
		cfg.Sensor = v
	}
	if v := os.Getenv("LCORE_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("LCORE_PASSPHRASE"); v != "" {
		cfg.Passphrase = v
	}
}
