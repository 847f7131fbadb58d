package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// FixedTariffConfig seeds a fixed tariff into the catalog at startup.
type FixedTariffConfig struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Config defines the desk configuration.
type Config struct {
	Currency             string              `yaml:"currency"`
	StatsIntervalSeconds int                 `yaml:"stats_interval_seconds"`
	ExportDir            string              `yaml:"export_dir"`
	FixedTariffs         []FixedTariffConfig `yaml:"fixed_tariffs"`
}

// Load reads the configuration from the yaml file named by ISPDESK_CONFIG,
// falling back to environment variables and defaults.
func Load() (Config, error) {
	cfg := Config{
		Currency:             getenvDefault("ISPDESK_CURRENCY", "USD"),
		StatsIntervalSeconds: getenvIntDefault("ISPDESK_STATS_INTERVAL_SECONDS", 3),
		ExportDir:            getenvDefault("ISPDESK_EXPORT_DIR", filepath.FromSlash("var/reports")),
	}

	if path := os.Getenv("ISPDESK_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.StatsIntervalSeconds <= 0 {
		cfg.StatsIntervalSeconds = 3
	}
	return cfg, nil
}

// StatsInterval returns the statistics recomputation period.
func (c Config) StatsInterval() time.Duration {
	return time.Duration(c.StatsIntervalSeconds) * time.Second
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
