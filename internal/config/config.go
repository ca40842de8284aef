package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen         string   `yaml:"listen"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	DataSource struct {
		PriceBaseURL  string `yaml:"price_base_url"`
		GlobalBaseURL string `yaml:"global_base_url"`
		LookbackDays  int    `yaml:"lookback_days"`
	} `yaml:"data_source"`
	Analysis struct {
		ATHReference float64 `yaml:"ath_reference"`
	} `yaml:"analysis"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		HistoryFile string `yaml:"history_file"`
	} `yaml:"database"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Ticker struct {
		Enabled   bool   `yaml:"enabled"`
		StreamURL string `yaml:"stream_url"`
	} `yaml:"ticker"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Ticker.Enabled = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("PRICE_BASE_URL"); v != "" {
		cfg.DataSource.PriceBaseURL = v
	}
	if v := os.Getenv("GLOBAL_BASE_URL"); v != "" {
		cfg.DataSource.GlobalBaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("ATH_REFERENCE"); v != "" {
		if ath, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.ATHReference = ath
		}
	}
	if v := os.Getenv("TICKER_ENABLED"); v != "" {
		cfg.Ticker.Enabled = v == "true" || v == "1"
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.DataSource.LookbackDays == 0 {
		cfg.DataSource.LookbackDays = 500
	}
	if cfg.Analysis.ATHReference == 0 {
		cfg.Analysis.ATHReference = 73750
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 5 0 * * *"
	}
	if cfg.Database.SQLitePath == "" && cfg.Database.HistoryFile == "" {
		cfg.Database.SQLitePath = "data/cyclesentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields make sense.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.DataSource.LookbackDays <= 0 {
		return fmt.Errorf("data_source.lookback_days must be positive")
	}
	if c.Analysis.ATHReference <= 0 {
		return fmt.Errorf("analysis.ath_reference must be positive")
	}
	return nil
}
