package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"dcasim/internal/model"
)

// Simulation configures one DCA run.
type Simulation struct {
	Ticker             string  `yaml:"ticker"`
	Investment         float64 `yaml:"investment"`
	StartDate          string  `yaml:"start_date"` // YYYY-MM-DD
	Frequency          string  `yaml:"frequency"`  // daily, weekly, monthly
	CustomIntervalDays int     `yaml:"custom_interval_days"`
	Fee                float64 `yaml:"fee"`
}

// Params converts the block into engine parameters.
func (s *Simulation) Params() (model.ScheduleParams, error) {
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return model.ScheduleParams{}, fmt.Errorf("simulation %s: parse start_date: %w", s.Ticker, err)
	}
	return model.ScheduleParams{
		Investment:         s.Investment,
		StartDate:          start,
		Frequency:          model.Frequency(s.Frequency),
		CustomIntervalDays: s.CustomIntervalDays,
		Fee:                s.Fee,
	}, nil
}

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Source       string `yaml:"source"`        // "yahoo" (default) or "stooq"
		HistoryStart string `yaml:"history_start"` // YYYY-MM-DD
	} `yaml:"data_source"`
	Cache struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"cache"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy       string       `yaml:"proxy"`
	Simulations []Simulation `yaml:"simulations"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

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
	if v := os.Getenv("DATA_SOURCE"); v != "" {
		cfg.DataSource.Source = v
	}
	if v := os.Getenv("HISTORY_START"); v != "" {
		cfg.DataSource.HistoryStart = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Source == "" {
		cfg.DataSource.Source = "yahoo"
	}
	if cfg.DataSource.HistoryStart == "" {
		cfg.DataSource.HistoryStart = "2000-01-03"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 22 * * 1-5" // weekday evenings, after US close
	}

	return cfg, nil
}

// HistoryStart parses the configured history start date.
func (c *Config) HistoryStart() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.DataSource.HistoryStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse history_start: %w", err)
	}
	return t, nil
}

// Validate checks that the configuration describes at least one runnable
// simulation.
func (c *Config) Validate() error {
	if c.DataSource.Source != "yahoo" && c.DataSource.Source != "stooq" {
		return fmt.Errorf("data_source.source must be yahoo or stooq, got %q", c.DataSource.Source)
	}
	if _, err := c.HistoryStart(); err != nil {
		return err
	}
	if len(c.Simulations) == 0 {
		return fmt.Errorf("at least one simulation is required")
	}
	for i, s := range c.Simulations {
		if s.Ticker == "" {
			return fmt.Errorf("simulations[%d]: ticker is required", i)
		}
		if s.Investment <= 0 {
			return fmt.Errorf("simulations[%d] %s: investment must be positive", i, s.Ticker)
		}
		if s.Fee < 0 {
			return fmt.Errorf("simulations[%d] %s: fee must not be negative", i, s.Ticker)
		}
		if s.Fee >= s.Investment {
			return fmt.Errorf("simulations[%d] %s: fee %.2f leaves no net investment", i, s.Ticker, s.Fee)
		}
		if s.CustomIntervalDays < 0 {
			return fmt.Errorf("simulations[%d] %s: custom_interval_days must be positive", i, s.Ticker)
		}
		if s.CustomIntervalDays == 0 {
			switch model.Frequency(s.Frequency) {
			case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly:
			default:
				return fmt.Errorf("simulations[%d] %s: frequency %q (want daily, weekly, monthly or a custom interval)",
					i, s.Ticker, s.Frequency)
			}
		}
		if _, err := s.Params(); err != nil {
			return fmt.Errorf("simulations[%d]: %w", i, err)
		}
	}
	return nil
}
