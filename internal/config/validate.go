package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.SubmitRatePerMinute < 0 {
		return fmt.Errorf("server.submit_rate_per_minute must not be negative (got %d)", c.Server.SubmitRatePerMinute)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}

	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)", s.DefaultEaseFactor, s.MinEaseFactor)
	}
	if s.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", s.MaxIntervalDays)
	}
	if s.TargetRetention <= 0 || s.TargetRetention >= 1 {
		return fmt.Errorf("target_retention must be in (0, 1) (got %v)", s.TargetRetention)
	}
	if s.RecentHistorySize < 0 {
		return fmt.Errorf("recent_history_size must be >= 0 (got %d)", s.RecentHistorySize)
	}
	if s.FastAnswerThreshold < 0 {
		return fmt.Errorf("fast_answer_threshold must be >= 0 (got %v)", s.FastAnswerThreshold)
	}
	if s.QueueMaxLimit <= 0 {
		return fmt.Errorf("queue_max_limit must be > 0 (got %d)", s.QueueMaxLimit)
	}
	if s.QueueDefaultLimit <= 0 || s.QueueDefaultLimit > s.QueueMaxLimit {
		return fmt.Errorf("queue_default_limit must be in 1..queue_max_limit (got %d)", s.QueueDefaultLimit)
	}
	if s.QueueScanLimit < s.QueueMaxLimit {
		return fmt.Errorf("queue_scan_limit must be >= queue_max_limit (got %d)", s.QueueScanLimit)
	}
	return nil
}
