package config

import (
	"time"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	Answer   AnswerConfig   `yaml:"answer"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// SubmitRatePerMinute caps review submissions per learner; 0 disables it.
	SubmitRatePerMinute int `yaml:"submit_rate_per_minute" env:"SERVER_SUBMIT_RATE_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds spaced-repetition scheduler parameters.
type SRSConfig struct {
	DefaultEaseFactor   float64       `yaml:"default_ease_factor"   env:"SRS_DEFAULT_EASE"          env-default:"2.5"`
	MinEaseFactor       float64       `yaml:"min_ease_factor"       env:"SRS_MIN_EASE"              env-default:"1.3"`
	MaxIntervalDays     int           `yaml:"max_interval_days"     env:"SRS_MAX_INTERVAL"          env-default:"365"`
	TargetRetention     float64       `yaml:"target_retention"      env:"SRS_TARGET_RETENTION"      env-default:"0.9"`
	RecentHistorySize   int           `yaml:"recent_history_size"   env:"SRS_RECENT_HISTORY_SIZE"   env-default:"10"`
	FastAnswerThreshold time.Duration `yaml:"fast_answer_threshold" env:"SRS_FAST_ANSWER_THRESHOLD" env-default:"5s"`
	QueueDefaultLimit   int           `yaml:"queue_default_limit"   env:"SRS_QUEUE_DEFAULT_LIMIT"   env-default:"20"`
	QueueMaxLimit       int           `yaml:"queue_max_limit"       env:"SRS_QUEUE_MAX_LIMIT"       env-default:"200"`
	QueueScanLimit      int           `yaml:"queue_scan_limit"      env:"SRS_QUEUE_SCAN_LIMIT"      env-default:"500"`
}

// AnswerConfig holds typed-answer checking settings.
type AnswerConfig struct {
	Strict          bool `yaml:"strict"           env:"ANSWER_STRICT"           env-default:"false"`
	SpanishArticles bool `yaml:"spanish_articles" env:"ANSWER_SPANISH_ARTICLES" env-default:"true"`
}

// ToDomain converts the scheduler section to the service-level settings.
func (s SRSConfig) ToDomain() domain.SRSConfig {
	return domain.SRSConfig{
		DefaultEaseFactor:   s.DefaultEaseFactor,
		MinEaseFactor:       s.MinEaseFactor,
		MaxIntervalDays:     s.MaxIntervalDays,
		TargetRetention:     s.TargetRetention,
		RecentHistorySize:   s.RecentHistorySize,
		FastAnswerThreshold: s.FastAnswerThreshold,
		QueueDefaultLimit:   s.QueueDefaultLimit,
		QueueMaxLimit:       s.QueueMaxLimit,
		QueueScanLimit:      s.QueueScanLimit,
	}
}

// ToDomain converts the answer section to the service-level settings.
func (a AnswerConfig) ToDomain() domain.AnswerConfig {
	return domain.AnswerConfig{
		Strict:          a.Strict,
		SpanishArticles: a.SpanishArticles,
	}
}
