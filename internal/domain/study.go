package domain

import "time"

// SRSConfig holds scheduler parameters (pure domain type).
type SRSConfig struct {
	DefaultEaseFactor float64
	MinEaseFactor     float64
	MaxIntervalDays   int
	TargetRetention   float64
	// RecentHistorySize is how many latest reviews feed the memory-strength bonus and word stats.
	RecentHistorySize int
	// FastAnswerThreshold upgrades a perfect typed answer to easy when answered faster.
	FastAnswerThreshold time.Duration
	QueueDefaultLimit   int
	QueueMaxLimit       int
	// QueueScanLimit bounds how many due records are ranked per queue request.
	QueueScanLimit int
}

// AnswerConfig controls typed-answer grading.
type AnswerConfig struct {
	Strict          bool
	SpanishArticles bool
}
