package adaptive

import (
	"math"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	baselineAnswerTimeMs = 5000.0

	slowAnswerRatio     = 1.5
	fastAnswerRatio     = 0.7
	slowAnswerFactor    = 0.8
	fastAnswerFactor    = 1.2
	inconsistencyCV     = 0.5
	inconsistencyFactor = 0.9
	lowAccuracy         = 0.6
	highAccuracy        = 0.9
	lowAccuracyFactor   = 0.7
	highAccuracyFactor  = 1.3
	minDifficultyFactor = 0.5
	maxDifficultyFactor = 2.0
	neutralDifficulty   = 1.0
)

// DifficultyAdjustment computes the per-word interval multiplier from answer
// latency, latency consistency and accuracy. Values below 1 shorten intervals
// for hard words, values above 1 stretch them for easy ones. The result is
// always within [0.5, 2.0].
func DifficultyAdjustment(review domain.ReviewRecord, meta domain.AdvancedSRMetadata) float64 {
	adj := neutralDifficulty

	avg := meta.AvgTimeToAnswerMs
	if avg > 0 && !math.IsInf(avg, 0) {
		switch ratio := avg / baselineAnswerTimeMs; {
		case ratio > slowAnswerRatio:
			adj *= slowAnswerFactor
		case ratio < fastAnswerRatio:
			adj *= fastAnswerFactor
		}

		if std := meta.StdDevTimeToAnswerMs; std > 0 && std/avg > inconsistencyCV {
			adj *= inconsistencyFactor
		}
	}

	switch accuracy := review.Accuracy(defaultAccuracy); {
	case accuracy < lowAccuracy:
		adj *= lowAccuracyFactor
	case accuracy > highAccuracy:
		adj *= highAccuracyFactor
	}

	return clampDifficulty(adj)
}

func clampDifficulty(v float64) float64 {
	if math.IsNaN(v) {
		return neutralDifficulty
	}
	return math.Min(math.Max(v, minDifficultyFactor), maxDifficultyFactor)
}
