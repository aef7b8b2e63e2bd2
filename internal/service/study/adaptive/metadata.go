package adaptive

import "github.com/K-svg-lab/palabra-sub002/internal/domain"

// NewMetadata returns the initial metadata for a word that has no adaptive
// state yet: an empty curve, full predicted retention and neutral difficulty.
func NewMetadata() domain.AdvancedSRMetadata {
	return domain.AdvancedSRMetadata{
		ForgettingCurve:      []domain.ForgettingCurvePoint{},
		PredictedRetention:   1,
		DifficultyAdjustment: neutralDifficulty,
	}
}
