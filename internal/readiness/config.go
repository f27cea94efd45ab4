// Package readiness predicts how a learner will perform on an upcoming
// assessment and turns the prediction into ranked remediation
// recommendations.
package readiness

// Config holds the prediction tunables. The weighting below reproduces the
// platform's observed behavior; it is a heuristic, not a calibrated model,
// so every constant is named here to make recalibration a config change.
type Config struct {
	// WindowDays is the trailing practice window feeding the prediction.
	WindowDays int

	// MasteryWeight scales the mean mastery score (0-100 scale).
	MasteryWeight float64

	// SuccessRateWeight scales the recent success rate (after x100).
	SuccessRateWeight float64

	// VolumePoints is the maximum contribution of practice volume.
	VolumePoints float64

	// VolumeSaturation is the session count at which the volume term
	// reaches VolumePoints.
	VolumeSaturation int

	// SuccessFloor is the minimum session score (0.0-1.0) that counts as
	// a successful practice.
	SuccessFloor float64

	// Confidence breakpoints (0-100 scale). Confidence is a step function
	// of practice count and never decreases as the count grows.
	ConfidenceHigh   float64
	ConfidenceMedium float64
	ConfidenceLow    float64
	HighCountFloor   int
	MediumCountFloor int

	// Readiness level thresholds on the predicted 0-100 score.
	ReadyAt         float64
	AlmostReadyAt   float64
	NeedsPracticeAt float64

	// Recommendation ranking.
	WeakThreshold      float64 // mastery below this is a weak area
	MaxRecommendations int
	RemediationMinutes int // fixed cost of one suggested practice block
}

// DefaultConfig returns the production weighting.
func DefaultConfig() Config {
	return Config{
		WindowDays:        30,
		MasteryWeight:     0.6,
		SuccessRateWeight: 0.3,
		VolumePoints:      10,
		VolumeSaturation:  10,
		SuccessFloor:      0.7,

		ConfidenceHigh:   80,
		ConfidenceMedium: 60,
		ConfidenceLow:    40,
		HighCountFloor:   5,
		MediumCountFloor: 3,

		ReadyAt:         80,
		AlmostReadyAt:   60,
		NeedsPracticeAt: 40,

		WeakThreshold:      60,
		MaxRecommendations: 3,
		RemediationMinutes: 15,
	}
}
