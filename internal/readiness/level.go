package readiness

// Level is the categorical readiness bucket derived from a predicted score.
type Level string

const (
	LevelNotReady      Level = "not_ready"
	LevelNeedsPractice Level = "needs_practice"
	LevelAlmostReady   Level = "almost_ready"
	LevelReady         Level = "ready"
)

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelNotReady:
		return "Not ready"
	case LevelNeedsPractice:
		return "Needs practice"
	case LevelAlmostReady:
		return "Almost ready"
	case LevelReady:
		return "Ready"
	default:
		return "Unknown"
	}
}

// levelFor buckets a predicted score (0-100 scale) by the configured
// thresholds. Thresholds are inclusive: a score of exactly ReadyAt is ready.
func (c Config) levelFor(score float64) Level {
	switch {
	case score >= c.ReadyAt:
		return LevelReady
	case score >= c.AlmostReadyAt:
		return LevelAlmostReady
	case score >= c.NeedsPracticeAt:
		return LevelNeedsPractice
	default:
		return LevelNotReady
	}
}
