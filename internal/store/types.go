package store

import (
	"context"
	"time"

	"github.com/edforge/readypath/internal/taxonomy"
)

// Assessment is an upcoming graded assessment and its target objective.
type Assessment struct {
	AssessmentID      string
	Title             string
	TargetObjectiveID string
	TargetCells       []string
}

// MasteryRecord is the latest mastery state for a (learner, objective) pair.
// Absence of a record means "0% mastery, zero history", never an error.
type MasteryRecord struct {
	LearnerID   string
	ObjectiveID string
	CellCode    string
	Score       float64 // 0-100
	Streak      int
	UpdatedAt   time.Time
}

// validate rejects out-of-range mastery data at the store boundary.
func (m *MasteryRecord) validate() error {
	if m.Score < 0 || m.Score > 100 {
		return &ErrInvalidRecord{Entity: "mastery", Reason: "score outside [0, 100]"}
	}
	if m.Streak < 0 {
		return &ErrInvalidRecord{Entity: "mastery", Reason: "negative streak"}
	}
	if !taxonomy.ValidCellCode(m.CellCode) {
		return &ErrInvalidRecord{Entity: "mastery", Reason: "unknown cell code " + m.CellCode}
	}
	return nil
}

// PracticeSession is one completed practice attempt. Immutable.
type PracticeSession struct {
	LearnerID   string
	ObjectiveID string
	Score       float64 // 0.0-1.0
	Timestamp   time.Time
}

func (p *PracticeSession) validate() error {
	if p.Score < 0 || p.Score > 1 {
		return &ErrInvalidRecord{Entity: "practice session", Reason: "score outside [0, 1]"}
	}
	return nil
}

// PredictionFactors are the inputs that contributed to a prediction.
type PredictionFactors struct {
	AvgMastery        float64 // 0-100
	RecentSuccessRate float64 // 0.0-1.0
	PracticeCount     int
	WeakObjectives    []string
}

// Prediction is the current readiness prediction for a (learner, assessment)
// pair. One row per pair; upserted on every run.
type Prediction struct {
	LearnerID      string
	AssessmentID   string
	PredictedScore float64 // 0.0-1.0
	Confidence     float64 // 0.0-1.0
	Level          string
	Factors        PredictionFactors
	Recommendation string
	PrepMinutes    int
	GeneratedAt    time.Time
}

// CheckConfig is a persisted readiness-check configuration.
type CheckConfig struct {
	CheckID       string
	LearnerID     string
	AssessmentID  string
	Questions     []CheckQuestion
	Difficulty    int
	TimeLimitSecs int
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// CheckQuestion is one diagnostic question on a check configuration.
type CheckQuestion struct {
	Text        string
	Choices     []string
	Answer      string
	Explanation string
	CellCode    string
	Difficulty  int
}

// QuestionEventData captures one question-bank LLM request for audit.
type QuestionEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
}

// AssessmentRepo resolves assessments by their caller-visible ID.
type AssessmentRepo interface {
	// Get returns the assessment, *ErrAssessmentNotFound if it does not
	// exist, or *ErrUnavailable on I/O failure.
	Get(ctx context.Context, assessmentID string) (*Assessment, error)
}

// MasteryRepo provides read access to mastery records. The engine never
// writes mastery; that belongs to the practice-completion flow.
type MasteryRepo interface {
	// Get returns the record for (learner, objective), or nil if none
	// exists. Absence is not an error.
	Get(ctx context.Context, learnerID, objectiveID string) (*MasteryRecord, error)

	// List returns all of a learner's mastery records, optionally filtered
	// to a single objective. Records are ordered by objective ID.
	List(ctx context.Context, learnerID, objectiveID string) ([]*MasteryRecord, error)
}

// PracticeRepo provides read access to practice sessions.
type PracticeRepo interface {
	// ListSessions returns the learner's sessions for an objective with
	// timestamp >= since, ordered oldest first.
	ListSessions(ctx context.Context, learnerID, objectiveID string, since time.Time) ([]*PracticeSession, error)
}

// PredictionRepo persists readiness predictions.
type PredictionRepo interface {
	// Upsert inserts or replaces the prediction keyed by
	// (learner_id, assessment_id). Last writer wins on a race.
	Upsert(ctx context.Context, p *Prediction) error

	// Get returns the current prediction for the pair, or nil if none.
	Get(ctx context.Context, learnerID, assessmentID string) (*Prediction, error)
}

// CheckRepo persists readiness-check configurations.
type CheckRepo interface {
	// Insert stores a new configuration and returns its check ID.
	Insert(ctx context.Context, cfg *CheckConfig) (string, error)
}

// QuestionEventRepo provides append access to question-bank audit events.
type QuestionEventRepo interface {
	// AppendQuestionEvent records a question-bank LLM call.
	AppendQuestionEvent(ctx context.Context, data QuestionEventData) error
}
