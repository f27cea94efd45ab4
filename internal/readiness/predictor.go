package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edforge/readypath/internal/store"
)

// ErrUnresolvedTarget indicates the assessment's target objective could not
// be resolved. The whole prediction aborts; nothing is persisted.
type ErrUnresolvedTarget struct {
	AssessmentID string
	Err          error
}

func (e *ErrUnresolvedTarget) Error() string {
	return fmt.Sprintf("unresolved assessment target for %q: %v", e.AssessmentID, e.Err)
}

func (e *ErrUnresolvedTarget) Unwrap() error { return e.Err }

// Predictor produces readiness predictions for (learner, assessment) pairs.
// Each call is a single bounded computation: read current store state,
// compute, upsert once. There is no shared mutable state between calls.
type Predictor struct {
	cfg         Config
	assessments store.AssessmentRepo
	mastery     store.MasteryRepo
	sessions    store.PracticeRepo
	predictions store.PredictionRepo

	// Now is swappable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewPredictor creates a Predictor over the given repositories.
func NewPredictor(cfg Config, assessments store.AssessmentRepo, mastery store.MasteryRepo, sessions store.PracticeRepo, predictions store.PredictionRepo) *Predictor {
	return &Predictor{
		cfg:         cfg,
		assessments: assessments,
		mastery:     mastery,
		sessions:    sessions,
		predictions: predictions,
		Now:         time.Now,
	}
}

// Predict computes, persists, and returns the readiness prediction for a
// (learner, assessment) pair. The persisted row is upserted on the
// (learner_id, assessment_id) conflict key, so repeat calls replace rather
// than duplicate.
//
// Failure policy: an unresolvable assessment aborts with
// *ErrUnresolvedTarget and no write. Mastery or practice lookups that fail
// degrade to empty defaults instead, because a conservative low-confidence
// prediction is more useful than none.
func (p *Predictor) Predict(ctx context.Context, learnerID, assessmentID string) (*store.Prediction, error) {
	assessment, err := p.assessments.Get(ctx, assessmentID)
	if err != nil {
		var notFound *store.ErrAssessmentNotFound
		if errors.As(err, &notFound) {
			return nil, &ErrUnresolvedTarget{AssessmentID: assessmentID, Err: err}
		}
		return nil, err
	}

	records := p.targetMastery(ctx, learnerID, assessment)

	avgMastery := 0.0
	if len(records) > 0 {
		for _, r := range records {
			avgMastery += r.Score
		}
		avgMastery /= float64(len(records))
	}

	recentRate, practiceCount := p.recentPractice(ctx, learnerID, assessment.TargetObjectiveID)

	predicted := p.cfg.MasteryWeight*avgMastery +
		p.cfg.SuccessRateWeight*recentRate*100 +
		p.cfg.VolumePoints*volumeFactor(practiceCount, p.cfg.VolumeSaturation)
	predicted = clamp(predicted, 0, 100)

	confidence := clamp(p.confidenceFor(practiceCount), 0, 100)
	level := p.cfg.levelFor(predicted)

	recs := p.cfg.rankWeakAreas(records)
	weakIDs := make([]string, len(recs))
	for i, r := range recs {
		weakIDs[i] = r.ObjectiveID
	}

	prediction := &store.Prediction{
		LearnerID:      learnerID,
		AssessmentID:   assessmentID,
		PredictedScore: predicted / 100,
		Confidence:     confidence / 100,
		Level:          string(level),
		Factors: store.PredictionFactors{
			AvgMastery:        avgMastery,
			RecentSuccessRate: recentRate,
			PracticeCount:     practiceCount,
			WeakObjectives:    weakIDs,
		},
		Recommendation: recommendationText(recs, level),
		PrepMinutes:    prepMinutes(recs),
		GeneratedAt:    p.Now().UTC(),
	}

	if err := p.predictions.Upsert(ctx, prediction); err != nil {
		return nil, err
	}
	return prediction, nil
}

// Recommend re-ranks the learner's weak areas for an assessment without
// persisting anything.
func (p *Predictor) Recommend(ctx context.Context, learnerID, assessmentID string) ([]Recommendation, error) {
	assessment, err := p.assessments.Get(ctx, assessmentID)
	if err != nil {
		var notFound *store.ErrAssessmentNotFound
		if errors.As(err, &notFound) {
			return nil, &ErrUnresolvedTarget{AssessmentID: assessmentID, Err: err}
		}
		return nil, err
	}
	return p.cfg.rankWeakAreas(p.targetMastery(ctx, learnerID, assessment)), nil
}

// targetMastery returns the learner's mastery records for the assessment's
// target cell set. A failed lookup degrades to no records.
func (p *Predictor) targetMastery(ctx context.Context, learnerID string, assessment *store.Assessment) []*store.MasteryRecord {
	if len(assessment.TargetCells) == 0 {
		records, err := p.mastery.List(ctx, learnerID, assessment.TargetObjectiveID)
		if err != nil {
			return nil
		}
		return records
	}

	all, err := p.mastery.List(ctx, learnerID, "")
	if err != nil {
		return nil
	}
	targets := make(map[string]bool, len(assessment.TargetCells))
	for _, code := range assessment.TargetCells {
		targets[code] = true
	}
	var records []*store.MasteryRecord
	for _, r := range all {
		if targets[r.CellCode] {
			records = append(records, r)
		}
	}
	return records
}

// recentPractice returns the success rate and session count for the
// trailing window. A failed lookup degrades to zero history.
func (p *Predictor) recentPractice(ctx context.Context, learnerID, objectiveID string) (rate float64, count int) {
	since := p.Now().UTC().AddDate(0, 0, -p.cfg.WindowDays)
	sessions, err := p.sessions.ListSessions(ctx, learnerID, objectiveID, since)
	if err != nil || len(sessions) == 0 {
		return 0, 0
	}

	successes := 0
	for _, s := range sessions {
		if s.Score >= p.cfg.SuccessFloor {
			successes++
		}
	}
	return float64(successes) / float64(len(sessions)), len(sessions)
}

// confidenceFor is a monotone step function of practice count.
func (p *Predictor) confidenceFor(practiceCount int) float64 {
	switch {
	case practiceCount >= p.cfg.HighCountFloor:
		return p.cfg.ConfidenceHigh
	case practiceCount >= p.cfg.MediumCountFloor:
		return p.cfg.ConfidenceMedium
	default:
		return p.cfg.ConfidenceLow
	}
}

// volumeFactor saturates at 1 once the session count reaches the
// normalization constant.
func volumeFactor(count, saturation int) float64 {
	if count <= 0 {
		return 0
	}
	if saturation <= 0 || count >= saturation {
		return 1
	}
	return float64(count) / float64(saturation)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
