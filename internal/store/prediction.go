package store

import (
	"context"

	"github.com/edforge/readypath/ent"
	"github.com/edforge/readypath/ent/readinessprediction"
)

// predictionRepo implements PredictionRepo using the ent client.
// Upsert relies on the unique (learner_id, assessment_id) index as the
// conflict key; concurrent writers for the same pair resolve to
// last-writer-wins at the database level.
type predictionRepo struct {
	client *ent.Client
}

func (r *predictionRepo) Upsert(ctx context.Context, p *Prediction) error {
	err := r.client.ReadinessPrediction.Create().
		SetLearnerID(p.LearnerID).
		SetAssessmentID(p.AssessmentID).
		SetPredictedScore(p.PredictedScore).
		SetConfidence(p.Confidence).
		SetLevel(p.Level).
		SetAvgMastery(p.Factors.AvgMastery).
		SetRecentSuccessRate(p.Factors.RecentSuccessRate).
		SetPracticeCount(p.Factors.PracticeCount).
		SetWeakObjectives(p.Factors.WeakObjectives).
		SetRecommendation(p.Recommendation).
		SetPrepMinutes(p.PrepMinutes).
		SetGeneratedAt(p.GeneratedAt).
		OnConflictColumns(
			readinessprediction.FieldLearnerID,
			readinessprediction.FieldAssessmentID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return &ErrPersistence{Op: "upsert prediction", Err: err}
	}
	return nil
}

func (r *predictionRepo) Get(ctx context.Context, learnerID, assessmentID string) (*Prediction, error) {
	row, err := r.client.ReadinessPrediction.Query().
		Where(
			readinessprediction.LearnerID(learnerID),
			readinessprediction.AssessmentID(assessmentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &ErrUnavailable{Op: "get prediction", Err: err}
	}
	return &Prediction{
		LearnerID:      row.LearnerID,
		AssessmentID:   row.AssessmentID,
		PredictedScore: row.PredictedScore,
		Confidence:     row.Confidence,
		Level:          row.Level,
		Factors: PredictionFactors{
			AvgMastery:        row.AvgMastery,
			RecentSuccessRate: row.RecentSuccessRate,
			PracticeCount:     row.PracticeCount,
			WeakObjectives:    row.WeakObjectives,
		},
		Recommendation: row.Recommendation,
		PrepMinutes:    row.PrepMinutes,
		GeneratedAt:    row.GeneratedAt,
	}, nil
}
