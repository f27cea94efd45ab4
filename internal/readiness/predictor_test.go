package readiness

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/edforge/readypath/internal/store"
)

// Test doubles for the store repos.

type mockAssessmentRepo struct {
	assessment *store.Assessment
	err        error
}

func (m *mockAssessmentRepo) Get(_ context.Context, assessmentID string) (*store.Assessment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.assessment == nil {
		return nil, &store.ErrAssessmentNotFound{AssessmentID: assessmentID}
	}
	return m.assessment, nil
}

type mockMasteryRepo struct {
	records []*store.MasteryRecord
	err     error
}

func (m *mockMasteryRepo) Get(_ context.Context, _, objectiveID string) (*store.MasteryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.ObjectiveID == objectiveID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockMasteryRepo) List(_ context.Context, _, objectiveID string) ([]*store.MasteryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if objectiveID == "" {
		return m.records, nil
	}
	var out []*store.MasteryRecord
	for _, r := range m.records {
		if r.ObjectiveID == objectiveID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockPracticeRepo struct {
	sessions []*store.PracticeSession
	err      error
}

func (m *mockPracticeRepo) ListSessions(_ context.Context, _, _ string, since time.Time) ([]*store.PracticeSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*store.PracticeSession
	for _, s := range m.sessions {
		if !s.Timestamp.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockPredictionRepo struct {
	// byKey models the conflict-key uniqueness of the backing store.
	byKey   map[string]*store.Prediction
	upserts int
	err     error
}

func newMockPredictionRepo() *mockPredictionRepo {
	return &mockPredictionRepo{byKey: make(map[string]*store.Prediction)}
}

func (m *mockPredictionRepo) Upsert(_ context.Context, p *store.Prediction) error {
	if m.err != nil {
		return m.err
	}
	m.upserts++
	m.byKey[p.LearnerID+"/"+p.AssessmentID] = p
	return nil
}

func (m *mockPredictionRepo) Get(_ context.Context, learnerID, assessmentID string) (*store.Prediction, error) {
	return m.byKey[learnerID+"/"+assessmentID], nil
}

func testNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func targetAssessment() *store.Assessment {
	return &store.Assessment{
		AssessmentID:      "exam-1",
		Title:             "Unit exam",
		TargetObjectiveID: "glo-1",
		TargetCells:       []string{"1A", "1B"},
	}
}

func masteryRecord(objective, cell string, score float64) *store.MasteryRecord {
	return &store.MasteryRecord{
		LearnerID:   "l1",
		ObjectiveID: objective,
		CellCode:    cell,
		Score:       score,
	}
}

func recentSession(score float64, daysAgo int) *store.PracticeSession {
	return &store.PracticeSession{
		LearnerID:   "l1",
		ObjectiveID: "glo-1",
		Score:       score,
		Timestamp:   testNow().AddDate(0, 0, -daysAgo),
	}
}

func newTestPredictor(a *mockAssessmentRepo, m *mockMasteryRepo, s *mockPracticeRepo, p *mockPredictionRepo) *Predictor {
	pred := NewPredictor(DefaultConfig(), a, m, s, p)
	pred.Now = testNow
	return pred
}

func TestPredictEndToEnd(t *testing.T) {
	// Mastery {1A: 90, 1B: 40}, 6 recent sessions averaging 0.75 (all >= 0.7).
	mastery := &mockMasteryRepo{records: []*store.MasteryRecord{
		masteryRecord("glo-1a", "1A", 90),
		masteryRecord("glo-1b", "1B", 40),
	}}
	var sessions []*store.PracticeSession
	for i := 1; i <= 6; i++ {
		sessions = append(sessions, recentSession(0.75, i))
	}
	predictions := newMockPredictionRepo()
	p := newTestPredictor(
		&mockAssessmentRepo{assessment: targetAssessment()},
		mastery,
		&mockPracticeRepo{sessions: sessions},
		predictions,
	)

	got, err := p.Predict(context.Background(), "l1", "exam-1")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if !floatEq(got.Factors.AvgMastery, 65) {
		t.Errorf("AvgMastery = %v, want 65", got.Factors.AvgMastery)
	}
	if !floatEq(got.Factors.RecentSuccessRate, 1.0) {
		t.Errorf("RecentSuccessRate = %v, want 1.0", got.Factors.RecentSuccessRate)
	}
	if got.Factors.PracticeCount != 6 {
		t.Errorf("PracticeCount = %d, want 6", got.Factors.PracticeCount)
	}

	// 65*0.6 + 1.0*100*0.3 + min(6/10, 1)*10 = 39 + 30 + 6 = 75.
	if !floatEq(got.PredictedScore, 0.75) {
		t.Errorf("PredictedScore = %v, want 0.75", got.PredictedScore)
	}
	if !floatEq(got.Confidence, 0.80) {
		t.Errorf("Confidence = %v, want 0.80 (6 sessions >= 5)", got.Confidence)
	}
	if got.Level != string(LevelAlmostReady) {
		t.Errorf("Level = %q, want almost_ready", got.Level)
	}

	// Only 1B is below the weak threshold.
	if len(got.Factors.WeakObjectives) != 1 || got.Factors.WeakObjectives[0] != "glo-1b" {
		t.Errorf("WeakObjectives = %v, want [glo-1b]", got.Factors.WeakObjectives)
	}
	if got.PrepMinutes != 15 {
		t.Errorf("PrepMinutes = %d, want 15 (one 15-minute block)", got.PrepMinutes)
	}

	if predictions.upserts != 1 {
		t.Errorf("upserts = %d, want 1", predictions.upserts)
	}
}

func TestPredictZeroHistory(t *testing.T) {
	predictions := newMockPredictionRepo()
	p := newTestPredictor(
		&mockAssessmentRepo{assessment: targetAssessment()},
		&mockMasteryRepo{},
		&mockPracticeRepo{},
		predictions,
	)

	got, err := p.Predict(context.Background(), "l1", "exam-1")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got.PredictedScore != 0 {
		t.Errorf("PredictedScore = %v, want 0 (all terms zero)", got.PredictedScore)
	}
	if !floatEq(got.Confidence, 0.40) {
		t.Errorf("Confidence = %v, want 0.40", got.Confidence)
	}
	if got.Level != string(LevelNotReady) {
		t.Errorf("Level = %q, want not_ready", got.Level)
	}
	if len(got.Factors.WeakObjectives) != 0 {
		t.Errorf("WeakObjectives = %v, want empty", got.Factors.WeakObjectives)
	}
	// With nothing to rank and a learner who is not ready, the text falls
	// back to the generic more-practice message instead of failing.
	if got.Recommendation == "" {
		t.Error("expected a non-empty fallback recommendation")
	}
}

func TestPredictScoreAlwaysInRange(t *testing.T) {
	cases := []struct {
		name     string
		mastery  float64
		score    float64
		sessions int
	}{
		{"all zero", 0, 0, 0},
		{"all max", 100, 1.0, 50},
		{"volume saturated", 100, 1.0, 10},
		{"mastery only", 100, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sessions []*store.PracticeSession
			for i := 0; i < tc.sessions; i++ {
				sessions = append(sessions, recentSession(tc.score, 1))
			}
			p := newTestPredictor(
				&mockAssessmentRepo{assessment: targetAssessment()},
				&mockMasteryRepo{records: []*store.MasteryRecord{
					masteryRecord("glo-1a", "1A", tc.mastery),
				}},
				&mockPracticeRepo{sessions: sessions},
				newMockPredictionRepo(),
			)
			got, err := p.Predict(context.Background(), "l1", "exam-1")
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if got.PredictedScore < 0 || got.PredictedScore > 1 {
				t.Errorf("PredictedScore = %v, want within [0, 1]", got.PredictedScore)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Confidence = %v, want within [0, 1]", got.Confidence)
			}
		})
	}
}

func TestConfidenceStepFunction(t *testing.T) {
	tests := []struct {
		sessions int
		want     float64
	}{
		{0, 0.40},
		{2, 0.40},
		{3, 0.60},
		{4, 0.60},
		{5, 0.80},
		{12, 0.80},
	}
	for _, tt := range tests {
		var sessions []*store.PracticeSession
		for i := 0; i < tt.sessions; i++ {
			sessions = append(sessions, recentSession(0.9, 1))
		}
		p := newTestPredictor(
			&mockAssessmentRepo{assessment: targetAssessment()},
			&mockMasteryRepo{},
			&mockPracticeRepo{sessions: sessions},
			newMockPredictionRepo(),
		)
		got, err := p.Predict(context.Background(), "l1", "exam-1")
		if err != nil {
			t.Fatalf("predict (%d sessions): %v", tt.sessions, err)
		}
		if !floatEq(got.Confidence, tt.want) {
			t.Errorf("confidence(%d sessions) = %v, want %v", tt.sessions, got.Confidence, tt.want)
		}
	}
}

func TestLevelThresholdsExact(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score float64
		want  Level
	}{
		{80, LevelReady},
		{79.999, LevelAlmostReady},
		{60, LevelAlmostReady},
		{59.999, LevelNeedsPractice},
		{40, LevelNeedsPractice},
		{39.999, LevelNotReady},
		{0, LevelNotReady},
		{100, LevelReady},
	}
	for _, tt := range tests {
		if got := cfg.levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestPredictUpsertReplaces(t *testing.T) {
	predictions := newMockPredictionRepo()
	p := newTestPredictor(
		&mockAssessmentRepo{assessment: targetAssessment()},
		&mockMasteryRepo{},
		&mockPracticeRepo{},
		predictions,
	)

	ctx := context.Background()
	if _, err := p.Predict(ctx, "l1", "exam-1"); err != nil {
		t.Fatalf("first predict: %v", err)
	}
	if _, err := p.Predict(ctx, "l1", "exam-1"); err != nil {
		t.Fatalf("second predict: %v", err)
	}
	if len(predictions.byKey) != 1 {
		t.Errorf("stored predictions = %d, want 1 (keyed upsert)", len(predictions.byKey))
	}
}

func TestPredictAbortsOnMissingAssessment(t *testing.T) {
	predictions := newMockPredictionRepo()
	p := newTestPredictor(
		&mockAssessmentRepo{}, // no assessment configured
		&mockMasteryRepo{},
		&mockPracticeRepo{},
		predictions,
	)

	_, err := p.Predict(context.Background(), "l1", "missing")
	if err == nil {
		t.Fatal("expected error for missing assessment")
	}
	var unresolved *ErrUnresolvedTarget
	if !errors.As(err, &unresolved) {
		t.Fatalf("error type %T, want *ErrUnresolvedTarget", err)
	}
	var notFound *store.ErrAssessmentNotFound
	if !errors.As(err, &notFound) {
		t.Error("expected the store not-found error to remain unwrappable")
	}
	if predictions.upserts != 0 {
		t.Errorf("upserts = %d, want 0 (no partial write on abort)", predictions.upserts)
	}
}

func TestPredictDegradesOnStoreFailures(t *testing.T) {
	// Mastery and practice lookups failing must not abort the prediction.
	predictions := newMockPredictionRepo()
	p := newTestPredictor(
		&mockAssessmentRepo{assessment: targetAssessment()},
		&mockMasteryRepo{err: &store.ErrUnavailable{Op: "list mastery"}},
		&mockPracticeRepo{err: &store.ErrUnavailable{Op: "list sessions"}},
		predictions,
	)

	got, err := p.Predict(context.Background(), "l1", "exam-1")
	if err != nil {
		t.Fatalf("predict should degrade, got error: %v", err)
	}
	if got.PredictedScore != 0 || !floatEq(got.Confidence, 0.40) {
		t.Errorf("degraded prediction = (%v, %v), want (0, 0.40)", got.PredictedScore, got.Confidence)
	}
	if predictions.upserts != 1 {
		t.Errorf("upserts = %d, want 1 (degraded prediction is still stored)", predictions.upserts)
	}
}

func TestPredictPropagatesPersistenceFailure(t *testing.T) {
	predictions := newMockPredictionRepo()
	predictions.err = &store.ErrPersistence{Op: "upsert prediction"}
	p := newTestPredictor(
		&mockAssessmentRepo{assessment: targetAssessment()},
		&mockMasteryRepo{},
		&mockPracticeRepo{},
		predictions,
	)

	_, err := p.Predict(context.Background(), "l1", "exam-1")
	var persist *store.ErrPersistence
	if !errors.As(err, &persist) {
		t.Fatalf("error = %v, want *store.ErrPersistence", err)
	}
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
