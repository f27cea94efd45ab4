package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edforge/readypath/ent/readinessprediction"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryGetAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "l1", "glo-1")
	if err != nil {
		t.Fatalf("get (absent): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exists")
	}
}

func TestMasteryListOrderedByObjective(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, row := range []struct {
		objective string
		cell      string
		score     float64
	}{
		{"glo-b", "1B", 40},
		{"glo-a", "1A", 90},
		{"glo-c", "2A", 75},
	} {
		_, err := s.Client().MasteryRecord.Create().
			SetLearnerID("l1").
			SetObjectiveID(row.objective).
			SetCellCode(row.cell).
			SetScore(row.score).
			SetStreak(2).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed mastery %s: %v", row.objective, err)
		}
	}

	records, err := s.MasteryRepo().List(ctx, "l1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("list count = %d, want 3", len(records))
	}
	if records[0].ObjectiveID != "glo-a" || records[2].ObjectiveID != "glo-c" {
		t.Errorf("list not ordered by objective: %s, %s, %s",
			records[0].ObjectiveID, records[1].ObjectiveID, records[2].ObjectiveID)
	}

	filtered, err := s.MasteryRepo().List(ctx, "l1", "glo-b")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Score != 40 {
		t.Errorf("filtered list = %+v, want single glo-b record", filtered)
	}
}

func TestPracticeListRespectsWindow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for _, age := range []time.Duration{
		1 * 24 * time.Hour,
		10 * 24 * time.Hour,
		45 * 24 * time.Hour, // outside a 30-day window
	} {
		_, err := s.Client().PracticeSession.Create().
			SetLearnerID("l1").
			SetObjectiveID("glo-1").
			SetScore(0.8).
			SetTimestamp(now.Add(-age)).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	since := now.AddDate(0, 0, -30)
	sessions, err := s.PracticeRepo().ListSessions(ctx, "l1", "glo-1", since)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions in window = %d, want 2", len(sessions))
	}
	if !sessions[0].Timestamp.Before(sessions[1].Timestamp) {
		t.Error("sessions not ordered oldest first")
	}
}

func TestAssessmentGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AssessmentRepo().Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing assessment")
	}
	var notFound *ErrAssessmentNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("error type %T, want *ErrAssessmentNotFound", err)
	}
	if notFound.AssessmentID != "missing" {
		t.Errorf("AssessmentID = %q, want missing", notFound.AssessmentID)
	}
}

func TestAssessmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Assessment.Create().
		SetAssessmentID("exam-1").
		SetTitle("Unit 3 exam").
		SetTargetObjectiveID("glo-1").
		SetTargetCells([]string{"1A", "1B"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	a, err := s.AssessmentRepo().Get(ctx, "exam-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.TargetObjectiveID != "glo-1" {
		t.Errorf("target objective = %q, want glo-1", a.TargetObjectiveID)
	}
	if len(a.TargetCells) != 2 {
		t.Errorf("target cells = %v, want [1A 1B]", a.TargetCells)
	}
}

func TestPredictionUpsertReplacesNotDuplicates(t *testing.T) {
	s := openTestStore(t)
	repo := s.PredictionRepo()
	ctx := context.Background()

	base := &Prediction{
		LearnerID:      "l1",
		AssessmentID:   "exam-1",
		PredictedScore: 0.55,
		Confidence:     0.4,
		Level:          "needs_practice",
		Recommendation: "keep practicing",
		GeneratedAt:    time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Upsert(ctx, base); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := *base
	second.PredictedScore = 0.82
	second.Level = "ready"
	if err := repo.Upsert(ctx, &second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := s.Client().ReadinessPrediction.Query().
		Where(
			readinessprediction.LearnerID("l1"),
			readinessprediction.AssessmentID("exam-1"),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("stored predictions = %d, want 1 (upsert, not duplicate)", count)
	}

	got, err := repo.Get(ctx, "l1", "exam-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PredictedScore != 0.82 || got.Level != "ready" {
		t.Errorf("prediction = (%.2f, %s), want latest values (0.82, ready)", got.PredictedScore, got.Level)
	}
}

func TestCheckInsertAssignsID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	id, err := s.CheckRepo().Insert(ctx, &CheckConfig{
		LearnerID:     "l1",
		AssessmentID:  "exam-1",
		Questions:     []CheckQuestion{{Text: "Q1", Answer: "A", Difficulty: 3}},
		Difficulty:    3,
		TimeLimitSecs: 900,
		ExpiresAt:     now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty check ID")
	}

	count, err := s.Client().ReadinessCheck.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("stored checks = %d, want 1", count)
	}
}

func TestQuestionEventSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo, err := s.QuestionEventRepo()
	if err != nil {
		t.Fatalf("question event repo: %v", err)
	}

	for i := 0; i < 3; i++ {
		err := repo.AppendQuestionEvent(ctx, QuestionEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  "readiness-check",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := s.Client().QuestionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	seen := map[int64]bool{}
	for _, e := range events {
		if seen[e.Sequence] {
			t.Errorf("duplicate sequence %d", e.Sequence)
		}
		seen[e.Sequence] = true
	}
}

func TestImportUpsertsAndAppends(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	data := ImportData{
		Assessments: []ImportAssessment{
			{AssessmentID: "exam-1", Title: "Unit exam", TargetObjectiveID: "glo-1", TargetCells: []string{"1A"}},
		},
		Mastery: []ImportMastery{
			{LearnerID: "l1", ObjectiveID: "glo-1", CellCode: "1A", Score: 55, Streak: 1},
		},
		Sessions: []ImportSession{
			{LearnerID: "l1", ObjectiveID: "glo-1", Score: 0.8},
			{LearnerID: "l1", ObjectiveID: "glo-1", Score: 0.9},
		},
	}
	if err := s.Import(ctx, data); err != nil {
		t.Fatalf("first import: %v", err)
	}

	// Re-importing the same assessment and mastery keys must update in
	// place; sessions append as new events.
	data.Mastery[0].Score = 70
	data.Assessments[0].Title = "Unit exam (revised)"
	if err := s.Import(ctx, data); err != nil {
		t.Fatalf("second import: %v", err)
	}

	rec, err := s.MasteryRepo().Get(ctx, "l1", "glo-1")
	if err != nil {
		t.Fatalf("get mastery: %v", err)
	}
	if rec == nil || rec.Score != 70 {
		t.Errorf("mastery after re-import = %+v, want score 70", rec)
	}

	a, err := s.AssessmentRepo().Get(ctx, "exam-1")
	if err != nil {
		t.Fatalf("get assessment: %v", err)
	}
	if a.Title != "Unit exam (revised)" {
		t.Errorf("assessment title = %q, want revised", a.Title)
	}

	count, err := s.Client().PracticeSession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 4 {
		t.Errorf("sessions = %d, want 4 (append on each import)", count)
	}
}

func TestImportRejectsInvalidBatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Import(ctx, ImportData{
		Mastery: []ImportMastery{
			{LearnerID: "l1", ObjectiveID: "glo-1", CellCode: "9Z", Score: 55},
		},
	})
	var inv *ErrInvalidRecord
	if !errors.As(err, &inv) {
		t.Fatalf("error type %T, want *ErrInvalidRecord", err)
	}

	count, err := s.Client().MasteryRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("records = %d, want 0 (invalid batch writes nothing)", count)
	}
}

func TestListQuestionEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	repo, err := s.QuestionEventRepo()
	if err != nil {
		t.Fatalf("question event repo: %v", err)
	}
	for _, model := range []string{"m1", "m2", "m3"} {
		err := repo.AppendQuestionEvent(ctx, QuestionEventData{
			Provider: "mock",
			Model:    model,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", model, err)
		}
	}

	events, err := s.ListQuestionEvents(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (limit)", len(events))
	}
	if events[0].Model != "m3" || events[1].Model != "m2" {
		t.Errorf("order = %s, %s, want m3, m2 (newest first)", events[0].Model, events[1].Model)
	}
}

func TestMasteryValidationRejectsBadCell(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// The schema can't know the taxonomy, so a bad cell code reaches the
	// repo boundary and must be rejected there.
	_, err := s.Client().MasteryRecord.Create().
		SetLearnerID("l1").
		SetObjectiveID("glo-1").
		SetCellCode("9Z").
		SetScore(50).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = s.MasteryRepo().Get(ctx, "l1", "glo-1")
	if err == nil {
		t.Fatal("expected validation error for unknown cell code")
	}
	var inv *ErrInvalidRecord
	if !errors.As(err, &inv) {
		t.Fatalf("error type %T, want *ErrInvalidRecord", err)
	}
}
