package practice

import (
	"context"
	"testing"
	"time"

	"github.com/edforge/readypath/internal/store"
)

// mockPracticeRepo implements store.PracticeRepo for testing.
type mockPracticeRepo struct {
	sessions []*store.PracticeSession
	err      error
}

func (m *mockPracticeRepo) ListSessions(_ context.Context, _, objectiveID string, since time.Time) ([]*store.PracticeSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*store.PracticeSession
	for _, s := range m.sessions {
		if objectiveID != "" && s.ObjectiveID != objectiveID {
			continue
		}
		if s.Timestamp.Before(since) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestAggregator(sessions ...*store.PracticeSession) *Aggregator {
	a := NewAggregator(&mockPracticeRepo{sessions: sessions})
	a.Now = fixedNow
	return a
}

func session(objective string, score float64, daysAgo int) *store.PracticeSession {
	return &store.PracticeSession{
		LearnerID:   "l1",
		ObjectiveID: objective,
		Score:       score,
		Timestamp:   fixedNow().AddDate(0, 0, -daysAgo),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	a := newTestAggregator()

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 0)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.TotalSessions != 0 {
		t.Errorf("TotalSessions = %d, want 0", got.TotalSessions)
	}
	if got.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", got.AverageScore)
	}
	if got.StreakDays != 0 {
		t.Errorf("StreakDays = %d, want 0", got.StreakDays)
	}
	if got.LastPracticed != nil {
		t.Errorf("LastPracticed = %v, want nil", got.LastPracticed)
	}
	if got.WindowDays != DefaultWindowDays {
		t.Errorf("WindowDays = %d, want default %d", got.WindowDays, DefaultWindowDays)
	}
}

func TestSummarizeCountsAndAverage(t *testing.T) {
	a := newTestAggregator(
		session("glo-1", 0.8, 1),
		session("glo-1", 0.6, 2),
		session("glo-1", 1.0, 3),
	)

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", got.TotalSessions)
	}
	if want := 0.8; !floatEq(got.AverageScore, want) {
		t.Errorf("AverageScore = %v, want %v", got.AverageScore, want)
	}
	if got.LastPracticed == nil || got.LastPracticed.Day() != 14 {
		t.Errorf("LastPracticed = %v, want the most recent session time", got.LastPracticed)
	}
}

func TestSummarizeExcludesSessionsOutsideWindow(t *testing.T) {
	a := newTestAggregator(
		session("glo-1", 0.5, 2),
		session("glo-1", 0.9, 40), // outside the 30-day window
	)

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", got.TotalSessions)
	}
	if !floatEq(got.AverageScore, 0.5) {
		t.Errorf("AverageScore = %v, want 0.5", got.AverageScore)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	// Practiced yesterday, 2 and 3 days ago; gap at 4 days ago; practiced 5 days ago.
	a := newTestAggregator(
		session("glo-1", 0.7, 1),
		session("glo-1", 0.7, 2),
		session("glo-1", 0.7, 3),
		session("glo-1", 0.7, 5),
	)

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.StreakDays != 3 {
		t.Errorf("StreakDays = %d, want 3 (gap breaks the streak)", got.StreakDays)
	}
}

func TestStreakMultipleSessionsSameDayCountOnce(t *testing.T) {
	a := newTestAggregator(
		session("glo-1", 0.7, 1),
		session("glo-1", 0.9, 1), // same calendar day
		session("glo-1", 0.7, 2),
	)

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2 (days bucketed by calendar date)", got.StreakDays)
	}
}

func TestStreakStartsAtMostRecentPracticedDay(t *testing.T) {
	// No practice today or yesterday; streak still counts back from the
	// most recent practiced day.
	a := newTestAggregator(
		session("glo-1", 0.7, 4),
		session("glo-1", 0.7, 5),
	)

	got, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", got.StreakDays)
	}
}

func TestSummarizePerObjectiveBreakdown(t *testing.T) {
	a := newTestAggregator(
		session("glo-b", 0.5, 1),
		session("glo-a", 1.0, 2),
		session("glo-a", 0.5, 3),
	)

	got, err := a.Summarize(context.Background(), "l1", "", 30)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(got.Objectives) != 2 {
		t.Fatalf("objective breakdown size = %d, want 2", len(got.Objectives))
	}
	// Sorted by objective ID.
	if got.Objectives[0].ObjectiveID != "glo-a" {
		t.Errorf("first objective = %q, want glo-a", got.Objectives[0].ObjectiveID)
	}
	if got.Objectives[0].Sessions != 2 || !floatEq(got.Objectives[0].AverageScore, 0.75) {
		t.Errorf("glo-a stats = %+v, want 2 sessions averaging 0.75", got.Objectives[0])
	}
	if got.Objectives[1].Sessions != 1 || !floatEq(got.Objectives[1].AverageScore, 0.5) {
		t.Errorf("glo-b stats = %+v, want 1 session averaging 0.5", got.Objectives[1])
	}
}

func TestSummarizePropagatesStoreError(t *testing.T) {
	a := NewAggregator(&mockPracticeRepo{err: &store.ErrUnavailable{Op: "list"}})
	a.Now = fixedNow

	_, err := a.Summarize(context.Background(), "l1", "glo-1", 30)
	if err == nil {
		t.Fatal("expected store error to propagate")
	}
}

func floatEq(a, b float64) bool {
	const eps = 1e-9
	diff := a - b
	return diff < eps && diff > -eps
}
