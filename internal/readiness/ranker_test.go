package readiness

import (
	"strings"
	"testing"

	"github.com/edforge/readypath/internal/store"
)

func weakRecord(objective, cell string, score float64) *store.MasteryRecord {
	return &store.MasteryRecord{
		LearnerID:   "l1",
		ObjectiveID: objective,
		CellCode:    cell,
		Score:       score,
	}
}

func TestRankWeakAreasFiltersAndCaps(t *testing.T) {
	cfg := DefaultConfig()
	records := []*store.MasteryRecord{
		weakRecord("glo-5", "2B", 59.9),
		weakRecord("glo-1", "1A", 20),
		weakRecord("glo-2", "1B", 45),
		weakRecord("glo-3", "2A", 90), // above threshold, excluded
		weakRecord("glo-4", "3C", 60), // exactly at threshold, excluded
		weakRecord("glo-6", "4A", 10),
	}

	recs := cfg.rankWeakAreas(records)

	if len(recs) != cfg.MaxRecommendations {
		t.Fatalf("got %d recommendations, want %d", len(recs), cfg.MaxRecommendations)
	}
	wantOrder := []string{"glo-6", "glo-1", "glo-2"}
	for i, want := range wantOrder {
		if recs[i].ObjectiveID != want {
			t.Errorf("rank %d = %s, want %s", i, recs[i].ObjectiveID, want)
		}
	}
	for _, r := range recs {
		if r.MasteryScore >= cfg.WeakThreshold {
			t.Errorf("recommendation for %s has mastery %v, at or above the weak threshold", r.ObjectiveID, r.MasteryScore)
		}
		if r.Minutes != cfg.RemediationMinutes {
			t.Errorf("recommendation for %s has %d minutes, want %d", r.ObjectiveID, r.Minutes, cfg.RemediationMinutes)
		}
		if r.Justification == "" || r.Action == "" {
			t.Errorf("recommendation for %s is missing justification or action", r.ObjectiveID)
		}
	}
}

func TestRankWeakAreasTiebreakByObjectiveID(t *testing.T) {
	cfg := DefaultConfig()
	records := []*store.MasteryRecord{
		weakRecord("glo-b", "1B", 30),
		weakRecord("glo-a", "1A", 30),
		weakRecord("glo-c", "1C", 30),
	}

	recs := cfg.rankWeakAreas(records)

	want := []string{"glo-a", "glo-b", "glo-c"}
	for i, w := range want {
		if recs[i].ObjectiveID != w {
			t.Errorf("rank %d = %s, want %s", i, recs[i].ObjectiveID, w)
		}
	}
}

func TestRankWeakAreasEmpty(t *testing.T) {
	cfg := DefaultConfig()
	if recs := cfg.rankWeakAreas(nil); len(recs) != 0 {
		t.Errorf("expected no recommendations for no records, got %d", len(recs))
	}
	strong := []*store.MasteryRecord{weakRecord("glo-1", "1A", 95)}
	if recs := cfg.rankWeakAreas(strong); len(recs) != 0 {
		t.Errorf("expected no recommendations for strong mastery, got %d", len(recs))
	}
}

func TestPrepMinutesSums(t *testing.T) {
	cfg := DefaultConfig()
	records := []*store.MasteryRecord{
		weakRecord("glo-1", "1A", 10),
		weakRecord("glo-2", "1B", 20),
	}
	recs := cfg.rankWeakAreas(records)
	if got := prepMinutes(recs); got != 2*cfg.RemediationMinutes {
		t.Errorf("prepMinutes = %d, want %d", got, 2*cfg.RemediationMinutes)
	}
	if got := prepMinutes(nil); got != 0 {
		t.Errorf("prepMinutes(nil) = %d, want 0", got)
	}
}

func TestRecommendationText(t *testing.T) {
	cfg := DefaultConfig()
	recs := cfg.rankWeakAreas([]*store.MasteryRecord{
		weakRecord("glo-2", "1B", 40),
		weakRecord("glo-1", "1A", 20),
	})

	text := recommendationText(recs, LevelNeedsPractice)
	if !strings.Contains(text, "glo-1") || !strings.Contains(text, "glo-2") {
		t.Errorf("weak-area text %q should name both objectives", text)
	}

	ready := recommendationText(nil, LevelReady)
	if !strings.Contains(ready, "ready") {
		t.Errorf("ready text %q should confirm readiness", ready)
	}

	fallback := recommendationText(nil, LevelNotReady)
	if fallback == "" || fallback == ready {
		t.Errorf("fallback text %q should be a distinct non-empty message", fallback)
	}

	if got := LevelAlmostReady.Label(); got != "Almost ready" {
		t.Errorf("Label() = %q, want %q", got, "Almost ready")
	}
}
