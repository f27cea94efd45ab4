package readiness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edforge/readypath/internal/store"
)

// Recommendation is one ranked remediation action for a weak area.
// Ephemeral: recommendations are derived on each prediction run, never
// persisted as their own entity.
type Recommendation struct {
	ObjectiveID   string
	CellCode      string
	MasteryScore  float64
	Justification string
	Action        string
	Minutes       int
}

// rankWeakAreas selects the learner's weakest objectives: everything below
// the weak threshold, sorted ascending by mastery score with the objective
// ID as a deterministic tiebreak, capped at MaxRecommendations.
func (c Config) rankWeakAreas(records []*store.MasteryRecord) []Recommendation {
	var weak []*store.MasteryRecord
	for _, r := range records {
		if r.Score < c.WeakThreshold {
			weak = append(weak, r)
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Score != weak[j].Score {
			return weak[i].Score < weak[j].Score
		}
		return weak[i].ObjectiveID < weak[j].ObjectiveID
	})

	if len(weak) > c.MaxRecommendations {
		weak = weak[:c.MaxRecommendations]
	}

	recs := make([]Recommendation, 0, len(weak))
	for _, r := range weak {
		recs = append(recs, Recommendation{
			ObjectiveID:  r.ObjectiveID,
			CellCode:     r.CellCode,
			MasteryScore: r.Score,
			Justification: fmt.Sprintf("current mastery %.0f%% is below the %.0f%% readiness bar",
				r.Score, c.WeakThreshold),
			Action: fmt.Sprintf("complete a %d-minute focused practice block on %s",
				c.RemediationMinutes, r.ObjectiveID),
			Minutes: c.RemediationMinutes,
		})
	}
	return recs
}

// prepMinutes sums the time cost of the selected recommendations.
func prepMinutes(recs []Recommendation) int {
	total := 0
	for _, r := range recs {
		total += r.Minutes
	}
	return total
}

// recommendationText renders the caller-facing summary line. With weak
// areas it names them; otherwise a ready learner gets the canonical ready
// message and everyone else a generic more-practice message.
func recommendationText(recs []Recommendation, level Level) string {
	if len(recs) > 0 {
		ids := make([]string, len(recs))
		for i, r := range recs {
			ids[i] = r.ObjectiveID
		}
		return fmt.Sprintf("focus on %d weak area(s) before the assessment: %s",
			len(recs), strings.Join(ids, ", "))
	}
	if level == LevelReady {
		return "you're ready: keep your current practice routine until the assessment"
	}
	return "more practice is needed before a reliable recommendation can be made"
}
