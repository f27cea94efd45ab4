package practice

import (
	"context"
	"sort"
	"time"

	"github.com/edforge/readypath/internal/store"
)

// Aggregator computes practice summaries from the session store.
type Aggregator struct {
	sessions store.PracticeRepo

	// Now is swappable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewAggregator creates an Aggregator backed by the given session repo.
func NewAggregator(sessions store.PracticeRepo) *Aggregator {
	return &Aggregator{sessions: sessions, Now: time.Now}
}

// Summarize fetches the learner's sessions for an objective within the
// trailing window (windowDays <= 0 means DefaultWindowDays) and reduces
// them to a Summary. An empty objectiveID summarizes across all objectives.
// Store failures are propagated as *store.ErrUnavailable.
func (a *Aggregator) Summarize(ctx context.Context, learnerID, objectiveID string, windowDays int) (*Summary, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	now := a.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	sessions, err := a.sessions.ListSessions(ctx, learnerID, objectiveID, since)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		LearnerID:   learnerID,
		ObjectiveID: objectiveID,
		WindowDays:  windowDays,
	}
	if len(sessions) == 0 {
		return summary, nil
	}

	var total float64
	var last time.Time
	perObjective := make(map[string]*ObjectiveStats)
	practiceDays := make(map[time.Time]bool)

	for _, s := range sessions {
		total += s.Score
		if s.Timestamp.After(last) {
			last = s.Timestamp
		}
		practiceDays[calendarDay(s.Timestamp)] = true

		stats, ok := perObjective[s.ObjectiveID]
		if !ok {
			stats = &ObjectiveStats{ObjectiveID: s.ObjectiveID}
			perObjective[s.ObjectiveID] = stats
		}
		stats.Sessions++
		stats.AverageScore += s.Score
	}

	summary.TotalSessions = len(sessions)
	summary.AverageScore = total / float64(len(sessions))
	summary.LastPracticed = &last
	summary.StreakDays = streakDays(practiceDays)

	for _, stats := range perObjective {
		stats.AverageScore /= float64(stats.Sessions)
		summary.Objectives = append(summary.Objectives, *stats)
	}
	sort.Slice(summary.Objectives, func(i, j int) bool {
		return summary.Objectives[i].ObjectiveID < summary.Objectives[j].ObjectiveID
	})

	return summary, nil
}

// calendarDay buckets a timestamp to its UTC calendar date. Streaks count
// whole days, not timestamp deltas.
func calendarDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// streakDays counts consecutive practiced days walking back from the most
// recent practiced day. The first gap day breaks the streak.
func streakDays(days map[time.Time]bool) int {
	if len(days) == 0 {
		return 0
	}

	var latest time.Time
	for d := range days {
		if d.After(latest) {
			latest = d
		}
	}

	streak := 0
	for day := latest; days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
