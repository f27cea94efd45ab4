// Package practice summarizes a learner's recent practice history:
// session counts, mean scores, calendar-day streaks, and per-objective
// breakdowns over a trailing window.
package practice

import "time"

// DefaultWindowDays is the trailing window used when the caller passes 0.
const DefaultWindowDays = 30

// Summary describes a learner's practice activity within the window.
// Zero sessions yields the zero-valued summary, never an error.
type Summary struct {
	LearnerID     string
	ObjectiveID   string // empty when summarizing across all objectives
	WindowDays    int
	TotalSessions int
	AverageScore  float64 // arithmetic mean of session scores, 0 if none
	StreakDays    int     // consecutive calendar days ending at the last practiced day
	LastPracticed *time.Time
	Objectives    []ObjectiveStats
}

// ObjectiveStats is the per-objective slice of a summary, for learners
// practicing across multiple objectives in the window.
type ObjectiveStats struct {
	ObjectiveID  string
	Sessions     int
	AverageScore float64
}
