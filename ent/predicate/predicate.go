// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// QuestionEvent is the predicate function for questionevent builders.
type QuestionEvent func(*sql.Selector)

// ReadinessCheck is the predicate function for readinesscheck builders.
type ReadinessCheck func(*sql.Selector)

// ReadinessPrediction is the predicate function for readinessprediction builders.
type ReadinessPrediction func(*sql.Selector)
