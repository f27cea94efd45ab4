package store

import (
	"context"
	"time"

	"github.com/edforge/readypath/ent/assessment"
	"github.com/edforge/readypath/ent/masteryrecord"
)

// ImportData is a batch of upstream records to load into the store,
// shaped for JSON fixture files. Assessments and mastery records upsert
// on their natural keys; practice sessions are immutable events and
// always append.
type ImportData struct {
	Assessments []ImportAssessment `json:"assessments"`
	Mastery     []ImportMastery    `json:"mastery"`
	Sessions    []ImportSession    `json:"sessions"`
}

// ImportAssessment is one assessment row in a fixture file.
type ImportAssessment struct {
	AssessmentID      string   `json:"assessment_id"`
	Title             string   `json:"title"`
	TargetObjectiveID string   `json:"target_objective_id"`
	TargetCells       []string `json:"target_cells"`
}

// ImportMastery is one mastery row in a fixture file.
type ImportMastery struct {
	LearnerID   string  `json:"learner_id"`
	ObjectiveID string  `json:"objective_id"`
	CellCode    string  `json:"cell_code"`
	Score       float64 `json:"score"`
	Streak      int     `json:"streak"`
}

// ImportSession is one practice session row in a fixture file.
type ImportSession struct {
	LearnerID   string    `json:"learner_id"`
	ObjectiveID string    `json:"objective_id"`
	Score       float64   `json:"score"`
	Timestamp   time.Time `json:"timestamp"`
}

// Import loads a batch of records inside one transaction. Records are
// validated first; nothing is written when any record is invalid.
func (s *Store) Import(ctx context.Context, data ImportData) error {
	for _, m := range data.Mastery {
		rec := MasteryRecord{
			LearnerID:   m.LearnerID,
			ObjectiveID: m.ObjectiveID,
			CellCode:    m.CellCode,
			Score:       m.Score,
			Streak:      m.Streak,
		}
		if err := rec.validate(); err != nil {
			return err
		}
	}
	for _, p := range data.Sessions {
		sess := PracticeSession{Score: p.Score}
		if err := sess.validate(); err != nil {
			return err
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return &ErrPersistence{Op: "begin import", Err: err}
	}

	for _, a := range data.Assessments {
		err := tx.Assessment.Create().
			SetAssessmentID(a.AssessmentID).
			SetTitle(a.Title).
			SetTargetObjectiveID(a.TargetObjectiveID).
			SetTargetCells(a.TargetCells).
			OnConflictColumns(assessment.FieldAssessmentID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return &ErrPersistence{Op: "import assessment " + a.AssessmentID, Err: err}
		}
	}

	for _, m := range data.Mastery {
		err := tx.MasteryRecord.Create().
			SetLearnerID(m.LearnerID).
			SetObjectiveID(m.ObjectiveID).
			SetCellCode(m.CellCode).
			SetScore(m.Score).
			SetStreak(m.Streak).
			SetUpdatedAt(time.Now().UTC()).
			OnConflictColumns(masteryrecord.FieldLearnerID, masteryrecord.FieldObjectiveID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return &ErrPersistence{Op: "import mastery for " + m.ObjectiveID, Err: err}
		}
	}

	for _, p := range data.Sessions {
		ts := p.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		_, err := tx.PracticeSession.Create().
			SetLearnerID(p.LearnerID).
			SetObjectiveID(p.ObjectiveID).
			SetScore(p.Score).
			SetTimestamp(ts).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return &ErrPersistence{Op: "import practice session", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &ErrPersistence{Op: "commit import", Err: err}
	}
	return nil
}
