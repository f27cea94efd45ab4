package store

import (
	"context"

	"github.com/edforge/readypath/ent"
	"github.com/edforge/readypath/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, objectiveID string) (*MasteryRecord, error) {
	m, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.ObjectiveID(objectiveID),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &ErrUnavailable{Op: "get mastery", Err: err}
	}
	return toMasteryRecord(m)
}

func (r *masteryRepo) List(ctx context.Context, learnerID, objectiveID string) ([]*MasteryRecord, error) {
	q := r.client.MasteryRecord.Query().
		Where(masteryrecord.LearnerID(learnerID))
	if objectiveID != "" {
		q = q.Where(masteryrecord.ObjectiveID(objectiveID))
	}
	rows, err := q.Order(ent.Asc(masteryrecord.FieldObjectiveID)).All(ctx)
	if err != nil {
		return nil, &ErrUnavailable{Op: "list mastery", Err: err}
	}

	records := make([]*MasteryRecord, 0, len(rows))
	for _, m := range rows {
		rec, err := toMasteryRecord(m)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toMasteryRecord(m *ent.MasteryRecord) (*MasteryRecord, error) {
	rec := &MasteryRecord{
		LearnerID:   m.LearnerID,
		ObjectiveID: m.ObjectiveID,
		CellCode:    m.CellCode,
		Score:       m.Score,
		Streak:      m.Streak,
		UpdatedAt:   m.UpdatedAt,
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
