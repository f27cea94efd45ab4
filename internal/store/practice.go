package store

import (
	"context"
	"time"

	"github.com/edforge/readypath/ent"
	"github.com/edforge/readypath/ent/practicesession"
)

// practiceRepo implements PracticeRepo using the ent client.
type practiceRepo struct {
	client *ent.Client
}

func (r *practiceRepo) ListSessions(ctx context.Context, learnerID, objectiveID string, since time.Time) ([]*PracticeSession, error) {
	q := r.client.PracticeSession.Query().
		Where(
			practicesession.LearnerID(learnerID),
			practicesession.TimestampGTE(since),
		)
	if objectiveID != "" {
		q = q.Where(practicesession.ObjectiveID(objectiveID))
	}
	rows, err := q.Order(ent.Asc(practicesession.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, &ErrUnavailable{Op: "list practice sessions", Err: err}
	}

	sessions := make([]*PracticeSession, 0, len(rows))
	for _, s := range rows {
		sess := &PracticeSession{
			LearnerID:   s.LearnerID,
			ObjectiveID: s.ObjectiveID,
			Score:       s.Score,
			Timestamp:   s.Timestamp,
		}
		if err := sess.validate(); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}
