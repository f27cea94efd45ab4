package store

import (
	"context"

	"github.com/edforge/readypath/ent"
	"github.com/edforge/readypath/ent/assessment"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Get(ctx context.Context, assessmentID string) (*Assessment, error) {
	a, err := r.client.Assessment.Query().
		Where(assessment.AssessmentID(assessmentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &ErrAssessmentNotFound{AssessmentID: assessmentID}
		}
		return nil, &ErrUnavailable{Op: "get assessment", Err: err}
	}
	return &Assessment{
		AssessmentID:      a.AssessmentID,
		Title:             a.Title,
		TargetObjectiveID: a.TargetObjectiveID,
		TargetCells:       a.TargetCells,
	}, nil
}
