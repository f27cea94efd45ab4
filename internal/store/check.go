package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/edforge/readypath/ent"
	entschema "github.com/edforge/readypath/ent/schema"
)

// checkRepo implements CheckRepo using the ent client.
type checkRepo struct {
	client *ent.Client
}

func (r *checkRepo) Insert(ctx context.Context, cfg *CheckConfig) (string, error) {
	checkID := cfg.CheckID
	if checkID == "" {
		checkID = uuid.NewString()
	}

	questions := make([]entschema.QuestionData, len(cfg.Questions))
	for i, q := range cfg.Questions {
		questions[i] = entschema.QuestionData{
			Text:        q.Text,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
			CellCode:    q.CellCode,
			Difficulty:  q.Difficulty,
		}
	}

	builder := r.client.ReadinessCheck.Create().
		SetCheckID(checkID).
		SetLearnerID(cfg.LearnerID).
		SetAssessmentID(cfg.AssessmentID).
		SetQuestions(questions).
		SetDifficulty(cfg.Difficulty).
		SetTimeLimitSecs(cfg.TimeLimitSecs).
		SetExpiresAt(cfg.ExpiresAt)

	if !cfg.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(cfg.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", &ErrPersistence{Op: "insert readiness check", Err: err}
	}
	return checkID, nil
}
