// Package checks assembles readiness checks: a short diagnostic question
// set sized by a fresh readiness prediction, persisted with an expiry.
package checks

import (
	"context"
	"fmt"
	"time"

	"github.com/edforge/readypath/internal/questionbank"
	"github.com/edforge/readypath/internal/readiness"
	"github.com/edforge/readypath/internal/store"
)

// Config holds the check assembly tunables.
type Config struct {
	// DefaultQuestions is the question count used when the caller does
	// not specify one.
	DefaultQuestions int

	// MaxQuestions caps a single check.
	MaxQuestions int

	// SecondsPerQuestion sets the time limit budget per question.
	SecondsPerQuestion int

	// TTL is how long a generated check stays valid.
	TTL time.Duration

	// MinDifficulty and MaxDifficulty bound the requested difficulty.
	MinDifficulty int
	MaxDifficulty int
}

// DefaultConfig returns the production check settings.
func DefaultConfig() Config {
	return Config{
		DefaultQuestions:   5,
		MaxQuestions:       20,
		SecondsPerQuestion: 90,
		TTL:                24 * time.Hour,
		MinDifficulty:      1,
		MaxDifficulty:      5,
	}
}

// Check is a fully assembled readiness check.
type Check struct {
	Config     *store.CheckConfig
	Prediction *store.Prediction
	Questions  []questionbank.Question
}

// Service orchestrates prediction, question generation, and persistence
// for readiness checks.
type Service struct {
	cfg         Config
	predictor   *readiness.Predictor
	bank        questionbank.Bank
	assessments store.AssessmentRepo
	checks      store.CheckRepo

	// Now is swappable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a check Service.
func NewService(cfg Config, predictor *readiness.Predictor, bank questionbank.Bank, assessments store.AssessmentRepo, checks store.CheckRepo) *Service {
	return &Service{
		cfg:         cfg,
		predictor:   predictor,
		bank:        bank,
		assessments: assessments,
		checks:      checks,
		Now:         time.Now,
	}
}

// Generate assembles and persists a readiness check for a (learner,
// assessment) pair. numQuestions <= 0 selects the default count.
//
// The prediction runs first and is persisted on its own; it is valid
// independent of the check. If question generation or the check insert
// fails afterwards, no check row is stored.
func (s *Service) Generate(ctx context.Context, learnerID, assessmentID string, numQuestions, difficulty int) (*Check, error) {
	if numQuestions <= 0 {
		numQuestions = s.cfg.DefaultQuestions
	}
	if numQuestions > s.cfg.MaxQuestions {
		return nil, fmt.Errorf("question count %d exceeds the maximum of %d", numQuestions, s.cfg.MaxQuestions)
	}
	if difficulty < s.cfg.MinDifficulty || difficulty > s.cfg.MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d outside [%d, %d]", difficulty, s.cfg.MinDifficulty, s.cfg.MaxDifficulty)
	}

	assessment, err := s.assessments.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	prediction, err := s.predictor.Predict(ctx, learnerID, assessmentID)
	if err != nil {
		return nil, err
	}

	questions, err := s.bank.Generate(ctx, questionbank.GenerateInput{
		AssessmentTitle: assessment.Title,
		ObjectiveID:     assessment.TargetObjectiveID,
		TargetCells:     assessment.TargetCells,
		Count:           numQuestions,
		Difficulty:      difficulty,
		WeakObjectives:  prediction.Factors.WeakObjectives,
	})
	if err != nil {
		return nil, fmt.Errorf("generating check questions: %w", err)
	}

	now := s.Now().UTC()
	cfg := &store.CheckConfig{
		LearnerID:     learnerID,
		AssessmentID:  assessmentID,
		Questions:     toCheckQuestions(questions),
		Difficulty:    difficulty,
		TimeLimitSecs: numQuestions * s.cfg.SecondsPerQuestion,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.cfg.TTL),
	}

	checkID, err := s.checks.Insert(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cfg.CheckID = checkID

	return &Check{
		Config:     cfg,
		Prediction: prediction,
		Questions:  questions,
	}, nil
}

func toCheckQuestions(questions []questionbank.Question) []store.CheckQuestion {
	out := make([]store.CheckQuestion, len(questions))
	for i, q := range questions {
		out[i] = store.CheckQuestion{
			Text:        q.Text,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
			CellCode:    q.CellCode,
			Difficulty:  q.Difficulty,
		}
	}
	return out
}
