package checks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edforge/readypath/internal/questionbank"
	"github.com/edforge/readypath/internal/readiness"
	"github.com/edforge/readypath/internal/store"
)

type stubAssessmentRepo struct {
	assessment *store.Assessment
}

func (s *stubAssessmentRepo) Get(_ context.Context, assessmentID string) (*store.Assessment, error) {
	if s.assessment == nil {
		return nil, &store.ErrAssessmentNotFound{AssessmentID: assessmentID}
	}
	return s.assessment, nil
}

type stubMasteryRepo struct{}

func (stubMasteryRepo) Get(context.Context, string, string) (*store.MasteryRecord, error) {
	return nil, nil
}

func (stubMasteryRepo) List(context.Context, string, string) ([]*store.MasteryRecord, error) {
	return []*store.MasteryRecord{
		{LearnerID: "l1", ObjectiveID: "glo-1", CellCode: "1A", Score: 45},
	}, nil
}

type stubPracticeRepo struct{}

func (stubPracticeRepo) ListSessions(context.Context, string, string, time.Time) ([]*store.PracticeSession, error) {
	return nil, nil
}

type stubPredictionRepo struct{ upserts int }

func (s *stubPredictionRepo) Upsert(context.Context, *store.Prediction) error {
	s.upserts++
	return nil
}

func (s *stubPredictionRepo) Get(context.Context, string, string) (*store.Prediction, error) {
	return nil, nil
}

type stubCheckRepo struct {
	inserted []*store.CheckConfig
	err      error
}

func (s *stubCheckRepo) Insert(_ context.Context, cfg *store.CheckConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.inserted = append(s.inserted, cfg)
	return "check-123", nil
}

type failingBank struct{}

func (failingBank) Generate(context.Context, questionbank.GenerateInput) ([]questionbank.Question, error) {
	return nil, errors.New("generation failed")
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func newTestService(assessments *stubAssessmentRepo, checkRepo *stubCheckRepo, bank questionbank.Bank, predictions *stubPredictionRepo) *Service {
	predictor := readiness.NewPredictor(
		readiness.DefaultConfig(),
		assessments,
		stubMasteryRepo{},
		stubPracticeRepo{},
		predictions,
	)
	predictor.Now = fixedNow

	svc := NewService(DefaultConfig(), predictor, bank, assessments, checkRepo)
	svc.Now = fixedNow
	return svc
}

func testAssessment() *store.Assessment {
	return &store.Assessment{
		AssessmentID:      "exam-1",
		Title:             "Unit exam",
		TargetObjectiveID: "glo-1",
		TargetCells:       []string{"1A", "2B"},
	}
}

func TestGenerateAssemblesCheck(t *testing.T) {
	checkRepo := &stubCheckRepo{}
	svc := newTestService(&stubAssessmentRepo{assessment: testAssessment()}, checkRepo, questionbank.NewStaticBank(), &stubPredictionRepo{})

	check, err := svc.Generate(context.Background(), "l1", "exam-1", 4, 3)
	require.NoError(t, err)

	assert.Equal(t, "check-123", check.Config.CheckID)
	assert.Len(t, check.Questions, 4)
	assert.Equal(t, 4*90, check.Config.TimeLimitSecs)
	assert.True(t, check.Config.ExpiresAt.Equal(fixedNow().Add(24*time.Hour)))
	require.NotNil(t, check.Prediction)

	require.Len(t, checkRepo.inserted, 1)
	assert.Len(t, checkRepo.inserted[0].Questions, 4)
	assert.Equal(t, "l1", checkRepo.inserted[0].LearnerID)
	assert.Equal(t, "exam-1", checkRepo.inserted[0].AssessmentID)
}

func TestGenerateUsesDefaultCount(t *testing.T) {
	svc := newTestService(&stubAssessmentRepo{assessment: testAssessment()}, &stubCheckRepo{}, questionbank.NewStaticBank(), &stubPredictionRepo{})

	check, err := svc.Generate(context.Background(), "l1", "exam-1", 0, 3)
	require.NoError(t, err)
	assert.Len(t, check.Questions, DefaultConfig().DefaultQuestions)
}

func TestGenerateRejectsOutOfRangeInputs(t *testing.T) {
	svc := newTestService(&stubAssessmentRepo{assessment: testAssessment()}, &stubCheckRepo{}, questionbank.NewStaticBank(), &stubPredictionRepo{})
	ctx := context.Background()

	_, err := svc.Generate(ctx, "l1", "exam-1", 100, 3)
	assert.Error(t, err, "too many questions")

	_, err = svc.Generate(ctx, "l1", "exam-1", 5, 0)
	assert.Error(t, err, "difficulty below range")

	_, err = svc.Generate(ctx, "l1", "exam-1", 5, 6)
	assert.Error(t, err, "difficulty above range")
}

func TestGeneratePropagatesMissingAssessment(t *testing.T) {
	checkRepo := &stubCheckRepo{}
	svc := newTestService(&stubAssessmentRepo{}, checkRepo, questionbank.NewStaticBank(), &stubPredictionRepo{})

	_, err := svc.Generate(context.Background(), "l1", "missing", 5, 3)
	var notFound *store.ErrAssessmentNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, checkRepo.inserted)
}

func TestGenerateInsertFailureStoresNothing(t *testing.T) {
	checkRepo := &stubCheckRepo{err: &store.ErrPersistence{Op: "insert check"}}
	svc := newTestService(&stubAssessmentRepo{assessment: testAssessment()}, checkRepo, questionbank.NewStaticBank(), &stubPredictionRepo{})

	_, err := svc.Generate(context.Background(), "l1", "exam-1", 5, 3)
	var persist *store.ErrPersistence
	require.ErrorAs(t, err, &persist)
	assert.Empty(t, checkRepo.inserted)
}

func TestGenerateBankFailureStoresNoCheck(t *testing.T) {
	checkRepo := &stubCheckRepo{}
	predictions := &stubPredictionRepo{}
	svc := newTestService(&stubAssessmentRepo{assessment: testAssessment()}, checkRepo, failingBank{}, predictions)

	_, err := svc.Generate(context.Background(), "l1", "exam-1", 5, 3)
	require.Error(t, err)
	assert.Empty(t, checkRepo.inserted)
	// The prediction stands on its own even when question generation fails.
	assert.Equal(t, 1, predictions.upserts)
}
