// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edforge/readypath/ent/assessment"
	"github.com/edforge/readypath/ent/masteryrecord"
	"github.com/edforge/readypath/ent/practicesession"
	"github.com/edforge/readypath/ent/questionevent"
	"github.com/edforge/readypath/ent/readinesscheck"
	"github.com/edforge/readypath/ent/readinessprediction"
	"github.com/edforge/readypath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescAssessmentID is the schema descriptor for assessment_id field.
	assessmentDescAssessmentID := assessmentFields[0].Descriptor()
	// assessment.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessment.AssessmentIDValidator = assessmentDescAssessmentID.Validators[0].(func(string) error)
	// assessmentDescTitle is the schema descriptor for title field.
	assessmentDescTitle := assessmentFields[1].Descriptor()
	// assessment.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assessment.TitleValidator = assessmentDescTitle.Validators[0].(func(string) error)
	// assessmentDescTargetObjectiveID is the schema descriptor for target_objective_id field.
	assessmentDescTargetObjectiveID := assessmentFields[2].Descriptor()
	// assessment.TargetObjectiveIDValidator is a validator for the "target_objective_id" field. It is called by the builders before save.
	assessment.TargetObjectiveIDValidator = assessmentDescTargetObjectiveID.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearnerID is the schema descriptor for learner_id field.
	masteryrecordDescLearnerID := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	masteryrecord.LearnerIDValidator = masteryrecordDescLearnerID.Validators[0].(func(string) error)
	// masteryrecordDescObjectiveID is the schema descriptor for objective_id field.
	masteryrecordDescObjectiveID := masteryrecordFields[1].Descriptor()
	// masteryrecord.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	masteryrecord.ObjectiveIDValidator = masteryrecordDescObjectiveID.Validators[0].(func(string) error)
	// masteryrecordDescCellCode is the schema descriptor for cell_code field.
	masteryrecordDescCellCode := masteryrecordFields[2].Descriptor()
	// masteryrecord.CellCodeValidator is a validator for the "cell_code" field. It is called by the builders before save.
	masteryrecord.CellCodeValidator = masteryrecordDescCellCode.Validators[0].(func(string) error)
	// masteryrecordDescScore is the schema descriptor for score field.
	masteryrecordDescScore := masteryrecordFields[3].Descriptor()
	// masteryrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	masteryrecord.ScoreValidator = func() func(float64) error {
		validators := masteryrecordDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masteryrecordDescStreak is the schema descriptor for streak field.
	masteryrecordDescStreak := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultStreak holds the default value on creation for the streak field.
	masteryrecord.DefaultStreak = masteryrecordDescStreak.Default.(int)
	// masteryrecord.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	masteryrecord.StreakValidator = masteryrecordDescStreak.Validators[0].(func(int) error)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescLearnerID is the schema descriptor for learner_id field.
	practicesessionDescLearnerID := practicesessionFields[0].Descriptor()
	// practicesession.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	practicesession.LearnerIDValidator = practicesessionDescLearnerID.Validators[0].(func(string) error)
	// practicesessionDescObjectiveID is the schema descriptor for objective_id field.
	practicesessionDescObjectiveID := practicesessionFields[1].Descriptor()
	// practicesession.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	practicesession.ObjectiveIDValidator = practicesessionDescObjectiveID.Validators[0].(func(string) error)
	// practicesessionDescScore is the schema descriptor for score field.
	practicesessionDescScore := practicesessionFields[2].Descriptor()
	// practicesession.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	practicesession.ScoreValidator = func() func(float64) error {
		validators := practicesessionDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// practicesessionDescTimestamp is the schema descriptor for timestamp field.
	practicesessionDescTimestamp := practicesessionFields[3].Descriptor()
	// practicesession.DefaultTimestamp holds the default value on creation for the timestamp field.
	practicesession.DefaultTimestamp = practicesessionDescTimestamp.Default.(func() time.Time)
	questioneventMixin := schema.QuestionEvent{}.Mixin()
	questioneventMixinFields0 := questioneventMixin[0].Fields()
	_ = questioneventMixinFields0
	questioneventFields := schema.QuestionEvent{}.Fields()
	_ = questioneventFields
	// questioneventDescTimestamp is the schema descriptor for timestamp field.
	questioneventDescTimestamp := questioneventMixinFields0[1].Descriptor()
	// questionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	questionevent.DefaultTimestamp = questioneventDescTimestamp.Default.(func() time.Time)
	// questioneventDescProvider is the schema descriptor for provider field.
	questioneventDescProvider := questioneventFields[0].Descriptor()
	// questionevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	questionevent.ProviderValidator = questioneventDescProvider.Validators[0].(func(string) error)
	// questioneventDescModel is the schema descriptor for model field.
	questioneventDescModel := questioneventFields[1].Descriptor()
	// questionevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	questionevent.ModelValidator = questioneventDescModel.Validators[0].(func(string) error)
	// questioneventDescPurpose is the schema descriptor for purpose field.
	questioneventDescPurpose := questioneventFields[2].Descriptor()
	// questionevent.DefaultPurpose holds the default value on creation for the purpose field.
	questionevent.DefaultPurpose = questioneventDescPurpose.Default.(string)
	// questioneventDescInputTokens is the schema descriptor for input_tokens field.
	questioneventDescInputTokens := questioneventFields[3].Descriptor()
	// questionevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	questionevent.DefaultInputTokens = questioneventDescInputTokens.Default.(int)
	// questioneventDescOutputTokens is the schema descriptor for output_tokens field.
	questioneventDescOutputTokens := questioneventFields[4].Descriptor()
	// questionevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	questionevent.DefaultOutputTokens = questioneventDescOutputTokens.Default.(int)
	// questioneventDescLatencyMs is the schema descriptor for latency_ms field.
	questioneventDescLatencyMs := questioneventFields[5].Descriptor()
	// questionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	questionevent.DefaultLatencyMs = questioneventDescLatencyMs.Default.(int64)
	// questioneventDescCostUsd is the schema descriptor for cost_usd field.
	questioneventDescCostUsd := questioneventFields[6].Descriptor()
	// questionevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	questionevent.DefaultCostUsd = questioneventDescCostUsd.Default.(float64)
	readinesscheckFields := schema.ReadinessCheck{}.Fields()
	_ = readinesscheckFields
	// readinesscheckDescCheckID is the schema descriptor for check_id field.
	readinesscheckDescCheckID := readinesscheckFields[0].Descriptor()
	// readinesscheck.CheckIDValidator is a validator for the "check_id" field. It is called by the builders before save.
	readinesscheck.CheckIDValidator = readinesscheckDescCheckID.Validators[0].(func(string) error)
	// readinesscheckDescLearnerID is the schema descriptor for learner_id field.
	readinesscheckDescLearnerID := readinesscheckFields[1].Descriptor()
	// readinesscheck.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	readinesscheck.LearnerIDValidator = readinesscheckDescLearnerID.Validators[0].(func(string) error)
	// readinesscheckDescAssessmentID is the schema descriptor for assessment_id field.
	readinesscheckDescAssessmentID := readinesscheckFields[2].Descriptor()
	// readinesscheck.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	readinesscheck.AssessmentIDValidator = readinesscheckDescAssessmentID.Validators[0].(func(string) error)
	// readinesscheckDescDifficulty is the schema descriptor for difficulty field.
	readinesscheckDescDifficulty := readinesscheckFields[4].Descriptor()
	// readinesscheck.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	readinesscheck.DifficultyValidator = readinesscheckDescDifficulty.Validators[0].(func(int) error)
	// readinesscheckDescTimeLimitSecs is the schema descriptor for time_limit_secs field.
	readinesscheckDescTimeLimitSecs := readinesscheckFields[5].Descriptor()
	// readinesscheck.TimeLimitSecsValidator is a validator for the "time_limit_secs" field. It is called by the builders before save.
	readinesscheck.TimeLimitSecsValidator = readinesscheckDescTimeLimitSecs.Validators[0].(func(int) error)
	// readinesscheckDescCreatedAt is the schema descriptor for created_at field.
	readinesscheckDescCreatedAt := readinesscheckFields[6].Descriptor()
	// readinesscheck.DefaultCreatedAt holds the default value on creation for the created_at field.
	readinesscheck.DefaultCreatedAt = readinesscheckDescCreatedAt.Default.(func() time.Time)
	readinesspredictionFields := schema.ReadinessPrediction{}.Fields()
	_ = readinesspredictionFields
	// readinesspredictionDescLearnerID is the schema descriptor for learner_id field.
	readinesspredictionDescLearnerID := readinesspredictionFields[0].Descriptor()
	// readinessprediction.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	readinessprediction.LearnerIDValidator = readinesspredictionDescLearnerID.Validators[0].(func(string) error)
	// readinesspredictionDescAssessmentID is the schema descriptor for assessment_id field.
	readinesspredictionDescAssessmentID := readinesspredictionFields[1].Descriptor()
	// readinessprediction.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	readinessprediction.AssessmentIDValidator = readinesspredictionDescAssessmentID.Validators[0].(func(string) error)
	// readinesspredictionDescPredictedScore is the schema descriptor for predicted_score field.
	readinesspredictionDescPredictedScore := readinesspredictionFields[2].Descriptor()
	// readinessprediction.PredictedScoreValidator is a validator for the "predicted_score" field. It is called by the builders before save.
	readinessprediction.PredictedScoreValidator = func() func(float64) error {
		validators := readinesspredictionDescPredictedScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(predicted_score float64) error {
			for _, fn := range fns {
				if err := fn(predicted_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesspredictionDescConfidence is the schema descriptor for confidence field.
	readinesspredictionDescConfidence := readinesspredictionFields[3].Descriptor()
	// readinessprediction.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	readinessprediction.ConfidenceValidator = func() func(float64) error {
		validators := readinesspredictionDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// readinesspredictionDescLevel is the schema descriptor for level field.
	readinesspredictionDescLevel := readinesspredictionFields[4].Descriptor()
	// readinessprediction.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	readinessprediction.LevelValidator = readinesspredictionDescLevel.Validators[0].(func(string) error)
	// readinesspredictionDescPracticeCount is the schema descriptor for practice_count field.
	readinesspredictionDescPracticeCount := readinesspredictionFields[7].Descriptor()
	// readinessprediction.PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	readinessprediction.PracticeCountValidator = readinesspredictionDescPracticeCount.Validators[0].(func(int) error)
	// readinesspredictionDescPrepMinutes is the schema descriptor for prep_minutes field.
	readinesspredictionDescPrepMinutes := readinesspredictionFields[10].Descriptor()
	// readinessprediction.DefaultPrepMinutes holds the default value on creation for the prep_minutes field.
	readinessprediction.DefaultPrepMinutes = readinesspredictionDescPrepMinutes.Default.(int)
	// readinessprediction.PrepMinutesValidator is a validator for the "prep_minutes" field. It is called by the builders before save.
	readinessprediction.PrepMinutesValidator = readinesspredictionDescPrepMinutes.Validators[0].(func(int) error)
	// readinesspredictionDescGeneratedAt is the schema descriptor for generated_at field.
	readinesspredictionDescGeneratedAt := readinesspredictionFields[11].Descriptor()
	// readinessprediction.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	readinessprediction.DefaultGeneratedAt = readinesspredictionDescGeneratedAt.Default.(func() time.Time)
	// readinessprediction.UpdateDefaultGeneratedAt holds the default value on update for the generated_at field.
	readinessprediction.UpdateDefaultGeneratedAt = readinesspredictionDescGeneratedAt.UpdateDefault.(func() time.Time)
}
