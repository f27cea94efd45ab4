package cmd

import (
	"fmt"
	"strings"

	"github.com/edforge/readypath/internal/readiness"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict <learner-id> <assessment-id>",
	Short: "Predict a learner's readiness for an assessment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, assessmentID := args[0], args[1]

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		predictor := readiness.NewPredictor(
			readiness.DefaultConfig(),
			st.AssessmentRepo(),
			st.MasteryRepo(),
			st.PracticeRepo(),
			st.PredictionRepo(),
		)

		p, err := predictor.Predict(cmd.Context(), learnerID, assessmentID)
		if err != nil {
			return err
		}

		level := readiness.Level(p.Level)
		fmt.Printf("Learner:        %s\n", p.LearnerID)
		fmt.Printf("Assessment:     %s\n", p.AssessmentID)
		fmt.Printf("Predicted:      %.0f%%\n", p.PredictedScore*100)
		fmt.Printf("Confidence:     %.0f%%\n", p.Confidence*100)
		fmt.Printf("Level:          %s\n", level.Label())
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Avg mastery:    %.1f\n", p.Factors.AvgMastery)
		fmt.Printf("Success rate:   %.0f%%\n", p.Factors.RecentSuccessRate*100)
		fmt.Printf("Sessions:       %d\n", p.Factors.PracticeCount)
		if len(p.Factors.WeakObjectives) > 0 {
			fmt.Printf("Weak areas:     %s\n", strings.Join(p.Factors.WeakObjectives, ", "))
			fmt.Printf("Prep time:      %d min\n", p.PrepMinutes)
		}
		fmt.Println(strings.Repeat("─", 48))
		fmt.Println(p.Recommendation)
		return nil
	},
}
