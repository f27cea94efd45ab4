package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/edforge/readypath/internal/checks"
	"github.com/edforge/readypath/internal/llm"
	"github.com/edforge/readypath/internal/questionbank"
	"github.com/edforge/readypath/internal/readiness"
	"github.com/edforge/readypath/internal/store"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <learner-id> <assessment-id>",
	Short: "Generate a readiness check for an upcoming assessment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, assessmentID := args[0], args[1]
		numQuestions, _ := cmd.Flags().GetInt("questions")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.QuestionEventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		bank := buildBank(cmd, events)

		predictor := readiness.NewPredictor(
			readiness.DefaultConfig(),
			st.AssessmentRepo(),
			st.MasteryRepo(),
			st.PracticeRepo(),
			st.PredictionRepo(),
		)
		svc := checks.NewService(checks.DefaultConfig(), predictor, bank, st.AssessmentRepo(), st.CheckRepo())

		check, err := svc.Generate(cmd.Context(), learnerID, assessmentID, numQuestions, difficulty)
		if err != nil {
			return err
		}

		level := readiness.Level(check.Prediction.Level)
		fmt.Printf("Check:       %s\n", check.Config.CheckID)
		fmt.Printf("Readiness:   %.0f%% (%s)\n", check.Prediction.PredictedScore*100, level.Label())
		fmt.Printf("Time limit:  %d min\n", check.Config.TimeLimitSecs/60)
		fmt.Printf("Expires:     %s\n", check.Config.ExpiresAt.Local().Format("2006-01-02 15:04"))
		fmt.Println(strings.Repeat("─", 60))

		for i, q := range check.Questions {
			fmt.Printf("\n%d. [%s] %s\n", i+1, q.CellCode, q.Text)
			for j, c := range q.Choices {
				fmt.Printf("   %c) %s\n", 'a'+j, c)
			}
			if showAnswers {
				fmt.Printf("   Answer: %s\n", q.Answer)
				fmt.Printf("   Why: %s\n", q.Explanation)
			}
		}
		return nil
	},
}

// buildBank returns the LLM-backed bank when a provider is configured and
// the deterministic static bank otherwise.
func buildBank(cmd *cobra.Command, events store.QuestionEventRepo) questionbank.Bank {
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		return questionbank.NewStaticBank()
	}

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM provider configured; using the static question bank.")
			return questionbank.NewStaticBank()
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "LLM provider unavailable (%v); using the static question bank.\n", err)
		return questionbank.NewStaticBank()
	}
	return questionbank.New(provider, questionbank.DefaultConfig())
}

func init() {
	checkCmd.Flags().IntP("questions", "n", 0, "Number of questions (default per config)")
	checkCmd.Flags().IntP("difficulty", "d", 3, "Difficulty from 1 (easy) to 5 (hard)")
	checkCmd.Flags().Bool("answers", false, "Print answers and explanations")
	checkCmd.Flags().Bool("offline", false, "Use the built-in static question bank")
}
