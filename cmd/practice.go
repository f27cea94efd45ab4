package cmd

import (
	"fmt"
	"strings"

	"github.com/edforge/readypath/internal/practice"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <learner-id>",
	Short: "Summarize a learner's recent practice history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]
		objectiveID, _ := cmd.Flags().GetString("objective")
		windowDays, _ := cmd.Flags().GetInt("window")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		agg := practice.NewAggregator(st.PracticeRepo())
		summary, err := agg.Summarize(cmd.Context(), learnerID, objectiveID, windowDays)
		if err != nil {
			return err
		}

		fmt.Printf("Learner:        %s\n", summary.LearnerID)
		if summary.ObjectiveID != "" {
			fmt.Printf("Objective:      %s\n", summary.ObjectiveID)
		}
		fmt.Printf("Window:         last %d days\n", summary.WindowDays)
		fmt.Printf("Sessions:       %d\n", summary.TotalSessions)
		if summary.TotalSessions == 0 {
			fmt.Println("No practice in the window.")
			return nil
		}
		fmt.Printf("Average score:  %.0f%%\n", summary.AverageScore*100)
		fmt.Printf("Streak:         %d day(s)\n", summary.StreakDays)
		if summary.LastPracticed != nil {
			fmt.Printf("Last practiced: %s\n", summary.LastPracticed.Local().Format("2006-01-02 15:04"))
		}

		if len(summary.Objectives) > 1 {
			fmt.Println()
			fmt.Printf("%-24s  %8s  %8s\n", "Objective", "Sessions", "Avg")
			fmt.Println(strings.Repeat("─", 46))
			for _, o := range summary.Objectives {
				fmt.Printf("%-24s  %8d  %7.0f%%\n", o.ObjectiveID, o.Sessions, o.AverageScore*100)
			}
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().StringP("objective", "o", "", "Limit the summary to one objective")
	practiceCmd.Flags().IntP("window", "w", practice.DefaultWindowDays, "Trailing window in days")
}
