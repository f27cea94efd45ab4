package cmd

import (
	"github.com/edforge/readypath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readypath",
	Short: "Mastery and readiness prediction engine",
	Long:  "ReadyPath predicts how ready a learner is for an upcoming assessment and assembles targeted readiness checks.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READYPATH_DB env var)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then READYPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
