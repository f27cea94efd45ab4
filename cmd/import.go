package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edforge/readypath/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Load assessments, mastery, and practice data from a fixture file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read fixture: %w", err)
		}

		var data store.ImportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse fixture: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Import(cmd.Context(), data); err != nil {
			return err
		}

		fmt.Printf("Imported %d assessment(s), %d mastery record(s), %d session(s).\n",
			len(data.Assessments), len(data.Mastery), len(data.Sessions))
		return nil
	},
}
