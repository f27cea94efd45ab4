package cmd

import (
	"fmt"
	"strings"

	"github.com/edforge/readypath/internal/taxonomy"
	"github.com/spf13/cobra"
)

var cellsCmd = &cobra.Command{
	Use:   "cells",
	Short: "Print the taxonomy grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-4s  %-28s  %s\n", "Code", "Cell", "Example prompt")
		fmt.Println(strings.Repeat("─", 96))
		for _, c := range taxonomy.AllCells() {
			prompt := c.ExamplePrompt
			if len(prompt) > 58 {
				prompt = prompt[:55] + "..."
			}
			fmt.Printf("%-4s  %-28s  %s\n", c.Code, c.Name, prompt)
		}
		fmt.Printf("\n%d cells\n", len(taxonomy.AllCells()))
		return nil
	},
}
