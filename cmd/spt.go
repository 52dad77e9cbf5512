package cmd

import (
	"github.com/spf13/cobra"
)

var sptCmd = &cobra.Command{
	Use:   "spt",
	Short: "Standard Penetration Test corrections and design N-value",
	Long: `Correct raw SPT blow counts for field procedure, overburden pressure
and dilatancy, and aggregate corrected values into a design N-value.

Subcommands:
  correct  - Run the correction pipeline on a recorded N-value
  design   - Aggregate corrected N-values into the design N-value`,
}

func init() {
	rootCmd.AddCommand(sptCmd)
}
