package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosbc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosbc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosbc v%s\n", version.Version)
		fmt.Println("Soil Bearing Capacity Calculator")
		fmt.Println("Classical closed-form shallow foundation analysis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
