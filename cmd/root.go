package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gosbc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosbc",
	Short: "Soil Bearing Capacity Calculator",
	Long: `gosbc - Go Soil Bearing Capacity Calculator

A CLI tool for shallow foundation bearing capacity analysis.

This tool helps geotechnical engineers perform:
  - Ultimate bearing capacity (Terzaghi, Meyerhof, Hansen, Vesic)
  - Bearing capacity, shape, depth and inclination factors
  - SPT N-value corrections (energy, overburden, dilatancy)
  - Settlement-based allowable bearing capacity

All calculations use the classical closed-form solutions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosbc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Soil Bearing Capacity Calculator                     ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shallow foundation bearing capacity analysis.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Ultimate bearing capacity by Terzaghi, Meyerhof, Hansen and Vesic")
		fmt.Println("    • Shape, depth and inclination correction factors")
		fmt.Println("    • SPT N-value correction pipeline and design N-value")
		fmt.Println("    • Settlement-based allowable bearing capacity")
		fmt.Println()
		fmt.Println("  Use 'gosbc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
