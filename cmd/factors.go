package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/bearing"
	"github.com/alexiusacademia/gosbc/internal/diagram"
	"github.com/alexiusacademia/gosbc/internal/geotech"
	"github.com/spf13/cobra"
)

var (
	factorsTheory string
	factorsNgamma string
	factorsFrom   float64
	factorsTo     float64
	factorsStep   float64
	factorsPlot   string
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Tabulate bearing capacity factors over a friction angle range",
	Long: `Print the Nc, Nq and Nγ bearing capacity factors of a theory over a
range of friction angles, and optionally export the curves to an image.

Examples:
  # Terzaghi factors from 0° to 40°
  gosbc factors --theory terzaghi

  # Vesic factors, 5° steps, exported to a chart
  gosbc factors --theory vesic --step 5 --plot factors.png`,
	Run: runFactors,
}

func init() {
	rootCmd.AddCommand(factorsCmd)

	factorsCmd.Flags().StringVarP(&factorsTheory, "theory", "t", "terzaghi", "Bearing capacity theory (terzaghi|meyerhof|hansen|vesic)")
	factorsCmd.Flags().StringVar(&factorsNgamma, "ngamma", "meyerhof", "Terzaghi Nγ formula (meyerhof|hansen)")
	factorsCmd.Flags().Float64Var(&factorsFrom, "from", 0, "Starting friction angle (degrees)")
	factorsCmd.Flags().Float64Var(&factorsTo, "to", 40, "Ending friction angle (degrees)")
	factorsCmd.Flags().Float64Var(&factorsStep, "step", 2, "Friction angle step (degrees)")
	factorsCmd.Flags().StringVar(&factorsPlot, "plot", "", "Export the factor curves to an image file (.png, .svg, .pdf)")
}

func runFactors(cmd *cobra.Command, args []string) {
	theory, err := bearing.ParseTheory(factorsTheory)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	ngamma, err := geotech.ParseEng(factorsNgamma)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if factorsStep <= 0 || factorsTo < factorsFrom {
		fmt.Println("Error: invalid friction angle range")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BEARING CAPACITY FACTORS - %s\n", theory)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  φ (deg)\tNc\tNq\tNγ\n")
	fmt.Fprintf(w, "  ───────\t──────\t──────\t──────\n")
	for phi := factorsFrom; phi <= factorsTo+1e-9; phi += factorsStep {
		f, err := bearing.CapacityFactors(theory, phi, ngamma)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.2f\t%.2f\n", phi, f.Nc, f.Nq, f.Ngamma)
	}
	w.Flush()
	fmt.Println()

	if factorsPlot != "" {
		if err := diagram.ExportFactorCurves(theory, ngamma, factorsTo, factorsPlot); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
			return
		}
		fmt.Printf("  Factor curves exported to %s\n", factorsPlot)
		fmt.Println()
	}
}
