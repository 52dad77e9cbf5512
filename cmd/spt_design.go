package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosbc/internal/spt"
	"github.com/spf13/cobra"
)

var (
	designValues []float64
	designMin    bool
)

var sptDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Aggregate corrected N-values into the design N-value",
	Long: `Compute the design N-value from corrected SPT N-values within the
foundation influence zone (Df to Df + 2B), ordered from the footing base
down. The default is the depth-weighted average Σ(Ni/i²)/Σ(1/i²); the
--min flag takes the lowest value instead (Terzaghi-Peck convention).

Examples:
  gosbc spt design --values 7.32,15.08,24.64
  gosbc spt design --values 7.32,15.08,24.64 --min`,
	Run: runSptDesign,
}

func init() {
	sptCmd.AddCommand(sptDesignCmd)

	sptDesignCmd.Flags().Float64SliceVar(&designValues, "values", nil, "Corrected N-values, base-first [required]")
	sptDesignCmd.Flags().BoolVar(&designMin, "min", false, "Take the minimum corrected value")

	sptDesignCmd.MarkFlagRequired("values")
}

func runSptDesign(cmd *cobra.Command, args []string) {
	nDesign := spt.NDesign(designValues, designMin)

	fmt.Println()
	fmt.Printf("  Corrected N-values: %v\n", designValues)
	if designMin {
		fmt.Println("  Aggregation: minimum (Terzaghi-Peck)")
	} else {
		fmt.Println("  Aggregation: depth-weighted average")
	}
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN N-VALUE = %.2f\n", nDesign)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
