package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/allowable"
	"github.com/spf13/cobra"
)

var (
	abcMethod       string
	abcShape        string
	abcWidth        float64
	abcLength       float64
	abcDepth        float64
	abcSptN         float64
	abcSettlement   float64
	abcWaterDepth   float64
	abcEccentricity float64
)

var allowableCmd = &cobra.Command{
	Use:   "allowable",
	Short: "Compute settlement-based allowable bearing capacity",
	Long: `Calculate the allowable bearing capacity from SPT N-values using a
settlement-based correlation (Terzaghi-Peck 1948, Meyerhof 1956 or
Bowles 1997 for cohesionless soils; Skempton 1957 net capacity for
cohesive soils).

The Terzaghi-Peck/Meyerhof/Bowles correlations are validated up to a
settlement of 25.4 mm; larger settlements are rejected.

Examples:
  gosbc allowable --method meyerhof --spt-n 11 --settlement 20 \
    --shape square --width 1.4 --depth 1.5

  gosbc allowable --method skempton --spt-n 11 --shape square \
    --width 1.2 --depth 1.5`,
	Run: runAllowable,
}

func init() {
	rootCmd.AddCommand(allowableCmd)

	allowableCmd.Flags().StringVarP(&abcMethod, "method", "m", "meyerhof", "Correlation (terzaghi-peck|meyerhof|bowles|skempton)")
	allowableCmd.Flags().StringVarP(&abcShape, "shape", "s", "square", "Footing shape (strip|square|circular|rectangular)")
	allowableCmd.Flags().Float64VarP(&abcWidth, "width", "b", 0, "Footing width or diameter (m) [required]")
	allowableCmd.Flags().Float64VarP(&abcLength, "length", "l", 0, "Footing length (m), rectangular only")
	allowableCmd.Flags().Float64VarP(&abcDepth, "depth", "d", 0, "Foundation depth Df (m) [required]")
	allowableCmd.Flags().Float64VarP(&abcEccentricity, "eccentricity", "e", 0, "Load eccentricity (m)")
	allowableCmd.Flags().Float64Var(&abcSptN, "spt-n", 0, "SPT N-value (N60 or N-design per method) [required]")
	allowableCmd.Flags().Float64Var(&abcSettlement, "settlement", 25.4, "Actual settlement (mm)")
	allowableCmd.Flags().Float64Var(&abcWaterDepth, "water-depth", 0, "Water table depth (m), Terzaghi-Peck only")

	allowableCmd.MarkFlagRequired("width")
	allowableCmd.MarkFlagRequired("depth")
	allowableCmd.MarkFlagRequired("spt-n")
}

func runAllowable(cmd *cobra.Command, args []string) {
	fs, err := buildFoundation(abcShape, abcWidth, abcLength, abcDepth, abcEccentricity)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var abc float64
	method := strings.ToLower(strings.TrimSpace(abcMethod))
	switch method {
	case "meyerhof":
		abc, err = allowable.MeyerhofABC(abcSptN, abcSettlement, fs)
	case "bowles":
		abc, err = allowable.BowlesABC(abcSptN, abcSettlement, fs)
	case "terzaghi-peck", "terzaghi":
		abc, err = allowable.TerzaghiPeckABC(abcSptN, abcSettlement, abcWaterDepth, fs)
	case "skempton":
		abc = allowable.SkemptonNetSBC(abcSptN, fs)
	default:
		fmt.Printf("Error: %q is not a valid correlation: available choices are terzaghi-peck, meyerhof, bowles, skempton\n", abcMethod)
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     ALLOWABLE BEARING CAPACITY - %s\n", strings.ToUpper(method))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Footing Shape:\t%s\n", fs.Footing.Shape)
	fmt.Fprintf(w, "  Width (B):\t%.2f m\n", fs.Width())
	fmt.Fprintf(w, "  Depth (Df):\t%.2f m\n", fs.Depth)
	fmt.Fprintf(w, "  SPT N-value:\t%.2f\n", abcSptN)
	if method != "skempton" {
		fmt.Fprintf(w, "  Settlement:\t%.2f mm (max %.1f mm)\n", abcSettlement, allowable.MaxSettlement)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ALLOWABLE CAPACITY q_a = %.2f kN/m²\n", abc)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
