package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/bearing"
	"github.com/alexiusacademia/gosbc/internal/diagram"
	"github.com/alexiusacademia/gosbc/internal/geotech"
	"github.com/alexiusacademia/gosbc/internal/soil"
	"github.com/spf13/cobra"
)

var (
	// Theory and geometry inputs
	ultTheory       string
	ultShape        string
	ultWidth        float64
	ultLength       float64
	ultDepth        float64
	ultEccentricity float64

	// Soil inputs
	ultCohesion      float64
	ultFrictionAngle float64
	ultUnitWeight    float64

	// Environment and loading
	ultWaterLevel float64
	ultBeta       float64
	ultTotalLoad  float64

	// Options
	ultNgamma     string
	ultLocalShear bool
	ultSketch     bool
)

var ultimateCmd = &cobra.Command{
	Use:   "ultimate",
	Short: "Compute the ultimate bearing capacity of a shallow foundation",
	Long: `Calculate the ultimate bearing capacity q_u of a shallow foundation
using a chosen theory (Terzaghi, Meyerhof, Hansen or Vesic).

Terzaghi uses the classical closed forms with shape-dependent
coefficients; the other theories use the general formula
q_u = cNc·sc·dc·ic + qNq·sq·dq·iq + 0.5γBNγ·sγ·dγ·iγ.

Examples:
  # Terzaghi, square footing
  gosbc ultimate --theory terzaghi --shape square --width 1.2 --depth 1.5 \
    --cohesion 16 --friction-angle 27 --unit-weight 18.5

  # Vesic with a water table at 2 m
  gosbc ultimate --theory vesic --shape square --width 2 --depth 1.5 \
    --cohesion 20 --friction-angle 30 --unit-weight 18 --water-level 2`,
	Run: runUltimate,
}

func init() {
	rootCmd.AddCommand(ultimateCmd)

	// Theory and geometry flags
	ultimateCmd.Flags().StringVarP(&ultTheory, "theory", "t", "terzaghi", "Bearing capacity theory (terzaghi|meyerhof|hansen|vesic)")
	ultimateCmd.Flags().StringVarP(&ultShape, "shape", "s", "square", "Footing shape (strip|square|circular|rectangular)")
	ultimateCmd.Flags().Float64VarP(&ultWidth, "width", "b", 0, "Footing width or diameter (m) [required]")
	ultimateCmd.Flags().Float64VarP(&ultLength, "length", "l", 0, "Footing length (m), rectangular only")
	ultimateCmd.Flags().Float64VarP(&ultDepth, "depth", "d", 0, "Foundation depth Df (m) [required]")
	ultimateCmd.Flags().Float64VarP(&ultEccentricity, "eccentricity", "e", 0, "Load eccentricity (m)")

	// Soil flags
	ultimateCmd.Flags().Float64Var(&ultCohesion, "cohesion", 0, "Soil cohesion c (kN/m²)")
	ultimateCmd.Flags().Float64Var(&ultFrictionAngle, "friction-angle", 0, "Internal angle of friction φ (degrees)")
	ultimateCmd.Flags().Float64Var(&ultUnitWeight, "unit-weight", 0, "Soil unit weight γ (kN/m³) [required]")

	// Environment and loading flags
	ultimateCmd.Flags().Float64Var(&ultWaterLevel, "water-level", math.Inf(1), "Water table depth below ground surface (m)")
	ultimateCmd.Flags().Float64Var(&ultBeta, "beta", 0, "Load inclination from the vertical β (degrees)")
	ultimateCmd.Flags().Float64Var(&ultTotalLoad, "load", 0, "Total vertical load (kN), Hansen inclination only")

	// Option flags
	ultimateCmd.Flags().StringVar(&ultNgamma, "ngamma", "meyerhof", "Terzaghi Nγ formula (meyerhof|hansen)")
	ultimateCmd.Flags().BoolVar(&ultLocalShear, "local-shear", false, "Reduce strength parameters for local shear failure")
	ultimateCmd.Flags().BoolVar(&ultSketch, "sketch", false, "Print an ASCII foundation cross-section")

	ultimateCmd.MarkFlagRequired("width")
	ultimateCmd.MarkFlagRequired("depth")
	ultimateCmd.MarkFlagRequired("unit-weight")
}

func runUltimate(cmd *cobra.Command, args []string) {
	theory, err := bearing.ParseTheory(ultTheory)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	ngamma, err := geotech.ParseEng(ultNgamma)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fs, err := buildFoundation(ultShape, ultWidth, ultLength, ultDepth, ultEccentricity)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sp := soil.Params{
		Cohesion:      ultCohesion,
		FrictionAngle: ultFrictionAngle,
		UnitWeight:    ultUnitWeight,
	}
	if err := sp.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	calc := bearing.NewCalculator(theory, sp, fs, ultLocalShear)
	calc.WaterLevel = ultWaterLevel
	calc.NgammaEng = ngamma
	calc.Inclination = bearing.InclinationInput{
		Beta:      ultBeta,
		Cohesion:  sp.Cohesion,
		TotalLoad: ultTotalLoad,
	}

	qu, err := calc.Ultimate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	factors, err := bearing.CapacityFactors(theory, calc.Soil.FrictionAngle, ngamma)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     ULTIMATE BEARING CAPACITY - %s\n", theory)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Footing Shape:\t%s\n", fs.Footing.Shape)
	fmt.Fprintf(w, "  Width (B):\t%.2f m\n", fs.Width())
	if !math.IsInf(fs.Length(), 1) {
		fmt.Fprintf(w, "  Length (L):\t%.2f m\n", fs.Length())
	}
	fmt.Fprintf(w, "  Depth (Df):\t%.2f m\n", fs.Depth)
	if fs.Eccentricity > 0 {
		fmt.Fprintf(w, "  Eccentricity (e):\t%.2f m\n", fs.Eccentricity)
		fmt.Fprintf(w, "  Effective Width (B'):\t%.2f m\n", fs.EffectiveWidth())
	}
	fmt.Fprintf(w, "  Cohesion (c):\t%.2f kN/m²\n", calc.Soil.Cohesion)
	fmt.Fprintf(w, "  Friction Angle (φ):\t%.2f°\n", calc.Soil.FrictionAngle)
	fmt.Fprintf(w, "  Unit Weight (γ):\t%.2f kN/m³\n", calc.Soil.UnitWeight)
	if !math.IsInf(ultWaterLevel, 1) {
		fmt.Fprintf(w, "  Water Table Depth:\t%.2f m\n", ultWaterLevel)
	}
	if ultLocalShear {
		fmt.Fprintf(w, "  Local Shear:\tapplied (c' = 2c/3, φ' = arctan(2tanφ/3))\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("BEARING CAPACITY FACTORS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nc:\t%.2f\n", factors.Nc)
	fmt.Fprintf(w, "  Nq:\t%.2f\n", factors.Nq)
	fmt.Fprintf(w, "  Nγ:\t%.2f\n", factors.Ngamma)
	w.Flush()
	fmt.Println()

	if theory != bearing.Terzaghi {
		sf, err := bearing.TheoryShapeFactors(theory, fs, calc.Soil.FrictionAngle)
		if err == nil {
			df := bearing.TheoryDepthFactors(theory, fs, calc.Soil.FrictionAngle)
			inf := bearing.TheoryInclinationFactors(theory, fs, calc.Soil.FrictionAngle, calc.Inclination)
			fmt.Println("CORRECTION FACTORS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  Shape (sc, sq, sγ):\t%.2f  %.2f  %.2f\n", sf.Sc, sf.Sq, sf.Sgamma)
			fmt.Fprintf(w, "  Depth (dc, dq, dγ):\t%.2f  %.2f  %.2f\n", df.Dc, df.Dq, df.Dgamma)
			fmt.Fprintf(w, "  Inclination (ic, iq, iγ):\t%.2f  %.2f  %.2f\n", inf.Ic, inf.Iq, inf.Igamma)
			w.Flush()
			fmt.Println()
		}
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ULTIMATE CAPACITY q_u = %.2f kN/m²\n", qu)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if ultSketch {
		fmt.Println(diagram.DrawFoundationSketch(diagram.SketchData{
			Foundation:       fs,
			WaterLevel:       ultWaterLevel,
			UltimateCapacity: qu,
		}))
	}
}
