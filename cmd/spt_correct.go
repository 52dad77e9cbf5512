package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gosbc/internal/geotech"
	"github.com/alexiusacademia/gosbc/internal/spt"
	"github.com/spf13/cobra"
)

var (
	sptRecorded float64
	sptEOP      float64
	sptMethod   string

	sptHammer   float64
	sptBorehole float64
	sptSampler  float64
	sptRod      float64

	sptDilatancy bool
)

var sptCorrectCmd = &cobra.Command{
	Use:   "correct",
	Short: "Correct a recorded SPT N-value",
	Long: `Run the SPT correction pipeline on a recorded N-value: energy
normalization to 60% hammer efficiency, overburden pressure correction by
the selected method, and (optionally) the Terzaghi-Peck dilatancy
correction for saturated silty fine sands.

Examples:
  # Skempton overburden correction at 103.8 kN/m²
  gosbc spt correct --n 22 --eop 103.8 --method skempton

  # Gibbs-Holtz with dilatancy correction
  gosbc spt correct --n 22 --eop 103.8 --method gibbs --dilatancy`,
	Run: runSptCorrect,
}

func init() {
	sptCmd.AddCommand(sptCorrectCmd)

	sptCorrectCmd.Flags().Float64VarP(&sptRecorded, "n", "n", 0, "Recorded SPT N-value [required]")
	sptCorrectCmd.Flags().Float64Var(&sptEOP, "eop", 0, "Effective overburden pressure (kN/m²) [required]")
	sptCorrectCmd.Flags().StringVarP(&sptMethod, "method", "m", "skempton", "Overburden correction (skempton|bazaraa|gibbs|wolff|liao)")

	sptCorrectCmd.Flags().Float64Var(&sptHammer, "hammer-efficiency", 0.6, "Hammer efficiency E_h")
	sptCorrectCmd.Flags().Float64Var(&sptBorehole, "borehole-correction", 1.0, "Borehole diameter correction C_B")
	sptCorrectCmd.Flags().Float64Var(&sptSampler, "sampler-correction", 1.0, "Sampler correction C_S")
	sptCorrectCmd.Flags().Float64Var(&sptRod, "rod-correction", 0.75, "Rod length correction C_R")

	sptCorrectCmd.Flags().BoolVar(&sptDilatancy, "dilatancy", false, "Apply the Terzaghi-Peck dilatancy correction")

	sptCorrectCmd.MarkFlagRequired("n")
	sptCorrectCmd.MarkFlagRequired("eop")
}

func runSptCorrect(cmd *cobra.Command, args []string) {
	method, err := geotech.ParseEng(sptMethod)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	corr := spt.NewCorrections(sptEOP)
	corr.HammerEfficiency = sptHammer
	corr.BoreholeDiameter = sptBorehole
	corr.Sampler = sptSampler
	corr.RodLength = sptRod

	n60 := corr.N60(sptRecorded)
	corrected, err := corr.Overburden(sptRecorded, method)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SPT N-VALUE CORRECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Recorded N:\t%.0f\n", sptRecorded)
	fmt.Fprintf(w, "  Overburden Pressure:\t%.2f kN/m²\n", sptEOP)
	fmt.Fprintf(w, "  Method:\t%s\n", method)
	fmt.Fprintf(w, "  E_h, C_B, C_S, C_R:\t%.2f  %.2f  %.2f  %.2f\n", sptHammer, sptBorehole, sptSampler, sptRod)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  N60 (energy corrected):\t%.2f\n", n60)
	fmt.Fprintf(w, "  Overburden corrected:\t%.2f\n", corrected)
	if sptDilatancy {
		fmt.Fprintf(w, "  Dilatancy corrected:\t%.2f\n", corr.Dilatancy(sptRecorded))
	}
	w.Flush()
	fmt.Println()
}
