package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosbc/internal/bearing"
	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// ExportFactorCurves exports the N_c, N_q and N_gamma curves of a theory
// over friction angles 0..maxPhi (degrees) to an image file. The file
// format follows the extension (.png, .svg, .pdf).
func ExportFactorCurves(theory bearing.Theory, ngammaEng geotech.Eng, maxPhi float64, filename string) error {
	if maxPhi <= 0 {
		return fmt.Errorf("maximum friction angle must be positive, got %.2f", maxPhi)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Bearing Capacity Factors - %s", theory)
	p.X.Label.Text = "Friction angle φ (degrees)"
	p.Y.Label.Text = "Factor value"

	const steps = 90
	nc := make(plotter.XYs, 0, steps+1)
	nq := make(plotter.XYs, 0, steps+1)
	ngamma := make(plotter.XYs, 0, steps+1)

	for i := 0; i <= steps; i++ {
		phi := maxPhi * float64(i) / steps
		f, err := bearing.CapacityFactors(theory, phi, ngammaEng)
		if err != nil {
			return err
		}
		nc = append(nc, plotter.XY{X: phi, Y: f.Nc})
		nq = append(nq, plotter.XY{X: phi, Y: f.Nq})
		ngamma = append(ngamma, plotter.XY{X: phi, Y: f.Ngamma})
	}

	curves := []struct {
		name string
		pts  plotter.XYs
		col  color.RGBA
	}{
		{"Nc", nc, color.RGBA{R: 0, G: 0, B: 139, A: 255}},
		{"Nq", nq, color.RGBA{R: 178, G: 34, B: 34, A: 255}},
		{"Nγ", ngamma, color.RGBA{R: 34, G: 139, B: 34, A: 255}},
	}

	for _, c := range curves {
		line, err := plotter.NewLine(c.pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = c.col
		p.Add(line)
		p.Legend.Add(c.name, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// Make sure the output directory exists
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
