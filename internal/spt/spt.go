// Package spt corrects raw Standard Penetration Test blow counts into
// design N-values: hammer energy normalization, overburden pressure
// correction, dilatancy correction and depth-weighted aggregation.
package spt

import (
	"math"

	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// Corrections normalizes recorded SPT N-values for field procedure and
// overburden pressure. The zero value is not usable; construct with
// NewCorrections and override fields as needed.
type Corrections struct {
	HammerEfficiency   float64 // E_h
	BoreholeDiameter   float64 // C_B
	Sampler            float64 // C_S
	RodLength          float64 // C_R
	OverburdenPressure float64 // σ_o - effective overburden pressure (kN/m²)

	// Tolerance is the relative tolerance used to detect the Bazaraa-Peck
	// 71.8 kN/m² pressure boundary.
	Tolerance float64
}

// NewCorrections returns a Corrections with the conventional defaults:
// 60% hammer efficiency, unit borehole and sampler corrections, and a
// 0.75 rod length correction.
func NewCorrections(overburdenPressure float64) *Corrections {
	return &Corrections{
		HammerEfficiency:   0.6,
		BoreholeDiameter:   1.0,
		Sampler:            1.0,
		RodLength:          0.75,
		OverburdenPressure: overburdenPressure,
		Tolerance:          geotech.DefaultTolerance,
	}
}

// n60 is the full-precision energy-normalized N-value; the exported
// methods round only the value they return.
func (c *Corrections) n60(recorded float64) float64 {
	corr := c.HammerEfficiency * c.BoreholeDiameter * c.Sampler * c.RodLength
	return (corr * recorded) / 0.6
}

// N60 returns the recorded N-value corrected to 60% hammer efficiency,
// N_60 = (E_h C_B C_S C_R N) / 0.6.
func (c *Corrections) N60(recorded float64) float64 {
	return geotech.Round(c.n60(recorded))
}

// SkemptonOPC applies the Skempton (1986) overburden pressure correction,
// C_N = 2 / (1 + 0.01044 σ_o).
func (c *Corrections) SkemptonOPC(recorded float64) float64 {
	n60 := c.n60(recorded)
	corrected := (2 / (1 + 0.01044*c.OverburdenPressure)) * n60
	return geotech.Round(math.Min(corrected, 2*n60))
}

// bazaraaBoundary is the overburden pressure at which the Bazaraa-Peck
// correction switches branches.
const bazaraaBoundary = 71.8

// BazaraaPeckOPC applies the Bazaraa (1967) / Peck and Bazaraa (1969)
// overburden pressure correction. At the 71.8 kN/m² boundary pressure
// (compared within Tolerance) the corrected value equals N_60.
func (c *Corrections) BazaraaPeckOPC(recorded float64) float64 {
	n60 := c.n60(recorded)

	if geotech.IsClose(c.OverburdenPressure, bazaraaBoundary, c.Tolerance) {
		return geotech.Round(n60)
	}

	var corrected float64
	if c.OverburdenPressure < bazaraaBoundary {
		corrected = 4 * n60 / (1 + 0.0418*c.OverburdenPressure)
	} else {
		corrected = 4 * n60 / (3.25 + 0.0104*c.OverburdenPressure)
	}
	return geotech.Round(math.Min(corrected, 2*n60))
}

// GibbsHoltzOPC applies the Gibbs and Holtz (1957) overburden pressure
// correction, C_N = 350 / (σ_o + 70), valid up to 280 kN/m². When the
// corrected-to-recorded ratio leaves the 0.45..2.0 band on the high side
// the corrected value is halved before the ceiling check.
func (c *Corrections) GibbsHoltzOPC(recorded float64) (float64, error) {
	const maxPressure = 280.0
	if c.OverburdenPressure > maxPressure {
		return 0, &geotech.DomainError{
			Value:   c.OverburdenPressure,
			Limit:   maxPressure,
			Message: "overburden pressure above the Gibbs-Holtz validity range",
		}
	}

	n60 := c.n60(recorded)
	corrected := n60 * (350 / (c.OverburdenPressure + 70))

	ratio := corrected / n60
	if ratio > 0.45 && ratio < 2.0 {
		return geotech.Round(corrected), nil
	}
	if ratio >= 2.0 {
		corrected /= 2
	}
	return geotech.Round(math.Min(corrected, 2*n60)), nil
}

// PeckOPC applies the Peck, Hanson and Thornburn (1974) overburden
// pressure correction, C_N = 0.77 log10(1905/σ_o), valid from 24 kN/m².
func (c *Corrections) PeckOPC(recorded float64) (float64, error) {
	const minPressure = 24.0
	if c.OverburdenPressure < minPressure {
		return 0, &geotech.DomainError{
			Value:   c.OverburdenPressure,
			Limit:   minPressure,
			Message: "overburden pressure below the Peck et al validity range",
		}
	}

	n60 := c.n60(recorded)
	corrected := 0.77 * math.Log10(1905/c.OverburdenPressure) * n60
	return geotech.Round(math.Min(corrected, 2*n60)), nil
}

// LiaoWhitmanOPC applies the Liao and Whitman (1986) overburden pressure
// correction, C_N = sqrt(100/σ_o).
func (c *Corrections) LiaoWhitmanOPC(recorded float64) float64 {
	n60 := c.n60(recorded)
	corrected := math.Sqrt(100/c.OverburdenPressure) * n60
	return geotech.Round(math.Min(corrected, 2*n60))
}

// Overburden dispatches to the overburden pressure correction selected by
// eng. Wolff selects the Peck et al (1974) formula.
func (c *Corrections) Overburden(recorded float64, eng geotech.Eng) (float64, error) {
	switch eng {
	case geotech.Skempton:
		return c.SkemptonOPC(recorded), nil
	case geotech.Bazaraa:
		return c.BazaraaPeckOPC(recorded), nil
	case geotech.Gibbs:
		return c.GibbsHoltzOPC(recorded)
	case geotech.Wolff:
		return c.PeckOPC(recorded)
	case geotech.Liao:
		return c.LiaoWhitmanOPC(recorded), nil
	}
	return 0, &geotech.SelectorError{
		Selector: eng.String(),
		Context:  "overburden pressure correction",
		Allowed:  "skempton, bazaraa, gibbs, wolff, liao",
	}
}

// Dilatancy applies the Terzaghi and Peck (1967) dilatancy correction for
// saturated silty fine sands: N_c = 15 + 0.5(N_60 - 15) when N_60
// exceeds 15, passthrough otherwise.
func (c *Corrections) Dilatancy(recorded float64) float64 {
	n60 := c.n60(recorded)
	if n60 <= 15 {
		return geotech.Round(n60)
	}
	return geotech.Round(15 + 0.5*(n60-15))
}

// NDesign aggregates corrected N-values within the foundation influence
// zone (Df to Df + 2B, index 1 nearest the footing base) into the design
// N-value, weighting layer i by 1/i². With takeMin set, the minimum
// corrected value is used instead (Terzaghi and Peck convention).
// An empty sequence yields 0.
func NDesign(corrected []float64, takeMin bool) float64 {
	if len(corrected) == 0 {
		return 0.0
	}

	if takeMin {
		minVal := corrected[0]
		for _, v := range corrected[1:] {
			minVal = math.Min(minVal, v)
		}
		return geotech.Round(minVal)
	}

	var total, weights float64
	for i, v := range corrected {
		w := 1 / math.Pow(float64(i+1), 2)
		total += w * v
		weights += w
	}
	return geotech.Round(total / weights)
}
