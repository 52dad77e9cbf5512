package bearing

import (
	"math"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/alexiusacademia/gosbc/internal/geotech"
	"github.com/alexiusacademia/gosbc/internal/soil"
)

// Calculator computes the ultimate bearing capacity of a shallow
// foundation for a chosen theory. A Calculator is a plain value of its
// inputs: safe to use concurrently across instances, with no state
// beyond the parameters captured at construction.
type Calculator struct {
	Theory     Theory
	Soil       soil.Params
	Foundation foundation.Size

	// WaterLevel is the depth of the water table below ground surface.
	// +Inf (the default) means no water table within reach.
	WaterLevel float64

	// Inclination describes load obliquity. The zero value means a
	// vertical, centric load with unit inclination factors.
	Inclination InclinationInput

	// NgammaEng selects the N_gamma formula for the Terzaghi theory
	// (meyerhof or hansen). Ignored by the other theories.
	NgammaEng geotech.Eng
}

// NewCalculator returns a Calculator for the given theory and inputs.
// When applyLocalShear is set, the soil strength parameters are reduced
// for local shear failure once, here, before any factor computation;
// the caller's parameter value is never touched.
func NewCalculator(theory Theory, sp soil.Params, fs foundation.Size, applyLocalShear bool) *Calculator {
	if applyLocalShear {
		sp = sp.LocalShear()
	}
	return &Calculator{
		Theory:     theory,
		Soil:       sp,
		Foundation: fs,
		WaterLevel: math.Inf(1),
		NgammaEng:  geotech.Meyerhof,
	}
}

// Ultimate returns the ultimate bearing capacity q_u (kN/m²), rounded to
// 2 decimal places.
func (c *Calculator) Ultimate() (float64, error) {
	qu, err := c.ultimate()
	if err != nil {
		return 0, err
	}
	return geotech.Round(qu), nil
}

func (c *Calculator) ultimate() (float64, error) {
	if c.Theory == Terzaghi {
		return c.terzaghiUltimate()
	}

	phi := c.Soil.FrictionAngle
	factors, err := capacityFactors(c.Theory, phi, c.NgammaEng)
	if err != nil {
		return 0, err
	}
	sf, err := shapeFactors(c.Theory, c.Foundation, phi)
	if err != nil {
		return 0, err
	}
	df := depthFactors(c.Theory, c.Foundation, phi)
	inf := inclinationFactors(c.Theory, c.Foundation, phi, c.Inclination)

	cohesion := c.Soil.Cohesion * factors.Nc * sf.Sc * df.Dc * inf.Ic
	surcharge := c.surcharge() * factors.Nq * sf.Sq * df.Dq * inf.Iq
	embedment := 0.5 * c.embedmentWeight() * factors.Ngamma * sf.Sgamma * df.Dgamma * inf.Igamma

	return cohesion + surcharge + embedment, nil
}

// terzaghiUltimate applies Terzaghi's original closed forms, where the
// footing shape enters through fixed coefficients on the cohesion and
// embedment terms rather than through separate correction factors.
func (c *Calculator) terzaghiUltimate() (float64, error) {
	phi := c.Soil.FrictionAngle
	factors, err := capacityFactors(Terzaghi, phi, c.NgammaEng)
	if err != nil {
		return 0, err
	}

	var cohCoef, embCoef float64
	switch c.Foundation.Footing.Shape {
	case foundation.Strip:
		cohCoef, embCoef = 1.0, 0.5
	case foundation.Square:
		cohCoef, embCoef = 1.3, 0.4
	case foundation.Circular:
		cohCoef, embCoef = 1.3, 0.3
	case foundation.Rectangular:
		ratio := c.Foundation.WidthToLengthRatio()
		cohCoef = 1 + 0.3*ratio
		embCoef = 0.5 * (1 - 0.2*ratio)
	default:
		return 0, &geotech.SelectorError{
			Selector: c.Foundation.Footing.Shape.String(),
			Context:  "terzaghi footing shape",
			Allowed:  "strip, square, circular, rectangular",
		}
	}

	cohesion := cohCoef * c.Soil.Cohesion * factors.Nc
	surcharge := c.surcharge() * factors.Nq
	embedment := embCoef * c.embedmentWeight() * factors.Ngamma

	return cohesion + surcharge + embedment, nil
}

// surcharge returns the effective overburden stress γ·Df at the footing
// base, reduced when the water table sits above the base.
func (c *Calculator) surcharge() float64 {
	depth := c.Foundation.Depth
	corr := 1.0
	if !math.IsInf(c.WaterLevel, 1) && depth > 0 {
		submerged := math.Max(depth-c.WaterLevel, 0)
		corr = math.Min(1-0.5*submerged/depth, 1)
	}
	return c.Soil.UnitWeight * depth * corr
}

// embedmentWeight returns γ·B' for the self-weight term, with B' the
// effective width and γ reduced when the water table is within B' of the
// footing base.
func (c *Calculator) embedmentWeight() float64 {
	width := c.Foundation.EffectiveWidth()
	corr := 1.0
	if !math.IsInf(c.WaterLevel, 1) {
		below := math.Max(c.WaterLevel-c.Foundation.Depth, 0)
		corr = math.Min(0.5+0.5*below/width, 1)
	}
	return c.Soil.UnitWeight * width * corr
}
