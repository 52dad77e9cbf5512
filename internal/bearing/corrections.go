package bearing

import (
	"math"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// ShapeFactors holds the shape correction factors {s_c, s_q, s_gamma}.
type ShapeFactors struct {
	Sc     float64
	Sq     float64
	Sgamma float64
}

// DepthFactors holds the depth correction factors {d_c, d_q, d_gamma}.
type DepthFactors struct {
	Dc     float64
	Dq     float64
	Dgamma float64
}

// InclinationFactors holds the load inclination correction factors
// {i_c, i_q, i_gamma}.
type InclinationFactors struct {
	Ic     float64
	Iq     float64
	Igamma float64
}

var unitShape = ShapeFactors{Sc: 1, Sq: 1, Sgamma: 1}
var unitDepth = DepthFactors{Dc: 1, Dq: 1, Dgamma: 1}
var unitInclination = InclinationFactors{Ic: 1, Iq: 1, Igamma: 1}

// TheoryShapeFactors returns the shape factors of a theory for the given
// foundation, dispatching on the reclassified (effective) footing shape.
// Terzaghi's classical method carries no separate shape factors; its
// shape dependence lives in the combination coefficients instead.
func TheoryShapeFactors(theory Theory, fs foundation.Size, phi float64) (ShapeFactors, error) {
	sf, err := shapeFactors(theory, fs, phi)
	if err != nil {
		return ShapeFactors{}, err
	}
	sf.Sc = geotech.Round(sf.Sc)
	sf.Sq = geotech.Round(sf.Sq)
	sf.Sgamma = geotech.Round(sf.Sgamma)
	return sf, nil
}

func shapeFactors(theory Theory, fs foundation.Size, phi float64) (ShapeFactors, error) {
	if theory == Terzaghi {
		return unitShape, nil
	}

	shape := fs.EffectiveShape()
	ratio := fs.WidthToLengthRatio()

	switch theory {
	case Meyerhof:
		// Meyerhof expresses all shapes through the B/L ratio; a strip
		// footing (ratio 0) degenerates to unit factors.
		nq, nc := generalNq(phi), generalNc(phi)
		return ShapeFactors{
			Sc:     1 + ratio*(nq/nc),
			Sq:     1 + ratio*geotech.Tan(phi),
			Sgamma: 1 - 0.4*ratio,
		}, nil

	case Hansen:
		switch shape {
		case foundation.Strip:
			return unitShape, nil
		case foundation.Square:
			return ShapeFactors{Sc: 1.3, Sq: 1.2, Sgamma: 0.8}, nil
		case foundation.Circular:
			return ShapeFactors{Sc: 1.3, Sq: 1.2, Sgamma: 0.6}, nil
		case foundation.Rectangular:
			return ShapeFactors{
				Sc:     1 + 0.2*ratio,
				Sq:     1 + 0.2*ratio,
				Sgamma: 1 - 0.4*ratio,
			}, nil
		}

	case Vesic:
		nq, nc := generalNq(phi), generalNc(phi)
		switch shape {
		case foundation.Strip:
			return unitShape, nil
		case foundation.Square, foundation.Circular:
			return ShapeFactors{
				Sc:     1 + nq/nc,
				Sq:     1 + geotech.Tan(phi),
				Sgamma: 0.6,
			}, nil
		case foundation.Rectangular:
			return ShapeFactors{
				Sc:     1 + ratio*(nq/nc),
				Sq:     1 + ratio*geotech.Tan(phi),
				Sgamma: 1 - 0.4*ratio,
			}, nil
		}
	}

	return ShapeFactors{}, &geotech.SelectorError{
		Selector: fs.EffectiveShape().String(),
		Context:  "footing shape",
		Allowed:  "strip, square, circular, rectangular",
	}
}

// TheoryDepthFactors returns the depth factors of a theory for the given
// foundation. Meyerhof and Vesic switch to an arctan-based deep formula
// when Df/B exceeds 1; the boundary itself uses the shallow form.
func TheoryDepthFactors(theory Theory, fs foundation.Size, phi float64) DepthFactors {
	df := depthFactors(theory, fs, phi)
	df.Dc = geotech.Round(df.Dc)
	df.Dq = geotech.Round(df.Dq)
	df.Dgamma = geotech.Round(df.Dgamma)
	return df
}

func depthFactors(theory Theory, fs foundation.Size, phi float64) DepthFactors {
	ratio := fs.DepthToWidthRatio()

	switch theory {
	case Terzaghi:
		return unitDepth

	case Hansen:
		dc := 1 + 0.35*ratio
		return DepthFactors{Dc: dc, Dq: dc, Dgamma: 1}

	case Meyerhof, Vesic:
		k := 2 * geotech.Tan(phi) * math.Pow(1-geotech.Sin(phi), 2)
		if ratio <= 1 {
			return DepthFactors{
				Dc:     1 + 0.4*ratio,
				Dq:     1 + k*ratio,
				Dgamma: 1,
			}
		}
		deep := math.Atan(ratio) * (math.Pi / 180)
		return DepthFactors{
			Dc:     1 + 0.4*deep,
			Dq:     1 + k*deep,
			Dgamma: 1,
		}
	}

	return unitDepth
}

// InclinationInput carries the extra quantities Hansen's inclination
// factors depend on besides the inclination angle itself.
type InclinationInput struct {
	Beta      float64 // load inclination from the vertical (degrees)
	Cohesion  float64 // kN/m²
	TotalLoad float64 // total vertical load on the foundation (kN)
}

// TheoryInclinationFactors returns the load inclination factors of a
// theory. Hansen's i_c and i_q divide the inclination by load- and
// cohesion-dependent quantities instead of 90°, a structurally different
// formula from the Meyerhof/Vesic squared-ratio form.
func TheoryInclinationFactors(theory Theory, fs foundation.Size, phi float64, in InclinationInput) InclinationFactors {
	inf := inclinationFactors(theory, fs, phi, in)
	inf.Ic = geotech.Round(inf.Ic)
	inf.Iq = geotech.Round(inf.Iq)
	inf.Igamma = geotech.Round(inf.Igamma)
	return inf
}

func inclinationFactors(theory Theory, fs foundation.Size, phi float64, in InclinationInput) InclinationFactors {
	if theory == Terzaghi || in.Beta == 0 {
		return unitInclination
	}

	if theory == Hansen {
		width, length := fs.Footing.Dimensions()
		ic := 1 - in.Beta/(2*in.Cohesion*width*length)
		iq := 1 - (1.5*in.Beta)/in.TotalLoad
		return InclinationFactors{Ic: ic, Iq: iq, Igamma: iq * iq}
	}

	ic := math.Pow(1-in.Beta/90, 2)
	return InclinationFactors{
		Ic:     ic,
		Iq:     ic,
		Igamma: math.Pow(1-in.Beta/phi, 2),
	}
}
