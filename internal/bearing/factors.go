package bearing

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// Theory selects the ultimate bearing capacity theory.
type Theory int

const (
	Terzaghi Theory = iota + 1
	Meyerhof
	Hansen
	Vesic
)

func (t Theory) String() string {
	switch t {
	case Terzaghi:
		return "terzaghi"
	case Meyerhof:
		return "meyerhof"
	case Hansen:
		return "hansen"
	case Vesic:
		return "vesic"
	}
	return fmt.Sprintf("Theory(%d)", int(t))
}

// ParseTheory converts a CLI flag value into a Theory.
func ParseTheory(s string) (Theory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terzaghi":
		return Terzaghi, nil
	case "meyerhof":
		return Meyerhof, nil
	case "hansen":
		return Hansen, nil
	case "vesic":
		return Vesic, nil
	}
	return 0, &geotech.SelectorError{
		Selector: s,
		Context:  "bearing capacity theory",
		Allowed:  "terzaghi, meyerhof, hansen, vesic",
	}
}

// Factors holds the bearing capacity factors of a theory at a given
// friction angle.
type Factors struct {
	Nc     float64
	Nq     float64
	Ngamma float64
}

// phiZeroTol treats friction angles this close to zero as the cohesive
// special case, avoiding the cot(0) singularity in N_c.
const phiZeroTol = 1e-12

// terzaghiNcZero and generalNcZero are the documented φ=0 values of N_c:
// Terzaghi's classical 5.7 and the Prandtl limit 2+π used by the
// Meyerhof/Hansen/Vesic family.
const (
	terzaghiNcZero = 5.7
	generalNcZero  = 5.14
)

// CapacityFactors returns the {N_c, N_q, N_gamma} set for the theory at
// friction angle phi (degrees), rounded to 2 decimal places. The Terzaghi
// theory additionally needs an N_gamma formula choice (Meyerhof or
// Hansen); every other theory ignores it.
func CapacityFactors(theory Theory, phi float64, ngammaEng geotech.Eng) (Factors, error) {
	f, err := capacityFactors(theory, phi, ngammaEng)
	if err != nil {
		return Factors{}, err
	}
	f.Nc = geotech.Round(f.Nc)
	f.Nq = geotech.Round(f.Nq)
	f.Ngamma = geotech.Round(f.Ngamma)
	return f, nil
}

// capacityFactors computes the factor set at full precision. Engines
// compose these raw values; rounding happens only at public boundaries.
func capacityFactors(theory Theory, phi float64, ngammaEng geotech.Eng) (Factors, error) {
	switch theory {
	case Terzaghi:
		ngamma, err := terzaghiNgamma(phi, ngammaEng)
		if err != nil {
			return Factors{}, err
		}
		return Factors{Nc: terzaghiNc(phi), Nq: terzaghiNq(phi), Ngamma: ngamma}, nil
	case Meyerhof, Vesic:
		nq := generalNq(phi)
		return Factors{Nc: generalNc(phi), Nq: nq, Ngamma: 2 * (nq + 1) * geotech.Tan(phi)}, nil
	case Hansen:
		nq := generalNq(phi)
		return Factors{Nc: generalNc(phi), Nq: nq, Ngamma: 1.8 * (nq - 1) * geotech.Tan(phi)}, nil
	}
	return Factors{}, &geotech.SelectorError{
		Selector: theory.String(),
		Context:  "bearing capacity theory",
		Allowed:  "terzaghi, meyerhof, hansen, vesic",
	}
}

// terzaghiNq implements N_q = e^((3π/2 - φ)tanφ) / (2cos²(45 + φ/2)).
func terzaghiNq(phi float64) float64 {
	num := math.Exp((3*math.Pi/2 - geotech.Deg2Rad(phi)) * geotech.Tan(phi))
	den := 2 * math.Pow(geotech.Cos(45+phi/2), 2)
	return num / den
}

// terzaghiNc implements N_c = cotφ (N_q - 1), with the classical 5.7
// special case at φ = 0.
func terzaghiNc(phi float64) float64 {
	if math.Abs(phi) < phiZeroTol {
		return terzaghiNcZero
	}
	return geotech.Cot(phi) * (terzaghiNq(phi) - 1)
}

// terzaghiNgamma selects between the Meyerhof (1963) and Brinch Hansen
// (1968) N_gamma proposals; Terzaghi gave no closed form of his own.
func terzaghiNgamma(phi float64, eng geotech.Eng) (float64, error) {
	switch eng {
	case geotech.Meyerhof:
		return (terzaghiNq(phi) - 1) * geotech.Tan(1.4*phi), nil
	case geotech.Hansen:
		return 1.8 * (terzaghiNq(phi) - 1) * geotech.Tan(phi), nil
	}
	return 0, &geotech.SelectorError{
		Selector: eng.String(),
		Context:  "terzaghi ngamma formula",
		Allowed:  "meyerhof, hansen",
	}
}

// generalNq implements N_q = tan²(45 + φ/2) e^(π tanφ), shared by
// Meyerhof, Hansen and Vesic.
func generalNq(phi float64) float64 {
	return math.Pow(geotech.Tan(45+phi/2), 2) * math.Exp(math.Pi*geotech.Tan(phi))
}

// generalNc implements N_c = cotφ (N_q - 1) with the 2+π limit at φ = 0.
func generalNc(phi float64) float64 {
	if math.Abs(phi) < phiZeroTol {
		return generalNcZero
	}
	return geotech.Cot(phi) * (generalNq(phi) - 1)
}
