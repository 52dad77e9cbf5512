package geotech

import (
	"fmt"
	"math"
	"strings"
)

// Eng identifies the engineer (or research group) behind a particular
// formula variant. A given value is only meaningful within the calculator
// family that accepts it, e.g. Meyerhof/Hansen select the N_gamma formula
// for the Terzaghi theory while Skempton/Gibbs/Bazaraa/Wolff/Liao select
// an overburden pressure correction for SPT results.
type Eng int

const (
	Meyerhof Eng = iota + 1
	Hansen
	Skempton
	Gibbs
	Bazaraa
	Wolff
	Liao
)

func (e Eng) String() string {
	switch e {
	case Meyerhof:
		return "meyerhof"
	case Hansen:
		return "hansen"
	case Skempton:
		return "skempton"
	case Gibbs:
		return "gibbs"
	case Bazaraa:
		return "bazaraa"
	case Wolff:
		return "wolff"
	case Liao:
		return "liao"
	}
	return fmt.Sprintf("Eng(%d)", int(e))
}

// ParseEng converts a CLI flag value into an Eng selector.
func ParseEng(s string) (Eng, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meyerhof":
		return Meyerhof, nil
	case "hansen":
		return Hansen, nil
	case "skempton":
		return Skempton, nil
	case "gibbs":
		return Gibbs, nil
	case "bazaraa":
		return Bazaraa, nil
	case "wolff":
		return Wolff, nil
	case "liao":
		return Liao, nil
	}
	return 0, &SelectorError{
		Selector: s,
		Context:  "engineer",
		Allowed:  "meyerhof, hansen, skempton, gibbs, bazaraa, wolff, liao",
	}
}

// DefaultTolerance is the relative tolerance used for pressure boundary
// comparisons, e.g. the Bazaraa-Peck 71.8 kN/m² branch point.
const DefaultTolerance = 0.01

// Round rounds a final calculator result to 2 decimal places. It is
// applied only at public entry points, never to intermediate values.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsClose reports whether a and b agree within the given relative tolerance.
func IsClose(a, b, relTol float64) bool {
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// Trigonometric helpers taking angles in degrees. All engine formulas
// quote angles in degrees; radian conversion happens here and only here.

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

func Tan(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

func Sin(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func Cos(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func Cot(deg float64) float64 {
	return 1 / Tan(deg)
}
