// Package allowable provides settlement-based allowable bearing capacity
// correlations (Terzaghi-Peck, Meyerhof, Bowles) and Skempton's net
// bearing capacity for cohesive soils, all driven by SPT N-values.
package allowable

import (
	"math"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/alexiusacademia/gosbc/internal/geotech"
)

const (
	// MaxSettlement is the settlement (mm) the correlations were
	// validated for; requests beyond it are rejected, not extrapolated.
	MaxSettlement = 25.4

	// widthBreak (m) separates the narrow- and wide-footing branches of
	// the Terzaghi-Peck/Meyerhof/Bowles correlations (4 ft).
	widthBreak = 1.22
)

func settlementRatio(actual float64) (float64, error) {
	if actual > MaxSettlement {
		return 0, &geotech.SettlementError{Actual: actual, Max: MaxSettlement}
	}
	return actual / MaxSettlement, nil
}

// widthTerm is the ((3.28B + 1) / 3.28B)² term of the wide-footing branch.
func widthTerm(width float64) float64 {
	return math.Pow((3.28*width+1)/(3.28*width), 2)
}

// depthFactor is min(1 + k·Df/B, 1 + k).
func depthFactor(fs foundation.Size, k float64) float64 {
	return math.Min(1+k*fs.DepthToWidthRatio(), 1+k)
}

// MeyerhofABC returns the Meyerhof (1956) allowable bearing capacity
// (kN/m²) for cohesionless soils from the SPT N-value and the actual
// settlement (mm).
func MeyerhofABC(sptN, actualSettlement float64, fs foundation.Size) (float64, error) {
	sr, err := settlementRatio(actualSettlement)
	if err != nil {
		return 0, err
	}
	fd := depthFactor(fs, 0.33)

	var abc float64
	if fs.Width() <= widthBreak {
		abc = 12 * sptN * fd * sr
	} else {
		abc = 8 * sptN * widthTerm(fs.Width()) * fd * sr
	}
	return geotech.Round(abc), nil
}

// BowlesABC returns the Bowles (1997) allowable bearing capacity (kN/m²)
// for cohesionless soils from the design N-value and the actual
// settlement (mm).
func BowlesABC(nDesign, actualSettlement float64, fs foundation.Size) (float64, error) {
	sr, err := settlementRatio(actualSettlement)
	if err != nil {
		return 0, err
	}
	fd := depthFactor(fs, 0.33)

	var abc float64
	if fs.Width() <= widthBreak {
		abc = 19.16 * nDesign * fd * sr
	} else {
		abc = 11.98 * nDesign * widthTerm(fs.Width()) * fd * sr
	}
	return geotech.Round(abc), nil
}

// TerzaghiPeckABC returns the Terzaghi and Peck (1948) allowable bearing
// capacity (kN/m²) for cohesionless soils. waterDepth is the depth of
// the water table below ground surface (m); a water table at or above
// the footing base weighs in through the correction c_w = 2 - D/(2B).
func TerzaghiPeckABC(sptN, actualSettlement, waterDepth float64, fs foundation.Size) (float64, error) {
	sr, err := settlementRatio(actualSettlement)
	if err != nil {
		return 0, err
	}
	fd := depthFactor(fs, 0.25)

	ref := fs.Depth
	if waterDepth > fs.Depth {
		ref = waterDepth
	}
	cw := math.Min(2-ref/(2*fs.Width()), 2)

	var abc float64
	if fs.Width() <= widthBreak {
		abc = 12 * sptN * (1 / (cw * fd)) * sr
	} else {
		abc = 8 * sptN * widthTerm(fs.Width()) * (1 / (cw * fd)) * sr
	}
	return geotech.Round(abc), nil
}

// skemptonNc returns Skempton's bearing capacity factor N_c for the
// nominal footing shape, capped per shape.
func skemptonNc(fs foundation.Size) float64 {
	dRatio := fs.DepthToWidthRatio()

	switch fs.Footing.Shape {
	case foundation.Square, foundation.Circular:
		return math.Min(6*(1+0.2*dRatio), 9)
	case foundation.Rectangular:
		lRatio := fs.WidthToLengthRatio()
		if dRatio <= 2.5 {
			return math.Min(5*(1+0.2*lRatio)*(1+0.2*dRatio), 9)
		}
		return math.Min(7.5*(1+0.2*lRatio), 9)
	default:
		return math.Min(5*(1+0.2*dRatio), 7.5)
	}
}

// SkemptonNetSBC returns the Skempton (1957) net safe bearing capacity
// (kN/m²) for cohesive soils from the energy-corrected N_60.
func SkemptonNetSBC(sptN60 float64, fs foundation.Size) float64 {
	return geotech.Round(2 * sptN60 * skemptonNc(fs))
}

// SkemptonNetABC returns the Skempton (1957) net allowable bearing
// capacity (kN/m²) for cohesive soils from the design N-value.
func SkemptonNetABC(nDesign float64, fs foundation.Size) float64 {
	return geotech.Round(2 * nDesign * skemptonNc(fs))
}
