package soil

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// Params holds the shear strength parameters of the bearing stratum.
type Params struct {
	Cohesion      float64 // c - cohesion (kN/m²)
	FrictionAngle float64 // φ - internal angle of friction (degrees)
	UnitWeight    float64 // γ - moist (bulk) unit weight (kN/m³)
}

// Validate performs the boundary range checks on the strength parameters.
func (p Params) Validate() error {
	if p.FrictionAngle < 0 || p.FrictionAngle >= 90 {
		return fmt.Errorf("friction angle must be in [0, 90), got %.2f", p.FrictionAngle)
	}
	if p.Cohesion < 0 {
		return fmt.Errorf("cohesion must not be negative, got %.2f", p.Cohesion)
	}
	if p.UnitWeight <= 0 {
		return fmt.Errorf("unit weight must be positive, got %.2f", p.UnitWeight)
	}
	return nil
}

// LocalShear returns a copy of the parameters reduced for local shear
// failure: c' = (2/3)c and φ' = arctan((2/3)tan φ). The receiver is left
// untouched, so the adjustment cannot be applied twice by accident.
func (p Params) LocalShear() Params {
	reduced := p
	reduced.Cohesion = (2.0 / 3.0) * p.Cohesion
	reduced.FrictionAngle = geotech.Rad2Deg(math.Atan((2.0 / 3.0) * geotech.Tan(p.FrictionAngle)))
	return reduced
}
