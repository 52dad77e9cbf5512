package bearing

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/alexiusacademia/gosbc/internal/soil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseSand is the worked example used throughout: c = 16 kN/m²,
// φ = 27°, γ = 18.5 kN/m³ under a footing at Df = 1.5 m.
var denseSand = soil.Params{Cohesion: 16, FrictionAngle: 27, UnitWeight: 18.5}

func TestTerzaghiUltimate(t *testing.T) {
	tests := []struct {
		name   string
		shape  foundation.Shape
		width  float64
		length float64
		want   float64
	}{
		{"strip", foundation.Strip, 1.2, 0, 1037.16},
		{"square", foundation.Square, 1.2, 0, 1151.84},
		{"circular", foundation.Circular, 1.2, 0, 1126.19},
		{"rectangular", foundation.Rectangular, 1.2, 1.4, 1135.45},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := mustSize(t, tc.shape, tc.width, tc.length, 1.5, 0)
			calc := NewCalculator(Terzaghi, denseSand, fs, false)
			qu, err := calc.Ultimate()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, qu, 0.01)
		})
	}
}

func TestTerzaghiUltimateAgainstPublished(t *testing.T) {
	// Published worked example quotes 1152.07 kN/m² for the square case,
	// composed from factors rounded to 2 decimal places. Full-precision
	// composition lands within the usual 1% engineering tolerance.
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	calc := NewCalculator(Terzaghi, denseSand, fs, false)
	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InEpsilon(t, 1152.07, qu, 0.01)
}

func TestTerzaghiLocalShear(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	calc := NewCalculator(Terzaghi, denseSand, fs, true)

	// The strength reduction happens once, at construction.
	assert.InDelta(t, 10.6667, calc.Soil.Cohesion, 1e-4)
	assert.InDelta(t, 18.7618, calc.Soil.FrictionAngle, 1e-4)

	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 431.74, qu, 0.01)
}

func TestMeyerhofUltimate(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	calc := NewCalculator(Meyerhof, denseSand, fs, false)
	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 1249.88, qu, 0.01)
}

func TestHansenUltimate(t *testing.T) {
	fs := mustSize(t, foundation.Square, 2, 0, 1.5, 0)
	sp := soil.Params{Cohesion: 20, FrictionAngle: 20, UnitWeight: 18}
	calc := NewCalculator(Hansen, sp, fs, false)
	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 799.66, qu, 0.01)
}

func TestVesicUltimate(t *testing.T) {
	fs := mustSize(t, foundation.Square, 2, 0, 1.5, 0)
	sp := soil.Params{Cohesion: 20, FrictionAngle: 30, UnitWeight: 18}
	calc := NewCalculator(Vesic, sp, fs, false)
	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 2457.35, qu, 0.01)
}

func TestWaterTableCorrections(t *testing.T) {
	fs := mustSize(t, foundation.Square, 2, 0, 1.5, 0)
	sp := soil.Params{Cohesion: 20, FrictionAngle: 30, UnitWeight: 18}

	// Water at the ground surface halves the surcharge and the
	// self-weight contributions.
	calc := NewCalculator(Vesic, sp, fs, false)
	calc.WaterLevel = 0
	qu, err := calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 1859.71, qu, 0.01)

	// Water below the base only reduces the self-weight term.
	calc = NewCalculator(Vesic, sp, fs, false)
	calc.WaterLevel = 2.0
	qu, err = calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 2366.62, qu, 0.01)

	// Water deeper than Df + B has no effect.
	calc = NewCalculator(Vesic, sp, fs, false)
	calc.WaterLevel = 10
	qu, err = calc.Ultimate()
	require.NoError(t, err)
	assert.InDelta(t, 2457.35, qu, 0.01)
}

func TestUltimateDefaults(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	calc := NewCalculator(Terzaghi, denseSand, fs, false)
	assert.True(t, math.IsInf(calc.WaterLevel, 1))
	assert.Equal(t, InclinationInput{}, calc.Inclination)
}

func TestUltimateInvalidNgammaSelector(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	calc := NewCalculator(Terzaghi, denseSand, fs, false)
	calc.NgammaEng = 0
	_, err := calc.Ultimate()
	assert.Error(t, err)
}
