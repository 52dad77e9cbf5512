package bearing

import (
	"testing"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSize(t *testing.T, shape foundation.Shape, width, length, depth, ecc float64) foundation.Size {
	t.Helper()
	fs, err := foundation.New(shape, width, length, depth, ecc)
	require.NoError(t, err)
	return fs
}

func TestTerzaghiCorrectionFactorsAreUnit(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)

	sf, err := TheoryShapeFactors(Terzaghi, fs, 27)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1, Sq: 1, Sgamma: 1}, sf)

	df := TheoryDepthFactors(Terzaghi, fs, 27)
	assert.Equal(t, DepthFactors{Dc: 1, Dq: 1, Dgamma: 1}, df)

	inf := TheoryInclinationFactors(Terzaghi, fs, 27, InclinationInput{Beta: 10})
	assert.Equal(t, InclinationFactors{Ic: 1, Iq: 1, Igamma: 1}, inf)
}

func TestHansenShapeFactors(t *testing.T) {
	sf, err := TheoryShapeFactors(Hansen, mustSize(t, foundation.Strip, 1.2, 0, 1.5, 0), 20)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1, Sq: 1, Sgamma: 1}, sf)

	sf, err = TheoryShapeFactors(Hansen, mustSize(t, foundation.Square, 1.2, 0, 1.5, 0), 20)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1.3, Sq: 1.2, Sgamma: 0.8}, sf)

	sf, err = TheoryShapeFactors(Hansen, mustSize(t, foundation.Circular, 1.2, 0, 1.5, 0), 20)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1.3, Sq: 1.2, Sgamma: 0.6}, sf)

	sf, err = TheoryShapeFactors(Hansen, mustSize(t, foundation.Rectangular, 1.2, 1.4, 1.5, 0), 20)
	require.NoError(t, err)
	assert.InDelta(t, 1.17, sf.Sc, 0.01)
	assert.InDelta(t, 1.17, sf.Sq, 0.01)
	assert.InDelta(t, 0.66, sf.Sgamma, 0.01)
}

func TestShapeFactorsUseEffectiveShape(t *testing.T) {
	// A rectangle with equal sides must match the square factors.
	square := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	rect := mustSize(t, foundation.Rectangular, 1.2, 1.2, 1.5, 0)

	for _, theory := range []Theory{Meyerhof, Hansen, Vesic} {
		want, err := TheoryShapeFactors(theory, square, 30)
		require.NoError(t, err)
		got, err := TheoryShapeFactors(theory, rect, 30)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s", theory)
	}

	// Eccentricity shrinks the effective width: the footing no longer
	// rates the square factors.
	eccentric := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0.05)
	sf, err := TheoryShapeFactors(Hansen, eccentric, 30)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1.2, Sq: 1.2, Sgamma: 0.6}, sf)
}

func TestMeyerhofVesicShapeFactors(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)

	for _, theory := range []Theory{Meyerhof, Vesic} {
		sf, err := TheoryShapeFactors(theory, fs, 30)
		require.NoError(t, err)
		assert.InDelta(t, 1.61, sf.Sc, 0.01, "%s", theory)
		assert.InDelta(t, 1.58, sf.Sq, 0.01, "%s", theory)
		assert.InDelta(t, 0.6, sf.Sgamma, 0.01, "%s", theory)
	}

	// Meyerhof degenerates to unit factors for a strip footing.
	sf, err := TheoryShapeFactors(Meyerhof, mustSize(t, foundation.Strip, 1.2, 0, 1.5, 0), 30)
	require.NoError(t, err)
	assert.Equal(t, ShapeFactors{Sc: 1, Sq: 1, Sgamma: 1}, sf)
}

func TestHansenDepthFactors(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	df := TheoryDepthFactors(Hansen, fs, 20)
	assert.InDelta(t, 1.44, df.Dc, 0.01)
	assert.InDelta(t, 1.44, df.Dq, 0.01)
	assert.Equal(t, 1.0, df.Dgamma)
}

func TestMeyerhofDepthFactorsShallow(t *testing.T) {
	// Df/B = 1 sits on the boundary and uses the shallow form.
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.2, 0)
	df := TheoryDepthFactors(Meyerhof, fs, 27)
	assert.InDelta(t, 1.40, df.Dc, 0.01)
	assert.InDelta(t, 1.30, df.Dq, 0.01)
	assert.Equal(t, 1.0, df.Dgamma)
}

func TestMeyerhofDepthFactorsDeep(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 2.4, 0)
	df := TheoryDepthFactors(Meyerhof, fs, 25)
	assert.InDelta(t, 1.01, df.Dc, 0.005)
	assert.InDelta(t, 1.01, df.Dq, 0.005)

	// The deep branch must not keep growing linearly with Df/B.
	shallowSlope := 1 + 0.4*2.0
	assert.Less(t, df.Dc, shallowSlope)
}

func TestInclinationFactorsVerticalLoad(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	for _, theory := range []Theory{Meyerhof, Hansen, Vesic} {
		inf := TheoryInclinationFactors(theory, fs, 27, InclinationInput{})
		assert.Equal(t, InclinationFactors{Ic: 1, Iq: 1, Igamma: 1}, inf, "%s", theory)
	}
}

func TestMeyerhofInclinationFactors(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5, 0)
	inf := TheoryInclinationFactors(Meyerhof, fs, 27, InclinationInput{Beta: 10})
	assert.InDelta(t, 0.79, inf.Ic, 0.01)
	assert.InDelta(t, 0.79, inf.Iq, 0.01)
	assert.InDelta(t, 0.40, inf.Igamma, 0.01)
}

func TestHansenInclinationFactors(t *testing.T) {
	fs := mustSize(t, foundation.Square, 2, 0, 1.5, 0)
	inf := TheoryInclinationFactors(Hansen, fs, 20, InclinationInput{
		Beta:      10,
		Cohesion:  20,
		TotalLoad: 600,
	})
	assert.InDelta(t, 0.94, inf.Ic, 0.01)
	assert.InDelta(t, 0.97, inf.Iq, 0.011)
	assert.InDelta(t, 0.95, inf.Igamma, 0.01)
}
