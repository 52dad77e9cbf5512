package foundation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFootingDimensions(t *testing.T) {
	circ := NewCircularFooting(1.2)
	w, l := circ.Dimensions()
	assert.Equal(t, 1.2, w)
	assert.Equal(t, 1.2, l)

	sq := NewSquareFooting(1.5)
	w, l = sq.Dimensions()
	assert.Equal(t, 1.5, w)
	assert.Equal(t, 1.5, l)

	strip := NewStripFooting(2.0)
	assert.Equal(t, 2.0, strip.Width)
	assert.True(t, math.IsInf(strip.Length, 1))
	assert.Equal(t, 0.0, strip.WidthToLengthRatio())

	rect := NewRectangularFooting(1.2, 1.4)
	assert.InDelta(t, 1.2/1.4, rect.WidthToLengthRatio(), 1e-12)
}

func TestNewValidation(t *testing.T) {
	var cerr *ConstructionError

	_, err := New(Rectangular, 1.2, 0, 1.5, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &cerr)

	_, err = New(Square, 0, 0, 1.5, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &cerr)

	_, err = New(Square, 1.2, 0, -0.1, 0)
	require.Error(t, err)

	_, err = New(Shape(99), 1.2, 0, 1.5, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &cerr)

	// Eccentricity eating the whole width
	_, err = New(Square, 1.2, 0, 1.5, 0.6)
	require.Error(t, err)

	fs, err := New(Rectangular, 1.2, 1.4, 1.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.2, fs.Width())
	assert.Equal(t, 1.4, fs.Length())
}

func TestParseShape(t *testing.T) {
	sh, err := ParseShape("Circle")
	require.NoError(t, err)
	assert.Equal(t, Circular, sh)

	_, err = ParseShape("hexagonal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strip")
}

func TestDerivedRatios(t *testing.T) {
	fs, err := New(Square, 1.2, 0, 1.5, 0.1)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, fs.EffectiveWidth(), 1e-12)
	assert.InDelta(t, 1.25, fs.DepthToWidthRatio(), 1e-12)
	assert.InDelta(t, 1.0, fs.WidthToLengthRatio(), 1e-12)
}

func TestEffectiveShape(t *testing.T) {
	// Strip never reclassifies
	fs, err := New(Strip, 1.2, 0, 1.5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, Strip, fs.EffectiveShape())

	// Centric square stays square
	fs, err = New(Square, 1.2, 0, 1.5, 0)
	require.NoError(t, err)
	assert.Equal(t, Square, fs.EffectiveShape())

	// Eccentricity shrinks the effective width: treated as rectangular
	fs, err = New(Square, 1.2, 0, 1.5, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Rectangular, fs.EffectiveShape())

	fs, err = New(Circular, 1.2, 0, 1.5, 0.05)
	require.NoError(t, err)
	assert.Equal(t, Rectangular, fs.EffectiveShape())

	// A rectangle with equal sides behaves as a square
	fs, err = New(Rectangular, 1.2, 1.2, 1.5, 0)
	require.NoError(t, err)
	assert.Equal(t, Square, fs.EffectiveShape())

	fs, err = New(Rectangular, 1.2, 1.4, 1.5, 0)
	require.NoError(t, err)
	assert.Equal(t, Rectangular, fs.EffectiveShape())
}
