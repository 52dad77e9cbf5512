package allowable

import (
	"testing"

	"github.com/alexiusacademia/gosbc/internal/foundation"
	"github.com/alexiusacademia/gosbc/internal/geotech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSize(t *testing.T, shape foundation.Shape, width, length, depth float64) foundation.Size {
	t.Helper()
	fs, err := foundation.New(shape, width, length, depth, 0)
	require.NoError(t, err)
	return fs
}

func TestMeyerhofABC(t *testing.T) {
	// Narrow footing branch (B <= 1.22 m).
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	abc, err := MeyerhofABC(11, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 138.24, abc, 0.01)

	// Wide footing branch.
	fs = mustSize(t, foundation.Square, 1.4, 0, 1.5)
	abc, err = MeyerhofABC(11, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 136.67, abc, 0.01)
}

func TestBowlesABC(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	abc, err := BowlesABC(11, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 220.72, abc, 0.01)

	fs = mustSize(t, foundation.Square, 1.4, 0, 1.5)
	abc, err = BowlesABC(11, 20, fs)
	require.NoError(t, err)
	assert.InDelta(t, 204.66, abc, 0.01)
}

func TestTerzaghiPeckABC(t *testing.T) {
	// Water above the base: the foundation depth governs the correction.
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	abc, err := TerzaghiPeckABC(11, 20, 1.2, fs)
	require.NoError(t, err)
	assert.InEpsilon(t, 60.37, abc, 0.01)

	// Water below the base.
	abc, err = TerzaghiPeckABC(11, 20, 1.7, fs)
	require.NoError(t, err)
	assert.InDelta(t, 64.37, abc, 0.01)

	fs = mustSize(t, foundation.Square, 1.4, 0, 1.5)
	abc, err = TerzaghiPeckABC(11, 20, 1.7, fs)
	require.NoError(t, err)
	assert.InEpsilon(t, 59.01, abc, 0.01)
}

func TestSettlementLimit(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	var serr *geotech.SettlementError

	_, err := MeyerhofABC(11, 30, fs)
	require.Error(t, err)
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, 30.0, serr.Actual)

	_, err = BowlesABC(11, 30, fs)
	assert.Error(t, err)

	_, err = TerzaghiPeckABC(11, 30, 1.2, fs)
	assert.Error(t, err)

	// The validated maximum itself is accepted.
	_, err = MeyerhofABC(11, MaxSettlement, fs)
	assert.NoError(t, err)
}

func TestSkemptonNetSBC(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	assert.InDelta(t, 165.0, SkemptonNetSBC(11, fs), 0.01)

	fs = mustSize(t, foundation.Rectangular, 1.2, 1.4, 1.5)
	assert.InDelta(t, 161.07, SkemptonNetSBC(11, fs), 0.01)

	// Strip footings use the lower 5(1 + 0.2 Df/B) factor.
	fs = mustSize(t, foundation.Strip, 1.2, 0, 1.5)
	assert.InDelta(t, 137.5, SkemptonNetSBC(11, fs), 0.01)
}

func TestSkemptonNcCap(t *testing.T) {
	// Deep square footing: N_c is capped at 9.
	fs := mustSize(t, foundation.Square, 1.2, 0, 6)
	assert.InDelta(t, 198.0, SkemptonNetSBC(11, fs), 0.01)

	// Deep strip footing: capped at 7.5.
	fs = mustSize(t, foundation.Strip, 1.2, 0, 6)
	assert.InDelta(t, 165.0, SkemptonNetSBC(11, fs), 0.01)
}

func TestSkemptonNetABC(t *testing.T) {
	fs := mustSize(t, foundation.Square, 1.2, 0, 1.5)
	assert.InDelta(t, 150.0, SkemptonNetABC(10, fs), 0.01)
}
