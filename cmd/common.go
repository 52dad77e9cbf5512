package cmd

import (
	"github.com/alexiusacademia/gosbc/internal/foundation"
)

// buildFoundation assembles a validated foundation.Size from the common
// geometry flags shared by the ultimate and allowable commands.
func buildFoundation(shape string, width, length, depth, eccentricity float64) (foundation.Size, error) {
	sh, err := foundation.ParseShape(shape)
	if err != nil {
		return foundation.Size{}, err
	}
	return foundation.New(sh, width, length, depth, eccentricity)
}
