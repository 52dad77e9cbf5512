package foundation

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosbc/internal/geotech"
)

// Shape enumerates the supported footing shapes.
type Shape int

const (
	Strip Shape = iota + 1
	Square
	Circular
	Rectangular
)

func (s Shape) String() string {
	switch s {
	case Strip:
		return "strip"
	case Square:
		return "square"
	case Circular:
		return "circular"
	case Rectangular:
		return "rectangular"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape converts a CLI flag value into a footing Shape.
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strip":
		return Strip, nil
	case "square":
		return Square, nil
	case "circular", "circle":
		return Circular, nil
	case "rectangular", "rectangle":
		return Rectangular, nil
	}
	return 0, &ConstructionError{
		Msg: fmt.Sprintf("unknown footing shape %q: supported shapes are strip, square, circular and rectangular", s),
	}
}

// ConstructionError reports invalid foundation geometry at construction time.
type ConstructionError struct {
	Msg string
}

func (e *ConstructionError) Error() string {
	return e.Msg
}

// Footing is a footing shape together with its plan dimensions (m).
// For square footings Length equals Width; for circular footings both
// equal the diameter; strip footings carry an infinite length.
type Footing struct {
	Shape  Shape
	Width  float64
	Length float64
}

// NewStripFooting returns a strip footing of the given width.
func NewStripFooting(width float64) Footing {
	return Footing{Shape: Strip, Width: width, Length: math.Inf(1)}
}

// NewSquareFooting returns a square footing of the given width.
func NewSquareFooting(width float64) Footing {
	return Footing{Shape: Square, Width: width, Length: width}
}

// NewCircularFooting returns a circular footing of the given diameter.
func NewCircularFooting(diameter float64) Footing {
	return Footing{Shape: Circular, Width: diameter, Length: diameter}
}

// NewRectangularFooting returns a rectangular footing of the given plan
// dimensions. Orientation is the caller's choice; width/length ratios are
// always computed as Width over Length.
func NewRectangularFooting(width, length float64) Footing {
	return Footing{Shape: Rectangular, Width: width, Length: length}
}

// Dimensions returns the uniform {width, length} view of the footing.
func (f Footing) Dimensions() (width, length float64) {
	return f.Width, f.Length
}

// WidthToLengthRatio returns B/L. Zero for strip footings.
func (f Footing) WidthToLengthRatio() float64 {
	if math.IsInf(f.Length, 1) {
		return 0
	}
	return f.Width / f.Length
}

// dimTolerance is the relative tolerance used when comparing the
// effective width against the length for shape reclassification.
const dimTolerance = 1e-9

// Size describes the foundation envelope: footing, embedment depth and
// load eccentricity (all in meters). It is immutable input to every
// downstream calculator.
type Size struct {
	Depth        float64
	Footing      Footing
	Eccentricity float64
}

// New constructs a validated foundation Size. Rectangular footings
// require an explicit length; for every other shape length is ignored.
func New(shape Shape, width, length, depth, eccentricity float64) (Size, error) {
	if width <= 0 {
		return Size{}, &ConstructionError{Msg: fmt.Sprintf("footing width must be positive, got %.2f", width)}
	}
	if depth < 0 {
		return Size{}, &ConstructionError{Msg: fmt.Sprintf("foundation depth must not be negative, got %.2f", depth)}
	}
	if eccentricity < 0 {
		return Size{}, &ConstructionError{Msg: fmt.Sprintf("load eccentricity must not be negative, got %.2f", eccentricity)}
	}

	var footing Footing
	switch shape {
	case Strip:
		footing = NewStripFooting(width)
	case Square:
		footing = NewSquareFooting(width)
	case Circular:
		footing = NewCircularFooting(width)
	case Rectangular:
		if length <= 0 {
			return Size{}, &ConstructionError{Msg: "the length of a rectangular footing must be provided"}
		}
		footing = NewRectangularFooting(width, length)
	default:
		return Size{}, &ConstructionError{
			Msg: fmt.Sprintf("unknown footing shape %q: supported shapes are strip, square, circular and rectangular", shape),
		}
	}

	size := Size{Depth: depth, Footing: footing, Eccentricity: eccentricity}
	if size.EffectiveWidth() <= 0 {
		return Size{}, &ConstructionError{
			Msg: fmt.Sprintf("effective width %.2f is not positive: eccentricity %.2f is too large for width %.2f",
				size.EffectiveWidth(), eccentricity, width),
		}
	}
	return size, nil
}

// Width returns the nominal footing width.
func (s Size) Width() float64 {
	return s.Footing.Width
}

// Length returns the footing length (infinite for strip footings).
func (s Size) Length() float64 {
	return s.Footing.Length
}

// EffectiveWidth returns the footing width reduced by load eccentricity,
// B' = B - 2e.
func (s Size) EffectiveWidth() float64 {
	return s.Footing.Width - 2*s.Eccentricity
}

// DepthToWidthRatio returns Df/B.
func (s Size) DepthToWidthRatio() float64 {
	return s.Depth / s.Footing.Width
}

// WidthToLengthRatio returns B/L. Zero for strip footings.
func (s Size) WidthToLengthRatio() float64 {
	return s.Footing.WidthToLengthRatio()
}

// EffectiveShape returns the shape used for correction-factor dispatch.
// A non-strip foundation whose effective width differs from its length is
// treated as rectangular regardless of the nominal shape tag; conversely
// a nominal rectangle whose effective width equals its length behaves as
// a square footing.
func (s Size) EffectiveShape() Shape {
	if s.Footing.Shape == Strip {
		return Strip
	}
	if !geotech.IsClose(s.EffectiveWidth(), s.Footing.Length, dimTolerance) {
		return Rectangular
	}
	if s.Footing.Shape == Rectangular {
		return Square
	}
	return s.Footing.Shape
}
