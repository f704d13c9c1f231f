// Package region converts a region given in illustration-tool coordinates
// (origin top-left, Y down) into PDF page space (origin bottom-left, Y up),
// clamps it to the page and fits rectangles into target boxes.
package region

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRegion is returned when a region is degenerate or lies outside the page.
var ErrInvalidRegion = errors.New("invalid region")

// ConversionMode selects the formula used to flip a region into page space.
type ConversionMode int

const (
	// SimpleCrop ignores offsets: y0 = H - (Y + h), y1 = H - Y.
	SimpleCrop ConversionMode = iota
	// OffsetFlip applies OffsetX/OffsetY before flipping.
	OffsetFlip
)

func (m ConversionMode) String() string {
	switch m {
	case SimpleCrop:
		return "simple"
	case OffsetFlip:
		return "offset"
	default:
		return fmt.Sprintf("ConversionMode(%d)", int(m))
	}
}

// ParseMode accepts "simple", "offset" and "auto". Auto resolves against spec.
func ParseMode(s string, spec Spec) (ConversionMode, error) {
	switch s {
	case "simple":
		return SimpleCrop, nil
	case "offset":
		return OffsetFlip, nil
	case "", "auto":
		return ModeFor(spec), nil
	}
	return SimpleCrop, fmt.Errorf("unknown conversion mode %q", s)
}

// Spec describes a region in points, measured from the top-left corner.
type Spec struct {
	OriginX float64 `json:"x" yaml:"x"`
	OriginY float64 `json:"y" yaml:"y"`
	Width   float64 `json:"w" yaml:"w"`
	Height  float64 `json:"h" yaml:"h"`
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
}

// DefaultSpec is the box the stitcher was built around.
var DefaultSpec = Spec{
	OriginX: 68.035,
	OriginY: 181.8821,
	Width:   102.05,
	Height:  233.86,
	OffsetX: -51,
	OffsetY: 123,
}

// ModeFor picks OffsetFlip when any offset is configured.
func ModeFor(spec Spec) ConversionMode {
	if spec.OffsetX != 0 || spec.OffsetY != 0 {
		return OffsetFlip
	}
	return SimpleCrop
}

// Validate reports whether the spec itself can describe a region.
func (s Spec) Validate() error {
	for _, v := range []float64{s.OriginX, s.OriginY, s.Width, s.Height, s.OffsetX, s.OffsetY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate", ErrInvalidRegion)
		}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive (got %.4f x %.4f)", ErrInvalidRegion, s.Width, s.Height)
	}
	return nil
}

// Rectangle is an axis-aligned box in page space with X0 < X1 and Y0 < Y1.
type Rectangle struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Rect builds a rectangle from its lower-left corner and size.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r Rectangle) Width() float64  { return r.X1 - r.X0 }
func (r Rectangle) Height() float64 { return r.Y1 - r.Y0 }

// Empty reports whether r has no area.
func (r Rectangle) Empty() bool { return r.X1 <= r.X0 || r.Y1 <= r.Y0 }

// Translate moves r by dx, dy.
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return Rectangle{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f %.4f]", r.X0, r.Y0, r.X1, r.Y1)
}

// Convert flips spec into page space for a page of the given height.
func Convert(spec Spec, mode ConversionMode, pageHeight float64) Rectangle {
	if mode == OffsetFlip {
		return Rectangle{
			X0: spec.OriginX + spec.OffsetX,
			Y0: pageHeight - (spec.OriginY + spec.Height - spec.OffsetY),
			X1: spec.OriginX + spec.Width + spec.OffsetX,
			Y1: pageHeight - (spec.OriginY - spec.OffsetY),
		}
	}
	return Rectangle{
		X0: spec.OriginX,
		Y0: pageHeight - (spec.OriginY + spec.Height),
		X1: spec.OriginX + spec.Width,
		Y1: pageHeight - spec.OriginY,
	}
}

// Clamp constrains r to the page [0, pageWidth] x [0, pageHeight].
func Clamp(r Rectangle, pageWidth, pageHeight float64) Rectangle {
	return Rectangle{
		X0: math.Max(0, r.X0),
		Y0: math.Max(0, r.Y0),
		X1: math.Min(pageWidth, r.X1),
		Y1: math.Min(pageHeight, r.Y1),
	}
}

// Resolve converts spec onto a pageWidth x pageHeight page and clamps it.
// It fails with ErrInvalidRegion when nothing of the region is left on the page.
func Resolve(spec Spec, mode ConversionMode, pageWidth, pageHeight float64) (Rectangle, error) {
	if err := spec.Validate(); err != nil {
		return Rectangle{}, err
	}
	if pageWidth <= 0 || pageHeight <= 0 {
		return Rectangle{}, fmt.Errorf("%w: page size %.4f x %.4f", ErrInvalidRegion, pageWidth, pageHeight)
	}

	r := Clamp(Convert(spec, mode, pageHeight), pageWidth, pageHeight)
	if r.Empty() {
		return Rectangle{}, fmt.Errorf("%w: %s lies outside the %.2f x %.2f page", ErrInvalidRegion, r, pageWidth, pageHeight)
	}
	return r, nil
}
