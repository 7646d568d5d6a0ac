// Package prim provides the geometry and color value types shared by the
// GoGPU drawing stack.
//
// # Overview
//
// Every type is a small comparable struct passed by value. Operations never
// mutate their receiver; "With" methods and arithmetic return new values.
//
// Geometry:
//   - Vector, Point and Size with component-wise arithmetic
//   - Thickness for per-edge insets
//   - Rect with containment, intersection, union and normalization
//   - Matrix, a 2D affine transform
//
// Color:
//   - Color, 8-bit ARGB with straight alpha
//   - HslColor and HsvColor, the cylindrical models
//
// # Parsing
//
//	c, err := prim.ParseColor("rgba(255, 0, 0, 0.5)")
//	r, err := prim.ParseRect("0, 0, 100, 50")
//
// Parsers accept invariant-culture numbers ('.' as the decimal point) and
// return a *FormatError wrapping ErrInvalidFormat. TryParse variants report
// failure as a bool. Every value's String method produces text its parser
// reads back.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Comparison
//
// == compares components exactly. NearlyEquals uses a tolerance scaled to
// the magnitude of the operands, suited to results of float arithmetic.
//
// # Logging
//
// The package is silent by default. SetLogger installs an *slog.Logger that
// receives debug records for rejected parser input.
package prim

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
