// Package grid provides the grid definition type and parser for GRIB2.
//
// Only the latitude/longitude equirectangular grid (template 3.0) is
// implemented: it is the only grid geometry the core is required to
// understand. Any other template number is reported as unsupported by the
// section 3 parser, so the Grid interface below is deliberately narrow
// rather than a sum type over grid families.
package grid

// Grid represents a GRIB2 grid definition.
type Grid interface {
	// TemplateNumber returns the grid definition template number (Table 3.1).
	TemplateNumber() int

	// NumPoints returns the total number of grid points.
	NumPoints() int

	// Index maps a (u, v) cell coordinate to its linear index into a
	// decoded data array. The mapping is a bijection onto [0, NumPoints()).
	Index(u, v int) int

	// Center returns the (lat, lon) in degrees of the center of cell (u, v).
	Center(u, v int) (lat, lon float64)

	// TransformAxes interpolates fractional cell coordinates linearly,
	// returning (lat, lon) in degrees.
	TransformAxes(u, v float64) (lat, lon float64)

	// Dims returns the number of columns (Ni) and rows (Nj).
	Dims() (ni, nj int)

	// Wrapping reports whether the grid spans the full 360° of longitude,
	// i.e. (dLon * Ni) mod 360 == 0. A fully-wrapping grid allows region
	// clipping to span the antimeridian.
	Wrapping() bool

	// Equal reports whether two grids are identical bit-for-bit in every
	// parameter. This is a prerequisite for sharing layers across messages.
	Equal(other Grid) bool

	// Fingerprint returns a string that is identical exactly when two
	// grids compare Equal, suitable as a map-key component.
	Fingerprint() string

	// String returns a human-readable description of the grid.
	String() string
}
