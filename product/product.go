// Package product provides product definition types and parsers for GRIB2.
package product

// Product represents a GRIB2 product definition.
// Different product templates implement this interface.
type Product interface {
	// TemplateNumber returns the product definition template number (Table 4.0).
	TemplateNumber() int

	// GetParameterCategory returns the parameter category code (Table 4.1).
	GetParameterCategory() uint8

	// GetParameterNumber returns the parameter number code (Table 4.2).
	GetParameterNumber() uint8

	// String returns a human-readable description of the product.
	String() string
}

// ForecastFields is implemented by every product template that carries the
// common Template 4.0 prefix (currently templates 4.0 and 4.8): generating
// process, forecast offset, and the two fixed-surface descriptors. The
// layer registry uses this to build a Layer's identity key without a type
// switch per template.
type ForecastFields interface {
	Product

	// GeneratingProcessID returns the type of generating process (Table 4.3).
	GeneratingProcessID() uint8

	// ForecastProcessID returns the center-specific analysis or forecast
	// process identifier.
	ForecastProcessID() uint8

	// ForecastOffsetSeconds returns the forecast time offset from the
	// message's reference time, in seconds. ok is false if the
	// time-range-unit code is unrecognized.
	ForecastOffsetSeconds() (seconds int64, ok bool)

	// Surface1 returns the type and scaled value of the first fixed surface.
	Surface1() (surfaceType uint8, value float64)

	// Surface2 returns the type and scaled value of the second fixed surface.
	Surface2() (surfaceType uint8, value float64)
}
