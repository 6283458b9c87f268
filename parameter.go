package gribwx

import "github.com/windward/gribwx/catalog"

// ParameterID uniquely identifies a GRIB2 parameter using WMO standard codes.
//
// GRIB2 parameters are defined by a three-number tuple:
//   - Discipline: Product discipline (0=Meteorological, 1=Hydrological, etc.)
//   - Category: Parameter category within the discipline
//   - Number: Specific parameter within the category
//
// This matches the GRIB2 specification (WMO Manual 306, Tables 4.1 and 4.2).
type ParameterID struct {
	Discipline uint8 // WMO Code Table 0.0
	Category   uint8 // WMO Code Table 4.1 (discipline-specific)
	Number     uint8 // WMO Code Table 4.2 (category-specific within discipline)
}

// String returns the full parameter name from the parameter catalogue.
//
// Example: "Temperature", "Geopotential Height", "Relative Humidity"
func (p ParameterID) String() string {
	param := catalog.Default().FindParameter(int(p.Discipline), int(p.Category), int(p.Number))
	if param == nil {
		return "Missing"
	}
	return param.Name
}

// ShortName returns the parameter's catalogue abbreviation, matching
// common meteorological conventions used in tools like wgrib2. Returns
// empty string if the triple is unknown to the catalogue.
func (p ParameterID) ShortName() string {
	param := catalog.Default().FindParameter(int(p.Discipline), int(p.Category), int(p.Number))
	if param == nil {
		return ""
	}
	return param.Abbreviation
}

// Unit returns the parameter's physical unit string, which may be empty
// for code-table-valued parameters (e.g. precipitation type).
func (p ParameterID) Unit() string {
	param := catalog.Default().FindParameter(int(p.Discipline), int(p.Category), int(p.Number))
	if param == nil {
		return ""
	}
	return param.Unit
}

// CategoryName returns the parameter category name.
func (p ParameterID) CategoryName() string {
	cat := catalog.Default().FindCategory(int(p.Discipline), int(p.Category))
	if cat == nil {
		return "Unknown category"
	}
	return cat.Name
}
