package grid

import (
	"fmt"
	"math"

	"github.com/windward/gribwx/grierr"
	"github.com/windward/gribwx/internal"
)

// LatLonGrid represents a GRIB2 Latitude/Longitude grid (Template 3.0), the
// only grid geometry this core understands. Coordinates are stored as
// millidegrees on the wire (int32) and exposed as float64 degrees.
type LatLonGrid struct {
	Ni, Nj       uint32
	La1, Lo1     int32
	ResFlags     uint8
	La2, Lo2     int32
	Di, Dj       uint32
	ScanningMode uint8

	iNegative, jPositive, consecutive, alternating bool
	wrapping                                        bool
}

// ParseLatLonGrid parses a Lat/Lon grid from template data (Template 3.0).
// The template data (the section 3 bytes following its 14-byte header) must
// be at least 58 bytes.
//
// A non-default basic angle or subdivision count is rejected as
// UnsupportedTemplate rather than silently applied with a skipped scale, so
// a caller always knows when a grid's coordinates are trustworthy.
func ParseLatLonGrid(data []byte) (*LatLonGrid, error) {
	if len(data) < 58 {
		return nil, grierr.New(grierr.MalformedSection, 3, 0,
			"template 3.0 requires at least 58 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	r.Skip(16) // shape of earth + its radius/axis scale octets
	ni, _ := r.Uint32()
	nj, _ := r.Uint32()
	basicAngle, _ := r.Uint32()
	subdivisions, _ := r.Uint32()
	if basicAngle != 0 || (subdivisions != 0 && subdivisions != 0xFFFFFFFF) {
		return nil, grierr.New(grierr.UnsupportedTemplate, 3, 0,
			"non-default basic angle (%d) or subdivisions (%d) not supported", basicAngle, subdivisions)
	}

	la1, _ := r.Int32()
	lo1, _ := r.Int32()
	resFlags, _ := r.Uint8()
	la2, _ := r.Int32()
	lo2, _ := r.Int32()
	di, _ := r.Uint32()
	dj, _ := r.Uint32()
	scanningMode, _ := r.Uint8()

	g := &LatLonGrid{
		Ni: ni, Nj: nj,
		La1: la1, Lo1: lo1,
		ResFlags: resFlags,
		La2:      la2, Lo2: lo2,
		Di: di, Dj: dj,
		ScanningMode: scanningMode,
	}
	g.iNegative = scanningMode&0x80 != 0
	g.jPositive = scanningMode&0x40 != 0
	g.consecutive = scanningMode&0x20 == 0
	g.alternating = scanningMode&0x10 != 0

	dLon := float64(di) / 1000.0
	if ni > 0 && math.Mod(dLon*float64(ni), 360.0) < 1e-6 {
		g.wrapping = true
	}
	return g, nil
}

func (g *LatLonGrid) TemplateNumber() int { return 0 }
func (g *LatLonGrid) NumPoints() int      { return int(g.Ni * g.Nj) }
func (g *LatLonGrid) Dims() (ni, nj int)  { return int(g.Ni), int(g.Nj) }
func (g *LatLonGrid) Wrapping() bool      { return g.wrapping }

// Index maps a (u, v) cell position, counted in scan order from the grid's
// first point, to its linear index in a decoded data array.
func (g *LatLonGrid) Index(u, v int) int {
	ni, nj := int(g.Ni), int(g.Nj)
	if g.alternating && g.consecutive && v%2 == 1 {
		u = ni - 1 - u
	} else if g.alternating && !g.consecutive && u%2 == 1 {
		v = nj - 1 - v
	}
	if g.consecutive {
		return v*ni + u
	}
	return u*nj + v
}

func (g *LatLonGrid) signs() (iSign, jSign float64) {
	iSign = 1
	if g.iNegative {
		iSign = -1
	}
	jSign = -1
	if g.jPositive {
		jSign = 1
	}
	return
}

// Center returns the geographic center of cell (u, v), with longitude
// reduced to the canonical (-180, 180] range when the grid wraps.
func (g *LatLonGrid) Center(u, v int) (lat, lon float64) {
	return g.TransformAxes(float64(u), float64(v))
}

// TransformAxes interpolates fractional grid coordinates linearly.
func (g *LatLonGrid) TransformAxes(u, v float64) (lat, lon float64) {
	iSign, jSign := g.signs()
	lat = float64(g.La1)/1000.0 + jSign*v*(float64(g.Dj)/1000.0)
	lon = float64(g.Lo1)/1000.0 + iSign*u*(float64(g.Di)/1000.0)
	if g.wrapping {
		lon = normalizeLon(lon)
	}
	return lat, lon
}

// normalizeLon reduces a longitude to the canonical (-180, 180] range.
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180.0, 360.0)
	if lon <= 0 {
		lon += 360.0
	}
	return lon - 180.0
}

// Fingerprint returns a string that is identical exactly when two grids
// compare Equal, suitable as a map-key component for layer identity.
func (g *LatLonGrid) Fingerprint() string {
	return fmt.Sprintf("ll:%d,%d:%d,%d:%d:%d,%d:%d,%d:%d",
		g.Ni, g.Nj, g.La1, g.Lo1, g.ResFlags, g.La2, g.Lo2, g.Di, g.Dj, g.ScanningMode)
}

// Equal reports bit-for-bit identity of every grid parameter.
func (g *LatLonGrid) Equal(other Grid) bool {
	o, ok := other.(*LatLonGrid)
	if !ok {
		return false
	}
	return *g == *o
}

func (g *LatLonGrid) String() string {
	return fmt.Sprintf("Lat/Lon grid: %d x %d points (%.3f, %.3f) to (%.3f, %.3f)",
		g.Ni, g.Nj,
		float64(g.La1)/1000.0, float64(g.Lo1)/1000.0,
		float64(g.La2)/1000.0, float64(g.Lo2)/1000.0)
}

// FirstGridPoint returns the latitude and longitude of the first grid point in degrees.
func (g *LatLonGrid) FirstGridPoint() (lat, lon float64) {
	return float64(g.La1) / 1000.0, float64(g.Lo1) / 1000.0
}

// LastGridPoint returns the latitude and longitude of the last grid point in degrees.
func (g *LatLonGrid) LastGridPoint() (lat, lon float64) {
	return float64(g.La2) / 1000.0, float64(g.Lo2) / 1000.0
}

// Increment returns the i and j direction increments in degrees.
func (g *LatLonGrid) Increment() (di, dj float64) {
	return float64(g.Di) / 1000.0, float64(g.Dj) / 1000.0
}
