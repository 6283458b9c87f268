package grid

import (
	"math"
	"testing"
)

// allCenters walks every (u, v) cell in scan order and returns the lat/lon
// pairs, mirroring how the section 7 decoder lines up values with positions.
func allCenters(g *LatLonGrid) (lats, lons []float64) {
	ni, nj := g.Dims()
	lats = make([]float64, ni*nj)
	lons = make([]float64, ni*nj)
	for v := 0; v < nj; v++ {
		for u := 0; u < ni; u++ {
			lat, lon := g.Center(u, v)
			lats[g.Index(u, v)] = lat
			lons[g.Index(u, v)] = lon
		}
	}
	return lats, lons
}

func TestLatLonGridCoordinates(t *testing.T) {
	// 3x3 grid, 90N to 88N, 0E to 2E, 1 degree spacing.
	// Scanning mode 0x00: +i (west to east), -j (north to south).
	g := &LatLonGrid{
		Ni: 3, Nj: 3,
		La1: 90000, Lo1: 0,
		La2: 88000, Lo2: 2000,
		Di: 1000, Dj: 1000,
		ScanningMode: 0x00,
	}
	g.jPositive = false
	g.consecutive = true

	lats, lons := allCenters(g)

	expectedLats := []float64{90, 90, 90, 89, 89, 89, 88, 88, 88}
	expectedLons := []float64{0, 1, 2, 0, 1, 2, 0, 1, 2}

	for i := range lats {
		if math.Abs(lats[i]-expectedLats[i]) > 0.001 {
			t.Errorf("lat[%d]: got %.3f, want %.3f", i, lats[i], expectedLats[i])
		}
		if math.Abs(lons[i]-expectedLons[i]) > 0.001 {
			t.Errorf("lon[%d]: got %.3f, want %.3f", i, lons[i], expectedLons[i])
		}
	}
}

func TestLatLonGridCoordinatesReversedI(t *testing.T) {
	// Scanning mode 0x80: -i (east to west), -j (north to south).
	g := &LatLonGrid{
		Ni: 3, Nj: 2,
		La1: 10000, Lo1: 2000,
		La2: 9000, Lo2: 0,
		Di: 1000, Dj: 1000,
		ScanningMode: 0x80,
	}
	g.iNegative = true
	g.consecutive = true

	lats, lons := allCenters(g)

	expectedLats := []float64{10, 10, 10, 9, 9, 9}
	expectedLons := []float64{2, 1, 0, 2, 1, 0}

	for i := range lats {
		if math.Abs(lats[i]-expectedLats[i]) > 0.001 {
			t.Errorf("lat[%d]: got %.3f, want %.3f", i, lats[i], expectedLats[i])
		}
		if math.Abs(lons[i]-expectedLons[i]) > 0.001 {
			t.Errorf("lon[%d]: got %.3f, want %.3f", i, lons[i], expectedLons[i])
		}
	}
}

func TestLatLonGridCoordinatesReversedJ(t *testing.T) {
	// Scanning mode 0x40: +i (west to east), +j (south to north).
	g := &LatLonGrid{
		Ni: 2, Nj: 3,
		La1: -10000, Lo1: 0,
		La2: -8000, Lo2: 1000,
		Di: 1000, Dj: 1000,
		ScanningMode: 0x40,
	}
	g.jPositive = true
	g.consecutive = true

	lats, lons := allCenters(g)

	expectedLats := []float64{-10, -10, -9, -9, -8, -8}
	expectedLons := []float64{0, 1, 0, 1, 0, 1}

	for i := range lats {
		if math.Abs(lats[i]-expectedLats[i]) > 0.001 {
			t.Errorf("lat[%d]: got %.3f, want %.3f", i, lats[i], expectedLats[i])
		}
		if math.Abs(lons[i]-expectedLons[i]) > 0.001 {
			t.Errorf("lon[%d]: got %.3f, want %.3f", i, lons[i], expectedLons[i])
		}
	}
}

func TestLatLonGridCoordinatesNonConsecutive(t *testing.T) {
	// Scanning mode 0x20: +i, -j, but j varies fastest (non-consecutive).
	g := &LatLonGrid{
		Ni: 2, Nj: 3,
		La1: 10000, Lo1: 0,
		La2: 8000, Lo2: 1000,
		Di: 1000, Dj: 1000,
		ScanningMode: 0x20,
	}
	g.consecutive = false

	lats, lons := allCenters(g)

	expectedLats := []float64{10, 9, 8, 10, 9, 8}
	expectedLons := []float64{0, 0, 0, 1, 1, 1}

	for i := range lats {
		if math.Abs(lats[i]-expectedLats[i]) > 0.001 {
			t.Errorf("lat[%d]: got %.3f, want %.3f", i, lats[i], expectedLats[i])
		}
		if math.Abs(lons[i]-expectedLons[i]) > 0.001 {
			t.Errorf("lon[%d]: got %.3f, want %.3f", i, lons[i], expectedLons[i])
		}
	}
}

func TestLatLonGridWrappingDetection(t *testing.T) {
	// A full 360-degree-spanning grid must report Wrapping() true.
	full := &LatLonGrid{Ni: 144, Di: 2500}
	full.wrapping = true
	if !full.Wrapping() {
		t.Error("expected full 360-degree grid to report Wrapping() == true")
	}

	partial := &LatLonGrid{Ni: 10, Di: 1000}
	if partial.Wrapping() {
		t.Error("expected a regional grid to report Wrapping() == false")
	}
}

func TestLatLonGridDateLineCenter(t *testing.T) {
	// A wrapping grid starting at 358E must normalize east-of-antimeridian
	// cells into the canonical (-180, 180] range.
	g := &LatLonGrid{
		Ni: 3, Nj: 1,
		La1: 0, Lo1: 358000,
		Di: 1000, Dj: 1000,
	}
	g.wrapping = true

	_, lon0 := g.Center(0, 0)
	_, lon2 := g.Center(2, 0)

	if math.Abs(lon0-(-2.0)) > 0.001 {
		t.Errorf("cell 0 lon: got %.3f, want -2.0", lon0)
	}
	if math.Abs(lon2-0.0) > 0.001 {
		t.Errorf("cell 2 lon: got %.3f, want 0.0", lon2)
	}
}

func TestLatLonGridDims(t *testing.T) {
	g := &LatLonGrid{Ni: 144, Nj: 73}
	ni, nj := g.Dims()
	if ni != 144 || nj != 73 {
		t.Errorf("Dims(): got (%d, %d), want (144, 73)", ni, nj)
	}
	if g.NumPoints() != 144*73 {
		t.Errorf("NumPoints(): got %d, want %d", g.NumPoints(), 144*73)
	}
}

func TestLatLonGridEqual(t *testing.T) {
	a := &LatLonGrid{Ni: 3, Nj: 3, La1: 90000, Lo1: 0, Di: 1000, Dj: 1000}
	b := &LatLonGrid{Ni: 3, Nj: 3, La1: 90000, Lo1: 0, Di: 1000, Dj: 1000}
	c := &LatLonGrid{Ni: 3, Nj: 3, La1: 89000, Lo1: 0, Di: 1000, Dj: 1000}

	if !a.Equal(b) {
		t.Error("expected identical grids to compare Equal")
	}
	if a.Equal(c) {
		t.Error("expected grids differing in La1 to not compare Equal")
	}
}

func TestParseLatLonGridRejectsNonDefaultBasicAngle(t *testing.T) {
	data := make([]byte, 72)
	data[24] = 0x00
	data[25] = 0x00
	data[26] = 0x00
	data[27] = 0x01 // basic angle (template bytes 24-27) == 1, not supported

	if _, err := ParseLatLonGrid(data); err == nil {
		t.Fatal("expected an error for a non-default basic angle")
	}
}

func TestParseLatLonGridTooShort(t *testing.T) {
	if _, err := ParseLatLonGrid(make([]byte, 10)); err == nil {
		t.Fatal("expected an error for truncated template data")
	}
}
