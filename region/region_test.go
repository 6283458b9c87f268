package region

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/windward/gribwx/grid"
	"github.com/windward/gribwx/layer"
)

type constDecoder struct{ values []float64 }

func (d constDecoder) Decode(payload []byte, bitmap []bool) ([]float64, error) {
	return d.values, nil
}

func makeLoadedLayer(t *testing.T, ni, nj uint32, values []float64) *layer.Layer {
	t.Helper()
	g := &grid.LatLonGrid{Ni: ni, Nj: nj, La1: 10000, Lo1: 0, Di: 10000, Dj: 10000}
	l := layer.New(layer.Key{}, g, layer.PackingSimple, constDecoder{values}, layer.DataRegion{Length: int64(len(values))}, nil)
	require.NoError(t, l.CheckLoad(make([]byte, len(values)), "", 0, zerolog.Nop()), "precondition: layer must load")
	return l
}

func TestExtractFullGrid(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	l := makeLoadedLayer(t, 3, 2, values)

	result, err := Extract(l, BBox{LatLo: -10, LatHi: 10, LonLo: 0, LonHi: 20})
	require.NoError(t, err)
	require.Equal(t, 3, result.Width)
	require.Equal(t, 2, result.Height)
}

func TestExtractWrapsAntimeridian(t *testing.T) {
	// 36 columns of 10 degrees spanning the full 360: the grid wraps, and a
	// bbox from 170E to 170W crosses the antimeridian.
	values := make([]float64, 36)
	for i := range values {
		values[i] = float64(i)
	}
	g := &grid.LatLonGrid{Ni: 36, Nj: 1, La1: 0, Lo1: -180000, Di: 10000, Dj: 10000}
	gp, err := grid.ParseLatLonGrid(encodeLatLonTemplate(g))
	require.NoError(t, err, "precondition: template must parse so the wrapping flag is derived")
	require.True(t, gp.Wrapping())

	l := layer.New(layer.Key{}, gp, layer.PackingSimple, constDecoder{values}, layer.DataRegion{Length: int64(len(values))}, nil)
	require.NoError(t, l.CheckLoad(make([]byte, len(values)), "", 0, zerolog.Nop()))

	result, err := Extract(l, BBox{LatLo: -5, LatHi: 5, LonLo: 170, LonHi: -170})
	require.NoError(t, err)

	// Columns 35 (170E), 0 (180), 1 (170W): two disjoint u ranges.
	require.Equal(t, 3, result.Width)
	require.Equal(t, 1, result.Height)
	require.Equal(t, []float64{35, 0, 1}, result.Data)
}

// encodeLatLonTemplate renders a LatLonGrid back into template 3.0 bytes so
// ParseLatLonGrid can derive the scanning and wrapping flags. Negative
// angles are written sign-magnitude, as on the wire.
func encodeLatLonTemplate(g *grid.LatLonGrid) []byte {
	buf := make([]byte, 58)
	be32 := func(off int, v uint32) {
		buf[off] = byte(v >> 24)
		buf[off+1] = byte(v >> 16)
		buf[off+2] = byte(v >> 8)
		buf[off+3] = byte(v)
	}
	signMag := func(v int32) uint32 {
		if v < 0 {
			return 0x80000000 | uint32(-v)
		}
		return uint32(v)
	}
	be32(16, g.Ni)
	be32(20, g.Nj)
	be32(32, signMag(g.La1))
	be32(36, signMag(g.Lo1))
	buf[40] = g.ResFlags
	be32(41, signMag(g.La2))
	be32(45, signMag(g.Lo2))
	be32(49, g.Di)
	be32(53, g.Dj)
	buf[57] = g.ScanningMode
	return buf
}

func TestExtractPropagatesNaN(t *testing.T) {
	values := []float64{math.NaN(), 2, 3, 4}
	l := makeLoadedLayer(t, 2, 2, values)

	result, err := Extract(l, BBox{LatLo: -10, LatHi: 10, LonLo: 0, LonHi: 10})
	require.NoError(t, err)
	require.True(t, math.IsNaN(result.At(0, 0)))
}
