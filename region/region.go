// Package region clips a decoded layer to a geographic bounding box,
// honoring antimeridian wraparound on fully-wrapping grids.
package region

import (
	"math"
	"time"

	"github.com/windward/gribwx/grid"
	"github.com/windward/gribwx/layer"
)

// BBox is a geographic rectangle in degrees. LonLo > LonHi signals a
// rectangle spanning the antimeridian on a wrapping grid (e.g. LonLo=170,
// LonHi=-170 covers the date line).
type BBox struct {
	LatLo, LatHi float64
	LonLo, LonHi float64
}

// Result is an immutable rasterized clip of a source layer: one sample per
// output cell, NaN where the source was out-of-bitmap or out-of-bounds.
type Result struct {
	Source        *layer.Layer
	BBox          BBox
	Width, Height int
	Data          []float64
	ReferenceTime time.Time
	EffectiveTime time.Time
}

// At returns the value at output cell (x, y), x in [0, Width), y in
// [0, Height).
func (r *Result) At(x, y int) float64 {
	return r.Data[y*r.Width+x]
}

// Extract clips l's decoded values to bbox, producing one output cell per
// source grid cell falling within range. The layer must already be loaded
// (layer.CheckLoad called) — Extract does not decode.
func Extract(l *layer.Layer, bbox BBox) (*Result, error) {
	values := l.Values()
	g := l.Grid

	uLo, uHi, vLo, vHi, wraps := cellRange(g, bbox)

	var width int
	if wraps {
		ni, _ := g.Dims()
		width = (ni - uLo) + (uHi + 1)
	} else {
		width = uHi - uLo + 1
	}
	height := vHi - vLo + 1
	if width <= 0 || height <= 0 {
		return &Result{Source: l, BBox: bbox, Width: 0, Height: 0}, nil
	}

	data := make([]float64, width*height)
	ni, _ := g.Dims()
	for y := 0; y < height; y++ {
		v := vLo + y
		for x := 0; x < width; x++ {
			u := uLo + x
			if wraps {
				u = (uLo + x) % ni
			}
			idx := g.Index(u, v)
			if idx < 0 || idx >= len(values) {
				data[y*width+x] = math.NaN()
				continue
			}
			data[y*width+x] = values[idx]
		}
	}

	return &Result{
		Source:        l,
		BBox:          bbox,
		Width:         width,
		Height:        height,
		Data:          data,
		ReferenceTime: l.Key.ReferenceTime,
		EffectiveTime: l.Key.EffectiveTime,
	}, nil
}

// cellRange derives the integer cell range covering bbox. wraps reports
// whether the grid is fully-wrapping and the requested box spans the
// antimeridian, in which case uLo/uHi describe a two-pass iteration (uLo to
// the grid's last column, then column 0 to uHi).
func cellRange(g grid.Grid, bbox BBox) (uLo, uHi, vLo, vHi int, wraps bool) {
	ni, nj := g.Dims()

	uFor := func(lon float64) int {
		best, bestDist := 0, math.Inf(1)
		for u := 0; u < ni; u++ {
			_, clon := g.Center(u, 0)
			d := math.Abs(angularDelta(clon, lon))
			if d < bestDist {
				best, bestDist = u, d
			}
		}
		return best
	}
	vFor := func(lat float64) int {
		best, bestDist := 0, math.Inf(1)
		for v := 0; v < nj; v++ {
			clat, _ := g.Center(0, v)
			d := math.Abs(clat - lat)
			if d < bestDist {
				best, bestDist = v, d
			}
		}
		return best
	}

	wraps = g.Wrapping() && bbox.LonHi < bbox.LonLo
	uLo = uFor(bbox.LonLo)
	uHi = uFor(bbox.LonHi)
	vLo = vFor(math.Min(bbox.LatLo, bbox.LatHi))
	vHi = vFor(math.Max(bbox.LatLo, bbox.LatHi))
	if vLo > vHi {
		vLo, vHi = vHi, vLo
	}
	if !wraps && uLo > uHi {
		uLo, uHi = uHi, uLo
	}
	return uLo, uHi, vLo, vHi, wraps
}

func angularDelta(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	return d
}
