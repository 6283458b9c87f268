// Package interp implements the bilinear-in-(time,surface) interpolator:
// combining up to four neighboring layers (the corners of a time x surface
// "box") into one rasterized result, sampled at a requested effective time
// and surface value.
//
// Each output cell stores the four corner values and the consumer
// evaluates a bilinear blend at sample time, rather than precomputing one
// scalar per query. One interpolated raster can therefore serve many
// sample points cheaply, which is how the profile builder uses it.
package interp

import (
	"errors"
	"math"
	"time"

	"github.com/windward/gribwx/layer"
	"github.com/windward/gribwx/region"
)

var (
	errEmptyCandidates = errors.New("interp: no candidate layers supplied")
	errNotABox         = errors.New("interp: candidates span more than two distinct times or surfaces")
)

// Corners holds the per-cell 4-tuple of bilinear coefficients: (c00, c01,
// c10, c11), where the first index varies with time and the second with
// surface value.
type Corners struct {
	C00, C01, C10, C11 float64
}

// Result is a rasterized region where every cell carries four corner
// values instead of one, plus the time/surface bounds needed to normalize
// a sample request.
type Result struct {
	BBox          region.BBox
	Width, Height int
	Cells         []Corners

	TimeLo, TimeHi       time.Time
	SurfaceLo, SurfaceHi float64
}

// corner identifies one of the (at most 4) layers contributing to a blend.
type corner struct {
	layer *layer.Layer
	time  time.Time
	surf  float64
}

// Interpolate groups candidates by distinct (effective_time,
// surface1_value), verifies they form a box of at most 2x2 corners sharing
// one parameter and grid, and returns a Result over bbox. Candidates not
// sharing the reference layer's parameter/grid are silently excluded; an
// empty candidate set returns an error.
func Interpolate(candidates []*layer.Layer, bbox region.BBox) (*Result, error) {
	if len(candidates) == 0 {
		return nil, errEmptyCandidates
	}

	ref := candidates[0]
	var corners []corner
	for _, l := range candidates {
		if l.Key.DisciplineID != ref.Key.DisciplineID || l.Key.CategoryID != ref.Key.CategoryID ||
			l.Key.ParameterNumber != ref.Key.ParameterNumber || !l.Grid.Equal(ref.Grid) {
			continue
		}
		corners = append(corners, corner{layer: l, time: l.Key.EffectiveTime, surf: l.Key.Surface1Value})
	}

	times := distinctTimes(corners)
	surfs := distinctSurfaces(corners)
	if len(times) > 2 || len(surfs) > 2 {
		return nil, errNotABox
	}

	timeLo, timeHi := boundTimes(times)
	surfLo, surfHi := boundSurfaces(surfs)

	// Slots are assigned against the same lo/hi bounds Sample normalizes
	// with, so candidate order never decides which corner is "lo".
	slot := func(c corner) (ti, si int) {
		if len(times) == 2 && c.time.Equal(timeHi) {
			ti = 1
		}
		if len(surfs) == 2 && c.surf == surfHi {
			si = 1
		}
		return
	}

	var results [2][2]*region.Result
	for _, c := range corners {
		rr, err := region.Extract(c.layer, bbox)
		if err != nil {
			return nil, err
		}
		ti, si := slot(c)
		results[ti][si] = rr
	}

	width, height := 0, 0
	for _, row := range results {
		for _, rr := range row {
			if rr != nil {
				width, height = rr.Width, rr.Height
			}
		}
	}

	cells := make([]Corners, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = Corners{
				C00: sampleOrNaN(results[0][0], x, y),
				C01: sampleOrNaN(results[0][1], x, y),
				C10: sampleOrNaN(results[1][0], x, y),
				C11: sampleOrNaN(results[1][1], x, y),
			}
		}
	}

	return &Result{
		BBox: bbox, Width: width, Height: height, Cells: cells,
		TimeLo: timeLo, TimeHi: timeHi, SurfaceLo: surfLo, SurfaceHi: surfHi,
	}, nil
}

func sampleOrNaN(r *region.Result, x, y int) float64 {
	if r == nil {
		return math.NaN()
	}
	return r.At(x, y)
}

// Sample evaluates the bilinear blend at cell (x, y) for the requested
// effective time and surface value, clamping the normalized fractions to
// [0, 1]. A corner with zero blend weight does not contribute (this is how
// a collapsed time or surface dimension leaves its unused slots NaN
// without poisoning the result); any contributing NaN corner yields NaN.
func (r *Result) Sample(x, y int, reqTime time.Time, reqSurface float64) float64 {
	c := r.Cells[y*r.Width+x]

	that := normalizedFraction(r.TimeLo, r.TimeHi, reqTime)
	shat := normalizedSurfaceFraction(r.SurfaceLo, r.SurfaceHi, reqSurface)

	corners := [4]float64{c.C00, c.C01, c.C10, c.C11}
	weights := [4]float64{
		(1 - that) * (1 - shat), // time-lo, surface-lo
		(1 - that) * shat,       // time-lo, surface-hi
		that * (1 - shat),       // time-hi, surface-lo
		that * shat,             // time-hi, surface-hi
	}

	sum := 0.0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		if math.IsNaN(corners[i]) {
			return math.NaN()
		}
		sum += w * corners[i]
	}
	return sum
}

func normalizedFraction(lo, hi time.Time, req time.Time) float64 {
	if hi.Equal(lo) {
		return 0
	}
	total := hi.Sub(lo).Seconds()
	got := req.Sub(lo).Seconds()
	return clamp01(got / total)
}

func normalizedSurfaceFraction(lo, hi, req float64) float64 {
	if hi == lo {
		return 0
	}
	return clamp01((req - lo) / (hi - lo))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func distinctTimes(corners []corner) []time.Time {
	var out []time.Time
	for _, c := range corners {
		found := false
		for _, t := range out {
			if t.Equal(c.time) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c.time)
		}
	}
	return out
}

func distinctSurfaces(corners []corner) []float64 {
	var out []float64
	for _, c := range corners {
		found := false
		for _, s := range out {
			if s == c.surf {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c.surf)
		}
	}
	return out
}

func boundTimes(times []time.Time) (lo, hi time.Time) {
	if len(times) == 0 {
		return time.Time{}, time.Time{}
	}
	lo, hi = times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	return lo, hi
}

func boundSurfaces(surfs []float64) (lo, hi float64) {
	if len(surfs) == 0 {
		return 0, 0
	}
	lo, hi = surfs[0], surfs[0]
	for _, s := range surfs[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}
