// Package profile builds a vertical weather sounding along a route: for
// each sample point along a polyline of waypoints, a per-isobar wind and
// temperature profile plus a handful of derived scalars.
//
// A level is a plain struct with NaN marking anything the registry could
// not supply; every profile point carries the same fixed 27-level isobaric
// layout so consumers can index levels positionally.
package profile

import (
	"math"
	"time"

	"github.com/windward/gribwx/interp"
	"github.com/windward/gribwx/layer"
	"github.com/windward/gribwx/region"
)

// IsobaricLevels lists the 27 fixed pressure levels, in hectopascals, that
// every profile point carries a slot for.
var IsobaricLevels = [27]int{
	1000, 975, 950, 925, 900, 850, 800, 750, 700, 650, 600, 550, 500,
	450, 400, 350, 300, 250, 200, 150, 125, 100, 70, 50, 30, 20, 10,
}

// Weather flag bits, matching the original sounding point's bitset layout.
const (
	FlagDayMask        = 0x03
	FlagDay            = 0x00
	FlagDusk           = 0x01
	FlagNight          = 0x02
	FlagDawn           = 0x03
	FlagRain           = 0x04
	FlagFreezingRain   = 0x08
	FlagIcePellets     = 0x10
	FlagSnow           = 0x20
)

// Isobar holds the interpolated scalars at one fixed pressure level.
type Isobar struct {
	UWind, VWind                 float64 // m/s
	Temperature                  float64 // kelvin
	RelativeHumidity             float64 // percent
	HorizontalWindShear          float64 // (m/s)/m
	VerticalWindShear            float64 // (m/s)/m
}

func (i Isobar) windSpeed() float64 {
	return math.Hypot(i.UWind, i.VWind)
}

// CloudLayer describes one of the five fixed cloud layers (boundary, low,
// mid, high, convective): percent cover plus base/top altitude in meters.
// NaN cover means "no report".
type CloudLayer struct {
	CoverPercent float64
	BaseMeters   float64
	TopMeters    float64
}

// Point is one sample along the route: position, time, altitude, the 27
// isobaric slots, and the derived scalar fields.
type Point struct {
	Lat, Lon float64
	Alt      float64 // meters
	EffectiveTime time.Time

	DistanceMeters      float64
	RouteDistanceMeters float64
	RouteIndex          int

	Isobars [27]Isobar

	ZeroDegIsothermAlt float64 // meters, NaN if not found
	TropopauseAlt      float64 // meters, NaN if not found
	BoundaryLayerTop   float64 // meters, NaN if unavailable

	CloudBoundary, CloudLow, CloudMid, CloudHigh, CloudConvective CloudLayer

	PrecipTotal, PrecipRate         float64
	ConvPrecipTotal, ConvPrecipRate float64
	LiftedIndex, CAPE, CIN          float64

	Flags uint16
}

// Waypoint is one vertex of the input route.
type Waypoint struct {
	Lat, Lon float64
	Alt      float64
	Time     time.Time
}

// Config tunes the densification and lookup parameters.
type Config struct {
	SampleSpacingNM float64 // defaults to 5 if zero
	BBoxHalfWidthDeg float64 // defaults to 0.25 (so a 0.5x0.5 deg box) if zero
}

// Result bundles the computed profile points with the reference/effective
// time span actually encountered while sampling the registry.
type Result struct {
	Points []Point

	MinReferenceTime, MaxReferenceTime time.Time
	MinEffectiveTime, MaxEffectiveTime time.Time
}

const earthRadiusMeters = 6371000.0
const nmToMeters = 1852.0

// Build densifies route into sample points at cfg's spacing, runs the
// interpolator at each of the 27 isobaric levels for the four core wind
// and temperature parameters, and derives wind shear across adjacent
// levels. Safe for concurrent use across disjoint routes; it only reads
// from reg.
func Build(reg *layer.Registry, route []Waypoint, cfg Config) (*Result, error) {
	if cfg.SampleSpacingNM <= 0 {
		cfg.SampleSpacingNM = 5
	}
	if cfg.BBoxHalfWidthDeg <= 0 {
		cfg.BBoxHalfWidthDeg = 0.25
	}

	samples := densify(route, cfg.SampleSpacingNM*nmToMeters)

	result := &Result{}
	for _, s := range samples {
		p := Point{
			Lat: s.lat, Lon: s.lon, Alt: s.alt,
			EffectiveTime:       s.time,
			DistanceMeters:      s.dist,
			RouteDistanceMeters: s.routeDist,
			RouteIndex:          s.routeIndex,
			ZeroDegIsothermAlt:  math.NaN(),
			TropopauseAlt:       math.NaN(),
			BoundaryLayerTop:    math.NaN(),
		}

		bbox := region.BBox{
			LatLo: s.lat - cfg.BBoxHalfWidthDeg, LatHi: s.lat + cfg.BBoxHalfWidthDeg,
			LonLo: s.lon - cfg.BBoxHalfWidthDeg, LonHi: s.lon + cfg.BBoxHalfWidthDeg,
		}

		for i, hPa := range IsobaricLevels {
			surfacePa := float64(hPa) * 100
			p.Isobars[i] = sampleIsobar(reg, bbox, s.time, surfacePa, result)
		}

		sampleScalars(reg, bbox, &p, result)
		deriveShear(&p)
		p.Flags = weatherFlags(p)

		result.Points = append(result.Points, p)
	}

	return result, nil
}

// sampleIsobar interpolates temperature, relative humidity, and the two
// wind components at one (bbox-center, time, surface) point, tracking the
// widest reference/effective time span seen across all contributing
// layers into acc.
func sampleIsobar(reg *layer.Registry, bbox region.BBox, effectiveTime time.Time, surfacePa float64, acc *Result) Isobar {
	params := []struct {
		disc, cat, num uint8
	}{
		{0, 0, 0}, // temperature
		{0, 1, 1}, // relative humidity
		{0, 2, 2}, // u wind
		{0, 2, 3}, // v wind
	}

	var out [4]float64
	for i, pr := range params {
		candidates := reg.FindSurface(pr.disc, pr.cat, pr.num, effectiveTime, 100, surfacePa)
		if len(candidates) == 0 {
			out[i] = math.NaN()
			continue
		}
		for _, l := range candidates {
			trackTimeSpan(acc, l.Key.ReferenceTime, l.Key.EffectiveTime)
		}
		ir, err := interp.Interpolate(candidates, bbox)
		if err != nil {
			out[i] = math.NaN()
			continue
		}
		cx, cy := ir.Width/2, ir.Height/2
		out[i] = ir.Sample(cx, cy, effectiveTime, surfacePa)
	}

	return Isobar{
		Temperature:       out[0],
		RelativeHumidity:  out[1],
		UWind:             out[2],
		VWind:             out[3],
	}
}

// Fixed-surface type codes used by the scalar sampling below.
const (
	surfaceGround        = 1
	surfaceCloudBase     = 2
	surfaceCloudTop      = 3
	surfaceZeroIsotherm  = 4
	surfaceTropopause    = 7
	surfaceLowCloudLayer = 214
	surfaceMidCloudLayer = 224
	surfaceHighCloudLayer = 234
	surfaceBoundaryLayer  = 220
)

// sampleScalar interpolates one single-surface parameter at the point,
// returning NaN when the registry holds no matching layer.
func sampleScalar(reg *layer.Registry, bbox region.BBox, effectiveTime time.Time,
	disc, cat, num uint8, surfType uint8, surfValue float64, acc *Result) float64 {

	candidates := reg.FindSurface(disc, cat, num, effectiveTime, surfType, surfValue)
	if len(candidates) == 0 {
		return math.NaN()
	}
	for _, l := range candidates {
		trackTimeSpan(acc, l.Key.ReferenceTime, l.Key.EffectiveTime)
	}
	ir, err := interp.Interpolate(candidates, bbox)
	if err != nil || ir.Width == 0 || ir.Height == 0 {
		return math.NaN()
	}
	return ir.Sample(ir.Width/2, ir.Height/2, effectiveTime, surfValue)
}

// sampleScalars fills the profile point's non-isobaric fields: derived
// altitudes, cloud layers, precipitation, and convective indices. Anything
// the registry cannot supply stays NaN (or zero for precipitation, so the
// flag derivation treats absent fields as dry).
func sampleScalars(reg *layer.Registry, bbox region.BBox, p *Point, acc *Result) {
	at := func(disc, cat, num, surfType uint8, surfValue float64) float64 {
		return sampleScalar(reg, bbox, p.EffectiveTime, disc, cat, num, surfType, surfValue, acc)
	}

	// Geopotential height (0/3/5) on the characteristic surfaces.
	p.ZeroDegIsothermAlt = at(0, 3, 5, surfaceZeroIsotherm, 0)
	p.TropopauseAlt = at(0, 3, 5, surfaceTropopause, 0)
	p.BoundaryLayerTop = at(0, 3, 18, surfaceGround, 0) // planetary boundary layer height

	// Cloud layers: total cloud cover on the layer surfaces, base/top
	// heights from the cloud base/top surfaces.
	base := at(0, 3, 5, surfaceCloudBase, 0)
	top := at(0, 3, 5, surfaceCloudTop, 0)
	p.CloudBoundary = CloudLayer{CoverPercent: at(0, 6, 1, surfaceBoundaryLayer, 0), BaseMeters: base, TopMeters: top}
	p.CloudLow = CloudLayer{CoverPercent: at(0, 6, 1, surfaceLowCloudLayer, 0), BaseMeters: base, TopMeters: top}
	p.CloudMid = CloudLayer{CoverPercent: at(0, 6, 1, surfaceMidCloudLayer, 0), BaseMeters: base, TopMeters: top}
	p.CloudHigh = CloudLayer{CoverPercent: at(0, 6, 1, surfaceHighCloudLayer, 0), BaseMeters: base, TopMeters: top}
	p.CloudConvective = CloudLayer{CoverPercent: at(0, 6, 2, surfaceGround, 0), BaseMeters: base, TopMeters: top}

	// Precipitation and convective indices at the surface. Missing
	// precipitation reads as zero so the weather flags stay dry.
	p.PrecipTotal = zeroIfNaN(at(0, 1, 8, surfaceGround, 0))
	p.PrecipRate = zeroIfNaN(at(0, 1, 7, surfaceGround, 0))
	p.ConvPrecipTotal = zeroIfNaN(at(0, 1, 10, surfaceGround, 0))
	p.ConvPrecipRate = zeroIfNaN(at(0, 1, 37, surfaceGround, 0))
	p.LiftedIndex = at(0, 7, 0, surfaceGround, 0)
	p.CAPE = at(0, 7, 6, surfaceGround, 0)
	p.CIN = at(0, 7, 7, surfaceGround, 0)
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func trackTimeSpan(acc *Result, refTime, effTime time.Time) {
	if acc.MinReferenceTime.IsZero() || refTime.Before(acc.MinReferenceTime) {
		acc.MinReferenceTime = refTime
	}
	if acc.MaxReferenceTime.IsZero() || refTime.After(acc.MaxReferenceTime) {
		acc.MaxReferenceTime = refTime
	}
	if acc.MinEffectiveTime.IsZero() || effTime.Before(acc.MinEffectiveTime) {
		acc.MinEffectiveTime = effTime
	}
	if acc.MaxEffectiveTime.IsZero() || effTime.After(acc.MaxEffectiveTime) {
		acc.MaxEffectiveTime = effTime
	}
}

// deriveShear computes wind shear at each isobar as the magnitude of the
// wind vector difference between the levels on either side of it, scaled
// by the standard-atmosphere geopotential thickness between those two
// levels. At the ends of the array the level itself stands in for the
// missing neighbor. VerticalWindShear is set to the same value as
// HorizontalWindShear.
func deriveShear(p *Point) {
	n := len(p.Isobars)
	for i := 0; i < n; i++ {
		lo, hi := i, i
		if i > 0 {
			lo = i - 1
		}
		if i < n-1 {
			hi = i + 1
		}
		if lo == hi {
			continue
		}

		thickness := standardThicknessMeters(IsobaricLevels[lo], IsobaricLevels[hi])
		if thickness == 0 {
			continue
		}

		duv := math.Hypot(p.Isobars[hi].UWind-p.Isobars[lo].UWind, p.Isobars[hi].VWind-p.Isobars[lo].VWind)
		p.Isobars[i].HorizontalWindShear = duv / thickness
		p.Isobars[i].VerticalWindShear = duv / thickness
	}
}

// standardThicknessMeters approximates the geopotential thickness in
// meters between two pressure levels (hPa) using the hypsometric equation
// with a fixed mean temperature, adequate for a shear-scaling factor
// rather than a thermodynamic computation.
func standardThicknessMeters(hPaLo, hPaHi int) float64 {
	const meanTempK = 250.0
	const gasConstant = 287.05
	const gravity = 9.80665
	if hPaLo == hPaHi || hPaLo <= 0 || hPaHi <= 0 {
		return 0
	}
	return (gasConstant * meanTempK / gravity) * math.Log(float64(hPaLo)/float64(hPaHi))
}

// weatherFlags derives the categorical bitset: the day phase from solar
// elevation at the point, and a precipitation type inferred from the
// lowest isobar's temperature when precipitation is present.
func weatherFlags(p Point) uint16 {
	flags := dayPhase(p.Lat, p.Lon, p.EffectiveTime)
	if p.PrecipRate > 0 || p.ConvPrecipRate > 0 {
		surfaceTemp := p.Isobars[0].Temperature
		switch {
		case math.IsNaN(surfaceTemp):
			flags |= FlagRain
		case surfaceTemp < 271.15:
			flags |= FlagSnow
		case surfaceTemp < 272.15:
			flags |= FlagIcePellets
		case surfaceTemp < 273.15:
			flags |= FlagFreezingRain
		default:
			flags |= FlagRain
		}
	}
	return flags
}

// dayPhase classifies the point as day, dusk, night, or dawn from the
// sun's elevation: above the horizon is day, within civil twilight (down
// to -6 degrees) is dusk or dawn depending on whether the sun is setting
// or rising, and below that is night.
func dayPhase(lat, lon float64, t time.Time) uint16 {
	elev, hourAngle := solarElevation(lat, lon, t.UTC())
	switch {
	case elev > 0:
		return FlagDay
	case elev > -6:
		if hourAngle > 0 {
			return FlagDusk
		}
		return FlagDawn
	default:
		return FlagNight
	}
}

// solarElevation returns the sun's elevation above the horizon and its
// hour angle (negative before local solar noon), both in degrees, using
// the NOAA low-accuracy solar position approximation. Adequate for
// twilight classification; not an ephemeris.
func solarElevation(lat, lon float64, t time.Time) (elevationDeg, hourAngleDeg float64) {
	day := float64(t.YearDay())
	frac := 2 * math.Pi / 365 * (day - 1 + (float64(t.Hour())-12)/24)

	decl := 0.006918 - 0.399912*math.Cos(frac) + 0.070257*math.Sin(frac) -
		0.006758*math.Cos(2*frac) + 0.000907*math.Sin(2*frac) -
		0.002697*math.Cos(3*frac) + 0.00148*math.Sin(3*frac)
	eqTimeMinutes := 229.18 * (0.000075 + 0.001868*math.Cos(frac) - 0.032077*math.Sin(frac) -
		0.014615*math.Cos(2*frac) - 0.040849*math.Sin(2*frac))

	utcMinutes := float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
	trueSolarMinutes := utcMinutes + eqTimeMinutes + 4*lon
	hourAngleDeg = trueSolarMinutes/4 - 180

	latRad := lat * math.Pi / 180
	haRad := hourAngleDeg * math.Pi / 180
	cosZenith := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(haRad)
	if cosZenith > 1 {
		cosZenith = 1
	} else if cosZenith < -1 {
		cosZenith = -1
	}
	elevationDeg = 90 - math.Acos(cosZenith)*180/math.Pi
	return elevationDeg, hourAngleDeg
}

type sample struct {
	lat, lon, alt float64
	time          time.Time
	dist          float64
	routeDist     float64
	routeIndex    int
}

// densify walks route, emitting one sample every spacingMeters along each
// leg (plus the route's own vertices), linearly interpolating altitude and
// time between adjacent waypoints.
func densify(route []Waypoint, spacingMeters float64) []sample {
	if len(route) == 0 {
		return nil
	}
	if len(route) == 1 {
		return []sample{{lat: route[0].Lat, lon: route[0].Lon, alt: route[0].Alt, time: route[0].Time}}
	}

	var out []sample
	cumulative := 0.0
	for i := 0; i < len(route)-1; i++ {
		a, b := route[i], route[i+1]
		legDist := haversineMeters(a.Lat, a.Lon, b.Lat, b.Lon)

		if i == 0 {
			out = append(out, sample{lat: a.Lat, lon: a.Lon, alt: a.Alt, time: a.Time, dist: 0, routeDist: cumulative, routeIndex: i})
		}

		if legDist > 0 {
			for d := spacingMeters; d < legDist; d += spacingMeters {
				t := d / legDist
				out = append(out, sample{
					lat:        a.Lat + t*(b.Lat-a.Lat),
					lon:        a.Lon + t*(b.Lon-a.Lon),
					alt:        a.Alt + t*(b.Alt-a.Alt),
					time:       a.Time.Add(time.Duration(t * float64(b.Time.Sub(a.Time)))),
					dist:       d,
					routeDist:  cumulative + d,
					routeIndex: i,
				})
			}
		}

		cumulative += legDist
		out = append(out, sample{lat: b.Lat, lon: b.Lon, alt: b.Alt, time: b.Time, dist: legDist, routeDist: cumulative, routeIndex: i + 1})
	}
	return out
}

func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
