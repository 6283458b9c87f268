package profile

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/windward/gribwx/grid"
	"github.com/windward/gribwx/layer"
)

type constDecoder struct{ values []float64 }

func (d constDecoder) Decode(payload []byte, bitmap []bool) ([]float64, error) {
	return d.values, nil
}

func insertUniformLayer(t *testing.T, reg *layer.Registry, disc, cat, num uint8, effective time.Time, surfacePa, value float64) {
	t.Helper()
	g := &grid.LatLonGrid{Ni: 4, Nj: 4, La1: 20000, Lo1: -20000, Di: 10000, Dj: 10000}
	key := layer.Key{
		DisciplineID: disc, CategoryID: cat, ParameterNumber: num,
		GridFingerprint: "t",
		ReferenceTime:   effective,
		EffectiveTime:   effective,
		Surface1Type:    100,
		Surface1Value:   surfacePa,
	}
	values := make([]float64, 16)
	for i := range values {
		values[i] = value
	}
	l := layer.New(key, g, layer.PackingSimple, constDecoder{values}, layer.DataRegion{Length: 16}, nil)
	require.NoError(t, l.CheckLoad(make([]byte, 16), "", 0, zerolog.Nop()))
	require.NoError(t, reg.Insert(l))
}

func TestBuildProducesOneIsobarPerLevel(t *testing.T) {
	reg := layer.NewRegistry("", zerolog.Nop())
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, lvl := range IsobaricLevels {
		surfacePa := float64(lvl) * 100
		insertUniformLayer(t, reg, 0, 0, 0, t0, surfacePa, 250) // temperature
		insertUniformLayer(t, reg, 0, 1, 1, t0, surfacePa, 40)  // RH
		insertUniformLayer(t, reg, 0, 2, 2, t0, surfacePa, 5)   // u wind
		insertUniformLayer(t, reg, 0, 2, 3, t0, surfacePa, -3)  // v wind
	}

	route := []Waypoint{
		{Lat: 0, Lon: 0, Alt: 0, Time: t0},
		{Lat: 0.1, Lon: 0.1, Alt: 1000, Time: t0.Add(10 * time.Minute)},
	}

	result, err := Build(reg, route, Config{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Points)

	for _, p := range result.Points {
		require.Len(t, p.Isobars, 27)
		require.InDelta(t, 250, p.Isobars[0].Temperature, 1e-9)
		require.InDelta(t, 5, p.Isobars[0].UWind, 1e-9)
	}
}

func TestBuildHandlesSingleWaypoint(t *testing.T) {
	reg := layer.NewRegistry("", zerolog.Nop())
	route := []Waypoint{{Lat: 10, Lon: 20, Alt: 500, Time: time.Now()}}

	result, err := Build(reg, route, Config{})
	require.NoError(t, err)
	require.Len(t, result.Points, 1)
}

func TestDayPhase(t *testing.T) {
	noon := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, uint16(FlagDay), dayPhase(0, 0, noon))

	midnight := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, uint16(FlagNight), dayPhase(0, 0, midnight))
}

func TestWeatherFlagsPrecipType(t *testing.T) {
	mk := func(tempK float64) Point {
		p := Point{EffectiveTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), PrecipRate: 1}
		p.Isobars[0].Temperature = tempK
		return p
	}

	require.NotZero(t, weatherFlags(mk(280))&FlagRain)
	require.NotZero(t, weatherFlags(mk(272.5))&FlagFreezingRain)
	require.NotZero(t, weatherFlags(mk(271.5))&FlagIcePellets)
	require.NotZero(t, weatherFlags(mk(260))&FlagSnow)

	dry := Point{EffectiveTime: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	require.Zero(t, weatherFlags(dry)&(FlagRain|FlagFreezingRain|FlagIcePellets|FlagSnow))
}

func TestDensifyRespectsSpacing(t *testing.T) {
	t0 := time.Now()
	route := []Waypoint{
		{Lat: 0, Lon: 0, Time: t0},
		{Lat: 1, Lon: 0, Time: t0.Add(time.Hour)}, // ~111km leg
	}
	samples := densify(route, 50000) // 50km spacing
	require.Greater(t, len(samples), 2)
}
