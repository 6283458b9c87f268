// Package main provides a command-line tool that builds a route weather
// profile from one or more GRIB2 files: scan the files into a layer
// registry, then sample the interpolated fields along the route at the
// fixed isobaric levels.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	grib "github.com/windward/gribwx"
	"github.com/windward/gribwx/config"
	"github.com/windward/gribwx/layer"
	"github.com/windward/gribwx/profile"
)

var (
	configFlag  = pflag.StringP("config", "c", "", "TOML configuration file")
	routeFlag   = pflag.StringP("route", "r", "", "Route waypoints as lat,lon[,alt_m] pairs joined by ':' (e.g. \"40,-10,3000:40,0,3000\")")
	startFlag   = pflag.StringP("start", "t", "", "Route start time, RFC 3339 (default: first layer's reference time)")
	spacingFlag = pflag.Float64P("spacing", "s", 0, "Sample spacing in nautical miles (overrides config)")
	cacheFlag   = pflag.String("cache-dir", "", "Decoded-value cache directory (overrides config)")
	verboseFlag = pflag.BoolP("verbose", "v", false, "Log parse warnings to stderr")
	noColorFlag = pflag.Bool("no-color", false, "Disable colorized output")

	headerColor = color.New(color.FgCyan, color.Bold)
	warnColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] --route <waypoints> <grib2-file>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Build a vertical weather profile along a route from GRIB2 forecast files.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *noColorFlag {
		color.NoColor = true
	}

	files := pflag.Args()
	if *routeFlag == "" || len(files) == 0 {
		pflag.Usage()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		cfg, err = config.Load(*configFlag)
		if err != nil {
			warnColor.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *spacingFlag > 0 {
		cfg.ProfileSamplingNauticalMiles = *spacingFlag
	}
	if *cacheFlag != "" {
		cfg.CacheDirectory = *cacheFlag
	}

	logger := zerolog.Nop()
	if *verboseFlag {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	reg := layer.NewRegistry(cfg.CacheDirectory, logger)
	reg.CacheMaxAge = cfg.CacheMaxAge()
	reg.CacheMaxBytes = cfg.CacheMaxBytes
	reg.LayerIdleExpiry = cfg.LayerIdleExpiry()

	total := 0
	for _, f := range files {
		n, err := grib.ScanFile(f, reg, grib.WithLogger(logger))
		if err != nil {
			warnColor.Fprintf(os.Stderr, "Error scanning %s: %v\n", f, err)
			os.Exit(1)
		}
		total += n
	}
	if total == 0 {
		warnColor.Fprintln(os.Stderr, "No decodable layers found in input files")
		os.Exit(1)
	}

	start, err := resolveStart(reg)
	if err != nil {
		warnColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Layers registered by ScanFile decode from their source files.
	for _, l := range reg.FindAll() {
		if err := l.CheckLoadFromFile(cfg.CacheDirectory, cfg.LayerIdleExpiry(), logger); err != nil {
			logger.Warn().Err(err).Msg("layer decode failed")
		}
	}

	route, err := parseRoute(*routeFlag, start)
	if err != nil {
		warnColor.Fprintf(os.Stderr, "Error parsing route: %v\n", err)
		os.Exit(1)
	}

	result, err := profile.Build(reg, route, profile.Config{SampleSpacingNM: cfg.ProfileSamplingNauticalMiles})
	if err != nil {
		warnColor.Fprintf(os.Stderr, "Error building profile: %v\n", err)
		os.Exit(1)
	}

	printProfile(result, total)
}

// resolveStart picks the route start time: the --start flag if given,
// otherwise the earliest reference time in the registry.
func resolveStart(reg *layer.Registry) (time.Time, error) {
	if *startFlag != "" {
		t, err := time.Parse(time.RFC3339, *startFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --start time: %w", err)
		}
		return t, nil
	}
	layers := reg.FindAll()
	if len(layers) == 0 {
		return time.Time{}, fmt.Errorf("no layers to derive a start time from")
	}
	start := layers[0].Key.ReferenceTime
	for _, l := range layers[1:] {
		if l.Key.ReferenceTime.Before(start) {
			start = l.Key.ReferenceTime
		}
	}
	return start, nil
}

// parseRoute turns "lat,lon[,alt]:lat,lon[,alt]..." into waypoints, all
// stamped with the route start time (per-leg timing is derived by the
// densifier from sample spacing).
func parseRoute(s string, start time.Time) ([]profile.Waypoint, error) {
	var route []profile.Waypoint
	for _, leg := range strings.Split(s, ":") {
		parts := strings.Split(leg, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("waypoint %q: want lat,lon[,alt_m]", leg)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: bad latitude: %w", leg, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: bad longitude: %w", leg, err)
		}
		alt := 0.0
		if len(parts) == 3 {
			alt, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("waypoint %q: bad altitude: %w", leg, err)
			}
		}
		route = append(route, profile.Waypoint{Lat: lat, Lon: lon, Alt: alt, Time: start})
	}
	if len(route) < 1 {
		return nil, fmt.Errorf("route needs at least one waypoint")
	}
	return route, nil
}

// printedLevels is the subset of isobaric levels shown per point; the full
// 27-level stack would not fit a terminal line.
var printedLevels = []int{1000, 850, 700, 500, 300, 200, 100}

func printProfile(result *profile.Result, layerCount int) {
	headerColor.Printf("Route profile: %d points from %d layers\n", len(result.Points), layerCount)
	if !result.MinEffectiveTime.IsZero() {
		fmt.Printf("Effective times: %s to %s\n",
			result.MinEffectiveTime.Format(time.RFC3339), result.MaxEffectiveTime.Format(time.RFC3339))
	}
	fmt.Println()

	for i, p := range result.Points {
		headerColor.Printf("Point %d: %.3f, %.3f at %.0f m (%.1f nm along route)\n",
			i, p.Lat, p.Lon, p.Alt, p.RouteDistanceMeters/1852.0)
		fmt.Printf("  %-8s %-10s %-10s %-10s %-10s\n", "hPa", "T (K)", "RH (%)", "U (m/s)", "V (m/s)")
		for j, hPa := range profile.IsobaricLevels {
			if !printedLevel(hPa) {
				continue
			}
			iso := p.Isobars[j]
			fmt.Printf("  %-8d %-10s %-10s %-10s %-10s\n",
				hPa, fmtVal(iso.Temperature), fmtVal(iso.RelativeHumidity),
				fmtVal(iso.UWind), fmtVal(iso.VWind))
		}
		fmt.Println()
	}
}

func printedLevel(hPa int) bool {
	for _, l := range printedLevels {
		if l == hPa {
			return true
		}
	}
	return false
}

func fmtVal(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}
