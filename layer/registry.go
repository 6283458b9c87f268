package layer

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/windward/gribwx/grierr"
)

// SurfaceValueEpsilon is the default tolerance used when comparing
// surface1_value during lookups, per the recorded decision that grid
// surface values are always scaled integers and so a small fixed epsilon
// comfortably separates distinct levels.
const SurfaceValueEpsilon = 1e-3

// Registry is an ordered, keyed set of layers. A mutex guards insertion and
// iteration; readers holding a layer's shared borrow do not hold this
// mutex while decoding, so a slow decode of one layer never blocks
// registration or lookup of another.
type Registry struct {
	mu     sync.Mutex
	byKey  map[Key]*Layer
	sorted []*Layer // kept in keyLess order; rebuilt lazily after Insert

	CacheDir          string
	CacheMaxAge       time.Duration
	CacheMaxBytes     int64
	LayerIdleExpiry   time.Duration
	SurfaceEpsilon    float64
	Log               zerolog.Logger

	dirty bool
}

// NewRegistry constructs an empty registry with the given on-disk cache
// directory (empty disables the decoded-value cache) and the library's
// default cache and expiry settings.
func NewRegistry(cacheDir string, log zerolog.Logger) *Registry {
	return &Registry{
		byKey:           make(map[Key]*Layer),
		CacheDir:        cacheDir,
		CacheMaxAge:     14 * 24 * time.Hour,
		CacheMaxBytes:   1 << 30,
		LayerIdleExpiry: 60 * time.Second,
		SurfaceEpsilon:  SurfaceValueEpsilon,
		Log:             log,
	}
}

// Insert adds a layer to the registry. If a layer with an equal key
// already exists, the existing layer wins and l is discarded — this is
// reported as a grierr.DuplicateLayer error (informational; callers are
// expected to log and continue, not abort).
func (r *Registry) Insert(l *Layer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[l.Key]; exists {
		return grierr.New(grierr.DuplicateLayer, 0, 0, "layer with key %+v already registered", l.Key)
	}
	r.byKey[l.Key] = l
	r.dirty = true
	return nil
}

func (r *Registry) ensureSorted() {
	if !r.dirty {
		return
	}
	r.sorted = r.sorted[:0]
	for _, l := range r.byKey {
		r.sorted = append(r.sorted, l)
	}
	sortKeys(r.sorted)
	r.dirty = false
}

// FindAll returns every registered layer in canonical key order.
func (r *Registry) FindAll() []*Layer {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSorted()
	out := make([]*Layer, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// Find returns every layer matching the given parameter triple and
// effective time exactly.
func (r *Registry) Find(disc, cat, num uint8, effectiveTime time.Time) []*Layer {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSorted()

	var out []*Layer
	for _, l := range r.sorted {
		k := l.Key
		if k.DisciplineID == disc && k.CategoryID == cat && k.ParameterNumber == num && k.EffectiveTime.Equal(effectiveTime) {
			out = append(out, l)
		}
	}
	return out
}

// FindSurface further filters Find's result set to layers whose
// surface1_type matches and whose surface1_value is within the registry's
// SurfaceEpsilon of the requested value.
func (r *Registry) FindSurface(disc, cat, num uint8, effectiveTime time.Time, surfaceType uint8, surfaceValue float64) []*Layer {
	candidates := r.Find(disc, cat, num, effectiveTime)
	var out []*Layer
	for _, l := range candidates {
		if l.Key.Surface1Type != surfaceType {
			continue
		}
		if diff := l.Key.Surface1Value - surfaceValue; diff < -r.SurfaceEpsilon || diff > r.SurfaceEpsilon {
			continue
		}
		out = append(out, l)
	}
	return out
}

// RemoveMissingLayers drops every layer whose source file no longer
// exists, returning the number removed.
func (r *Registry) RemoveMissingLayers() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for k, l := range r.byKey {
		if _, err := os.Stat(l.dataRegion.Filename); os.IsNotExist(err) {
			delete(r.byKey, k)
			removed++
		}
	}
	if removed > 0 {
		r.dirty = true
	}
	return removed
}

// RemoveObsoleteLayers drops layers whose reference time is older than the
// newest layer sharing the same (parameter, effective_time, surface)
// triple by at least one reference-time cycle, returning the number
// removed.
func (r *Registry) RemoveObsoleteLayers(cycle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	type group struct {
		disc, cat, num uint8
		surfType       uint8
		surfValue      float64
		effective      time.Time
	}
	newest := make(map[group]time.Time)
	groupOf := func(k Key) group {
		return group{k.DisciplineID, k.CategoryID, k.ParameterNumber, k.Surface1Type, k.Surface1Value, k.EffectiveTime}
	}
	for _, l := range r.byKey {
		g := groupOf(l.Key)
		if l.Key.ReferenceTime.After(newest[g]) {
			newest[g] = l.Key.ReferenceTime
		}
	}

	removed := 0
	for k, l := range r.byKey {
		g := groupOf(l.Key)
		if newest[g].Sub(l.Key.ReferenceTime) >= cycle {
			delete(r.byKey, k)
			removed++
		}
	}
	if removed > 0 {
		r.dirty = true
	}
	return removed
}

// SweepIdle evicts the decoded buffer of every layer that has been idle
// past its expiry timestamp and is not pinned by an outstanding Retain.
// Intended to run periodically from a background goroutine (see
// RunCacheSweeper).
func (r *Registry) SweepIdle() {
	now := time.Now()
	for _, l := range r.FindAll() {
		if l.idle(now) {
			l.evict()
		}
	}
}

// SweepCacheDir removes on-disk cache files older than CacheMaxAge and,
// in LRU order by mtime, additional files until the directory's total size
// is at most CacheMaxBytes. Uses errgroup to stat the directory's entries
// concurrently, since a populated cache directory can hold many thousands
// of small files and directory-wide stat is the dominant cost.
func (r *Registry) SweepCacheDir(ctx context.Context) error {
	if r.CacheDir == "" {
		return nil
	}
	entries, err := os.ReadDir(r.CacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return grierr.Wrap(err, grierr.CacheIOError, 0, 0, "reading cache directory")
	}

	type fileInfo struct {
		path  string
		size  int64
		mtime time.Time
	}
	infos := make([]fileInfo, len(entries))

	g, _ := errgroup.WithContext(ctx)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			fi, err := e.Info()
			if err != nil {
				return nil // tolerate races with concurrent cache writers
			}
			infos[i] = fileInfo{path: filepath.Join(r.CacheDir, e.Name()), size: fi.Size(), mtime: fi.ModTime()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	now := time.Now()
	var kept []fileInfo
	var total int64
	for _, fi := range infos {
		if fi.path == "" {
			continue
		}
		if now.Sub(fi.mtime) > r.CacheMaxAge {
			os.Remove(fi.path)
			continue
		}
		kept = append(kept, fi)
		total += fi.size
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].mtime.Before(kept[j].mtime) })
	for _, fi := range kept {
		if total <= r.CacheMaxBytes {
			break
		}
		os.Remove(fi.path)
		total -= fi.size
	}
	return nil
}

// RunCacheSweeper runs SweepIdle and SweepCacheDir on the given interval
// until ctx is canceled. Intended to be launched once per registry as a
// background goroutine by the owning GRIB2 reader.
func (r *Registry) RunCacheSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.SweepIdle()
			if err := r.SweepCacheDir(ctx); err != nil {
				r.Log.Info().Err(err).Msg("cache directory sweep failed")
			}
		}
	}
}
