package layer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/windward/gribwx/grid"
)

type constDecoder struct{ values []float64 }

func (d constDecoder) Decode(payload []byte, bitmap []bool) ([]float64, error) {
	return d.values, nil
}

func testGrid() *grid.LatLonGrid {
	return &grid.LatLonGrid{Ni: 2, Nj: 2, Di: 1000, Dj: 1000}
}

func testKey(effective time.Time) Key {
	return Key{
		DisciplineID: 0, CategoryID: 0, ParameterNumber: 0,
		GridFingerprint: "g1",
		ReferenceTime:   effective,
		EffectiveTime:   effective,
		Surface1Type:    100,
		Surface1Value:   50000,
	}
}

func TestRegistryInsertAndFindAll(t *testing.T) {
	r := NewRegistry("", zerolog.Nop())
	now := time.Now().UTC()

	l := New(testKey(now), testGrid(), PackingSimple, constDecoder{[]float64{1, 2, 3, 4}}, DataRegion{Filename: "x", Length: 4}, nil)
	require.NoError(t, r.Insert(l))

	all := r.FindAll()
	require.Len(t, all, 1)
}

func TestRegistryInsertDuplicateDiscarded(t *testing.T) {
	r := NewRegistry("", zerolog.Nop())
	now := time.Now().UTC()
	key := testKey(now)

	l1 := New(key, testGrid(), PackingSimple, constDecoder{[]float64{1}}, DataRegion{Filename: "a"}, nil)
	l2 := New(key, testGrid(), PackingSimple, constDecoder{[]float64{2}}, DataRegion{Filename: "b"}, nil)

	require.NoError(t, r.Insert(l1))
	err := r.Insert(l2)
	require.Error(t, err)

	all := r.FindAll()
	require.Len(t, all, 1)
	require.Equal(t, "a", all[0].dataRegion.Filename)
}

func TestRegistryFindSurfaceEpsilon(t *testing.T) {
	r := NewRegistry("", zerolog.Nop())
	now := time.Now().UTC()
	key := testKey(now)
	key.Surface1Value = 50000.0005 // within default epsilon of 50000

	l := New(key, testGrid(), PackingSimple, constDecoder{[]float64{1}}, DataRegion{Filename: "a"}, nil)
	require.NoError(t, r.Insert(l))

	found := r.FindSurface(0, 0, 0, now, 100, 50000)
	require.Len(t, found, 1)

	notFound := r.FindSurface(0, 0, 0, now, 100, 60000)
	require.Empty(t, notFound)
}

func TestLayerCheckLoadDecodesOnce(t *testing.T) {
	decodeCount := 0
	counting := decodeCountingDecoder{&decodeCount, []float64{1, 2, 3, 4}}

	l := New(testKey(time.Now()), testGrid(), PackingSimple, counting, DataRegion{Length: 4}, nil)
	source := []byte{0, 1, 2, 3}

	require.NoError(t, l.CheckLoad(source, "", time.Minute, zerolog.Nop()))
	require.NoError(t, l.CheckLoad(source, "", time.Minute, zerolog.Nop()))
	require.Equal(t, 1, decodeCount)
	require.Equal(t, []float64{1, 2, 3, 4}, l.Values())
}

type decodeCountingDecoder struct {
	count  *int
	values []float64
}

func (d decodeCountingDecoder) Decode(payload []byte, bitmap []bool) ([]float64, error) {
	*d.count++
	return d.values, nil
}

func TestCheckLoadUsesDiskCache(t *testing.T) {
	cacheDir := t.TempDir()
	source := []byte{0, 1, 2, 3}

	firstCount := 0
	first := New(testKey(time.Now()), testGrid(), PackingSimple,
		decodeCountingDecoder{&firstCount, []float64{9, 8, 7, 6}}, DataRegion{Length: 4}, nil)
	require.NoError(t, first.CheckLoad(source, cacheDir, time.Minute, zerolog.Nop()))
	require.Equal(t, 1, firstCount)

	// A cold layer over the same encoded bytes hits the cache file and
	// never invokes its decoder.
	secondCount := 0
	second := New(testKey(time.Now()), testGrid(), PackingSimple,
		decodeCountingDecoder{&secondCount, nil}, DataRegion{Length: 4}, nil)
	require.NoError(t, second.CheckLoad(source, cacheDir, time.Minute, zerolog.Nop()))
	require.Equal(t, 0, secondCount)
	require.Equal(t, []float64{9, 8, 7, 6}, second.Values())
}

func TestCheckLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src.grib2")
	require.NoError(t, os.WriteFile(path, []byte{0xAA, 0xBB, 0xCC, 0xDD}, 0o644))

	l := New(testKey(time.Now()), testGrid(), PackingSimple,
		constDecoder{[]float64{1, 2, 3, 4}}, DataRegion{Filename: path, Offset: 1, Length: 2}, nil)
	require.NoError(t, l.CheckLoadFromFile("", time.Minute, zerolog.Nop()))
	require.Equal(t, []float64{1, 2, 3, 4}, l.Values())
}

func TestSweepCacheDirRemovesAgedFiles(t *testing.T) {
	r := NewRegistry(t.TempDir(), zerolog.Nop())
	r.CacheMaxAge = time.Hour

	stale := filepath.Join(r.CacheDir, "stale.bin")
	fresh := filepath.Join(r.CacheDir, "fresh.bin")
	require.NoError(t, os.WriteFile(stale, make([]byte, 16), 0o644))
	require.NoError(t, os.WriteFile(fresh, make([]byte, 16), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	require.NoError(t, r.SweepCacheDir(context.Background()))

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	require.NoError(t, err)
}

func TestRegistryRemoveObsoleteLayers(t *testing.T) {
	r := NewRegistry("", zerolog.Nop())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	oldKey := testKey(base)
	oldKey.ReferenceTime = base.Add(-48 * time.Hour)
	newKey := testKey(base)
	newKey.ReferenceTime = base

	require.NoError(t, r.Insert(New(oldKey, testGrid(), PackingSimple, constDecoder{}, DataRegion{Filename: "old"}, nil)))
	require.NoError(t, r.Insert(New(newKey, testGrid(), PackingSimple, constDecoder{}, DataRegion{Filename: "new"}, nil)))

	removed := r.RemoveObsoleteLayers(24 * time.Hour)
	require.Equal(t, 1, removed)
	require.Len(t, r.FindAll(), 1)
}
