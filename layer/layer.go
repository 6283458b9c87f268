// Package layer implements the GRIB2 layer registry: a keyed set of decoded
// (or cold, not-yet-decoded) 2-D fields, with lazy on-demand decode,
// refcounted residency, idle expiry, and an on-disk decoded-value cache
// keyed by a digest of the encoded payload bytes.
//
// A Layer is a mutex-guarded struct; expiry is a monotonic timestamp
// refreshed under the lock and harvested by a periodic sweep, so no
// per-layer timer goroutines exist.
package layer

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/windward/gribwx/grid"
	"github.com/windward/gribwx/grierr"
)

// Key is a Layer's immutable identity tuple, per the data model's
// definition of what makes two fields "the same layer". Grids compare by
// grid.Grid.Equal rather than by value, so Key stores a grid fingerprint
// string rather than the grid itself.
type Key struct {
	DisciplineID, CategoryID, ParameterNumber uint8

	GridFingerprint string

	ReferenceTime, EffectiveTime time.Time

	Center, Subcenter                     uint16
	ProductionStatus, DataType             uint8
	GeneratingProcess, GeneratingProcType  uint8
	Surface1Type                          uint8
	Surface1Value                         float64
	Surface2Type                          uint8
	Surface2Value                         float64
}

// DataRegion locates a byte range of encoded payload within a source file.
type DataRegion struct {
	Filename string
	Offset   int64
	Length   int64
}

// PackingKind identifies which of the four packing decoders owns a layer's
// payload.
type PackingKind int

const (
	PackingSimple PackingKind = iota
	PackingComplex
	PackingComplexSpatialDiff
	PackingJPEG2000
)

// Decoder decodes one layer's encoded payload into a float64 slice in the
// grid's natural linear order. Implementations live in the data package;
// the registry only ever calls through this narrow seam so it never needs
// to import a specific packing template.
type Decoder interface {
	Decode(payload []byte, bitmap []bool) ([]float64, error)
}

// Layer represents one decoded (or not-yet-decoded) 2-D field.
type Layer struct {
	Key  Key
	Grid grid.Grid

	Packing    PackingKind
	decoder    Decoder
	dataRegion DataRegion
	bitmapRegion *DataRegion // nil when there is no bitmap

	// StatisticalMetadata carries Template 4.8's processing list when
	// present, retained for informational display; no component here
	// interprets it further.
	StatisticalMetadata any

	mu       sync.Mutex
	decoded  []float64
	expiry   time.Time
	refcount int
}

// New constructs a cold layer. The decoder is not invoked until the first
// CheckLoad call.
func New(key Key, g grid.Grid, packing PackingKind, decoder Decoder, data DataRegion, bitmap *DataRegion) *Layer {
	return &Layer{
		Key:          key,
		Grid:         g,
		Packing:      packing,
		decoder:      decoder,
		dataRegion:   data,
		bitmapRegion: bitmap,
	}
}

// digest returns a stable hex digest of the encoded payload's identity:
// the file region's length and contents. It is used as the on-disk cache
// filename.
func digest(region DataRegion, payload []byte) string {
	h := sha256.New()
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(region.Length))
	h.Write(lenBuf[:])
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// CheckLoad ensures the layer's decoded buffer is resident, reading the
// encoded payload and bitmap from sourceData, consulting/populating
// cacheDir, and otherwise invoking the layer's packing decoder. idleTimeout
// is used to arm the expiry stamp. Safe for concurrent use; only the first
// caller to find the buffer cold actually decodes.
func (l *Layer) CheckLoad(sourceData []byte, cacheDir string, idleTimeout time.Duration, log zerolog.Logger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.decoded != nil {
		l.expiry = time.Now().Add(idleTimeout)
		return nil
	}

	payload, err := readRegion(sourceData, l.dataRegion)
	if err != nil {
		return grierr.Wrap(err, grierr.Truncated, 7, int(l.dataRegion.Offset), "reading layer payload")
	}

	var bitmapBytes []byte
	if l.bitmapRegion != nil {
		bitmapBytes, err = readRegion(sourceData, *l.bitmapRegion)
		if err != nil {
			return grierr.Wrap(err, grierr.Truncated, 6, int(l.bitmapRegion.Offset), "reading bitmap")
		}
	}

	return l.loadLocked(payload, bitmapBytes, cacheDir, idleTimeout, log)
}

// CheckLoadFromFile is CheckLoad for layers whose data region names a
// source file on disk: the payload and bitmap byte ranges are read
// directly from the file rather than from a caller-held buffer.
func (l *Layer) CheckLoadFromFile(cacheDir string, idleTimeout time.Duration, log zerolog.Logger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.decoded != nil {
		l.expiry = time.Now().Add(idleTimeout)
		return nil
	}

	f, err := os.Open(l.dataRegion.Filename)
	if err != nil {
		return grierr.Wrap(err, grierr.Truncated, 7, int(l.dataRegion.Offset), "opening source file")
	}
	defer f.Close()

	payload := make([]byte, l.dataRegion.Length)
	if _, err := f.ReadAt(payload, l.dataRegion.Offset); err != nil {
		return grierr.Wrap(err, grierr.Truncated, 7, int(l.dataRegion.Offset), "reading layer payload")
	}

	var bitmapBytes []byte
	if l.bitmapRegion != nil {
		bitmapBytes = make([]byte, l.bitmapRegion.Length)
		if _, err := f.ReadAt(bitmapBytes, l.bitmapRegion.Offset); err != nil {
			return grierr.Wrap(err, grierr.Truncated, 6, int(l.bitmapRegion.Offset), "reading bitmap")
		}
	}

	return l.loadLocked(payload, bitmapBytes, cacheDir, idleTimeout, log)
}

// loadLocked runs the cache-or-decode path. Callers hold l.mu.
func (l *Layer) loadLocked(payload, bitmapBytes []byte, cacheDir string, idleTimeout time.Duration, log zerolog.Logger) error {
	sum := digest(l.dataRegion, payload)

	if cacheDir != "" {
		if buf, err := readCacheFile(cacheDir, sum); err == nil {
			l.decoded = buf
			l.expiry = time.Now().Add(idleTimeout)
			return nil
		} else if !os.IsNotExist(err) {
			log.Info().Err(err).Str("digest", sum).Msg("decoded cache read failed, falling back to in-memory decode")
		}
	}

	var bitmap []bool
	if bitmapBytes != nil {
		bitmap = unpackBitmap(bitmapBytes, l.Grid.NumPoints())
	}

	values, err := l.decoder.Decode(payload, bitmap)
	if err != nil {
		return errors.Wrap(err, "decoding layer payload")
	}
	l.decoded = values

	if cacheDir != "" {
		if err := writeCacheFile(cacheDir, sum, values); err != nil {
			log.Info().Err(err).Str("digest", sum).Msg("decoded cache write failed")
		}
	}

	l.expiry = time.Now().Add(idleTimeout)
	return nil
}

// Region returns the layer's encoded-payload location in its source file.
func (l *Layer) Region() DataRegion {
	return l.dataRegion
}

// Values returns the decoded buffer, or nil if the layer has not been
// loaded (call CheckLoad first).
func (l *Layer) Values() []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.decoded
}

// Retain increments the layer's reference count, pinning it against idle
// eviction until a matching Release.
func (l *Layer) Retain() {
	l.mu.Lock()
	l.refcount++
	l.mu.Unlock()
}

// Release decrements the layer's reference count.
func (l *Layer) Release() {
	l.mu.Lock()
	if l.refcount > 0 {
		l.refcount--
	}
	l.mu.Unlock()
}

// idle reports whether the layer's decoded buffer may be evicted: past its
// expiry timestamp and not pinned by an outstanding Retain.
func (l *Layer) idle(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.decoded != nil && l.refcount == 0 && now.After(l.expiry)
}

// evict drops the decoded buffer, returning the layer to cold state. The
// on-disk cache entry, if any, is left in place.
func (l *Layer) evict() {
	l.mu.Lock()
	l.decoded = nil
	l.mu.Unlock()
}

func readRegion(data []byte, r DataRegion) ([]byte, error) {
	end := r.Offset + r.Length
	if r.Offset < 0 || end > int64(len(data)) {
		return nil, fmt.Errorf("region [%d, %d) out of bounds for %d-byte source", r.Offset, end, len(data))
	}
	return data[r.Offset:end], nil
}

// unpackBitmap expands a packed bitmap section (one bit per point, MSB
// first) into a bool slice of length n.
func unpackBitmap(packed []byte, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		byteIdx := i / 8
		if byteIdx >= len(packed) {
			break
		}
		bit := 7 - uint(i%8)
		out[i] = (packed[byteIdx]>>bit)&1 != 0
	}
	return out
}

func cacheFilePath(cacheDir, sum string) string {
	return filepath.Join(cacheDir, sum+".bin")
}

func readCacheFile(cacheDir, sum string) ([]float64, error) {
	raw, err := os.ReadFile(cacheFilePath(cacheDir, sum))
	if err != nil {
		return nil, err
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("cache file %s has non-multiple-of-8 length %d", sum, len(raw))
	}
	n := len(raw) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(raw[i*8:])
		out[i] = math.Float64frombits(bits)
	}
	return out, nil
}

func writeCacheFile(cacheDir, sum string, values []float64) error {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(cacheDir, sum+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), cacheFilePath(cacheDir, sum))
}

// sortKeys sorts layers in place into the registry's canonical total key
// order, used for deterministic iteration.
func sortKeys(layers []*Layer) {
	sort.Slice(layers, func(i, j int) bool {
		return keyLess(layers[i].Key, layers[j].Key)
	})
}

func keyLess(a, b Key) bool {
	if a.DisciplineID != b.DisciplineID {
		return a.DisciplineID < b.DisciplineID
	}
	if a.CategoryID != b.CategoryID {
		return a.CategoryID < b.CategoryID
	}
	if a.ParameterNumber != b.ParameterNumber {
		return a.ParameterNumber < b.ParameterNumber
	}
	if !a.EffectiveTime.Equal(b.EffectiveTime) {
		return a.EffectiveTime.Before(b.EffectiveTime)
	}
	if !a.ReferenceTime.Equal(b.ReferenceTime) {
		return a.ReferenceTime.Before(b.ReferenceTime)
	}
	if a.Surface1Type != b.Surface1Type {
		return a.Surface1Type < b.Surface1Type
	}
	return a.Surface1Value < b.Surface1Value
}
