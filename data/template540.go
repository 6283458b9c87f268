package data

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/windward/gribwx/grierr"
	"github.com/windward/gribwx/internal"
)

// JPEG2000Codec decodes a complete JPEG2000 code-stream into its integer
// samples. The stream carries a single component; the sample count must
// equal the grid's point count (no bitmap) or the bitmap's set-bit count.
//
// The codec itself is an external dependency and may be absent; see
// RegisterJPEG2000Codec.
type JPEG2000Codec func(codestream []byte) ([]int64, error)

var jpeg2000Codec atomic.Value // JPEG2000Codec

// RegisterJPEG2000Codec installs the process-wide JPEG2000 codec used by
// template 5.40 decoding. Without a registered codec, Decode on a 5.40
// layer reports UnsupportedTemplate rather than failing at link time.
func RegisterJPEG2000Codec(codec JPEG2000Codec) {
	jpeg2000Codec.Store(codec)
}

func registeredJPEG2000Codec() JPEG2000Codec {
	c, _ := jpeg2000Codec.Load().(JPEG2000Codec)
	return c
}

// Template540 represents Data Representation Template 5.40: JPEG2000
// compression. The section-7 payload is a complete JPEG2000 code-stream
// expected to carry a single integer-sample component at either Ni*Nj
// points (no bitmap) or the bitmap's set-bit count.
type Template540 struct {
	ReferenceValue     float32
	BinaryScaleFactor  int16
	DecimalScaleFactor int16
	NumBitsPerValue    uint8
	OriginalFieldType  uint8
	CompressionType    uint8
	CompressionRatio   uint8
	NumberOfDataValues uint32
}

// ParseTemplate540 parses Data Representation Template 5.40.
func ParseTemplate540(numDataValues uint32, data []byte) (*Template540, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("template 5.40 requires at least 12 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)
	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()
	compressionType, _ := r.Uint8()
	compressionRatio, _ := r.Uint8()

	return &Template540{
		ReferenceValue:     referenceValue,
		BinaryScaleFactor:  binaryScaleFactor,
		DecimalScaleFactor: decimalScaleFactor,
		NumBitsPerValue:    bitsPerValue,
		OriginalFieldType:  originalFieldType,
		CompressionType:    compressionType,
		CompressionRatio:   compressionRatio,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 40 for Template 5.40.
func (t *Template540) TemplateNumber() int { return 40 }

// NumDataValues returns the number of data values.
func (t *Template540) NumDataValues() uint32 { return t.NumberOfDataValues }

// BitsPerValue returns the number of bits per value.
func (t *Template540) BitsPerValue() uint8 { return t.NumBitsPerValue }

// Decode hands the code-stream to the registered JPEG2000 codec, verifies
// the sample count, and applies the linear rescale and bitmap. Without a
// registered codec it reports UnsupportedTemplate: a missing external
// codec degrades to an unimplemented template, never a link failure.
func (t *Template540) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	codec := registeredJPEG2000Codec()
	if codec == nil {
		return nil, grierr.New(grierr.UnsupportedTemplate, 7, 0,
			"template 5.40 (JPEG2000) requires an external codec, none registered")
	}

	samples, err := codec(packedData)
	if err != nil {
		return nil, grierr.Wrap(err, grierr.CodecError, 7, 0, "JPEG2000 codec rejected the code-stream")
	}

	expected := int(t.NumberOfDataValues)
	if bitmap != nil {
		expected = 0
		for _, valid := range bitmap {
			if valid {
				expected++
			}
		}
	}
	if len(samples) != expected {
		return nil, grierr.New(grierr.CodecError, 7, 0,
			"JPEG2000 codec returned %d samples, expected %d", len(samples), expected)
	}

	if bitmap == nil {
		values := make([]float64, len(samples))
		for i, s := range samples {
			values[i] = t.applyScaling(s)
		}
		return values, nil
	}

	values := make([]float64, len(bitmap))
	sampleIdx := 0
	for i := range bitmap {
		if bitmap[i] {
			values[i] = t.applyScaling(samples[sampleIdx])
			sampleIdx++
		} else {
			values[i] = math.NaN()
		}
	}
	return values, nil
}

// applyScaling applies the standard rescale: value = (R + X * 2^E) / 10^D.
func (t *Template540) applyScaling(sample int64) float64 {
	value := float64(t.ReferenceValue)
	if sample != 0 {
		value += float64(sample) * math.Pow(2.0, float64(t.BinaryScaleFactor))
	}
	if t.DecimalScaleFactor != 0 {
		value /= math.Pow(10.0, float64(t.DecimalScaleFactor))
	}
	return value
}

// String returns a human-readable description.
func (t *Template540) String() string {
	return fmt.Sprintf("Template 5.40: JPEG2000, %d values, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
