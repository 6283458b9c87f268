package data

import (
	"fmt"
	"math"

	"github.com/windward/gribwx/internal"
)

// Template52 represents Data Representation Template 5.2: Complex Packing
// (grouping by similar magnitude, no spatial differencing). This is
// Template53's prologue without the spatial-difference initial values and
// min_val octet group.
type Template52 struct {
	ReferenceValue            float32
	BinaryScaleFactor         int16
	DecimalScaleFactor        int16
	NumBitsPerValue           uint8
	OriginalFieldType         uint8
	GroupSplittingMethod      uint8
	MissingValueManagement    uint8
	PrimaryMissingValue       float32
	SecondaryMissingValue     float32
	NumberOfGroups            uint32
	ReferenceGroupWidth       uint8
	NumBitsGroupWidth         uint8
	ReferenceGroupLength      uint32
	GroupLengthIncrement      uint8
	TrueLengthLastGroup       uint32
	NumBitsGroupLength        uint8
	NumberOfDataValues        uint32
}

// ParseTemplate52 parses Data Representation Template 5.2.
func ParseTemplate52(numDataValues uint32, data []byte) (*Template52, error) {
	if len(data) < 36 {
		return nil, fmt.Errorf("template 5.2 requires at least 36 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()
	groupSplittingMethod, _ := r.Uint8()
	missingValueManagement, _ := r.Uint8()
	primaryMissingValue, _ := r.Float32()
	secondaryMissingValue, _ := r.Float32()
	numberOfGroups, _ := r.Uint32()
	referenceGroupWidth, _ := r.Uint8()
	numBitsGroupWidth, _ := r.Uint8()
	referenceGroupLength, _ := r.Uint32()
	groupLengthIncrement, _ := r.Uint8()
	trueLengthLastGroup, _ := r.Uint32()
	numBitsGroupLength, _ := r.Uint8()

	return &Template52{
		ReferenceValue:         referenceValue,
		BinaryScaleFactor:      binaryScaleFactor,
		DecimalScaleFactor:     decimalScaleFactor,
		NumBitsPerValue:        bitsPerValue,
		OriginalFieldType:      originalFieldType,
		GroupSplittingMethod:   groupSplittingMethod,
		MissingValueManagement: missingValueManagement,
		PrimaryMissingValue:    primaryMissingValue,
		SecondaryMissingValue:  secondaryMissingValue,
		NumberOfGroups:         numberOfGroups,
		ReferenceGroupWidth:    referenceGroupWidth,
		NumBitsGroupWidth:      numBitsGroupWidth,
		ReferenceGroupLength:   referenceGroupLength,
		GroupLengthIncrement:   groupLengthIncrement,
		TrueLengthLastGroup:    trueLengthLastGroup,
		NumBitsGroupLength:     numBitsGroupLength,
		NumberOfDataValues:     numDataValues,
	}, nil
}

// TemplateNumber returns 2 for Template 5.2.
func (t *Template52) TemplateNumber() int { return 2 }

// NumDataValues returns the number of data values.
func (t *Template52) NumDataValues() uint32 { return t.NumberOfDataValues }

// BitsPerValue returns the number of bits per value.
func (t *Template52) BitsPerValue() uint8 { return t.NumBitsPerValue }

// Decode unpacks data using complex packing (grouping, no spatial
// differencing). Per-group values are read as group_ref[g] + v, with
// within-group sentinel detection for the top bit patterns of the group's
// own width before any rescale is applied.
func (t *Template52) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	if len(packedData) == 0 {
		return nil, fmt.Errorf("no packed data to decode")
	}

	bitReader := internal.NewBitReader(packedData)

	// NumberOfDataValues counts only the packed (bitmap-set) points.
	ndata := t.NumberOfDataValues

	// The three prefix arrays are each a packed bit-stream, byte-aligned
	// between arrays.
	groupMinVals := make([]int64, t.NumberOfGroups)
	for i := uint32(0); i < t.NumberOfGroups; i++ {
		val, err := bitReader.ReadBits(int(t.NumBitsPerValue))
		if err != nil {
			return nil, fmt.Errorf("failed to read group min value %d: %w", i, err)
		}
		groupMinVals[i] = int64(val)
	}
	bitReader.Align()

	groupWidths := make([]uint8, t.NumberOfGroups)
	if t.NumBitsGroupWidth > 0 {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			val, err := bitReader.ReadBits(int(t.NumBitsGroupWidth))
			if err != nil {
				return nil, fmt.Errorf("failed to read group width %d: %w", i, err)
			}
			groupWidths[i] = uint8(val) + t.ReferenceGroupWidth
		}
	} else {
		for i := range groupWidths {
			groupWidths[i] = t.ReferenceGroupWidth
		}
	}
	bitReader.Align()

	groupLengths := make([]uint32, t.NumberOfGroups)
	if t.NumBitsGroupLength > 0 {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			val, err := bitReader.ReadBits(int(t.NumBitsGroupLength))
			if err != nil {
				return nil, fmt.Errorf("failed to read group length %d: %w", i, err)
			}
			groupLengths[i] = t.ReferenceGroupLength + uint32(val)*uint32(t.GroupLengthIncrement)
		}
	} else {
		for i := range groupLengths {
			groupLengths[i] = t.ReferenceGroupLength
		}
	}
	bitReader.Align()
	if t.NumberOfGroups > 0 {
		groupLengths[t.NumberOfGroups-1] = t.TrueLengthLastGroup
	}

	missingAware := t.MissingValueManagement == 1 || t.MissingValueManagement == 2
	priSentinel, secSentinel := t.topLevelSentinels()

	rawVals := make([]int64, ndata)
	missing := make([]bool, ndata)
	idx := uint32(0)
	for g := uint32(0); g < t.NumberOfGroups; g++ {
		width := groupWidths[g]
		length := groupLengths[g]
		groupMin := groupMinVals[g]

		for j := uint32(0); j < length && idx < ndata; j++ {
			if width == 0 {
				rawVals[idx] = groupMin
			} else {
				v, err := bitReader.ReadBits(int(width))
				if err != nil {
					return nil, fmt.Errorf("failed to read value in group %d: %w", g, err)
				}
				if missingAware && isGroupSentinel(v, width, t.MissingValueManagement) {
					missing[idx] = true
				} else {
					rawVals[idx] = groupMin + int64(v)
				}
			}
			if missingAware && !missing[idx] {
				agg := float64(rawVals[idx])
				if agg == priSentinel || (t.MissingValueManagement == 2 && agg == secSentinel) {
					missing[idx] = true
				}
			}
			idx++
		}
	}

	if bitmap != nil {
		return t.applyScalingWithBitmap(rawVals, missing, bitmap)
	}
	return t.applyScalingWithoutBitmap(rawVals, missing), nil
}

// topLevelSentinels returns the template's primary/secondary missing-value
// substitutes as comparable numbers. The wire carries them as 4 raw octets:
// for a float-typed field those octets are an IEEE single, otherwise they
// hold the integer directly, so the stored float32 is re-bitted back.
func (t *Template52) topLevelSentinels() (primary, secondary float64) {
	if t.OriginalFieldType == 0 {
		return float64(t.PrimaryMissingValue), float64(t.SecondaryMissingValue)
	}
	return float64(math.Float32bits(t.PrimaryMissingValue)), float64(math.Float32bits(t.SecondaryMissingValue))
}

// isGroupSentinel reports whether v is one of the within-group missing
// markers: the all-ones pattern for the primary sentinel, and for mgmt==2
// with width>1, all-ones-minus-one for the secondary sentinel.
func isGroupSentinel(v uint64, width uint8, mgmt uint8) bool {
	if width == 0 {
		return false
	}
	allOnes := uint64(1)<<width - 1
	if v == allOnes {
		return true
	}
	if mgmt == 2 && width > 1 && v == allOnes-1 {
		return true
	}
	return false
}

func (t *Template52) applyScalingWithoutBitmap(rawVals []int64, missing []bool) []float64 {
	values := make([]float64, len(rawVals))
	for i, raw := range rawVals {
		if missing[i] {
			values[i] = math.NaN()
			continue
		}
		values[i] = t.applyScaling(raw)
	}
	return values
}

func (t *Template52) applyScalingWithBitmap(rawVals []int64, missing []bool, bitmap []bool) ([]float64, error) {
	if len(rawVals) > len(bitmap) {
		return nil, fmt.Errorf("more packed values (%d) than bitmap entries (%d)", len(rawVals), len(bitmap))
	}

	values := make([]float64, len(bitmap))
	rawIdx := 0
	for i := range bitmap {
		if bitmap[i] {
			if rawIdx >= len(rawVals) {
				return nil, fmt.Errorf("bitmap indicates more valid points than packed values available")
			}
			if missing[rawIdx] {
				values[i] = math.NaN()
			} else {
				values[i] = t.applyScaling(rawVals[rawIdx])
			}
			rawIdx++
		} else {
			values[i] = math.NaN()
		}
	}
	if rawIdx != len(rawVals) {
		return nil, fmt.Errorf("bitmap mismatch: used %d packed values, have %d", rawIdx, len(rawVals))
	}
	return values, nil
}

func (t *Template52) applyScaling(raw int64) float64 {
	value := float64(t.ReferenceValue)
	if raw != 0 {
		value += float64(raw) * math.Pow(2.0, float64(t.BinaryScaleFactor))
	}
	if t.DecimalScaleFactor != 0 {
		value /= math.Pow(10.0, float64(t.DecimalScaleFactor))
	}
	return value
}

// String returns a human-readable description.
func (t *Template52) String() string {
	return fmt.Sprintf("Template 5.2: Complex Packing, %d values, %d groups, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.NumberOfGroups, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
