package gribwx

import (
	"fmt"

	"github.com/windward/gribwx/section"
)

// Field holds the per-field sections of a GRIB2 message: the grid
// definition, product definition, data representation, bitmap, and packed
// data. A message carries one Field for its primary data and may carry
// additional Fields when sections 3-7 repeat to pack more than one field
// behind a shared Section 0/1/2.
type Field struct {
	Section3 *section.Section3
	Section4 *section.Section4
	Section5 *section.Section5
	Section6 *section.Section6
	Section7 *section.Section7
}

// DecodeData decodes this field's data values.
//
// Returns a slice of float64 values in grid scan order. Missing/undefined
// values are represented as NaN.
func (f *Field) DecodeData() ([]float64, error) {
	if f.Section5 == nil || f.Section5.Representation == nil {
		return nil, fmt.Errorf("field has no data representation (Section 5)")
	}

	if f.Section7 == nil {
		return nil, fmt.Errorf("field has no data section (Section 7)")
	}

	var bitmap []bool
	if f.Section6 != nil && f.Section6.HasBitmap() {
		bitmap = f.Section6.Bitmap
	}

	values, err := f.Section5.Representation.Decode(f.Section7.Data, bitmap)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}

	return values, nil
}

// Coordinates returns the lat/lon coordinates for this field's grid.
//
// Currently only supports LatLonGrid (Template 3.0). Returns an error
// for other grid types.
func (f *Field) Coordinates() (latitudes, longitudes []float64, err error) {
	if f.Section3 == nil || f.Section3.Grid == nil {
		return nil, nil, fmt.Errorf("field has no grid definition (Section 3)")
	}

	g := f.Section3.Grid
	ni, nj := g.Dims()
	n := ni * nj
	latitudes = make([]float64, n)
	longitudes = make([]float64, n)
	for v := 0; v < nj; v++ {
		for u := 0; u < ni; u++ {
			lat, lon := g.Center(u, v)
			idx := g.Index(u, v)
			latitudes[idx] = lat
			longitudes[idx] = lon
		}
	}
	return latitudes, longitudes, nil
}

// String returns a human-readable summary of the field.
func (f *Field) String() string {
	grid := "Unknown"
	if f.Section3 != nil && f.Section3.Grid != nil {
		grid = f.Section3.Grid.String()
	}

	prod := "Unknown"
	if f.Section4 != nil && f.Section4.Product != nil {
		prod = f.Section4.Product.String()
	}

	return fmt.Sprintf("Grid=%s, Product=%s", grid, prod)
}

// Message represents a complete parsed GRIB2 message.
//
// A GRIB2 message contains all the information needed to describe and
// decode one or more meteorological fields, including metadata, grid
// definition, product description, and packed data values. Most messages
// carry a single field, held directly in Section3-Section7; messages that
// pack additional fields behind the shared Section 0/1/2 by repeating
// sections 3-7 carry the extras in AdditionalFields.
type Message struct {
	// Section0 contains the indicator section with discipline and message length
	Section0 *section.Section0

	// Section1 contains identification information (center, time, etc.)
	Section1 *section.Section1

	// Section2 contains local use data (optional, may be nil)
	Section2 *section.Section2

	// Section3 contains the grid definition of the first (or only) field
	Section3 *section.Section3

	// Section4 contains the product definition of the first (or only) field
	Section4 *section.Section4

	// Section5 contains the data representation template of the first (or only) field
	Section5 *section.Section5

	// Section6 contains the bitmap of the first (or only) field (optional, may be nil if all points valid)
	Section6 *section.Section6

	// Section7 contains the packed data of the first (or only) field
	Section7 *section.Section7

	// AdditionalFields holds any fields beyond the first when sections 3-7
	// repeat within this message.
	AdditionalFields []*Field

	// RawData is the original message bytes (for debugging/analysis)
	RawData []byte
}

// Fields returns every field carried by this message, in message order.
// The first element always corresponds to Section3-Section7.
func (m *Message) Fields() []*Field {
	out := make([]*Field, 0, 1+len(m.AdditionalFields))
	out = append(out, &Field{
		Section3: m.Section3,
		Section4: m.Section4,
		Section5: m.Section5,
		Section6: m.Section6,
		Section7: m.Section7,
	})
	out = append(out, m.AdditionalFields...)
	return out
}

// ParseMessage parses a complete GRIB2 message from raw bytes.
//
// The input data should contain a single complete GRIB2 message starting
// with "GRIB" and ending with "7777".
//
// This function parses all sections of the message:
//   - Section 0: Indicator (discipline, message length)
//   - Section 1: Identification (center, reference time, etc.)
//   - Section 2: Local use (optional)
//   - Section 3: Grid definition
//   - Section 4: Product definition
//   - Section 5: Data representation
//   - Section 6: Bitmap
//   - Section 7: Data
//   - Section 8: End marker "7777"
//
// Sections 3 through 7 may repeat within a single message to pack
// additional fields behind the shared Section 0/1/2; ParseMessage keeps
// parsing 3-7 groups until it reaches the "7777" end marker. A bitmap
// indicator of 254 in a later group reuses the bitmap decoded for the
// immediately preceding field, per GRIB2 Table 6.0.
func ParseMessage(data []byte) (*Message, error) {
	if err := ValidateMessageStructure(data); err != nil {
		return nil, err
	}

	msg := &Message{
		RawData: data,
	}

	offset := 0

	// Parse Section 0 (always 16 bytes)
	sec0, err := section.ParseSection0(data[offset : offset+16])
	if err != nil {
		return nil, &ParseError{
			Section:    0,
			Offset:     offset,
			Message:    "failed to parse Section 0",
			Underlying: err,
		}
	}
	msg.Section0 = sec0
	offset += 16

	// Parse Section 1 (variable length)
	sec1, err := parseSectionAt(data, offset, 1)
	if err != nil {
		return nil, err
	}
	msg.Section1 = sec1.(*section.Section1)
	offset += int(sec1.(*section.Section1).Length)

	// Check for optional Section 2
	if offset < len(data)-4 && data[offset+4] == 2 {
		sec2, err := parseSectionAt(data, offset, 2)
		if err != nil {
			return nil, err
		}
		msg.Section2 = sec2.(*section.Section2)
		offset += int(sec2.(*section.Section2).Length)
	}

	var prevBitmap []bool
	first := true

	for {
		field, newOffset, err := parseFieldAt(data, offset, prevBitmap)
		if err != nil {
			return nil, err
		}
		offset = newOffset

		if field.Section6 != nil && field.Section6.HasBitmap() {
			prevBitmap = field.Section6.Bitmap
		}

		if first {
			msg.Section3 = field.Section3
			msg.Section4 = field.Section4
			msg.Section5 = field.Section5
			msg.Section6 = field.Section6
			msg.Section7 = field.Section7
			first = false
		} else {
			msg.AdditionalFields = append(msg.AdditionalFields, field)
		}

		// The final 4 bytes of the message are the "7777" end marker
		// (already validated by ValidateMessageStructure). Once only
		// those remain, there are no more 3-7 field groups to parse.
		if offset >= len(data)-4 {
			break
		}

		// A well-formed continuation starts a new Section 3. Anything
		// else at this offset means the message is done.
		if data[offset+4] != 3 {
			break
		}
	}

	return msg, nil
}

// parseFieldAt parses one Section 3-7 group starting at offset, returning
// the parsed Field and the offset immediately following Section 7.
// prevBitmap is threaded through for Section 6's indicator-254 reuse rule.
func parseFieldAt(data []byte, offset int, prevBitmap []bool) (*Field, int, error) {
	field := &Field{}

	// Parse Section 3 (Grid Definition)
	sec3, err := parseSectionAt(data, offset, 3)
	if err != nil {
		return nil, 0, err
	}
	field.Section3 = sec3.(*section.Section3)
	offset += int(field.Section3.Length)

	// Parse Section 4 (Product Definition)
	sec4, err := parseSectionAt(data, offset, 4)
	if err != nil {
		return nil, 0, err
	}
	field.Section4 = sec4.(*section.Section4)
	offset += int(field.Section4.Length)

	// Parse Section 5 (Data Representation)
	sec5, err := parseSectionAt(data, offset, 5)
	if err != nil {
		return nil, 0, err
	}
	field.Section5 = sec5.(*section.Section5)
	offset += int(field.Section5.Length)

	// Parse Section 6 (Bitmap)
	// Section 6 needs the number of grid points from this field's Section 3
	numGridPoints := uint32(field.Section3.NumDataPoints)
	sec6Data := extractSectionData(data, offset, 6)
	if sec6Data == nil {
		return nil, 0, &ParseError{
			Section: 6,
			Offset:  offset,
			Message: "failed to extract section 6 data",
		}
	}
	sec6, err := section.ParseSection6(sec6Data, numGridPoints, prevBitmap)
	if err != nil {
		return nil, 0, &ParseError{
			Section:    6,
			Offset:     offset,
			Message:    "failed to parse Section 6",
			Underlying: err,
		}
	}
	field.Section6 = sec6
	offset += int(sec6.Length)

	// Parse Section 7 (Data)
	sec7, err := parseSectionAt(data, offset, 7)
	if err != nil {
		return nil, 0, err
	}
	field.Section7 = sec7.(*section.Section7)
	offset += int(field.Section7.Length)

	return field, offset, nil
}

// extractSectionData reads a section's length and extracts its data.
func extractSectionData(data []byte, offset int, expectedSection uint8) []byte {
	if offset+5 > len(data) {
		return nil
	}

	// Read section length (first 4 bytes)
	sectionLength := uint32(data[offset])<<24 | uint32(data[offset+1])<<16 |
		uint32(data[offset+2])<<8 | uint32(data[offset+3])

	// Validate we have enough data
	if offset+int(sectionLength) > len(data) {
		return nil
	}

	return data[offset : offset+int(sectionLength)]
}

// parseSectionAt reads a section length and parses the appropriate section type.
func parseSectionAt(data []byte, offset int, expectedSection uint8) (interface{}, error) {
	sectionData := extractSectionData(data, offset, expectedSection)
	if sectionData == nil {
		return nil, &ParseError{
			Section: int(expectedSection),
			Offset:  offset,
			Message: fmt.Sprintf("failed to extract section %d data", expectedSection),
		}
	}

	// Parse based on section type
	switch expectedSection {
	case 1:
		return section.ParseSection1(sectionData)
	case 2:
		return section.ParseSection2(sectionData)
	case 3:
		return section.ParseSection3(sectionData)
	case 4:
		return section.ParseSection4(sectionData)
	case 5:
		return section.ParseSection5(sectionData)
	case 7:
		return section.ParseSection7(sectionData)
	default:
		return nil, &ParseError{
			Section: int(expectedSection),
			Offset:  offset,
			Message: fmt.Sprintf("unsupported section number: %d", expectedSection),
		}
	}
}

// DecodeData decodes the data values for this message's first field.
//
// Returns a slice of float64 values in grid scan order.
// Missing/undefined values are represented as NaN.
//
// Messages carrying additional fields (see AdditionalFields/Fields) expose
// each field's own DecodeData/Coordinates methods.
func (m *Message) DecodeData() ([]float64, error) {
	f := &Field{
		Section5: m.Section5,
		Section7: m.Section7,
		Section6: m.Section6,
	}
	return f.DecodeData()
}

// Coordinates returns the lat/lon coordinates for this message's first
// field's grid.
//
// Returns two slices (latitudes and longitudes) in grid scan order,
// matching the order of values returned by DecodeData().
//
// Currently only supports LatLonGrid (Template 3.0). Returns an error
// for other grid types.
func (m *Message) Coordinates() (latitudes, longitudes []float64, err error) {
	f := &Field{Section3: m.Section3}
	return f.Coordinates()
}

// String returns a human-readable summary of the message.
func (m *Message) String() string {
	if m.Section0 == nil {
		return "Invalid GRIB2 message"
	}

	discipline := "Unknown"
	if m.Section0 != nil {
		discipline = m.Section0.DisciplineName()
	}

	grid := "Unknown"
	if m.Section3 != nil && m.Section3.Grid != nil {
		grid = m.Section3.Grid.String()
	}

	product := "Unknown"
	if m.Section4 != nil && m.Section4.Product != nil {
		product = m.Section4.Product.String()
	}

	numFields := 1 + len(m.AdditionalFields)
	if numFields > 1 {
		return fmt.Sprintf("GRIB2 Message: Discipline=%s, Grid=%s, Product=%s, Fields=%d",
			discipline, grid, product, numFields)
	}

	return fmt.Sprintf("GRIB2 Message: Discipline=%s, Grid=%s, Product=%s",
		discipline, grid, product)
}
