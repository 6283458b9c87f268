package gribwx

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/windward/gribwx/grierr"
	"github.com/windward/gribwx/layer"
	"github.com/windward/gribwx/product"
	"github.com/windward/gribwx/section"
)

// ScanFile walks every GRIB2 message in the named file and registers one
// cold layer per data section into reg. The packed payloads are not
// decoded; each layer records its (filename, offset, length) region and
// decodes lazily on first CheckLoadFromFile.
//
// Returns the number of layers successfully emitted. Parse problems never
// abort the process: unsupported templates skip the affected field,
// malformed sections skip the message, truncation stops the file — all
// reported through the configured log sink (see WithLogger).
func ScanFile(filename string, reg *layer.Registry, opts ...ReadOption) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", filename, err)
	}
	return ScanBytes(data, filename, reg, opts...)
}

// ScanBytes is ScanFile over an in-memory buffer. filename is recorded as
// the layers' source-file reference; it should name the file data came
// from so that CheckLoadFromFile and RemoveMissingLayers work.
func ScanBytes(data []byte, filename string, reg *layer.Registry, opts ...ReadOption) (int, error) {
	cfg := defaultReadConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &scanner{
		data:     data,
		filename: filename,
		reg:      reg,
		log:      cfg.logger,
		warned:   make(map[string]bool),
	}

	offset := 0
	for {
		if cfg.ctx != nil {
			select {
			case <-cfg.ctx.Done():
				return s.emitted, cfg.ctx.Err()
			default:
			}
		}

		next := bytes.Index(data[offset:], []byte("GRIB"))
		if next < 0 {
			return s.emitted, nil
		}
		if next > 0 {
			s.log.Warn().Int("offset", offset).Int("skipped", next).Msg("skipped bytes to next GRIB signature")
		}
		offset += next

		consumed, stop := s.scanMessage(offset)
		if stop {
			return s.emitted, nil
		}
		if consumed <= 0 {
			// Re-sync past the bad signature.
			offset += 4
			continue
		}
		offset += consumed
	}
}

type scanner struct {
	data     []byte
	filename string
	reg      *layer.Registry
	log      zerolog.Logger

	emitted int
	warned  map[string]bool // warn-once-per-template-per-file keys
}

func (s *scanner) warnOnce(key, msg string) {
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.log.Warn().Str("file", s.filename).Str("template", key).Msg(msg)
}

// scanMessage walks one message starting at msgStart (which points at
// "GRIB"). Returns the number of bytes consumed and whether scanning of the
// whole file should stop (truncation).
func (s *scanner) scanMessage(msgStart int) (consumed int, stop bool) {
	data := s.data
	if msgStart+16 > len(data) {
		s.log.Warn().Int("offset", msgStart).Msg("truncated indicator section at end of file")
		return 0, true
	}

	sec0, err := section.ParseSection0(data[msgStart : msgStart+16])
	if err != nil {
		s.log.Warn().Int("offset", msgStart).Err(err).Msg("bad indicator section")
		return 0, false
	}

	msgEnd := msgStart + int(sec0.MessageLength)
	if int(sec0.MessageLength) < 16+21+4 || msgEnd > len(data) {
		s.log.Warn().Int("offset", msgStart).Uint64("length", sec0.MessageLength).Msg("message length exceeds remaining file bytes")
		return 0, true
	}
	if string(data[msgEnd-4:msgEnd]) != "7777" {
		s.log.Warn().Int("offset", msgEnd-4).Msg("missing 7777 end marker")
		return 0, false
	}

	msg := data[msgStart:msgEnd]
	pos := 16

	secLen, secNum, ok := sectionHeader(msg, pos)
	if !ok || secNum != 1 || secLen < 21 {
		s.log.Warn().Int("offset", msgStart+pos).Msg("malformed identification section, skipping message")
		return msgEnd - msgStart, false
	}
	sec1, err := section.ParseSection1(msg[pos : pos+secLen])
	if err != nil {
		s.log.Warn().Int("offset", msgStart+pos).Err(err).Msg("failed to parse identification section, skipping message")
		return msgEnd - msgStart, false
	}
	pos += secLen

	// Optional local-use section: skipped, per the section contract.
	if l, n, ok := sectionHeader(msg, pos); ok && n == 2 {
		pos += l
	}

	var (
		sec3 *section.Section3
		sec4 *section.Section4
		sec5 *section.Section5

		prevBitmap *layer.DataRegion
	)

	for pos < len(msg)-4 {
		secLen, secNum, ok := sectionHeader(msg, pos)
		if !ok || pos+secLen > len(msg) {
			s.log.Warn().Int("offset", msgStart+pos).Msg("section overruns message, skipping rest of message")
			break
		}

		switch secNum {
		case 3:
			// A new section 3 starts the next field group; template
			// state from the previous group is cleared.
			sec3, sec4, sec5 = nil, nil, nil
			parsed, err := section.ParseSection3(msg[pos : pos+secLen])
			if err != nil {
				s.reportTemplateError(err, fmt.Sprintf("grid:%d", peekTemplate(msg, pos, 12)), msgStart+pos)
			} else {
				sec3 = parsed
			}

		case 4:
			parsed, err := section.ParseSection4(msg[pos : pos+secLen])
			if err != nil {
				s.reportTemplateError(err, fmt.Sprintf("product:%d", peekTemplate(msg, pos, 7)), msgStart+pos)
			} else {
				sec4 = parsed
			}

		case 5:
			parsed, err := section.ParseSection5(msg[pos : pos+secLen])
			if err != nil {
				s.reportTemplateError(err, fmt.Sprintf("packing:%d", peekTemplate(msg, pos, 9)), msgStart+pos)
			} else {
				sec5 = parsed
			}

		case 6:
			if secLen < 6 {
				s.log.Warn().Int("offset", msgStart+pos).Msg("malformed bitmap section, skipping rest of message")
				pos = len(msg) - 4
				break
			}
			switch indicator := msg[pos+5]; indicator {
			case 0:
				prevBitmap = &layer.DataRegion{
					Filename: s.filename,
					Offset:   int64(msgStart + pos + 6),
					Length:   int64(secLen - 6),
				}
			case 254:
				// Reuse the previous field's bitmap; prevBitmap
				// already points at it.
				if prevBitmap == nil {
					s.log.Warn().Int("offset", msgStart+pos).Msg("bitmap indicator 254 with no previous bitmap")
				}
			case 255:
				prevBitmap = nil
			default:
				s.log.Warn().Int("offset", msgStart+pos).Uint8("indicator", indicator).Msg("unsupported bitmap indicator, skipping field")
				sec5 = nil // poison the field so section 7 won't emit it
			}

		case 7:
			if secLen < 5 {
				s.log.Warn().Int("offset", msgStart+pos).Msg("malformed data section, skipping rest of message")
				pos = len(msg) - 4
				break
			}
			s.emitLayer(sec0, sec1, sec3, sec4, sec5, prevBitmap, layer.DataRegion{
				Filename: s.filename,
				Offset:   int64(msgStart + pos + 5),
				Length:   int64(secLen - 5),
			})

		default:
			s.log.Warn().Int("offset", msgStart+pos).Uint8("section", secNum).Msg("unexpected section number, skipping rest of message")
			pos = len(msg) - 4
		}

		if pos >= len(msg)-4 {
			break
		}
		pos += secLen
	}

	return msgEnd - msgStart, false
}

// reportTemplateError distinguishes unsupported-template skips (warned once
// per template id per file) from malformed sections (warned every time).
func (s *scanner) reportTemplateError(err error, templateKey string, fileOffset int) {
	var ge *grierr.Error
	if errors.As(err, &ge) && ge.Kind == grierr.UnsupportedTemplate {
		s.warnOnce(templateKey, "unsupported template, skipping field")
		return
	}
	s.log.Warn().Int("offset", fileOffset).Err(err).Msg("failed to parse section, skipping field")
}

// emitLayer assembles a cold Layer from the accumulated message state and
// hands it to the registry. Fields missing a grid, product, or packing
// descriptor (because their templates were unsupported or malformed) are
// dropped; the metadata-only case has nothing the registry could decode.
func (s *scanner) emitLayer(sec0 *section.Section0, sec1 *section.Section1,
	sec3 *section.Section3, sec4 *section.Section4, sec5 *section.Section5,
	bitmap *layer.DataRegion, dataRegion layer.DataRegion) {

	if sec3 == nil || sec3.Grid == nil || sec4 == nil || sec4.Product == nil || sec5 == nil || sec5.Representation == nil {
		return
	}

	ff, ok := sec4.Product.(product.ForecastFields)
	if !ok {
		return
	}
	offsetSeconds, ok := ff.ForecastOffsetSeconds()
	if !ok {
		s.log.Warn().Str("file", s.filename).Msg("unknown time range unit, skipping field")
		return
	}
	effective := sec1.ReferenceTime.Add(time.Duration(offsetSeconds) * time.Second)

	surf1Type, surf1Value := ff.Surface1()
	surf2Type, surf2Value := ff.Surface2()

	key := layer.Key{
		DisciplineID:      sec0.Discipline,
		CategoryID:        sec4.Product.GetParameterCategory(),
		ParameterNumber:   sec4.Product.GetParameterNumber(),
		GridFingerprint:   sec3.Grid.Fingerprint(),
		ReferenceTime:     sec1.ReferenceTime,
		EffectiveTime:     effective,
		Center:            sec1.OriginatingCenter,
		Subcenter:         sec1.OriginatingSubcenter,
		ProductionStatus:  sec1.ProductionStatus,
		DataType:          sec1.TypeOfData,
		GeneratingProcess: ff.ForecastProcessID(),
		GeneratingProcType: ff.GeneratingProcessID(),
		Surface1Type:      surf1Type,
		Surface1Value:     surf1Value,
		Surface2Type:      surf2Type,
		Surface2Value:     surf2Value,
	}

	var packing layer.PackingKind
	switch sec5.DataRepresentationTemplate {
	case 0:
		packing = layer.PackingSimple
	case 2:
		packing = layer.PackingComplex
	case 3:
		packing = layer.PackingComplexSpatialDiff
	case 40:
		packing = layer.PackingJPEG2000
	default:
		return
	}

	l := layer.New(key, sec3.Grid, packing, sec5.Representation, dataRegion, bitmap)
	if t48, ok := sec4.Product.(*product.Template48); ok {
		l.StatisticalMetadata = t48.TimeRanges
	}

	if err := s.reg.Insert(l); err != nil {
		s.log.Info().Str("file", s.filename).Err(err).Msg("duplicate layer discarded")
		return
	}
	s.emitted++
}

// sectionHeader reads the 4-byte length and 1-byte section number at pos.
func sectionHeader(msg []byte, pos int) (length int, num uint8, ok bool) {
	if pos+5 > len(msg) {
		return 0, 0, false
	}
	length = int(uint32(msg[pos])<<24 | uint32(msg[pos+1])<<16 | uint32(msg[pos+2])<<8 | uint32(msg[pos+3]))
	if length < 5 || pos+length > len(msg) {
		return 0, 0, false
	}
	return length, msg[pos+4], true
}

// peekTemplate reads the big-endian uint16 template number at the given
// offset within a section, for warn-once keys. Returns -1 when the section
// is too short to carry one.
func peekTemplate(msg []byte, pos, fieldOffset int) int {
	if pos+fieldOffset+2 > len(msg) {
		return -1
	}
	return int(uint16(msg[pos+fieldOffset])<<8 | uint16(msg[pos+fieldOffset+1]))
}
