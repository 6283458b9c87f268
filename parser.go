package gribwx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/windward/gribwx/grierr"
	"github.com/windward/gribwx/section"
)

// MessageBoundary represents the location and size of a GRIB2 message within a file.
type MessageBoundary struct {
	Start  int    // Byte offset where the message starts
	Length uint64 // Length of the message in bytes
	Index  int    // Sequential index of this message in the file (0-based)
}

var (
	gribMagic = []byte("GRIB")
	endMagic  = []byte("7777")
)

// boundaryAt validates the message framing at offset — indicator section,
// declared length, "7777" trailer — and returns its boundary. This is the
// one place framing is checked; FindMessages and ValidateMessageStructure
// are both walks over it. Errors wrap a grierr cause so callers can
// errors.As down to the Truncated/BadSignature/MalformedSection kind.
func boundaryAt(data []byte, offset, index int) (MessageBoundary, error) {
	remaining := len(data) - offset
	if remaining < 16 {
		return MessageBoundary{}, &ParseError{
			Section: -1,
			Offset:  offset,
			Message: fmt.Sprintf("incomplete data: %d bytes remaining, need at least 16", remaining),
			Underlying: grierr.New(grierr.Truncated, 0, offset,
				"indicator section needs 16 bytes, %d remain", remaining),
		}
	}

	if !bytes.HasPrefix(data[offset:], gribMagic) {
		return MessageBoundary{}, &InvalidFormatError{
			Offset:  offset,
			Message: fmt.Sprintf("expected GRIB magic number, found %q", string(data[offset:offset+4])),
		}
	}

	sec0, err := section.ParseSection0(data[offset : offset+16])
	if err != nil {
		return MessageBoundary{}, &ParseError{
			Section:    0,
			Offset:     offset,
			Message:    "failed to parse Section 0",
			Underlying: grierr.Wrap(err, grierr.MalformedSection, 0, offset, "indicator section"),
		}
	}

	end := offset + int(sec0.MessageLength)
	if sec0.MessageLength < 20 || end > len(data) {
		return MessageBoundary{}, &ParseError{
			Section: 0,
			Offset:  offset,
			Message: fmt.Sprintf("message length %d exceeds available data (have %d bytes from offset %d)",
				sec0.MessageLength, remaining, offset),
			Underlying: grierr.New(grierr.Truncated, 0, offset,
				"declared length %d, %d bytes remain", sec0.MessageLength, remaining),
		}
	}

	if !bytes.HasSuffix(data[:end], endMagic) {
		return MessageBoundary{}, &ParseError{
			Section: -1,
			Offset:  end - 4,
			Message: fmt.Sprintf("expected end marker \"7777\", found %q", string(data[end-4:end])),
			Underlying: grierr.New(grierr.BadSignature, 8, end-4,
				"message does not end with 7777"),
		}
	}

	return MessageBoundary{Start: offset, Length: sec0.MessageLength, Index: index}, nil
}

// FindMessages scans the data for GRIB2 message boundaries.
//
// Only the framing of each message is checked (Section 0 plus the "7777"
// trailer); section contents are not parsed, so the scan is fast enough to
// run ahead of parallel decoding. Boundaries come back in file order.
//
// A truncated trailing fragment returns the boundaries found so far
// together with the Truncated-kind error describing the fragment.
func FindMessages(data []byte) ([]MessageBoundary, error) {
	var boundaries []MessageBoundary
	for offset := 0; offset < len(data); {
		b, err := boundaryAt(data, offset, len(boundaries))
		if err != nil {
			var ge *grierr.Error
			if errors.As(err, &ge) && ge.Kind == grierr.Truncated {
				// Partial trailing data: report what was found.
				return boundaries, err
			}
			return nil, err
		}
		boundaries = append(boundaries, b)
		offset += int(b.Length)
	}
	return boundaries, nil
}

// SplitMessages splits the data into individual GRIB2 messages.
//
// Each returned slice aliases data rather than copying it; treat the
// results as read-only views.
func SplitMessages(data []byte) ([][]byte, error) {
	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, err
	}

	messages := make([][]byte, len(boundaries))
	for i, boundary := range boundaries {
		messages[i] = data[boundary.Start : boundary.Start+int(boundary.Length)]
	}
	return messages, nil
}

// ValidateMessageStructure checks that data holds exactly one well-framed
// GRIB2 message: valid Section 0, declared length matching the data, and
// the "7777" trailer. Section contents beyond the indicator are not parsed.
func ValidateMessageStructure(data []byte) error {
	b, err := boundaryAt(data, 0, 0)
	if err != nil {
		return err
	}
	if int(b.Length) != len(data) {
		return &ParseError{
			Section: 0,
			Offset:  0,
			Message: fmt.Sprintf("message length mismatch: Section 0 says %d bytes, but have %d bytes",
				b.Length, len(data)),
			Underlying: grierr.New(grierr.MalformedSection, 0, 0,
				"declared length %d, actual %d", b.Length, len(data)),
		}
	}
	return nil
}
