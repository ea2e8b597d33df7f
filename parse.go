package richfmt

import (
	"fmt"
	"strings"
)

// ParseError describes a malformed placeholder. It matches
// [ErrMalformedPlaceholder] with [errors.Is].
type ParseError struct {
	Offset int // byte offset of the opening marker
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrMalformedPlaceholder, e.Offset, e.Reason)
}

// Is reports whether target is [ErrMalformedPlaceholder].
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedPlaceholder
}

// Parse splits format into literal and placeholder segments.
//
// A placeholder is written #{{key|default|prefix|suffix}}. Only the first
// three pipes separate fields; any further pipe is part of the suffix.
// Markers do not nest: the body ends at the first "}}" after the opening
// marker.
func Parse(format string) ([]Segment, error) {
	var (
		segments []Segment
		literal  strings.Builder
		rest     = format
		offset   int
	)
	for {
		open := strings.Index(rest, openMarker)
		if open < 0 {
			literal.WriteString(rest)
			break
		}
		literal.WriteString(rest[:open])

		bodyStart := open + len(openMarker)
		end := strings.Index(rest[bodyStart:], closeMarker)
		if end < 0 {
			return nil, &ParseError{Offset: offset + open, Reason: "missing closing " + closeMarker}
		}
		p := parsePlaceholder(rest[bodyStart : bodyStart+end])
		if p.Key == "" {
			return nil, &ParseError{Offset: offset + open, Reason: "empty key"}
		}

		if literal.Len() > 0 {
			segments = append(segments, Literal{Text: literal.String()})
			literal.Reset()
		}
		segments = append(segments, p)

		consumed := bodyStart + end + len(closeMarker)
		offset += consumed
		rest = rest[consumed:]
	}
	if literal.Len() > 0 {
		segments = append(segments, Literal{Text: literal.String()})
	}
	return segments, nil
}

func parsePlaceholder(body string) Placeholder {
	fields := strings.SplitN(body, fieldSep, maxFields)
	var p Placeholder
	p.Key = fields[0]
	if len(fields) > 1 {
		p.Default = fields[1]
	}
	if len(fields) > 2 {
		p.Prefix = fields[2]
	}
	if len(fields) > 3 {
		p.Suffix = fields[3]
	}
	return p
}
