package richfmt

import "strings"

const (
	openMarker  = "#{{"
	closeMarker = "}}"
	fieldSep    = "|"
	maxFields   = 4
)

// Segment is one piece of a parsed format string: either a [Literal] or a
// [Placeholder]. Segments are produced by [Parse] and never mutated.
type Segment interface {
	// String returns the source form of the segment.
	String() string

	segment()
}

// Literal is text copied verbatim to the output.
type Literal struct {
	Text string
}

func (Literal) segment() {}

// String returns the literal text.
func (l Literal) String() string { return l.Text }

// Placeholder references a key resolved at render time.
//
// Default is written when the key is absent. Prefix and Suffix wrap a
// present value and are dropped when the key is absent.
type Placeholder struct {
	Key     string
	Default string
	Prefix  string
	Suffix  string
}

func (Placeholder) segment() {}

// String re-serializes the placeholder, omitting trailing empty fields.
func (p Placeholder) String() string {
	fields := []string{p.Key, p.Default, p.Prefix, p.Suffix}
	for len(fields) > 1 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	// A body ending in "}" would close the placeholder early.
	if n := len(fields); n < maxFields && strings.HasSuffix(fields[n-1], "}") {
		fields = append(fields, "")
	}
	return openMarker + strings.Join(fields, fieldSep) + closeMarker
}

// Join reconstructs a format string from segments. Parsing the result of
// Join on segments returned by [Parse] yields equal segments.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.String())
	}
	return b.String()
}

// Keys returns the distinct placeholder keys in source order.
func Keys(segments []Segment) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, seg := range segments {
		p, ok := seg.(Placeholder)
		if !ok || seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		keys = append(keys, p.Key)
	}
	return keys
}
