package richfmt

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Run is a contiguous byte range of a [RichText] and the attributes in
// effect over it. Start and End fall on rune boundaries.
type Run struct {
	Start      int   `json:"start" yaml:"start"`
	End        int   `json:"end" yaml:"end"`
	Attributes Style `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Text returns the substring of rt covered by the run.
func (r Run) Text(rt RichText) string {
	return rt.text[r.Start:r.End]
}

// RichText is text annotated with ranged attributes. Its runs cover the
// whole text in order, are never empty, and adjacent runs always differ in
// attributes. The zero value is empty text.
type RichText struct {
	text string
	runs []Run
}

func (RichText) value() {}

// NewRichText returns text styled uniformly with style.
func NewRichText(text string, style Style) RichText {
	var b Builder
	b.WriteString(text, style)
	return b.RichText()
}

// NewStyledText builds a RichText from explicit runs. Runs must be ordered,
// non-overlapping, within bounds and on rune boundaries. Bytes not covered
// by any run carry no attributes.
func NewStyledText(text string, runs ...Run) (RichText, error) {
	var b Builder
	pos := 0
	for i, r := range runs {
		switch {
		case r.Start < pos || r.End < r.Start || r.End > len(text):
			return RichText{}, fmt.Errorf("%w: run %d [%d,%d) out of order or bounds for text of length %d", ErrInvalidValue, i, r.Start, r.End, len(text))
		case !boundary(text, r.Start) || !boundary(text, r.End):
			return RichText{}, fmt.Errorf("%w: run %d [%d,%d) splits a rune", ErrInvalidValue, i, r.Start, r.End)
		}
		b.WriteString(text[pos:r.Start], nil)
		b.WriteString(text[r.Start:r.End], r.Attributes)
		pos = r.End
	}
	b.WriteString(text[pos:], nil)
	return b.RichText(), nil
}

func boundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// String returns the text without attributes.
func (rt RichText) String() string { return rt.text }

// Len returns the length of the text in bytes.
func (rt RichText) Len() int { return len(rt.text) }

// Width returns the display width of the text in terminal cells.
func (rt RichText) Width() int { return runewidth.StringWidth(rt.text) }

// Runs returns a copy of the runs.
func (rt RichText) Runs() []Run {
	out := make([]Run, len(rt.runs))
	for i, r := range rt.runs {
		out[i] = Run{Start: r.Start, End: r.End, Attributes: r.Attributes.Clone()}
	}
	return out
}

// AttributesAt returns the attributes of the byte at index i and the run
// containing it. It panics if i is out of range.
func (rt RichText) AttributesAt(i int) (Style, Run) {
	if i < 0 || i >= len(rt.text) {
		panic(fmt.Sprintf("richfmt: index %d out of range [0,%d)", i, len(rt.text)))
	}
	n, _ := slices.BinarySearchFunc(rt.runs, i, func(r Run, i int) int {
		switch {
		case r.End <= i:
			return -1
		case r.Start > i:
			return 1
		default:
			return 0
		}
	})
	r := rt.runs[n]
	return r.Attributes.Clone(), Run{Start: r.Start, End: r.End, Attributes: r.Attributes.Clone()}
}

// Equal reports whether rt and other have the same text and attributes.
func (rt RichText) Equal(other RichText) bool {
	return rt.text == other.text && slices.EqualFunc(rt.runs, other.runs, func(a, b Run) bool {
		return a.Start == b.Start && a.End == b.End && a.Attributes.Equal(b.Attributes)
	})
}

// Builder assembles a [RichText] by appending. The zero value is ready to
// use.
type Builder struct {
	text strings.Builder
	runs []Run
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.text.Len() }

// WriteString appends s styled with style.
func (b *Builder) WriteString(s string, style Style) {
	if s == "" {
		return
	}
	start := b.text.Len()
	b.text.WriteString(s)
	b.appendRun(start, b.text.Len(), style.Clone())
}

// WriteRichText appends rt. Each run's attributes are merged over base, so
// the run's own values win and base fills in the keys it lacks.
func (b *Builder) WriteRichText(rt RichText, base Style) {
	start := b.text.Len()
	b.text.WriteString(rt.text)
	for _, r := range rt.runs {
		b.appendRun(start+r.Start, start+r.End, base.Merge(r.Attributes))
	}
}

func (b *Builder) appendRun(start, end int, attrs Style) {
	if n := len(b.runs); n > 0 {
		last := &b.runs[n-1]
		if last.End == start && last.Attributes.Equal(attrs) {
			last.End = end
			return
		}
	}
	b.runs = append(b.runs, Run{Start: start, End: end, Attributes: attrs})
}

// RichText returns the accumulated text. The Builder may keep being used.
func (b *Builder) RichText() RichText {
	return RichText{text: b.text.String(), runs: slices.Clone(b.runs)}
}

// Reset empties the Builder.
func (b *Builder) Reset() {
	b.text.Reset()
	b.runs = nil
}

// richTextDoc is the serialized form. Style is a shorthand for a single run
// over the whole text and is only read when Runs is empty.
type richTextDoc struct {
	Text  string `json:"text" yaml:"text"`
	Style Style  `json:"style,omitempty" yaml:"style,omitempty"`
	Runs  []Run  `json:"runs,omitempty" yaml:"runs,omitempty"`
}

func (rt RichText) doc() richTextDoc {
	return richTextDoc{Text: rt.text, Runs: rt.Runs()}
}

func (d richTextDoc) richText() (RichText, error) {
	if len(d.Runs) == 0 {
		return NewRichText(d.Text, d.Style), nil
	}
	return NewStyledText(d.Text, d.Runs...)
}

// MarshalJSON encodes rt as {"text": ..., "runs": [...]}.
func (rt RichText) MarshalJSON() ([]byte, error) {
	return json.Marshal(rt.doc())
}

// UnmarshalJSON accepts a JSON string or the object form written by
// MarshalJSON, optionally using "style" in place of "runs".
func (rt *RichText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*rt = NewRichText(s, nil)
		return nil
	}
	var d richTextDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	v, err := d.richText()
	if err != nil {
		return err
	}
	*rt = v
	return nil
}

// MarshalYAML encodes rt in the same shape as MarshalJSON.
func (rt RichText) MarshalYAML() (any, error) {
	return rt.doc(), nil
}

// UnmarshalYAML accepts a scalar or the mapping form written by
// MarshalYAML.
func (rt *RichText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*rt = NewRichText(node.Value, nil)
		return nil
	}
	var d richTextDoc
	if err := node.Decode(&d); err != nil {
		return err
	}
	v, err := d.richText()
	if err != nil {
		return err
	}
	*rt = v
	return nil
}
