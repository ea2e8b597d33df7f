package richfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedPlaceholder = errors.New("malformed placeholder")
	ErrResolverFailed       = errors.New("resolver failed")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrInvalidValue         = errors.New("invalid value")
)

// Format is an output encoding for rendered [RichText].
type Format string

const (
	Plain    Format = "plain"
	ANSI     Format = "ansi"
	HTML     Format = "html"
	Markdown Format = "markdown"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Table    Format = "table"
	CSV      Format = "csv"
	TSV      Format = "tsv"
)

var formats = []Format{Plain, ANSI, HTML, Markdown, JSON, JSONL, YAML, Table, CSV, TSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write encodes texts in format f and writes them to w.
func Write(w io.Writer, f Format, texts ...RichText) error {
	switch f {
	case Plain:
		return writePlain(w, texts)
	case ANSI:
		return writeANSI(w, texts)
	case HTML:
		return writeHTML(w, texts)
	case Markdown:
		return writeMarkdown(w, texts)
	case JSON:
		return writeJSON(w, texts)
	case JSONL:
		return writeJSONL(w, texts)
	case YAML:
		return writeYAML(w, texts)
	case Table:
		return writeTable(w, texts)
	case CSV:
		return writeCSV(w, texts)
	case TSV:
		return writeTSV(w, texts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes texts in format f and returns the bytes.
func Marshal(f Format, texts ...RichText) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, texts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
