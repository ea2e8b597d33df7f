package richfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
)

// WriteIter encodes texts from an iterator and writes them to w as they
// arrive. Plain, ANSI, HTML, Markdown, JSONL, CSV and TSV write each text
// immediately. JSON is streamed as array elements. YAML and Table need every
// text before writing and collect the sequence first.
func WriteIter(w io.Writer, f Format, seq iter.Seq[RichText]) error {
	switch f {
	case Plain, ANSI, HTML, Markdown, JSONL:
		return streamEach(w, f, seq)
	case JSON:
		return streamJSON(w, seq)
	case YAML, Table:
		return streamCollect(w, f, seq)
	case CSV:
		return streamRows(w, seq, writeCSVRow, writeCSVRow)
	case TSV:
		return streamRows(w, seq, writeTSVHeader, writeTSVRow)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan encodes texts from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, ch <-chan RichText) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamEach(w io.Writer, f Format, seq iter.Seq[RichText]) error {
	for rt := range seq {
		if err := Write(w, f, rt); err != nil {
			return err
		}
	}
	return nil
}

func streamCollect(w io.Writer, f Format, seq iter.Seq[RichText]) error {
	var texts []RichText
	for rt := range seq {
		texts = append(texts, rt)
	}
	if len(texts) == 0 {
		return nil
	}
	return Write(w, f, texts...)
}

func streamJSON(w io.Writer, seq iter.Seq[RichText]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for rt := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(rt); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// streamRows writes the run header once, before the first row, then one
// record per run.
func streamRows(w io.Writer, seq iter.Seq[RichText], header, row func(io.Writer, []string) error) error {
	wroteHeader := false
	i := 0
	for rt := range seq {
		for _, cells := range textRows(i, rt) {
			if !wroteHeader {
				if err := header(w, runHeader); err != nil {
					return err
				}
				wroteHeader = true
			}
			if err := row(w, cells); err != nil {
				return err
			}
		}
		i++
	}
	return nil
}
