package richfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func writeTSV(w io.Writer, texts []RichText) error {
	rows := runRows(texts)
	if len(rows) == 0 {
		return nil
	}
	if err := writeTSVHeader(w, runHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeTSVRow quotes the text cell so tabs and newlines inside it cannot
// break the record.
func writeTSVRow(w io.Writer, row []string) error {
	cells := make([]string, len(row))
	copy(cells, row)
	cells[3] = strconv.Quote(cells[3])
	_, err := fmt.Fprintln(w, strings.Join(cells, "\t"))
	return err
}

func writeTSVHeader(w io.Writer, header []string) error {
	_, err := fmt.Fprintln(w, strings.Join(header, "\t"))
	return err
}
