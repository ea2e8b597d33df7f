package richfmt

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, texts []RichText) error {
	for _, rt := range texts {
		if _, err := fmt.Fprintln(w, rt.String()); err != nil {
			return err
		}
	}
	return nil
}
