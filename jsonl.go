package richfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, texts []RichText) error {
	enc := json.NewEncoder(w)
	for _, rt := range texts {
		if err := enc.Encode(rt); err != nil {
			return err
		}
	}
	return nil
}
