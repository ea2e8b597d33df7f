package richfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, texts []RichText) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(texts) == 1 {
		return enc.Encode(texts[0])
	}
	return enc.Encode(texts)
}
