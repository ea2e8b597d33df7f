package richfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, texts []RichText) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(texts) == 1 {
		if err := enc.Encode(texts[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(texts); err != nil {
			return err
		}
	}
	return enc.Close()
}
