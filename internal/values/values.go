// Package values loads placeholder values and base styles for the richfmt
// CLI from YAML, TOML or JSON files and from key=value flags.
//
// A value entry is either a scalar or a styled text mapping:
//
//	name:
//	  text: Jack
//	  style: {bold: true, foreground: red}
//	comment:
//	  text: hello world
//	  runs:
//	    - {start: 6, end: 11, attributes: {italic: true}}
package values

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bjaus/richfmt"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownExtension is returned for files that are not YAML, TOML or JSON.
var ErrUnknownExtension = errors.New("unknown file extension")

// Load reads a values file and converts styled entries to [richfmt.RichText].
func Load(path string) (map[string]any, error) {
	raw, err := readMap(path)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

// LoadStyle reads a base style file: a flat mapping of attribute to value.
func LoadStyle(path string) (richfmt.Style, error) {
	raw, err := readMap(path)
	if err != nil {
		return nil, err
	}
	return richfmt.Style(raw), nil
}

func readMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	out, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}

// Decode parses data as a mapping. ext selects the syntax and includes the
// leading dot.
func Decode(data []byte, ext string) (map[string]any, error) {
	out := map[string]any{}
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	case ".toml":
		err = toml.Unmarshal(data, &out)
	case ".json":
		err = json.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize replaces styled text mappings in raw with [richfmt.RichText].
// Other entries are returned unchanged.
func Normalize(raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for key, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			out[key] = v
			continue
		}
		rt, err := styledText(m)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", key, err)
		}
		out[key] = rt
	}
	return out, nil
}

func styledText(m map[string]any) (richfmt.RichText, error) {
	text, ok := m["text"].(string)
	if !ok {
		return richfmt.RichText{}, fmt.Errorf("%w: styled value needs a string \"text\" field", richfmt.ErrInvalidValue)
	}
	rawRuns, hasRuns := m["runs"].([]any)
	if !hasRuns {
		style, err := toStyle(m["style"])
		if err != nil {
			return richfmt.RichText{}, err
		}
		return richfmt.NewRichText(text, style), nil
	}

	runs := make([]richfmt.Run, 0, len(rawRuns))
	for i, r := range rawRuns {
		rm, ok := r.(map[string]any)
		if !ok {
			return richfmt.RichText{}, fmt.Errorf("%w: run %d is not a mapping", richfmt.ErrInvalidValue, i)
		}
		start, err := toInt(rm["start"])
		if err != nil {
			return richfmt.RichText{}, fmt.Errorf("run %d start: %w", i, err)
		}
		end, err := toInt(rm["end"])
		if err != nil {
			return richfmt.RichText{}, fmt.Errorf("run %d end: %w", i, err)
		}
		attrs, err := toStyle(rm["attributes"])
		if err != nil {
			return richfmt.RichText{}, fmt.Errorf("run %d: %w", i, err)
		}
		runs = append(runs, richfmt.Run{Start: start, End: end, Attributes: attrs})
	}
	return richfmt.NewStyledText(text, runs...)
}

func toStyle(v any) (richfmt.Style, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return richfmt.Style(t), nil
	default:
		return nil, fmt.Errorf("%w: style must be a mapping, got %T", richfmt.ErrInvalidValue, v)
	}
}

func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case uint64:
		return int(t), nil
	case float64:
		if t == float64(int(t)) {
			return int(t), nil
		}
	}
	return 0, fmt.Errorf("%w: expected an integer offset, got %v", richfmt.ErrInvalidValue, v)
}

// ParseAssignments parses key=value pairs. Later pairs override earlier
// ones. Values are kept as plain strings.
func ParseAssignments(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: assignment %q must be key=value", richfmt.ErrInvalidValue, pair)
		}
		out[key] = value
	}
	return out, nil
}

// Merge returns the union of maps, later maps winning on key collisions.
func Merge(maps ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
