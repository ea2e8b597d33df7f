package richfmt

import (
	"maps"
	"reflect"
)

// Well-known attribute keys. The output encoders understand these; any
// other key is carried through rendering untouched.
const (
	AttrFont          = "font"
	AttrForeground    = "foreground"
	AttrBackground    = "background"
	AttrBold          = "bold"
	AttrItalic        = "italic"
	AttrUnderline     = "underline"
	AttrStrikethrough = "strikethrough"
	AttrFaint         = "faint"
	AttrLink          = "link"
)

// Style maps attribute keys to attribute values.
type Style map[string]any

// Merge returns a new Style holding every entry of s and over. On a key
// collision the value from over wins.
func (s Style) Merge(over Style) Style {
	out := make(Style, len(s)+len(over))
	maps.Copy(out, s)
	maps.Copy(out, over)
	return out
}

// Clone returns a shallow copy of s.
func (s Style) Clone() Style {
	return maps.Clone(s)
}

// Equal reports whether s and other hold deeply equal entries. A nil Style
// equals an empty one.
func (s Style) Equal(other Style) bool {
	if len(s) == 0 && len(other) == 0 {
		return true
	}
	return reflect.DeepEqual(map[string]any(s), map[string]any(other))
}

// truthy interprets an attribute value as a flag. Underline styles are
// commonly given as integers, so any non-zero number counts as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int() != 0
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return rv.Uint() != 0
		case reflect.Float32, reflect.Float64:
			return rv.Float() != 0
		}
		return true
	}
}

func (s Style) flag(key string) bool {
	return truthy(s[key])
}

func (s Style) str(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return valueString(v)
}
