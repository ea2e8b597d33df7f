package richfmt

import "fmt"

// Resolver returns the value for a placeholder key. It is called once per
// placeholder occurrence, left to right. Returning [Absent] (or nil) is not
// an error; returning an error aborts the render. Pointers to [PlainText]
// and [RichText] are dereferenced.
type Resolver func(key string) (Value, error)

// ResolverError wraps an error returned by a [Resolver]. It matches
// [ErrResolverFailed] and the wrapped error with [errors.Is].
type ResolverError struct {
	Key string
	Err error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("%s: key %q: %v", ErrResolverFailed, e.Key, e.Err)
}

// Unwrap returns the resolver's error.
func (e *ResolverError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrResolverFailed].
func (e *ResolverError) Is(target error) bool {
	return target == ErrResolverFailed
}

// Render resolves each placeholder in segments and returns the assembled
// text. Literals, defaults, prefixes and suffixes take base. A [PlainText]
// value takes base; a [RichText] value keeps its own attributes, with base
// filling in the keys a run does not set.
//
// A nil resolve treats every key as absent.
func Render(segments []Segment, resolve Resolver, base Style) (RichText, error) {
	var b Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case Literal:
			b.WriteString(s.Text, base)
		case Placeholder:
			v, err := lookup(resolve, s.Key)
			if err != nil {
				return RichText{}, err
			}
			writePlaceholder(&b, s, v, base)
		}
	}
	return b.RichText(), nil
}

func lookup(resolve Resolver, key string) (Value, error) {
	if resolve == nil {
		return Absent, nil
	}
	v, err := resolve(key)
	if err != nil {
		return nil, &ResolverError{Key: key, Err: err}
	}
	return normalize(key, v)
}

// normalize dereferences pointer values. A nil value or nil pointer is
// absent.
func normalize(key string, v Value) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Absent, nil
	case absent, PlainText, RichText:
		return v, nil
	case *PlainText:
		if t == nil {
			return Absent, nil
		}
		return *t, nil
	case *RichText:
		if t == nil {
			return Absent, nil
		}
		return *t, nil
	default:
		return nil, fmt.Errorf("%w: key %q: unsupported value type %T", ErrInvalidValue, key, v)
	}
}

func writePlaceholder(b *Builder, p Placeholder, v Value, base Style) {
	switch t := v.(type) {
	case PlainText:
		b.WriteString(p.Prefix, base)
		b.WriteString(string(t), base)
		b.WriteString(p.Suffix, base)
	case RichText:
		b.WriteString(p.Prefix, base)
		b.WriteRichText(t, base)
		b.WriteString(p.Suffix, base)
	case absent:
		b.WriteString(p.Default, base)
	}
}

// Template is a parsed format string. It is immutable and safe for
// concurrent use.
type Template struct {
	format   string
	segments []Segment
}

// Compile parses format into a Template.
func Compile(format string) (*Template, error) {
	segments, err := Parse(format)
	if err != nil {
		return nil, err
	}
	return &Template{format: format, segments: segments}, nil
}

// MustCompile is like [Compile] but panics on a malformed format.
func MustCompile(format string) *Template {
	t, err := Compile(format)
	if err != nil {
		panic(err)
	}
	return t
}

// Render renders the template. See [Render].
func (t *Template) Render(resolve Resolver, base Style) (RichText, error) {
	return Render(t.segments, resolve, base)
}

// Segments returns a copy of the parsed segments.
func (t *Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Keys returns the distinct placeholder keys in source order.
func (t *Template) Keys() []string { return Keys(t.segments) }

// String returns the source format string.
func (t *Template) String() string { return t.format }

// MapResolver resolves keys from mapping. Missing keys and nil values are
// absent; other values go through [ValueOf].
func MapResolver(mapping map[string]any) Resolver {
	return func(key string) (Value, error) {
		v, ok := mapping[key]
		if !ok {
			return Absent, nil
		}
		return ValueOf(v), nil
	}
}

// FuncResolver adapts a function returning host values. A nil result is
// absent; other results go through [ValueOf].
func FuncResolver(fn func(key string) any) Resolver {
	return func(key string) (Value, error) {
		return ValueOf(fn(key)), nil
	}
}

// Expand parses format and renders it in one step.
func Expand(format string, resolve Resolver, base Style) (RichText, error) {
	segments, err := Parse(format)
	if err != nil {
		return RichText{}, err
	}
	return Render(segments, resolve, base)
}

// ExpandMap is [Expand] with a [MapResolver].
func ExpandMap(format string, mapping map[string]any, base Style) (RichText, error) {
	return Expand(format, MapResolver(mapping), base)
}

// Sprint expands format against mapping and returns the text without
// attributes.
func Sprint(format string, mapping map[string]any) (string, error) {
	rt, err := ExpandMap(format, mapping, nil)
	if err != nil {
		return "", err
	}
	return rt.String(), nil
}
