// Package richfmt expands format strings with typed placeholders into
// styled text.
//
// A format string mixes literal text with placeholders written
// #{{key|default|prefix|suffix}}. Every field after the key is optional:
//
//	Hello #{{name|Mr(s)}}, I have #{{cookies|several}} cookies for you.
//	#{{user}} mentioned you in a comment#{{comment|| "|"}}
//
// When a key resolves to a value, the prefix, the value and the suffix are
// written. When it is absent, only the default is written. Only the first
// three pipes separate fields, so a suffix may contain "|" itself.
//
// # Parsing and Rendering
//
// [Parse] turns a format string into [Segment] values, and [Render]
// resolves them against a [Resolver] and a base [Style]. [Compile] does the
// parsing once and returns a reusable [Template]:
//
//	tmpl := richfmt.MustCompile("Hello #{{name}}")
//	text, err := tmpl.Render(richfmt.MapResolver(values), base)
//
// [Expand], [ExpandMap] and [Sprint] parse and render in one call.
//
// # Values
//
// A resolver returns one of three values: [Absent], [PlainText] or a
// [RichText]. [ValueOf] converts ordinary Go values, rendering numbers in
// decimal. Plain text takes the base style. Rich text keeps its own
// attributes; where a run does not set a key, the base style's value is
// used:
//
//	base  {font: F0, foreground: green, underline: 1}
//	value {font: F1, foreground: red}
//	=>    {font: F1, foreground: red, underline: 1}
//
// # Output
//
// [Write] and [Marshal] encode rendered text as [Plain], [ANSI] (through
// lipgloss), [HTML], [Markdown], [JSON], [JSONL], [YAML], or a run listing
// as [Table], [CSV] or [TSV]. [WriteIter] and [WriteChan] stream.
//
// # Errors
//
//   - [ErrMalformedPlaceholder] — unterminated placeholder or empty key
//   - [ErrResolverFailed] — the resolver returned an error
//   - [ErrUnsupportedFormat] — unknown output format name
//   - [ErrInvalidValue] — rich text runs out of order or bounds
package richfmt
