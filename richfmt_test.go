package richfmt_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/bjaus/richfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errLookup = errors.New("lookup failed")

const greeting = "Hello #{{name|Mr(s)}}, I have #{{cookies|several}} cookies for you. Bye #{{name}}"

const mention = `#{{user}} mentioned you in a comment#{{comment|| "|"}}`

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

// --- Parse ---

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   []richfmt.Segment
	}{
		"empty": {
			format: "",
			want:   nil,
		},
		"literal only": {
			format: "no placeholders here",
			want:   []richfmt.Segment{richfmt.Literal{Text: "no placeholders here"}},
		},
		"key only": {
			format: "#{{k}}",
			want:   []richfmt.Segment{richfmt.Placeholder{Key: "k"}},
		},
		"key and default": {
			format: "#{{k|D}}",
			want:   []richfmt.Segment{richfmt.Placeholder{Key: "k", Default: "D"}},
		},
		"key default prefix": {
			format: "#{{k|D|P}}",
			want:   []richfmt.Segment{richfmt.Placeholder{Key: "k", Default: "D", Prefix: "P"}},
		},
		"all fields": {
			format: "#{{k|D|P|S}}",
			want:   []richfmt.Segment{richfmt.Placeholder{Key: "k", Default: "D", Prefix: "P", Suffix: "S"}},
		},
		"extra pipes belong to suffix": {
			format: "#{{k|D|P|S|T|U}}",
			want:   []richfmt.Segment{richfmt.Placeholder{Key: "k", Default: "D", Prefix: "P", Suffix: "S|T|U"}},
		},
		"quoted suffix": {
			format: mention,
			want: []richfmt.Segment{
				richfmt.Placeholder{Key: "user"},
				richfmt.Literal{Text: " mentioned you in a comment"},
				richfmt.Placeholder{Key: "comment", Prefix: ` "`, Suffix: `"`},
			},
		},
		"literals around placeholders": {
			format: greeting,
			want: []richfmt.Segment{
				richfmt.Literal{Text: "Hello "},
				richfmt.Placeholder{Key: "name", Default: "Mr(s)"},
				richfmt.Literal{Text: ", I have "},
				richfmt.Placeholder{Key: "cookies", Default: "several"},
				richfmt.Literal{Text: " cookies for you. Bye "},
				richfmt.Placeholder{Key: "name"},
			},
		},
		"newline fields": {
			format: "#{{first|||\n}}#{{second||\n}}",
			want: []richfmt.Segment{
				richfmt.Placeholder{Key: "first", Suffix: "\n"},
				richfmt.Placeholder{Key: "second", Prefix: "\n"},
			},
		},
		"markers do not nest": {
			format: "#{{a #{{b}} c",
			want: []richfmt.Segment{
				richfmt.Placeholder{Key: "a #{{b"},
				richfmt.Literal{Text: " c"},
			},
		},
		"stray closing braces are literal": {
			format: "x}}y #{{k}}}",
			want: []richfmt.Segment{
				richfmt.Literal{Text: "x}}y "},
				richfmt.Placeholder{Key: "k"},
				richfmt.Literal{Text: "}"},
			},
		},
		"hash before marker": {
			format: "a##{{k}}",
			want: []richfmt.Segment{
				richfmt.Literal{Text: "a#"},
				richfmt.Placeholder{Key: "k"},
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := richfmt.Parse(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		offset int
	}{
		"unterminated":              {format: "#{{k", offset: 0},
		"unterminated after text":   {format: "abc #{{", offset: 4},
		"single closing brace":      {format: "#{{k}", offset: 0},
		"empty body":                {format: "ok #{{}}", offset: 3},
		"empty key with default":    {format: "#{{|D}}", offset: 0},
		"second placeholder broken": {format: "#{{a}} and #{{b", offset: 11},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			segs, err := richfmt.Parse(tt.format)
			require.ErrorIs(t, err, richfmt.ErrMalformedPlaceholder)
			assert.Nil(t, segs)
			var pe *richfmt.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.offset, pe.Offset)
		})
	}
}

func TestParseJoinRoundTrip(t *testing.T) {
	t.Parallel()
	for _, format := range []string{
		greeting,
		mention,
		"#{{first|||\n}}#{{second||\n}}",
		"#{{k|||}} trailing empties",
		"#{{k|D|P|S|T}}",
		"#{{a #{{b}} c",
		"#{{k|d}|}}",
		"#{{k}|}}",
		"#{{k||p}|}} x",
	} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			segs, err := richfmt.Parse(format)
			require.NoError(t, err)
			again, err := richfmt.Parse(richfmt.Join(segs))
			require.NoError(t, err)
			assert.Equal(t, segs, again)
		})
	}
}

func TestPlaceholderString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "#{{k}}", richfmt.Placeholder{Key: "k"}.String())
	assert.Equal(t, "#{{k||P}}", richfmt.Placeholder{Key: "k", Prefix: "P"}.String())
	assert.Equal(t, "#{{k|||S}}", richfmt.Placeholder{Key: "k", Suffix: "S"}.String())
	assert.Equal(t, "#{{k|d}|}}", richfmt.Placeholder{Key: "k", Default: "d}"}.String())
	assert.Equal(t, "#{{k}|}}", richfmt.Placeholder{Key: "k}"}.String())
}

func TestKeys(t *testing.T) {
	t.Parallel()
	segs, err := richfmt.Parse(greeting)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "cookies"}, richfmt.Keys(segs))
}

// --- Render ---

func TestRenderPlaceholderForms(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format  string
		absent  string
		present string
	}{
		"key only":      {format: "#{{k}}", absent: "", present: "x"},
		"default":       {format: "#{{k|D}}", absent: "D", present: "x"},
		"prefix":        {format: "#{{k|D|P}}", absent: "D", present: "Px"},
		"prefix suffix": {format: "#{{k|D|P|S}}", absent: "D", present: "PxS"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := richfmt.Sprint(tt.format, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.absent, got)

			got, err = richfmt.Sprint(tt.format, map[string]any{"k": "x"})
			require.NoError(t, err)
			assert.Equal(t, tt.present, got)
		})
	}
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()
	rt, err := richfmt.Expand(greeting, richfmt.FuncResolver(func(string) any { return nil }), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello Mr(s), I have several cookies for you. Bye ", rt.String())
}

func TestRenderMapping(t *testing.T) {
	t.Parallel()
	rt, err := richfmt.Expand(greeting, richfmt.FuncResolver(func(key string) any {
		switch key {
		case "name":
			return "Jill"
		case "cookies":
			return 5
		default:
			t.Errorf("unexpected key %q", key)
			return nil
		}
	}), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello Jill, I have 5 cookies for you. Bye Jill", rt.String())
}

func TestRenderStyledMapping(t *testing.T) {
	t.Parallel()
	name := richfmt.NewRichText("Jack", richfmt.Style{richfmt.AttrForeground: "red"})
	cookies := richfmt.NewRichText("100", richfmt.Style{richfmt.AttrForeground: "blue"})

	got, err := richfmt.ExpandMap(greeting, map[string]any{"name": name, "cookies": cookies}, nil)
	require.NoError(t, err)

	var want richfmt.Builder
	want.WriteString("Hello ", nil)
	want.WriteRichText(name, nil)
	want.WriteString(", I have ", nil)
	want.WriteRichText(cookies, nil)
	want.WriteString(" cookies for you. Bye ", nil)
	want.WriteRichText(name, nil)

	assert.True(t, want.RichText().Equal(got), "got runs %v", got.Runs())
}

func TestRenderPrefixAndSuffix(t *testing.T) {
	t.Parallel()
	got, err := richfmt.ExpandMap(mention, map[string]any{
		"user":    richfmt.NewRichText("Jack", nil),
		"comment": richfmt.NewRichText("How are you Jill?", nil),
	}, nil)
	require.NoError(t, err)
	assert.True(t, richfmt.NewRichText(`Jack mentioned you in a comment "How are you Jill?"`, nil).Equal(got))
}

func TestRenderAbsentSkipsPrefixAndSuffix(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Sprint(mention, map[string]any{"user": "Jack", "comment": nil})
	require.NoError(t, err)
	assert.Equal(t, "Jack mentioned you in a comment", got)
}

func TestRenderPresentEmptyValueKeepsWrapping(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Sprint("#{{k|D|<|>}}", map[string]any{"k": ""})
	require.NoError(t, err)
	assert.Equal(t, "<>", got)
}

func TestRenderMultiline(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Sprint("#{{first|||\n}}#{{second||\n}}", map[string]any{"first": 1, "second": 2})
	require.NoError(t, err)
	assert.Equal(t, "1\n\n2", got)
}

func TestSprint(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Sprint(greeting, map[string]any{"name": "Jack", "cookies": 6})
	require.NoError(t, err)
	assert.Equal(t, "Hello Jack, I have 6 cookies for you. Bye Jack", got)

	got, err = richfmt.Sprint(greeting, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Hello Mr(s), I have several cookies for you. Bye ", got)
}

func TestSprintMalformed(t *testing.T) {
	t.Parallel()
	_, err := richfmt.Sprint("#{{oops", nil)
	require.ErrorIs(t, err, richfmt.ErrMalformedPlaceholder)
}

func TestRenderAttributeMerge(t *testing.T) {
	t.Parallel()
	nameAttrs := richfmt.Style{
		richfmt.AttrFont:       "F1",
		richfmt.AttrForeground: "red",
	}
	base := richfmt.Style{
		richfmt.AttrFont:       "F0",
		richfmt.AttrForeground: "green",
		richfmt.AttrUnderline:  1,
	}

	got, err := richfmt.ExpandMap("Hello #{{name}}", map[string]any{
		"name": richfmt.NewRichText("Jack", nameAttrs),
	}, base)
	require.NoError(t, err)

	attrs, run := got.AttributesAt(1)
	assert.Equal(t, base, attrs)
	assert.Equal(t, 0, run.Start)
	assert.Equal(t, 6, run.End)

	attrs, run = got.AttributesAt(8)
	assert.Equal(t, richfmt.Style{
		richfmt.AttrFont:       "F1",
		richfmt.AttrForeground: "red",
		richfmt.AttrUnderline:  1,
	}, attrs)
	assert.Equal(t, "Jack", run.Text(got))

	// The caller's value is never modified.
	assert.Equal(t, richfmt.Style{richfmt.AttrFont: "F1", richfmt.AttrForeground: "red"}, nameAttrs)
}

func TestRenderPlainValueTakesBase(t *testing.T) {
	t.Parallel()
	base := richfmt.Style{richfmt.AttrBold: true}
	got, err := richfmt.ExpandMap("a #{{k||[|]}} b", map[string]any{"k": "v"}, base)
	require.NoError(t, err)
	assert.Equal(t, "a [v] b", got.String())
	runs := got.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, base, runs[0].Attributes)
}

func TestRenderPrefixSuffixTakeBaseAroundStyledValue(t *testing.T) {
	t.Parallel()
	base := richfmt.Style{richfmt.AttrFont: "F0"}
	value := richfmt.NewRichText("v", richfmt.Style{richfmt.AttrBold: true})
	got, err := richfmt.ExpandMap("#{{k||(|)}}", map[string]any{"k": value}, base)
	require.NoError(t, err)

	runs := got.Runs()
	require.Len(t, runs, 3)
	assert.Equal(t, "(", runs[0].Text(got))
	assert.Equal(t, base, runs[0].Attributes)
	assert.Equal(t, richfmt.Style{richfmt.AttrFont: "F0", richfmt.AttrBold: true}, runs[1].Attributes)
	assert.Equal(t, ")", runs[2].Text(got))
	assert.Equal(t, base, runs[2].Attributes)
}

func TestRenderLiteralOnlyNeverResolves(t *testing.T) {
	t.Parallel()
	base := richfmt.Style{richfmt.AttrItalic: true}
	got, err := richfmt.Expand("just text", func(key string) (richfmt.Value, error) {
		t.Errorf("resolver called with %q", key)
		return richfmt.Absent, nil
	}, base)
	require.NoError(t, err)
	assert.True(t, richfmt.NewRichText("just text", base).Equal(got))
}

func TestRenderResolverOrder(t *testing.T) {
	t.Parallel()
	var calls []string
	_, err := richfmt.Expand(greeting, func(key string) (richfmt.Value, error) {
		calls = append(calls, key)
		return richfmt.PlainText(key), nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "cookies", "name"}, calls)
}

func TestRenderResolverFailure(t *testing.T) {
	t.Parallel()
	var calls []string
	got, err := richfmt.Expand(greeting, func(key string) (richfmt.Value, error) {
		calls = append(calls, key)
		if key == "cookies" {
			return nil, errLookup
		}
		return richfmt.PlainText("x"), nil
	}, nil)
	require.ErrorIs(t, err, richfmt.ErrResolverFailed)
	require.ErrorIs(t, err, errLookup)
	assert.Zero(t, got.Len())
	assert.Equal(t, []string{"name", "cookies"}, calls)

	var re *richfmt.ResolverError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "cookies", re.Key)
}

func TestRenderNilValueIsAbsent(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Expand("#{{k|none}}", func(string) (richfmt.Value, error) { return nil, nil }, nil)
	require.NoError(t, err)
	assert.Equal(t, "none", got.String())
}

func TestRenderPointerValues(t *testing.T) {
	t.Parallel()
	rich := richfmt.NewRichText("Jack", richfmt.Style{richfmt.AttrBold: true})
	plain := richfmt.PlainText("Jill")
	var nilRich *richfmt.RichText
	var nilPlain *richfmt.PlainText

	got, err := richfmt.Expand("Hi #{{a|nobody}} #{{b|nobody}} #{{c|x}}#{{d|y}}", func(key string) (richfmt.Value, error) {
		switch key {
		case "a":
			return &rich, nil
		case "b":
			return &plain, nil
		case "c":
			return nilRich, nil
		default:
			return nilPlain, nil
		}
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hi Jack Jill xy", got.String())
	attrs, _ := got.AttributesAt(3)
	assert.Equal(t, richfmt.Style{richfmt.AttrBold: true}, attrs)

	s, err := richfmt.Sprint("#{{name|nobody}}", map[string]any{"name": &plain})
	require.NoError(t, err)
	assert.Equal(t, "Jill", s)
}

func TestRenderNilResolver(t *testing.T) {
	t.Parallel()
	got, err := richfmt.Expand(greeting, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello Mr(s), I have several cookies for you. Bye ", got.String())
}

// --- Template ---

func TestTemplate(t *testing.T) {
	t.Parallel()
	tmpl, err := richfmt.Compile(greeting)
	require.NoError(t, err)
	assert.Equal(t, greeting, tmpl.String())
	assert.Equal(t, []string{"name", "cookies"}, tmpl.Keys())

	segs := tmpl.Segments()
	segs[0] = richfmt.Literal{Text: "changed"}
	assert.Equal(t, richfmt.Literal{Text: "Hello "}, tmpl.Segments()[0])
}

func TestTemplateConcurrentRender(t *testing.T) {
	t.Parallel()
	tmpl := richfmt.MustCompile(greeting)
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rt, err := tmpl.Render(richfmt.MapResolver(map[string]any{"name": fmt.Sprint("n", i), "cookies": i}), nil)
			if err == nil {
				results[i] = rt.String()
			}
		}()
	}
	wg.Wait()
	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("Hello n%d, I have %d cookies for you. Bye n%d", i, i, i), got)
	}
}

func TestCompileMalformed(t *testing.T) {
	t.Parallel()
	_, err := richfmt.Compile("#{{}}")
	require.ErrorIs(t, err, richfmt.ErrMalformedPlaceholder)
	assert.Panics(t, func() { richfmt.MustCompile("#{{") })
}

// --- Values ---

func TestValueOf(t *testing.T) {
	t.Parallel()
	styled := richfmt.NewRichText("s", richfmt.Style{richfmt.AttrBold: true})
	var nilRich *richfmt.RichText
	var nilPlain *richfmt.PlainText
	plain := richfmt.PlainText("pp")
	tests := map[string]struct {
		in   any
		want richfmt.Value
	}{
		"nil":          {in: nil, want: richfmt.Absent},
		"absent":       {in: richfmt.Absent, want: richfmt.Absent},
		"string":       {in: "x", want: richfmt.PlainText("x")},
		"bytes":        {in: []byte("b"), want: richfmt.PlainText("b")},
		"int":          {in: 5, want: richfmt.PlainText("5")},
		"negative":     {in: int64(-3), want: richfmt.PlainText("-3")},
		"uint8":        {in: uint8(7), want: richfmt.PlainText("7")},
		"float":        {in: 1.5, want: richfmt.PlainText("1.5")},
		"whole float":  {in: 2.0, want: richfmt.PlainText("2")},
		"float32":      {in: float32(0.25), want: richfmt.PlainText("0.25")},
		"bool":         {in: true, want: richfmt.PlainText("true")},
		"stringer":     {in: stringer{"str"}, want: richfmt.PlainText("str")},
		"plain text":   {in: richfmt.PlainText("p"), want: richfmt.PlainText("p")},
		"rich text":    {in: styled, want: styled},
		"rich pointer": {in: &styled, want: styled},
		"nil pointer":  {in: nilRich, want: richfmt.Absent},
		"plain ptr":    {in: &plain, want: richfmt.PlainText("pp")},
		"nil plain":    {in: nilPlain, want: richfmt.Absent},
		"slice":        {in: []int{1, 2}, want: richfmt.PlainText("[1 2]")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, richfmt.ValueOf(tt.in))
		})
	}
}

func TestMapResolverMissingKey(t *testing.T) {
	t.Parallel()
	v, err := richfmt.MapResolver(map[string]any{"a": 1})("b")
	require.NoError(t, err)
	assert.Equal(t, richfmt.Absent, v)
}

// --- RichText ---

func TestBuilderCoalescesEqualRuns(t *testing.T) {
	t.Parallel()
	var b richfmt.Builder
	b.WriteString("a", richfmt.Style{richfmt.AttrBold: true})
	b.WriteString("", richfmt.Style{richfmt.AttrItalic: true})
	b.WriteString("b", richfmt.Style{richfmt.AttrBold: true})
	b.WriteString("c", nil)
	b.WriteString("d", richfmt.Style{})
	rt := b.RichText()

	assert.Equal(t, "abcd", rt.String())
	assert.Equal(t, 4, b.Len())
	runs := rt.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, 0, runs[0].Start)
	assert.Equal(t, 2, runs[0].End)
	assert.Equal(t, 2, runs[1].Start)
	assert.Equal(t, 4, runs[1].End)
	assert.Empty(t, runs[1].Attributes)

	b.Reset()
	assert.Zero(t, b.RichText().Len())
}

func TestBuilderSnapshotIsIndependent(t *testing.T) {
	t.Parallel()
	var b richfmt.Builder
	b.WriteString("a", nil)
	first := b.RichText()
	b.WriteString("b", nil)
	assert.Equal(t, "a", first.String())
	assert.Equal(t, 1, first.Runs()[0].End)
}

func TestRunsReturnsCopy(t *testing.T) {
	t.Parallel()
	rt := richfmt.NewRichText("x", richfmt.Style{richfmt.AttrBold: true})
	runs := rt.Runs()
	runs[0].Attributes[richfmt.AttrBold] = false
	attrs, _ := rt.AttributesAt(0)
	assert.Equal(t, true, attrs[richfmt.AttrBold])
}

func TestAttributesAtOutOfRange(t *testing.T) {
	t.Parallel()
	rt := richfmt.NewRichText("ab", nil)
	assert.Panics(t, func() { rt.AttributesAt(2) })
	assert.Panics(t, func() { rt.AttributesAt(-1) })
}

func TestNewStyledText(t *testing.T) {
	t.Parallel()
	bold := richfmt.Style{richfmt.AttrBold: true}
	rt, err := richfmt.NewStyledText("hello world", richfmt.Run{Start: 6, End: 11, Attributes: bold})
	require.NoError(t, err)

	attrs, run := rt.AttributesAt(0)
	assert.Empty(t, attrs)
	assert.Equal(t, "hello ", run.Text(rt))
	attrs, _ = rt.AttributesAt(6)
	assert.Equal(t, bold, attrs)
}

func TestNewStyledTextInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text string
		runs []richfmt.Run
	}{
		"past end":      {text: "abc", runs: []richfmt.Run{{Start: 0, End: 4}}},
		"reversed":      {text: "abc", runs: []richfmt.Run{{Start: 2, End: 1}}},
		"overlapping":   {text: "abc", runs: []richfmt.Run{{Start: 0, End: 2}, {Start: 1, End: 3}}},
		"negative":      {text: "abc", runs: []richfmt.Run{{Start: -1, End: 1}}},
		"splits a rune": {text: "é", runs: []richfmt.Run{{Start: 0, End: 1}}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := richfmt.NewStyledText(tt.text, tt.runs...)
			require.ErrorIs(t, err, richfmt.ErrInvalidValue)
		})
	}
}

func TestRichTextWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, richfmt.NewRichText("你好", nil).Width())
	assert.Equal(t, 3, richfmt.NewRichText("abc", nil).Width())
}

func TestStyleMerge(t *testing.T) {
	t.Parallel()
	base := richfmt.Style{"a": 1, "b": 2}
	over := richfmt.Style{"b": 3, "c": 4}
	assert.Equal(t, richfmt.Style{"a": 1, "b": 3, "c": 4}, base.Merge(over))
	assert.Equal(t, richfmt.Style{"a": 1, "b": 2}, base)
	assert.True(t, richfmt.Style(nil).Equal(richfmt.Style{}))
	assert.False(t, base.Equal(over))
}

func TestRichTextJSON(t *testing.T) {
	t.Parallel()
	var b richfmt.Builder
	b.WriteString("a", nil)
	b.WriteString("b", richfmt.Style{richfmt.AttrBold: true})
	rt := b.RichText()

	data, err := rt.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"ab","runs":[{"start":0,"end":1},{"start":1,"end":2,"attributes":{"bold":true}}]}`, string(data))

	var back richfmt.RichText
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, rt.Equal(back))
}

func TestRichTextUnmarshalShorthands(t *testing.T) {
	t.Parallel()
	var plain richfmt.RichText
	require.NoError(t, plain.UnmarshalJSON([]byte(`"just text"`)))
	assert.True(t, richfmt.NewRichText("just text", nil).Equal(plain))

	var styled richfmt.RichText
	require.NoError(t, styled.UnmarshalJSON([]byte(`{"text":"Jack","style":{"foreground":"red"}}`)))
	assert.True(t, richfmt.NewRichText("Jack", richfmt.Style{"foreground": "red"}).Equal(styled))

	var bad richfmt.RichText
	err := bad.UnmarshalJSON([]byte(`{"text":"ab","runs":[{"start":1,"end":5}]}`))
	require.ErrorIs(t, err, richfmt.ErrInvalidValue)
}

func TestRichTextYAML(t *testing.T) {
	t.Parallel()
	rt, err := richfmt.ExpandMap("Hi #{{name}}", map[string]any{
		"name": richfmt.NewRichText("Jack", richfmt.Style{richfmt.AttrBold: true}),
	}, richfmt.Style{richfmt.AttrFont: "mono"})
	require.NoError(t, err)

	data, err := richfmt.Marshal(richfmt.YAML, rt)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "text: Hi Jack\n"), string(data))

	var back richfmt.RichText
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, rt.Equal(back), "round trip lost runs: %s", data)
}
