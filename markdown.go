package richfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func writeMarkdown(w io.Writer, texts []RichText) error {
	for _, rt := range texts {
		var sb strings.Builder
		for _, r := range rt.runs {
			sb.WriteString(markdownRun(r.Text(rt), r.Attributes))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// markdownRun wraps text in emphasis markers. Leading and trailing
// whitespace stays outside the markers, where CommonMark requires it.
func markdownRun(text string, attrs Style) string {
	core := strings.TrimFunc(text, unicode.IsSpace)
	if core == "" {
		return text
	}
	start := strings.Index(text, core)
	lead, trail := text[:start], text[start+len(core):]

	s := markdownEscaper.Replace(core)
	if attrs.flag(AttrStrikethrough) {
		s = "~~" + s + "~~"
	}
	if attrs.flag(AttrItalic) {
		s = "_" + s + "_"
	}
	if attrs.flag(AttrBold) {
		s = "**" + s + "**"
	}
	if link := attrs.str(AttrLink); link != "" {
		s = "[" + s + "](" + markdownDestination(link) + ")"
	}
	return lead + s + trail
}

var markdownDestinationEscaper = strings.NewReplacer(
	"<", `\<`,
	">", `\>`,
	"\n", "%0A",
)

// markdownDestination returns link as a link destination. Destinations with
// spaces, parentheses or angle brackets are written in the <...> form.
func markdownDestination(link string) string {
	if !strings.ContainsAny(link, " \t\n()<>") {
		return link
	}
	return "<" + markdownDestinationEscaper.Replace(link) + ">"
}
