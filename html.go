package richfmt

import (
	"fmt"
	"html"
	"io"
	"strings"
)

func writeHTML(w io.Writer, texts []RichText) error {
	for _, rt := range texts {
		var sb strings.Builder
		for _, r := range rt.runs {
			writeHTMLRun(&sb, r.Text(rt), r.Attributes)
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeHTMLRun(sb *strings.Builder, text string, attrs Style) {
	escaped := html.EscapeString(text)
	css := cssDeclarations(attrs)
	link := attrs.str(AttrLink)
	if link != "" {
		fmt.Fprintf(sb, `<a href="%s">`, html.EscapeString(link))
	}
	if css != "" {
		fmt.Fprintf(sb, `<span style="%s">%s</span>`, html.EscapeString(css), escaped)
	} else {
		sb.WriteString(escaped)
	}
	if link != "" {
		sb.WriteString("</a>")
	}
}

func cssDeclarations(attrs Style) string {
	var decls []string
	if font := attrs.str(AttrFont); font != "" {
		decls = append(decls, "font-family: "+font)
	}
	if fg := attrs.str(AttrForeground); fg != "" {
		decls = append(decls, "color: "+fg)
	}
	if bg := attrs.str(AttrBackground); bg != "" {
		decls = append(decls, "background-color: "+bg)
	}
	if attrs.flag(AttrBold) {
		decls = append(decls, "font-weight: bold")
	}
	if attrs.flag(AttrItalic) {
		decls = append(decls, "font-style: italic")
	}
	if attrs.flag(AttrFaint) {
		decls = append(decls, "opacity: 0.5")
	}
	var deco []string
	if attrs.flag(AttrUnderline) {
		deco = append(deco, "underline")
	}
	if attrs.flag(AttrStrikethrough) {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration: "+strings.Join(deco, " "))
	}
	return strings.Join(decls, "; ")
}
