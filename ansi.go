package richfmt

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	rendererMu      sync.RWMutex
	defaultRenderer = lipgloss.DefaultRenderer()
)

// SetDefaultRenderer sets the lipgloss renderer used by the [ANSI] format.
// Its color profile decides which escape sequences are emitted; an Ascii
// profile writes plain text.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	defaultRenderer = r
}

func currentRenderer() *lipgloss.Renderer {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	return defaultRenderer
}

// namedColors maps color names to the 16 basic ANSI palette indexes.
var namedColors = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"brightblack":   "8",
	"gray":          "8",
	"grey":          "8",
	"brightred":     "9",
	"brightgreen":   "10",
	"brightyellow":  "11",
	"brightblue":    "12",
	"brightmagenta": "13",
	"brightcyan":    "14",
	"brightwhite":   "15",
}

func terminalColor(name string) lipgloss.Color {
	if idx, ok := namedColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(idx)
	}
	return lipgloss.Color(name)
}

// ANSIStyle converts attributes to a lipgloss style on renderer r. Keys
// without a terminal equivalent, such as font and link, are ignored.
func ANSIStyle(r *lipgloss.Renderer, attrs Style) lipgloss.Style {
	style := r.NewStyle().Inline(true).TabWidth(lipgloss.NoTabConversion)
	if attrs.flag(AttrBold) {
		style = style.Bold(true)
	}
	if attrs.flag(AttrItalic) {
		style = style.Italic(true)
	}
	if attrs.flag(AttrUnderline) {
		style = style.Underline(true)
	}
	if attrs.flag(AttrStrikethrough) {
		style = style.Strikethrough(true)
	}
	if attrs.flag(AttrFaint) {
		style = style.Faint(true)
	}
	if fg := attrs.str(AttrForeground); fg != "" {
		style = style.Foreground(terminalColor(fg))
	}
	if bg := attrs.str(AttrBackground); bg != "" {
		style = style.Background(terminalColor(bg))
	}
	return style
}

// WriteANSI is like [Write] with the [ANSI] format but styles texts with
// renderer r instead of the default renderer.
func WriteANSI(w io.Writer, r *lipgloss.Renderer, texts ...RichText) error {
	return writeANSIWith(w, r, texts)
}

func writeANSI(w io.Writer, texts []RichText) error {
	return writeANSIWith(w, currentRenderer(), texts)
}

func writeANSIWith(w io.Writer, r *lipgloss.Renderer, texts []RichText) error {
	plain := r.ColorProfile() == termenv.Ascii
	for _, rt := range texts {
		var sb strings.Builder
		for _, run := range rt.runs {
			text := run.Text(rt)
			if plain || len(run.Attributes) == 0 {
				sb.WriteString(text)
				continue
			}
			style := ANSIStyle(r, run.Attributes)
			// Styles are applied per line so line breaks stay outside the
			// escape sequences.
			for i, line := range strings.Split(text, "\n") {
				if i > 0 {
					sb.WriteByte('\n')
				}
				if line != "" {
					sb.WriteString(style.Render(line))
				}
			}
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
