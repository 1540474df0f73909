package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors used in command output.
var (
	colorPrimary = lipgloss.Color("#6C5CE7") // Purple
	colorMuted   = lipgloss.Color("#636E72") // Gray
	colorSuccess = lipgloss.Color("#00B894") // Green
	colorWarning = lipgloss.Color("#FDCB6E") // Yellow
)

// styles holds the styles for one output stream.
// Styles are bound to a renderer for the stream so that plain writers
// (pipes, buffers) receive no escape sequences.
type styles struct {
	Key     lipgloss.Style
	Value   lipgloss.Style
	Missing lipgloss.Style
	Header  lipgloss.Style
	Warning lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		Key: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Value: r.NewStyle().
			Foreground(colorSuccess),
		Missing: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Header: r.NewStyle().
			Bold(true),
		Warning: r.NewStyle().
			Foreground(colorWarning),
	}
}

// kvWriter prints aligned "key  value" rows.
type kvWriter struct {
	w      io.Writer
	styles styles
	width  int
}

func newKVWriter(w io.Writer, keys ...string) *kvWriter {
	width := 0
	for _, k := range keys {
		if n := lipgloss.Width(k); n > width {
			width = n
		}
	}
	return &kvWriter{w: w, styles: newStyles(w), width: width}
}

// Row prints one row. An empty value is shown as "-".
func (kw *kvWriter) Row(key, value string) {
	k := kw.styles.Key.Width(kw.width).Render(key)
	v := kw.styles.Value.Render(value)
	if value == "" {
		v = kw.styles.Missing.Render("-")
	}
	_, _ = fmt.Fprintf(kw.w, "%s  %s\n", k, v)
}
