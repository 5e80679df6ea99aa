package describe

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the terminal styling applied to rendered reports. A
// disabled style set renders plain text, which keeps test output and piped
// output deterministic.
type Styles struct {
	enabled     bool
	header      lipgloss.Style
	placeholder lipgloss.Style
	name        lipgloss.Style
	annotation  lipgloss.Style
	link        lipgloss.Style
}

// NewStyles builds the style set, plain when colorEnabled is false.
func NewStyles(colorEnabled bool) Styles {
	if !colorEnabled {
		return Styles{}
	}
	return Styles{
		enabled:     true,
		header:      lipgloss.NewStyle().Bold(true).Underline(true),
		placeholder: lipgloss.NewStyle().Italic(true).Faint(true),
		name:        lipgloss.NewStyle().Bold(true),
		annotation:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		link:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// ColorEnabled reports whether styled output makes sense for the writer:
// the writer must be a terminal and NO_COLOR must not be set.
func ColorEnabled(writer io.Writer) bool {
	if termenv.EnvNoColor() {
		return false
	}
	file, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	return termenv.NewOutput(file).ColorProfile() != termenv.Ascii
}

// Header styles a section header.
func (styles Styles) Header(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.header.Render(text)
}

// Placeholder styles an informational "none" line.
func (styles Styles) Placeholder(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.placeholder.Render(text)
}

// Name styles a member name.
func (styles Styles) Name(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.name.Render(text)
}

// Annotation styles a [Required]/[Reactive] marker.
func (styles Styles) Annotation(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.annotation.Render(text)
}

// Link styles a documentation reference.
func (styles Styles) Link(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.link.Render(text)
}
