package output

import (
	"fmt"
	"io"

	"github.com/jokarl/resbind/internal/types"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the resolution report to the writer
	Render(w io.Writer, report *types.Report) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", s)
	}
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
