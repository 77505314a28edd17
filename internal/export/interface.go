// Package export renders extraction results to their output artifacts:
// per-table text blocks, the timeline CSV, and single-tree exports for
// blob inspection. Renderers never decode and never report domain errors;
// malformed input cannot reach them.
package export

import (
	"fmt"
	"io"

	"github.com/RealityNet/teleparser/internal/tl"
)

// TreeExporter writes one decoded Record Tree in a given format.
type TreeExporter interface {
	Export(tree *tl.Object, w io.Writer) error
	Extension() string
}

// NewTreeExporter creates a tree exporter for a format name.
func NewTreeExporter(format string) (TreeExporter, error) {
	switch format {
	case "text", "txt":
		return &TextTreeExporter{}, nil
	case "json":
		return &JSONTreeExporter{}, nil
	case "yaml":
		return &YAMLTreeExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}

// TextTreeExporter writes the tree's indented name/value rendering.
type TextTreeExporter struct{}

// Export writes the pretty-printed tree.
func (e *TextTreeExporter) Export(tree *tl.Object, w io.Writer) error {
	_, err := io.WriteString(w, tree.String()+"\n")
	return err
}

// Extension returns the file extension for this format
func (e *TextTreeExporter) Extension() string {
	return "txt"
}
