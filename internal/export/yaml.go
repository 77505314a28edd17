package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/RealityNet/teleparser/internal/tl"
)

// YAMLTreeExporter writes a decoded tree as YAML.
type YAMLTreeExporter struct{}

// Export writes the tree as YAML.
func (e *YAMLTreeExporter) Export(tree *tl.Object, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(treeValue(tree))
}

// Extension returns the file extension for this format
func (e *YAMLTreeExporter) Extension() string {
	return "yaml"
}
