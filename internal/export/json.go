package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/RealityNet/teleparser/internal/tl"
)

// JSONTreeExporter writes a decoded tree as indented JSON.
type JSONTreeExporter struct{}

// Export writes the tree as JSON.
func (e *JSONTreeExporter) Export(tree *tl.Object, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(treeValue(tree))
}

// Extension returns the file extension for this format
func (e *JSONTreeExporter) Extension() string {
	return "json"
}

// treeValue converts a Record Tree node into plain maps, slices and
// scalars for the structured exporters. Objects become ordered-by-recipe
// maps with the constructor name under "_type".
func treeValue(v tl.Value) interface{} {
	switch node := v.(type) {
	case *tl.Object:
		out := make(map[string]interface{}, len(node.Fields)+2)
		out["_type"] = node.Name
		if node.Tag != 0 {
			out["_tag"] = fmt.Sprintf("0x%08x", node.Tag)
		}
		for _, f := range node.Fields {
			out[f.Name] = treeValue(f.Value)
		}
		return out
	case *tl.Vector:
		items := make([]interface{}, 0, len(node.Items))
		for _, item := range node.Items {
			items = append(items, treeValue(item))
		}
		return items
	case tl.Int32:
		return int32(node)
	case tl.Int64:
		return int64(node)
	case tl.Double:
		return float64(node)
	case tl.Bool:
		return bool(node)
	case tl.Bytes:
		return decodeBytes(node)
	default:
		return nil
	}
}

func decodeBytes(b tl.Bytes) interface{} {
	for _, c := range b {
		if c < 0x20 && c != '\n' && c != '\t' {
			return fmt.Sprintf("0x%x", []byte(b))
		}
	}
	return string(b)
}
