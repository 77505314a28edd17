package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/RealityNet/teleparser/internal/tl"
)

const blockSeparator = "--------------------------------------------------------------------------------"

// NamedValue is one plain column in a block.
type NamedValue struct {
	Name  string
	Value interface{}
}

// NamedTree is one decoded blob column in a block.
type NamedTree struct {
	Name string
	Tree *tl.Object
}

// Block is the renderable view of one extracted row.
type Block struct {
	KeyName string
	Key     string
	Plain   []NamedValue
	UserRef string
	Trees   []NamedTree
}

// Table is the renderable view of one extracted table.
type Table struct {
	Name   string
	Blocks []Block
}

// WriteTableBlocks writes one separator-delimited block per row: the key,
// the plain columns, an optional users cross-reference line, then each
// decoded tree indented under its column name.
func WriteTableBlocks(w io.Writer, table Table) error {
	for _, block := range table.Blocks {
		if _, err := fmt.Fprintln(w, blockSeparator); err != nil {
			return err
		}
		line := fmt.Sprintf("%s: %s", block.KeyName, block.Key)
		for _, col := range block.Plain {
			line += fmt.Sprintf(" %s: %s", col.Name, formatPlain(col.Value))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if block.UserRef != "" {
			if _, err := fmt.Fprintln(w, block.UserRef); err != nil {
				return err
			}
		}
		for _, nt := range block.Trees {
			if _, err := fmt.Fprintf(w, "\n[%s]\n%s\n", nt.Name, nt.Tree.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func formatPlain(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		if len(val) == 0 {
			return ""
		}
		return fmt.Sprintf("0x%x", val)
	case string:
		return strings.TrimSpace(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
