package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/RealityNet/teleparser/internal/export"
	"github.com/RealityNet/teleparser/internal/tl"
)

func TestNewTreeExporter(t *testing.T) {
	tests := []struct {
		format    string
		extension string
		wantErr   bool
	}{
		{"text", "txt", false},
		{"txt", "txt", false},
		{"json", "json", false},
		{"yaml", "yaml", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		exp, err := export.NewTreeExporter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewTreeExporter(%q) should fail", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewTreeExporter(%q) failed: %v", tt.format, err)
			continue
		}
		if exp.Extension() != tt.extension {
			t.Errorf("NewTreeExporter(%q).Extension() = %q, want %q",
				tt.format, exp.Extension(), tt.extension)
		}
	}
}

func TestJSONTreeExporter(t *testing.T) {
	var sb strings.Builder
	if err := (&export.JSONTreeExporter{}).Export(messageTree(), &sb); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(sb.String()), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc["_type"] != "message" {
		t.Errorf("_type = %v", doc["_type"])
	}
	if doc["_tag"] != "0x44f9b43d" {
		t.Errorf("_tag = %v", doc["_tag"])
	}
	if doc["message"] != "hi" {
		t.Errorf("message = %v", doc["message"])
	}
	peer, ok := doc["to_id"].(map[string]interface{})
	if !ok {
		t.Fatalf("to_id = %T", doc["to_id"])
	}
	if peer["user_id"] != float64(200) {
		t.Errorf("to_id.user_id = %v", peer["user_id"])
	}
}

func TestJSONTreeExporterBinaryBytes(t *testing.T) {
	tree := &tl.Object{
		Tag:  0xfa56ce36,
		Name: "encrypted_chat",
		Fields: []tl.Field{
			{Name: "g_a_or_b", Value: tl.Bytes{0x01, 0x02}},
		},
	}
	var sb strings.Builder
	if err := (&export.JSONTreeExporter{}).Export(tree, &sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), `"0x0102"`) {
		t.Errorf("binary bytes should export as hex:\n%s", sb.String())
	}
}

func TestYAMLTreeExporter(t *testing.T) {
	var sb strings.Builder
	if err := (&export.YAMLTreeExporter{}).Export(messageTree(), &sb); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(sb.String()), &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if doc["_type"] != "message" {
		t.Errorf("_type = %v", doc["_type"])
	}
	if doc["date"] != 1600000000 {
		t.Errorf("date = %v (%T)", doc["date"], doc["date"])
	}
}

func TestTextTreeExporter(t *testing.T) {
	var sb strings.Builder
	if err := (&export.TextTreeExporter{}).Export(messageTree(), &sb); err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if !strings.HasPrefix(sb.String(), "message (0x44f9b43d)\n") {
		t.Errorf("unexpected rendering:\n%s", sb.String())
	}
}
