package cmd

import (
	"bytes"
	"testing"

	"github.com/RealityNet/teleparser/internal"
	"github.com/RealityNet/teleparser/testutil"
)

func TestInspectCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   func(t *testing.T) string
		wantErr bool
	}{
		{
			name:  "populated cache",
			input: testutil.CreateCacheFile,
		},
		{
			name:  "empty cache",
			input: testutil.CreateEmptyCacheFile,
		},
		{
			name:    "missing file",
			input:   func(t *testing.T) string { return "/nonexistent/cache4.db" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetFlags()
			rootCmd.SetArgs([]string{"inspect", tt.input(t)})
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBlobColumnList(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"messages", "data, replydata (optional)"},
		{"enc_chats", "data (optional)"},
		{"contacts", "-"},
		{"users", "data"},
	}
	for _, tt := range tests {
		spec := internal.TableSpecFor(tt.table)
		if spec == nil {
			t.Fatalf("no spec for %s", tt.table)
		}
		if got := blobColumnList(*spec); got != tt.want {
			t.Errorf("blobColumnList(%s) = %q, want %q", tt.table, got, tt.want)
		}
	}
}
