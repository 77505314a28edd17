package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/RealityNet/teleparser/testutil"
)

func writeBlobFile(t *testing.T, blob []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBlobCommand(t *testing.T) {
	blob := testutil.EncodeTextMessage(1, 100, 200, 1600000000, "hi")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "text format",
			args: []string{"blob", writeBlobFile(t, blob)},
		},
		{
			name: "json format",
			args: []string{"blob", writeBlobFile(t, blob), "--format", "json"},
		},
		{
			name: "yaml format",
			args: []string{"blob", writeBlobFile(t, blob), "-f", "yaml"},
		},
		{
			name:    "unsupported format",
			args:    []string{"blob", writeBlobFile(t, blob), "--format", "xml"},
			wantErr: true,
		},
		{
			name:    "missing file",
			args:    []string{"blob", filepath.Join(t.TempDir(), "nope.bin")},
			wantErr: true,
		},
		{
			name:    "no args",
			args:    []string{"blob"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer resetFlags()
			rootCmd.SetArgs(tt.args)
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBlobCommand_UnknownConstructor(t *testing.T) {
	defer resetFlags()
	blob := testutil.NewBlob().Tag(0xdeadbeef).Bytes()
	path := writeBlobFile(t, blob)

	rootCmd.SetArgs([]string{"blob", path})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Error("blob should fail on an unknown constructor tag")
	}
}

func TestBlobCommand_VersionGate(t *testing.T) {
	defer resetFlags()
	// A user blob with an access hash only decodes under 5.6.2.
	blob := testutil.NewBlob().
		Tag(testutil.TagUserV2).
		Int32(1).Int64(7).
		String("A").String("").String("a").String("").
		Tag(testutil.TagUserProfilePhotoEmpty).
		Tag(testutil.TagUserStatusOffline).Int32(0).
		Bytes()
	path := writeBlobFile(t, blob)

	rootCmd.SetArgs([]string{"blob", path, "--app-version", "5.5.0"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err == nil {
		t.Error("blob under 5.5.0 should reject the 5.6.2-only constructor")
	}
	resetFlags()

	rootCmd.SetArgs([]string{"blob", path, "--app-version", "5.6.2"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("blob under 5.6.2 failed: %v", err)
	}
}
