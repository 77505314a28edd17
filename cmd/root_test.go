package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RealityNet/teleparser/testutil"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"nonexistent-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_HelpListsSubcommands(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() error = %v", err)
	}
	for _, sub := range []string{"parse", "blob", "inspect"} {
		if !strings.Contains(stdout.String(), sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}

func TestRootCommand_AppVersionFlag(t *testing.T) {
	// An unsupported app version must be rejected before any decoding.
	path := writeBlobFile(t, testutil.EncodeTextMessage(1, 100, 200, 1600000000, "hi"))
	rootCmd.SetArgs([]string{"blob", path, "--app-version", "1.0.0"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer resetFlags()

	if err := rootCmd.Execute(); err == nil {
		t.Error("blob with unsupported --app-version should fail")
	}
}
