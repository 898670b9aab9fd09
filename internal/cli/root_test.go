package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, want := range []string{"preview", "changes", "version"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestVersionOutput(t *testing.T) {
	// version vars are set via ldflags; in tests they have their defaults
	if version != "dev" {
		t.Errorf("expected default version %q, got %q", "dev", version)
	}
}

func TestChangesCommand(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "doc.txt")
	changedPath := filepath.Join(dir, "doc.fixed.txt")
	if err := os.WriteFile(basePath, []byte("A\nB\nC"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(changedPath, []byte("A\nX\nC"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	changesCmd.SetOut(&out)
	defer changesCmd.SetOut(nil)
	if err := changesCmd.Flags().Set("changed", changedPath); err != nil {
		t.Fatal(err)
	}
	defer changesCmd.Flags().Set("changed", "")

	if err := runChanges(changesCmd, []string{basePath}); err != nil {
		t.Fatalf("changes failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "X") {
		t.Errorf("output missing edit label: %q", got)
	}
}

func TestChangesCommandIdentical(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(basePath, []byte("same"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	changesCmd.SetOut(&out)
	defer changesCmd.SetOut(nil)
	if err := changesCmd.Flags().Set("changed", basePath); err != nil {
		t.Fatal(err)
	}
	defer changesCmd.Flags().Set("changed", "")

	if err := runChanges(changesCmd, []string{basePath}); err != nil {
		t.Fatalf("changes failed: %v", err)
	}
	if !strings.Contains(out.String(), "No changes.") {
		t.Errorf("output = %q, want no-changes notice", out.String())
	}
}

func TestBuildOperationRequiresSource(t *testing.T) {
	if _, err := buildOperation(previewCmd, "base"); err == nil {
		t.Error("expected error when neither --changed nor --patch is set")
	}
}
