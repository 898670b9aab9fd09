package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fixpick/fixpick/internal/codeaction"
	"github.com/fixpick/fixpick/internal/editor"
	"github.com/fixpick/fixpick/internal/preview"
	"github.com/fixpick/fixpick/internal/textchange"
	"github.com/fixpick/fixpick/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Open the interactive fix-all preview dialog",
	Long: `Open an interactive dialog listing the edits that turn <file> into its
fixed form. Toggle edits with space, watch the live preview, and press
enter to apply the enabled edits.

The fixed form comes from --changed (a file holding the full resulting
text) or --patch (a unified diff for the file, "-" for stdin).

Examples:
  fixpick preview main.go --changed main.fixed.go
  fixpick preview main.go --patch fix.diff --write
  git diff main.go | fixpick preview main.go --patch -`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("changed", "", "file containing the resulting document text")
	previewCmd.Flags().String("patch", "", "unified diff to derive the resulting text, - for stdin")
	previewCmd.Flags().StringP("diagnostic", "d", "fix-all", "diagnostic identifier shown in the header")
	previewCmd.Flags().BoolP("write", "w", false, "write the result back to the file")
	previewCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	ed := editor.File{Path: path}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	base, err := ed.Text(ctx)
	if err != nil {
		return err
	}

	op, err := buildOperation(cmd, base)
	if err != nil {
		return err
	}

	diagnostic, _ := cmd.Flags().GetString("diagnostic")
	action := codeaction.Action{
		DiagnosticID: diagnostic,
		ScopeLabel:   filepath.Base(path),
		Scope:        codeaction.ScopeDocument,
		Operations:   []codeaction.Operation{op},
	}

	d, err := preview.New(action, ed)
	if err != nil {
		return err
	}
	if err := d.Init(ctx); err != nil {
		return err
	}

	if len(d.Nodes()) <= 1 {
		fmt.Println("No changes to preview.")
		return nil
	}

	result, err := tui.Run(d)
	if err != nil {
		return err
	}
	if result == nil || len(result.Changes) == 0 {
		fmt.Fprintln(os.Stderr, "No edits applied.")
		return nil
	}

	final := textchange.Apply(d.BaseText(), result.Changes)
	return writeResult(cmd, path, final)
}

// buildOperation derives the apply-changes operation from --changed or
// --patch.
func buildOperation(cmd *cobra.Command, base string) (codeaction.Operation, error) {
	changedPath, _ := cmd.Flags().GetString("changed")
	patchPath, _ := cmd.Flags().GetString("patch")

	switch {
	case changedPath != "" && patchPath != "":
		return nil, fmt.Errorf("--changed and --patch are mutually exclusive")

	case changedPath != "":
		data, err := os.ReadFile(changedPath)
		if err != nil {
			return nil, fmt.Errorf("reading changed text: %w", err)
		}
		return codeaction.FromChangedText(string(data)), nil

	case patchPath != "":
		var r io.Reader
		if patchPath == "-" {
			r = cmd.InOrStdin()
		} else {
			f, err := os.Open(patchPath)
			if err != nil {
				return nil, fmt.Errorf("opening patch: %w", err)
			}
			defer f.Close()
			r = f
		}
		return codeaction.FromPatch(base, r)

	default:
		return nil, fmt.Errorf("one of --changed or --patch is required")
	}
}

func writeResult(cmd *cobra.Command, path, final string) error {
	write, _ := cmd.Flags().GetBool("write")
	output, _ := cmd.Flags().GetString("output")

	switch {
	case write:
		mode := os.FileMode(0644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(final), mode); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
		return nil

	case output != "":
		if err := os.WriteFile(output, []byte(final), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
		return nil

	default:
		_, err := io.WriteString(cmd.OutOrStdout(), final)
		return err
	}
}
