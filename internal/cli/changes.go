package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixpick/fixpick/internal/codeaction"
	"github.com/fixpick/fixpick/internal/editor"
	"github.com/fixpick/fixpick/internal/textchange"
)

var changesCmd = &cobra.Command{
	Use:   "changes <file>",
	Short: "List the computed edits without opening the dialog",
	Long: `Compute the textual differences between <file> and its fixed form and
print one line per edit: byte span, length delta, and the display label.
Useful for scripting and for checking what the dialog would show.`,
	Args: cobra.ExactArgs(1),
	RunE: runChanges,
}

func init() {
	changesCmd.Flags().String("changed", "", "file containing the resulting document text")
	changesCmd.Flags().String("patch", "", "unified diff to derive the resulting text, - for stdin")
}

func runChanges(cmd *cobra.Command, args []string) error {
	ed := editor.File{Path: args[0]}
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

	changed, ok := codeaction.ChangedText([]codeaction.Operation{op})
	if !ok {
		return fmt.Errorf("operation does not carry changed text")
	}

	changes := textchange.Compute(base, changed)
	if len(changes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}

	labels := textchange.Labels(changed, changes)
	for i, c := range changes {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  [%d:%d)  %+d  %s\n",
			i+1, c.Span.Start, c.Span.End, c.Delta(), labels[i])
	}
	return nil
}
