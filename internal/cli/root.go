// Package cli wires up the fixpick command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fixpick",
	Short: "Preview and cherry-pick fix-all edits to a document",
	Long: `fixpick shows the individual text edits a "fix all occurrences" code
action would apply to a single document, lets you toggle edits on and off
with a live preview, and writes out the document with only the approved
edits applied.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(versionCmd)
}
