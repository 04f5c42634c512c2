// Package cli implements the anchor command-line interface.
//
// The commands load a TOML scene (see internal/scene), drive the anchoring
// engine and print the resulting widget tree:
//   - simulate: apply a sequence of resizes to a widget and print each step
//   - inspect: show (and optionally edit) one widget's box model
//   - watch: resize the root interactively
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. It is
// normally called from main with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the anchor CLI until the command completes or ctx is done.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "anchor",
		Short:        "anchor simulates inset-anchored widget layouts",
		Long:         `anchor loads a widget tree from a TOML scene, attaches per-edge anchors and shows how resizes cascade through the tree.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("anchor %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newWatchCmd())

	return root
}
