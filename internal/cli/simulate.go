package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// simulateOpts holds the command-line flags for the simulate command.
type simulateOpts struct {
	target  string
	resizes []string
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOpts{}

	cmd := &cobra.Command{
		Use:   "simulate SCENE",
		Short: "Apply a sequence of resizes and print the tree after each",
		Long: `Simulate loads a scene, prints its initial layout, then resizes the
target widget (the root by default) once per --resize flag, printing the
tree after every step.`,
		Example: `  anchor simulate dialog.toml --resize 600x400 --resize 300x200
  anchor simulate dialog.toml --target content --resize 200x100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "widget to resize (default: root)")
	cmd.Flags().StringArrayVarP(&opts.resizes, "resize", "r", nil, "new size as WIDTHxHEIGHT (repeatable)")

	return cmd
}

func runSimulate(cmd *cobra.Command, path string, opts *simulateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	type size struct{ w, h int }
	sizes := make([]size, 0, len(opts.resizes))
	for _, r := range opts.resizes {
		w, h, err := parseSize(r)
		if err != nil {
			return err
		}
		sizes = append(sizes, size{w, h})
	}

	s, err := loadScene(ctx, path)
	if err != nil {
		return err
	}
	target, err := lookupWidget(s, opts.target)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, styleTitle.Render("initial"))
	fmt.Fprint(out, renderTree(s.Root))

	for i, sz := range sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("resizing", "widget", target.String(), "width", sz.w, "height", sz.h)
		target.SetSize(sz.w, sz.h)

		fmt.Fprintln(out)
		fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("step %d: %s → %d×%d", i+1, target.String(), sz.w, sz.h)))
		fmt.Fprint(out, renderTree(s.Root))
	}

	logger.Infof("Applied %d resize(s)", len(sizes))
	return nil
}
