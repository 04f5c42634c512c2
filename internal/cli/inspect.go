package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-anchor/internal/inspector"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	size     string
	toParent string
	anchors  []string
	fit      bool
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect SCENE NAME",
		Short: "Show the box model of one widget",
		Long: `Inspect prints the distance from each edge of a widget to its parent,
together with the anchoring state stored for that edge.

Edits are applied in this order before printing: --fit, --anchor,
--to-parent, --size. Edits go through the widget's normal layout path, so
they cascade to the widget's children.`,
		Example: `  anchor inspect dialog.toml ok
  anchor inspect dialog.toml ok --anchor left=on --to-parent 10,10,10,10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "resize the widget to WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.toParent, "to-parent", "", "place the widget at TOP,RIGHT,BOTTOM,LEFT from its parent")
	cmd.Flags().StringArrayVar(&opts.anchors, "anchor", nil, "toggle an edge anchor as EDGE=on|off (repeatable)")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "anchor every edge and stretch over the parent")

	return cmd
}

func runInspect(cmd *cobra.Command, path, name string, opts *inspectOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s, err := loadScene(ctx, path)
	if err != nil {
		return err
	}
	w, err := lookupWidget(s, name)
	if err != nil {
		return err
	}

	box := inspector.New()
	box.Select(w)

	if opts.fit {
		if err := box.FitToParent(); err != nil {
			return err
		}
	}
	for _, a := range opts.anchors {
		edge, on, err := parseAnchorToggle(a)
		if err != nil {
			return err
		}
		if err := box.SetAnchored(edge, on); err != nil {
			return err
		}
		logger.Debug("anchor toggled", "edge", edge, "on", on)
	}
	if opts.toParent != "" {
		e, err := parseEdges(opts.toParent)
		if err != nil {
			return err
		}
		if err := box.SetToParent(e); err != nil {
			return err
		}
	}
	if opts.size != "" {
		width, height, err := parseSize(opts.size)
		if err != nil {
			return err
		}
		if err := box.SetSize(width, height); err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), renderBoxModel(box.Snapshot()))
	return nil
}
