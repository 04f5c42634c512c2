package cli

import (
	"strings"
	"testing"

	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/internal/inspector"
)

func TestFormatAnchors(t *testing.T) {
	type tc struct {
		edges []anchor.Edge
		want  string
	}

	tests := map[string]tc{
		"none":         {want: "none"},
		"right bottom": {edges: []anchor.Edge{anchor.EdgeBottom, anchor.EdgeRight}, want: "right,bottom"},
		"all":          {edges: anchor.AllEdges[:], want: "top,right,bottom,left"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var c anchor.Constraints
			for _, e := range tt.edges {
				c.SetAnchored(e, true)
			}
			if got := formatAnchors(c); got != tt.want {
				t.Errorf("formatAnchors() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTree(t *testing.T) {
	root := anchor.New(anchor.WithName("root"), anchor.WithBounds(0, 0, 100, 100))
	a := anchor.New(anchor.WithName("a"), anchor.WithBounds(0, 0, 10, 10))
	b := anchor.New(anchor.WithName("b"), anchor.WithBounds(80, 80, 10, 10))
	nested := anchor.New(anchor.WithName("nested"), anchor.WithBounds(1, 1, 2, 2))
	root.AddChild(a, b)
	a.AddChild(nested)
	anchor.Attach(b, false).SetAnchored(anchor.EdgeRight, true)

	out := renderTree(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("renderTree() lines = %d, want 4:\n%s", len(lines), out)
	}

	for i, want := range []string{"root", "├─ a", "│  └─ nested", "└─ b"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[1], "untracked") {
		t.Errorf("a has no attachment, line = %q", lines[1])
	}
	if !strings.Contains(lines[3], "anchors right") || !strings.Contains(lines[3], "inset r=10 b=10") {
		t.Errorf("b line = %q", lines[3])
	}
}

func TestRenderBoxModel_NoSelection(t *testing.T) {
	if got := renderBoxModel(inspector.Snapshot{}); !strings.Contains(got, "nothing selected") {
		t.Errorf("renderBoxModel(empty) = %q", got)
	}
}
