// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package anchor

import "github.com/grindlemire/go-anchor/internal/layout"

// Rect represents a rectangle in parent-local coordinates.
type Rect = layout.Rect

// Edges represents values for four sides (top, right, bottom, left).
type Edges = layout.Edges

// Edge identifies one side of a rectangle.
type Edge = layout.Edge

const (
	EdgeTop    = layout.EdgeTop
	EdgeRight  = layout.EdgeRight
	EdgeBottom = layout.EdgeBottom
	EdgeLeft   = layout.EdgeLeft
)

// AllEdges lists every edge in CSS order: top, right, bottom, left.
var AllEdges = layout.AllEdges

// ErrUnknownEdge is returned by ParseEdge for unrecognized names.
var ErrUnknownEdge = layout.ErrUnknownEdge

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// ParseEdge converts an edge name ("top", "right", "bottom", "left") into an Edge.
func ParseEdge(s string) (Edge, error) {
	return layout.ParseEdge(s)
}
