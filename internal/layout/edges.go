package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEdge is returned by ParseEdge for names that do not denote an edge.
var ErrUnknownEdge = errors.New("unknown edge")

// Edge identifies one side of a rectangle.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// AllEdges lists every edge in CSS order: top, right, bottom, left.
var AllEdges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

var edgeNames = [4]string{"top", "right", "bottom", "left"}

// Valid reports whether e is one of the four edges.
func (e Edge) Valid() bool {
	return e <= EdgeLeft
}

// String returns the lowercase edge name.
func (e Edge) String() string {
	if !e.Valid() {
		return fmt.Sprintf("edge(%d)", uint8(e))
	}
	return edgeNames[e]
}

// ParseEdge converts a case-insensitive edge name into an Edge.
func ParseEdge(s string) (Edge, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range edgeNames {
		if n == name {
			return Edge(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEdge, s)
}

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Get returns the value stored for edge. Invalid edges read as zero.
func (e Edges) Get(edge Edge) int {
	switch edge {
	case EdgeTop:
		return e.Top
	case EdgeRight:
		return e.Right
	case EdgeBottom:
		return e.Bottom
	case EdgeLeft:
		return e.Left
	}
	return 0
}

// With returns a copy of e with edge set to v. Invalid edges leave e unchanged.
func (e Edges) With(edge Edge, v int) Edges {
	switch edge {
	case EdgeTop:
		e.Top = v
	case EdgeRight:
		e.Right = v
	case EdgeBottom:
		e.Bottom = v
	case EdgeLeft:
		e.Left = v
	}
	return e
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
