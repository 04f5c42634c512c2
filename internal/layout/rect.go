package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
// Negative widths and heights are representable and never normalized.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Local returns a Rect of the same size positioned at the origin.
// This is the area a parent offers to its children.
func (r Rect) Local() Rect {
	return Rect{Width: r.Width, Height: r.Height}
}

// WithPosition returns a copy of r moved so its top-left corner is (x, y).
func (r Rect) WithPosition(x, y int) Rect {
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// WithSize returns a copy of r with the given dimensions and the same origin.
func (r Rect) WithSize(width, height int) Rect {
	return Rect{X: r.X, Y: r.Y, Width: width, Height: height}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// ResizeRightTo keeps the left edge fixed and changes the width so that the
// right edge lands at right. The result may have a negative width.
func (r Rect) ResizeRightTo(right int) Rect {
	r.Width = right - r.X
	return r
}

// ResizeBottomTo keeps the top edge fixed and changes the height so that the
// bottom edge lands at bottom. The result may have a negative height.
func (r Rect) ResizeBottomTo(bottom int) Rect {
	r.Height = bottom - r.Y
	return r
}

// TranslateRightTo keeps the width and moves the rectangle horizontally so
// that the right edge lands at right.
func (r Rect) TranslateRightTo(right int) Rect {
	r.X = right - r.Width
	return r
}

// TranslateBottomTo keeps the height and moves the rectangle vertically so
// that the bottom edge lands at bottom.
func (r Rect) TranslateBottomTo(bottom int) Rect {
	r.Y = bottom - r.Height
	return r
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
