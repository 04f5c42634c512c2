package anchor

import "fmt"

// Widget is a node in the host widget tree. Its bounds are expressed in the
// parent's local coordinates. A parent owns its children: destroying the
// parent destroys the whole subtree.
type Widget struct {
	name string

	// Tree structure (single source of truth)
	bounds   Rect
	parent   *Widget
	children []*Widget

	// At most one positioning strategy per widget.
	positioner Positioner

	listeners []Listener
	destroyed bool
}

// Option configures a Widget.
type Option func(*Widget)

// WithName sets the widget's display name.
func WithName(name string) Option {
	return func(w *Widget) {
		w.name = name
	}
}

// WithBounds sets the widget's initial bounds without notifying anyone.
func WithBounds(x, y, width, height int) Option {
	return func(w *Widget) {
		w.bounds = NewRect(x, y, width, height)
	}
}

// WithRect sets the widget's initial bounds from a Rect.
func WithRect(r Rect) Option {
	return func(w *Widget) {
		w.bounds = r
	}
}

// New creates a new Widget with the given options.
// By default a Widget is unnamed, parentless and has zero bounds.
func New(opts ...Option) *Widget {
	w := &Widget{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name returns the widget's display name.
func (w *Widget) Name() string {
	return w.name
}

// SetName updates the widget's display name.
func (w *Widget) SetName(name string) {
	w.name = name
}

// String returns the name, or a pointer-based label for unnamed widgets.
func (w *Widget) String() string {
	if w == nil {
		return "<nil>"
	}
	if w.name != "" {
		return w.name
	}
	return fmt.Sprintf("widget@%p", w)
}

// Bounds returns the widget's rectangle in parent-local coordinates.
func (w *Widget) Bounds() Rect {
	return w.bounds
}

// Width returns the current width.
func (w *Widget) Width() int {
	return w.bounds.Width
}

// Height returns the current height.
func (w *Widget) Height() int {
	return w.bounds.Height
}

// Right returns the x-coordinate of the right edge in parent coordinates.
func (w *Widget) Right() int {
	return w.bounds.Right()
}

// Bottom returns the y-coordinate of the bottom edge in parent coordinates.
func (w *Widget) Bottom() int {
	return w.bounds.Bottom()
}

// SetBounds commits r as the widget's rectangle. Listeners are told about the
// move or resize only when the rectangle actually changed.
//
// SetBounds bypasses the positioner; layout code should call Place instead.
func (w *Widget) SetBounds(r Rect) {
	old := w.bounds
	if old == r {
		return
	}
	w.bounds = r

	moved := old.X != r.X || old.Y != r.Y
	resized := old.Width != r.Width || old.Height != r.Height
	w.notifyMovedOrResized(moved, resized)
}

// Place is the normal layout path for moving or resizing the widget. If a
// positioner is installed it decides how the bounds are committed; otherwise
// the bounds are set directly.
func (w *Widget) Place(r Rect) {
	if w.positioner != nil {
		w.positioner.ApplyBounds(r)
		return
	}
	w.SetBounds(r)
}

// SetSize resizes the widget through Place, keeping its position.
func (w *Widget) SetSize(width, height int) {
	w.Place(w.bounds.WithSize(width, height))
}

// SetPosition moves the widget through Place, keeping its size.
func (w *Widget) SetPosition(x, y int) {
	w.Place(w.bounds.WithPosition(x, y))
}

// Positioner returns the positioner occupying this widget's slot, or nil.
func (w *Widget) Positioner() Positioner {
	return w.positioner
}

// SetPositioner installs p in the widget's positioning slot. The previous
// positioner, if any, is released. Pass nil to empty the slot.
func (w *Widget) SetPositioner(p Positioner) {
	old := w.positioner
	if old == p {
		return
	}
	w.positioner = p
	if old != nil {
		old.Release()
	}
}

// Destroy tears down the widget and its subtree: children are destroyed
// first, then the positioner is released, listeners are dropped and the
// widget is removed from its parent.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true

	for _, child := range append([]*Widget(nil), w.children...) {
		child.Destroy()
	}

	w.SetPositioner(nil)
	w.listeners = nil
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
}

// IsDestroyed reports whether Destroy has been called.
func (w *Widget) IsDestroyed() bool {
	return w.destroyed
}
