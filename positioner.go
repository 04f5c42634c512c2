package anchor

// Positioner is a positioning strategy that owns how a widget's bounds are
// committed. A widget holds at most one Positioner in its slot.
type Positioner interface {
	// ApplyBounds is called by Widget.Place when layout code wants to move or
	// resize the widget.
	ApplyBounds(r Rect)

	// Release is called when the positioner is removed from its slot, either
	// replaced, detached or destroyed along with the widget.
	Release()
}

// InsetTracker is the capability exposed by positioners that keep per-edge
// distances to the parent. The cascade only updates children whose
// positioner provides it, and inspectors use it to read and edit constraints.
type InsetTracker interface {
	Positioner

	// Constraints returns a copy of the stored distances and anchor flags.
	Constraints() Constraints

	Distance(edge Edge) int
	SetDistance(edge Edge, v int)
	IsAnchored(edge Edge) bool
	SetAnchored(edge Edge, on bool)
}

// TrackerOf returns the widget's inset-tracking positioner, or nil if the
// slot is empty or holds a positioner without that capability.
func TrackerOf(w *Widget) InsetTracker {
	if w == nil {
		return nil
	}
	t, _ := w.positioner.(InsetTracker)
	return t
}
