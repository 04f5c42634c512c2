package anchor

import "slices"

// Listener observes lifecycle events of a single widget.
type Listener interface {
	// MovedOrResized is called after the widget's bounds changed.
	MovedOrResized(w *Widget, moved, resized bool)

	// ParentChanged is called after the widget or one of its ancestors was
	// attached to or removed from a parent.
	ParentChanged(w *Widget)
}

// ListenerFuncs adapts plain functions to the Listener interface.
// Nil fields are ignored.
type ListenerFuncs struct {
	OnMovedOrResized func(w *Widget, moved, resized bool)
	OnParentChanged  func(w *Widget)
}

// MovedOrResized implements Listener.
func (l *ListenerFuncs) MovedOrResized(w *Widget, moved, resized bool) {
	if l.OnMovedOrResized != nil {
		l.OnMovedOrResized(w, moved, resized)
	}
}

// ParentChanged implements Listener.
func (l *ListenerFuncs) ParentChanged(w *Widget) {
	if l.OnParentChanged != nil {
		l.OnParentChanged(w)
	}
}

// AddListener registers l for this widget's events. Adding the same
// listener twice has no effect.
func (w *Widget) AddListener(l Listener) {
	if l == nil || slices.Contains(w.listeners, l) {
		return
	}
	w.listeners = append(w.listeners, l)
}

// RemoveListener unregisters l. Returns true if it was registered.
func (w *Widget) RemoveListener(l Listener) bool {
	i := slices.Index(w.listeners, l)
	if i < 0 {
		return false
	}
	w.listeners = slices.Delete(w.listeners, i, i+1)
	return true
}

// Listeners returns the registered listeners.
func (w *Widget) Listeners() []Listener {
	return w.listeners
}

// notifyMovedOrResized iterates a snapshot so listeners may unregister
// themselves while being notified.
func (w *Widget) notifyMovedOrResized(moved, resized bool) {
	for _, l := range slices.Clone(w.listeners) {
		l.MovedOrResized(w, moved, resized)
	}
}

// notifyParentChanged tells w and every descendant that the parent chain
// changed.
func (w *Widget) notifyParentChanged() {
	for _, l := range slices.Clone(w.listeners) {
		l.ParentChanged(w)
	}
	for _, child := range w.children {
		child.notifyParentChanged()
	}
}
