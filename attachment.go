package anchor

import (
	"slices"

	"github.com/grindlemire/go-anchor/internal/debug"
)

var (
	_ InsetTracker = (*Attachment)(nil)
	_ Listener     = (*selfObserver)(nil)
)

// Attachment is the inset-tracking positioner. It lives in its widget's
// positioner slot and plays two roles:
//
//   - it observes its own widget, recapturing the right and bottom distances
//     whenever the widget is placed or reparented;
//   - when its widget moves or resizes, it re-resolves every direct child
//     that carries an InsetTracker, which recursively continues the cascade
//     through those children.
//
// Only the right and bottom distances are recaptured and read during
// resolution. The top and left flags select between stretching and
// translating.
type Attachment struct {
	widget      *Widget
	constraints Constraints
	observer    *selfObserver
	released    bool
}

// selfObserver is the attachment's listener on its own widget.
type selfObserver struct {
	a *Attachment
}

func (o *selfObserver) MovedOrResized(w *Widget, moved, resized bool) {
	o.a.cascade()
}

func (o *selfObserver) ParentChanged(w *Widget) {
	o.a.Recapture()
}

// Attach ensures w carries an Attachment and returns it. Attaching twice
// returns the existing attachment unchanged. If the slot is already held by
// a different kind of positioner, Attach returns nil.
//
// A new attachment in fit mode anchors all four edges and, when the widget
// has a parent, places the widget over the parent's whole area. Otherwise
// every anchor starts disabled and the current distances are recaptured.
func Attach(w *Widget, fitToParent bool) *Attachment {
	if w == nil {
		return nil
	}
	if w.positioner == nil {
		a := &Attachment{widget: w}
		a.observer = &selfObserver{a: a}
		a.constraints.SetFitToParent(fitToParent)

		w.AddListener(a.observer)
		w.SetPositioner(a)
		debug.Log("attach %s fit=%t", w, fitToParent)

		if fitToParent && w.parent != nil {
			a.ApplyBounds(w.parent.bounds.Local())
		} else {
			a.Recapture()
		}
	}
	a, _ := w.positioner.(*Attachment)
	return a
}

// AttachmentOf returns w's Attachment, or nil if it has none.
func AttachmentOf(w *Widget) *Attachment {
	if w == nil {
		return nil
	}
	a, _ := w.positioner.(*Attachment)
	return a
}

// Detach removes w's Attachment from its positioner slot. Returns false if
// the widget had no attachment.
func Detach(w *Widget) bool {
	if AttachmentOf(w) == nil {
		return false
	}
	w.SetPositioner(nil)
	return true
}

// Widget returns the widget this attachment positions.
func (a *Attachment) Widget() *Widget {
	return a.widget
}

// ApplyBounds commits r as the widget's bounds, which cascades to attached
// children when the bounds change, and then recaptures the right and bottom
// distances. Every externally driven move therefore redefines the anchor
// baseline.
func (a *Attachment) ApplyBounds(r Rect) {
	a.widget.SetBounds(r)
	a.Recapture()
}

// Release disconnects the attachment from its widget's events. It is called
// by the widget when the positioner slot is emptied or replaced.
func (a *Attachment) Release() {
	if a.released {
		return
	}
	a.released = true
	a.widget.RemoveListener(a.observer)
	debug.Log("detach %s", a.widget)
}

// Released reports whether the attachment has been removed from its widget.
func (a *Attachment) Released() bool {
	return a.released
}

// Recapture stores the current right and bottom distances to the parent.
// Without a parent it does nothing.
func (a *Attachment) Recapture() {
	parent := a.widget.parent
	if parent == nil {
		return
	}
	a.constraints.SetDistance(EdgeRight, parent.Width()-a.widget.Right())
	a.constraints.SetDistance(EdgeBottom, parent.Height()-a.widget.Bottom())
}

// FitToParent switches fit mode on or off. Turning it on anchors every edge
// at zero distance; turning it off disables every anchor. The widget's
// bounds are not touched.
func (a *Attachment) FitToParent(fit bool) {
	a.constraints.SetFitToParent(fit)
}

// Constraints returns a copy of the stored distances and flags.
func (a *Attachment) Constraints() Constraints {
	return a.constraints
}

// Distance returns the stored distance for edge.
func (a *Attachment) Distance(edge Edge) int {
	return a.constraints.Distance(edge)
}

// SetDistance overrides the stored distance for edge. The next placement of
// the widget recaptures right and bottom again.
func (a *Attachment) SetDistance(edge Edge, v int) {
	a.constraints.SetDistance(edge, v)
}

// IsAnchored reports whether edge is anchored.
func (a *Attachment) IsAnchored(edge Edge) bool {
	return a.constraints.IsAnchored(edge)
}

// SetAnchored enables or disables the anchor for edge.
func (a *Attachment) SetAnchored(edge Edge, on bool) {
	a.constraints.SetAnchored(edge, on)
}

// cascade re-resolves every direct child that carries an InsetTracker
// against this widget's new bounds. Children commit through their own
// ApplyBounds, so a child whose bounds change cascades to its own children
// before the next sibling is visited. Children without a tracker are
// skipped.
func (a *Attachment) cascade() {
	w := a.widget
	parent := w.bounds

	for _, child := range slices.Clone(w.children) {
		t := TrackerOf(child)
		if t == nil {
			continue
		}
		next := Resolve(child.bounds, parent, t.Constraints())
		debug.Log("cascade %s -> %s: %+v -> %+v", w, child, child.bounds, next)
		t.ApplyBounds(next)
	}
}
