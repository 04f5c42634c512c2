package anchor

import (
	"slices"

	"github.com/grindlemire/go-anchor/internal/debug"
)

// AddChild appends children to this Widget. A child that already has a
// parent is moved. Every reparented subtree is notified through
// ParentChanged so attachments can recapture against the new parent.
//
// Adding the widget itself or one of its ancestors is refused, which keeps
// the tree acyclic.
func (w *Widget) AddChild(children ...*Widget) {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child == w || child.IsAncestorOf(w) {
			debug.Log("AddChild: refusing to add %s under %s: would create a cycle", child, w)
			continue
		}
		if child.parent == w {
			continue
		}
		if child.parent != nil {
			child.parent.detachChild(child)
		}
		child.parent = w
		w.children = append(w.children, child)
		child.notifyParentChanged()
	}
}

// RemoveChild removes a child from this Widget, preserving sibling order.
// Returns true if the child was found and removed.
func (w *Widget) RemoveChild(child *Widget) bool {
	if !w.detachChild(child) {
		return false
	}
	child.notifyParentChanged()
	return true
}

// RemoveAllChildren removes all children from this Widget.
func (w *Widget) RemoveAllChildren() {
	children := w.children
	w.children = nil
	for _, child := range children {
		child.parent = nil
		child.notifyParentChanged()
	}
}

func (w *Widget) detachChild(child *Widget) bool {
	i := slices.Index(w.children, child)
	if i < 0 {
		return false
	}
	w.children = slices.Delete(w.children, i, i+1)
	child.parent = nil
	return true
}

// Children returns the child widgets.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Parent returns the parent widget, or nil if this is a root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// IsAncestorOf reports whether w appears on the parent chain of other.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

// Walk calls fn for w and every descendant, parents before children.
func (w *Widget) Walk(fn func(*Widget)) {
	fn(w)
	for _, child := range w.children {
		child.Walk(fn)
	}
}

// Find returns the first widget named name in the subtree rooted at w,
// searching depth-first, or nil.
func (w *Widget) Find(name string) *Widget {
	if w.name == name {
		return w
	}
	for _, child := range w.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
