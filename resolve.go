package anchor

// Resolve computes a child's new rectangle from its current rectangle, its
// parent's rectangle and its constraints. The axes are independent.
//
// Horizontally, nothing happens unless the right edge is anchored. The right
// edge then moves to parent.Width minus the right distance. If the left edge
// is anchored as well the left edge stays put and the width changes
// (stretch); otherwise the whole rectangle is translated (pinned to the
// right). A left-only anchor has no effect. The vertical axis is the same
// with bottom, top and parent.Height.
//
// Only the parent's size is read: child rectangles are parent-local.
func Resolve(current, parent Rect, c Constraints) Rect {
	next := current

	if c.IsAnchored(EdgeRight) {
		right := parent.Width - c.Distance(EdgeRight)
		if c.IsAnchored(EdgeLeft) {
			next = next.ResizeRightTo(right)
		} else {
			next = next.TranslateRightTo(right)
		}
	}

	if c.IsAnchored(EdgeBottom) {
		bottom := parent.Height - c.Distance(EdgeBottom)
		if c.IsAnchored(EdgeTop) {
			next = next.ResizeBottomTo(bottom)
		} else {
			next = next.TranslateBottomTo(bottom)
		}
	}

	return next
}
