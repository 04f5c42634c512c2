// Package anchor keeps widget bounds synchronized with their parents.
//
// A widget opts in by attaching an [Attachment] to its positioner slot. The
// attachment records the distance from each of the widget's edges to the
// matching parent edge and a per-edge anchored flag. Whenever the widget is
// placed through the normal layout path the distances are recaptured, and
// whenever the widget itself moves or resizes its attachment re-resolves every
// attached child, which in turn cascades to the grandchildren.
//
// All work is synchronous and runs on the goroutine that owns the tree.
package anchor
