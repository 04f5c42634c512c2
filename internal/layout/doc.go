// Package layout holds the geometry primitives used by the anchoring engine.
//
// Rectangles are expressed in parent-local coordinates: a child's X and Y are
// offsets from its parent's top-left corner, so a parent can be moved without
// touching any descendant. Types are re-exported through the root anchor
// package for public consumption.
package layout
