package anchor

// Constraints stores, per edge, the signed distance to the matching parent
// edge and whether that edge is anchored. The zero value has every edge
// unanchored with zero distance.
//
// No validation is performed beyond edge identity: setters ignore invalid
// edges, getters report zero and false for them. Distances may be negative
// (the widget extends past the parent edge) and are never clamped.
type Constraints struct {
	distances Edges
	anchored  [4]bool
}

// FitConstraints returns constraints that anchor every edge at zero distance.
func FitConstraints() Constraints {
	var c Constraints
	c.SetFitToParent(true)
	return c
}

// Distance returns the stored distance for edge.
func (c Constraints) Distance(edge Edge) int {
	return c.distances.Get(edge)
}

// SetDistance stores v as the distance for edge.
func (c *Constraints) SetDistance(edge Edge, v int) {
	c.distances = c.distances.With(edge, v)
}

// Distances returns all four stored distances.
func (c Constraints) Distances() Edges {
	return c.distances
}

// IsAnchored reports whether edge is anchored.
func (c Constraints) IsAnchored(edge Edge) bool {
	if !edge.Valid() {
		return false
	}
	return c.anchored[edge]
}

// SetAnchored enables or disables the anchor for edge.
func (c *Constraints) SetAnchored(edge Edge, on bool) {
	if !edge.Valid() {
		return
	}
	c.anchored[edge] = on
}

// AnchoredEdges returns the anchored edges in top, right, bottom, left order.
func (c Constraints) AnchoredEdges() []Edge {
	var edges []Edge
	for _, e := range AllEdges {
		if c.anchored[e] {
			edges = append(edges, e)
		}
	}
	return edges
}

// SetFitToParent anchors all four edges at zero distance when fit is true.
// When fit is false every anchor is disabled and the distances are kept.
func (c *Constraints) SetFitToParent(fit bool) {
	for _, e := range AllEdges {
		c.anchored[e] = fit
	}
	if fit {
		c.distances = Edges{}
	}
}
