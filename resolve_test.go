package anchor

import "testing"

func anchored(right, bottom int, edges ...Edge) Constraints {
	var c Constraints
	c.SetDistance(EdgeRight, right)
	c.SetDistance(EdgeBottom, bottom)
	for _, e := range edges {
		c.SetAnchored(e, true)
	}
	return c
}

func TestResolve(t *testing.T) {
	type tc struct {
		current     Rect
		parent      Rect
		constraints Constraints
		expected    Rect
	}

	tests := map[string]tc{
		"nothing anchored": {
			current:     NewRect(50, 50, 100, 40),
			parent:      NewRect(0, 0, 500, 400),
			constraints: anchored(250, 210),
			expected:    NewRect(50, 50, 100, 40),
		},
		"right and bottom translate": {
			current:     NewRect(50, 50, 100, 40),
			parent:      NewRect(0, 0, 500, 300),
			constraints: anchored(250, 210, EdgeRight, EdgeBottom),
			expected:    NewRect(150, 50, 100, 40),
		},
		"all four stretch": {
			current:     NewRect(10, 20, 380, 260),
			parent:      NewRect(0, 0, 500, 400),
			constraints: anchored(10, 20, EdgeTop, EdgeRight, EdgeBottom, EdgeLeft),
			expected:    NewRect(10, 20, 480, 360),
		},
		"stretch horizontally translate vertically": {
			current:     NewRect(10, 250, 380, 40),
			parent:      NewRect(0, 0, 600, 500),
			constraints: anchored(10, 10, EdgeLeft, EdgeRight, EdgeBottom),
			expected:    NewRect(10, 450, 580, 40),
		},
		"left only has no effect": {
			current:     NewRect(10, 10, 50, 50),
			parent:      NewRect(0, 0, 900, 900),
			constraints: anchored(0, 0, EdgeLeft),
			expected:    NewRect(10, 10, 50, 50),
		},
		"top only has no effect": {
			current:     NewRect(10, 10, 50, 50),
			parent:      NewRect(0, 0, 900, 900),
			constraints: anchored(0, 0, EdgeTop),
			expected:    NewRect(10, 10, 50, 50),
		},
		"parent position is ignored": {
			current:     NewRect(50, 50, 100, 40),
			parent:      NewRect(1000, 2000, 500, 300),
			constraints: anchored(250, 210, EdgeRight, EdgeBottom),
			expected:    NewRect(150, 50, 100, 40),
		},
		"negative distance extends past parent": {
			current:     NewRect(0, 0, 100, 100),
			parent:      NewRect(0, 0, 200, 200),
			constraints: anchored(-20, -30, EdgeRight, EdgeBottom),
			expected:    NewRect(120, 130, 100, 100),
		},
		"aggressive inset yields negative width": {
			current:     NewRect(100, 100, 50, 50),
			parent:      NewRect(0, 0, 120, 120),
			constraints: anchored(40, 40, EdgeTop, EdgeRight, EdgeBottom, EdgeLeft),
			expected:    NewRect(100, 100, -20, -20),
		},
		"zero-size parent": {
			current:     NewRect(0, 0, 10, 10),
			parent:      NewRect(0, 0, 0, 0),
			constraints: anchored(0, 0, EdgeRight, EdgeBottom),
			expected:    NewRect(-10, -10, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Resolve(tt.current, tt.parent, tt.constraints)
			if got != tt.expected {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolve_AxesIndependent(t *testing.T) {
	current := NewRect(10, 10, 30, 30)
	parent := NewRect(0, 0, 200, 100)

	horizontal := Resolve(current, parent, anchored(5, 0, EdgeRight))
	vertical := Resolve(current, parent, anchored(0, 5, EdgeBottom))
	both := Resolve(current, parent, anchored(5, 5, EdgeRight, EdgeBottom))

	if both.X != horizontal.X || both.Width != horizontal.Width {
		t.Errorf("horizontal result differs when vertical is also anchored: %+v vs %+v", both, horizontal)
	}
	if both.Y != vertical.Y || both.Height != vertical.Height {
		t.Errorf("vertical result differs when horizontal is also anchored: %+v vs %+v", both, vertical)
	}
}
