package inspector

import (
	"errors"
	"testing"

	anchor "github.com/grindlemire/go-anchor"
)

type foreignPositioner struct{}

func (foreignPositioner) ApplyBounds(anchor.Rect) {}
func (foreignPositioner) Release()                {}

func newScene() (*anchor.Widget, *anchor.Widget) {
	parent := anchor.New(anchor.WithName("window"), anchor.WithBounds(0, 0, 400, 300))
	child := anchor.New(anchor.WithName("ok"), anchor.WithBounds(50, 50, 100, 40))
	parent.AddChild(child)
	return parent, child
}

func TestSnapshot_NoSelection(t *testing.T) {
	b := New()
	if s := b.Snapshot(); s.Valid {
		t.Errorf("Snapshot() without selection = %+v, want invalid", s)
	}
}

func TestSnapshot_UntrackedWidget(t *testing.T) {
	_, child := newScene()
	b := New()
	b.Select(child)

	s := b.Snapshot()

	if !s.Valid || s.Name != "ok" || s.ParentName != "window" {
		t.Errorf("Snapshot() identity = %+v", s)
	}
	if s.Width != 100 || s.Height != 40 {
		t.Errorf("size = %dx%d, want 100x40", s.Width, s.Height)
	}
	if got, want := s.ToParent, anchor.EdgeTRBL(50, 250, 210, 50); got != want {
		t.Errorf("ToParent = %+v, want %+v", got, want)
	}
	if s.Tracked {
		t.Error("widget without attachment should not be tracked")
	}
}

func TestSnapshot_RootWidget(t *testing.T) {
	root := anchor.New(anchor.WithBounds(5, 6, 10, 10))
	b := New()
	b.Select(root)

	s := b.Snapshot()

	if s.ParentName != "" {
		t.Errorf("ParentName = %q, want empty", s.ParentName)
	}
	if got, want := s.ToParent, anchor.EdgeTRBL(6, 0, 0, 5); got != want {
		t.Errorf("ToParent = %+v, want %+v", got, want)
	}
}

func TestSetAnchored_AttachesOnDemand(t *testing.T) {
	parent, child := newScene()
	anchor.Attach(parent, false)
	b := New()
	b.Select(child)

	if err := b.SetAnchored(anchor.EdgeRight, true); err != nil {
		t.Fatalf("SetAnchored() error: %v", err)
	}
	if err := b.SetAnchored(anchor.EdgeBottom, true); err != nil {
		t.Fatalf("SetAnchored() error: %v", err)
	}

	s := b.Snapshot()
	if !s.Tracked {
		t.Fatal("SetAnchored should attach a tracker")
	}
	if s.Anchored != [4]bool{false, true, true, false} {
		t.Errorf("Anchored = %v, want [false true true false]", s.Anchored)
	}
	if s.Stored.Right != 250 || s.Stored.Bottom != 210 {
		t.Errorf("Stored = %+v, want right 250 bottom 210", s.Stored)
	}

	parent.Place(anchor.NewRect(0, 0, 500, 300))
	if got, want := child.Bounds(), anchor.NewRect(150, 50, 100, 40); got != want {
		t.Errorf("child after parent resize = %+v, want %+v", got, want)
	}
}

func TestSetToParent(t *testing.T) {
	parent, child := newScene()
	anchor.Attach(parent, false)
	b := New()
	b.Select(child)
	if err := b.SetAnchored(anchor.EdgeRight, true); err != nil {
		t.Fatal(err)
	}

	if err := b.SetToParent(anchor.EdgeTRBL(10, 20, 30, 40)); err != nil {
		t.Fatalf("SetToParent() error: %v", err)
	}

	if got, want := child.Bounds(), anchor.NewRect(40, 10, 340, 260); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	s := b.Snapshot()
	if got, want := s.ToParent, anchor.EdgeTRBL(10, 20, 30, 40); got != want {
		t.Errorf("ToParent = %+v, want %+v", got, want)
	}
	if s.Stored.Right != 20 || s.Stored.Bottom != 30 {
		t.Errorf("edit should redefine the baseline, Stored = %+v", s.Stored)
	}
}

func TestSetSize(t *testing.T) {
	_, child := newScene()
	b := New()
	b.Select(child)

	if err := b.SetSize(120, 60); err != nil {
		t.Fatalf("SetSize() error: %v", err)
	}
	if got, want := child.Bounds(), anchor.NewRect(50, 50, 120, 60); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestFitToParent(t *testing.T) {
	parent, child := newScene()
	anchor.Attach(parent, false)
	b := New()
	b.Select(child)

	if err := b.FitToParent(); err != nil {
		t.Fatalf("FitToParent() error: %v", err)
	}
	if got, want := child.Bounds(), anchor.NewRect(0, 0, 400, 300); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	parent.Place(anchor.NewRect(0, 0, 640, 480))
	if got, want := child.Bounds(), anchor.NewRect(0, 0, 640, 480); got != want {
		t.Errorf("after parent resize Bounds() = %+v, want %+v", got, want)
	}
}

func TestEdits_Errors(t *testing.T) {
	type tc struct {
		selected func() *anchor.Widget
		edit     func(*BoxModel) error
		want     error
	}

	orphan := func() *anchor.Widget { return anchor.New() }
	foreign := func() *anchor.Widget {
		w := anchor.New()
		w.SetPositioner(foreignPositioner{})
		return w
	}
	none := func() *anchor.Widget { return nil }

	tests := map[string]tc{
		"size without selection": {
			selected: none,
			edit:     func(b *BoxModel) error { return b.SetSize(1, 1) },
			want:     ErrNoSelection,
		},
		"to-parent without selection": {
			selected: none,
			edit:     func(b *BoxModel) error { return b.SetToParent(anchor.Edges{}) },
			want:     ErrNoSelection,
		},
		"to-parent without parent": {
			selected: orphan,
			edit:     func(b *BoxModel) error { return b.SetToParent(anchor.Edges{}) },
			want:     ErrNoParent,
		},
		"anchor without selection": {
			selected: none,
			edit:     func(b *BoxModel) error { return b.SetAnchored(anchor.EdgeTop, true) },
			want:     ErrNoSelection,
		},
		"anchor on foreign positioner": {
			selected: foreign,
			edit:     func(b *BoxModel) error { return b.SetAnchored(anchor.EdgeTop, true) },
			want:     ErrNotTrackable,
		},
		"fit on foreign positioner": {
			selected: foreign,
			edit:     func(b *BoxModel) error { return b.FitToParent() },
			want:     ErrNotTrackable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := New()
			b.Select(tt.selected())

			if err := tt.edit(b); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
