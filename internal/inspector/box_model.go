// Package inspector models the box-model panel of a widget inspector. It reads
// a selected widget's geometry relative to its parent and edits it through
// the widget's normal layout path, and it is the one external writer of the
// anchoring constraints.
package inspector

import (
	"errors"

	anchor "github.com/grindlemire/go-anchor"
)

var (
	// ErrNoSelection is returned by edits when no widget is selected.
	ErrNoSelection = errors.New("inspector: no widget selected")

	// ErrNoParent is returned by edits that need the parent's size.
	ErrNoParent = errors.New("inspector: selected widget has no parent")

	// ErrNotTrackable is returned when the selected widget's positioner slot
	// holds something other than an inset-tracking attachment.
	ErrNotTrackable = errors.New("inspector: widget positioner does not track insets")
)

// Snapshot is what the box-model panel displays for the selected widget.
type Snapshot struct {
	Valid bool

	Name       string
	ParentName string
	Width      int
	Height     int

	// ToParent holds the live gap between each widget edge and the matching
	// parent edge.
	ToParent anchor.Edges

	// Tracked is true when the widget carries an inset tracker; Anchored
	// and Stored are only meaningful then.
	Tracked  bool
	Anchored [4]bool
	Stored   anchor.Edges
}

// BoxModel holds the current selection.
type BoxModel struct {
	selected *anchor.Widget
}

// New creates a BoxModel with nothing selected.
func New() *BoxModel {
	return &BoxModel{}
}

// Select makes w the inspected widget. Pass nil to clear the selection.
func (b *BoxModel) Select(w *anchor.Widget) {
	b.selected = w
}

// Selected returns the inspected widget, or nil.
func (b *BoxModel) Selected() *anchor.Widget {
	return b.selected
}

// Snapshot reads the selected widget. Without a selection it returns a zero
// Snapshot with Valid unset.
func (b *BoxModel) Snapshot() Snapshot {
	w := b.selected
	if w == nil {
		return Snapshot{}
	}

	s := Snapshot{
		Valid:  true,
		Name:   w.String(),
		Width:  w.Width(),
		Height: w.Height(),
	}

	bounds := w.Bounds()
	s.ToParent.Top = bounds.Y
	s.ToParent.Left = bounds.X
	if p := w.Parent(); p != nil {
		s.ParentName = p.String()
		s.ToParent.Right = p.Width() - bounds.Width - bounds.X
		s.ToParent.Bottom = p.Height() - bounds.Height - bounds.Y
	}

	if t := anchor.TrackerOf(w); t != nil {
		s.Tracked = true
		c := t.Constraints()
		for i, e := range anchor.AllEdges {
			s.Anchored[i] = c.IsAnchored(e)
		}
		s.Stored = c.Distances()
	}
	return s
}

// SetSize resizes the selected widget through its layout path.
func (b *BoxModel) SetSize(width, height int) error {
	if b.selected == nil {
		return ErrNoSelection
	}
	b.selected.SetSize(width, height)
	return nil
}

// SetToParent places the selected widget so that each edge sits at the given
// distance from the matching parent edge.
func (b *BoxModel) SetToParent(e anchor.Edges) error {
	w := b.selected
	if w == nil {
		return ErrNoSelection
	}
	p := w.Parent()
	if p == nil {
		return ErrNoParent
	}
	w.Place(anchor.NewRect(
		e.Left,
		e.Top,
		p.Width()-e.Right-e.Left,
		p.Height()-e.Bottom-e.Top,
	))
	return nil
}

// SetAnchored toggles the anchor for edge, attaching an inset tracker to the
// selected widget first if it has none.
func (b *BoxModel) SetAnchored(edge anchor.Edge, on bool) error {
	t, err := b.tracker()
	if err != nil {
		return err
	}
	t.SetAnchored(edge, on)
	return nil
}

// FitToParent anchors every edge of the selected widget and stretches it over
// its parent.
func (b *BoxModel) FitToParent() error {
	if _, err := b.tracker(); err != nil {
		return err
	}
	a := anchor.AttachmentOf(b.selected)
	if a == nil {
		return ErrNotTrackable
	}
	a.FitToParent(true)
	if p := b.selected.Parent(); p != nil {
		b.selected.Place(p.Bounds().Local())
	}
	return nil
}

func (b *BoxModel) tracker() (anchor.InsetTracker, error) {
	if b.selected == nil {
		return nil, ErrNoSelection
	}
	anchor.Attach(b.selected, false)
	t := anchor.TrackerOf(b.selected)
	if t == nil {
		return nil, ErrNotTrackable
	}
	return t, nil
}
