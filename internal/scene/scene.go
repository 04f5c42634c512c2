// Package scene loads widget trees described in TOML and wires up their
// anchoring attachments.
//
// A scene file has a single root node; every node may nest children:
//
//	[root]
//	name = "window"
//	bounds = [0, 0, 400, 300]
//
//	  [[root.children]]
//	  name = "ok"
//	  bounds = [290, 250, 100, 40]
//	  anchors = ["right", "bottom"]
//
// Every node carries an attachment unless it sets detached = true, so
// resizing any ancestor cascades to the anchored descendants.
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	anchor "github.com/grindlemire/go-anchor"
)

var (
	ErrNoRoot        = errors.New("scene has no root node")
	ErrMissingName   = errors.New("node has no name")
	ErrDuplicateName = errors.New("duplicate node name")
)

// File is the decoded form of a scene document.
type File struct {
	Root *Node `toml:"root"`
}

// Node describes one widget.
type Node struct {
	Name     string   `toml:"name"`
	Bounds   [4]int   `toml:"bounds"`
	Anchors  []string `toml:"anchors"`
	Fit      bool     `toml:"fit"`
	Detached bool     `toml:"detached"`
	Children []*Node  `toml:"children"`
}

// Rect returns the node's bounds as x, y, width, height.
func (n *Node) Rect() anchor.Rect {
	return anchor.NewRect(n.Bounds[0], n.Bounds[1], n.Bounds[2], n.Bounds[3])
}

// Scene is a built widget tree with name lookup.
type Scene struct {
	Root   *anchor.Widget
	byName map[string]*anchor.Widget
	order  []string
}

// Load reads and decodes the scene file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scene document and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode scene: unknown key %q", undecoded[0].String())
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names and anchor edges without building anything.
func (f *File) Validate() error {
	if f.Root == nil {
		return ErrNoRoot
	}
	seen := make(map[string]bool)
	return validate(f.Root, seen)
}

func validate(n *Node, seen map[string]bool) error {
	if n.Name == "" {
		return ErrMissingName
	}
	if seen[n.Name] {
		return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
	}
	seen[n.Name] = true
	for _, a := range n.Anchors {
		if _, err := anchor.ParseEdge(a); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
	}
	for _, c := range n.Children {
		if err := validate(c, seen); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the widget tree. The whole tree is assembled first and
// then attached top-down, so each attachment recaptures against a parent
// that already has its final bounds.
func (f *File) Build() (*Scene, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{byName: make(map[string]*anchor.Widget)}
	s.Root = s.construct(f.Root)
	if err := s.attach(f.Root); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) construct(n *Node) *anchor.Widget {
	w := anchor.New(anchor.WithName(n.Name), anchor.WithRect(n.Rect()))
	s.byName[n.Name] = w
	s.order = append(s.order, n.Name)
	for _, c := range n.Children {
		w.AddChild(s.construct(c))
	}
	return w
}

func (s *Scene) attach(n *Node) error {
	w := s.byName[n.Name]
	if !n.Detached {
		a := anchor.Attach(w, n.Fit)
		for _, name := range n.Anchors {
			edge, err := anchor.ParseEdge(name)
			if err != nil {
				return fmt.Errorf("node %q: %w", n.Name, err)
			}
			a.SetAnchored(edge, true)
		}
	}
	for _, c := range n.Children {
		if err := s.attach(c); err != nil {
			return err
		}
	}
	return nil
}

// Widget returns the widget built for the node named name, or nil.
func (s *Scene) Widget(name string) *anchor.Widget {
	return s.byName[name]
}

// Names returns node names in document order.
func (s *Scene) Names() []string {
	return s.order
}
