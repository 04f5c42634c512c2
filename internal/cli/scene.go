package cli

import (
	"context"
	"fmt"

	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/internal/scene"
)

// loadScene reads and builds the scene at path.
func loadScene(ctx context.Context, path string) (*scene.Scene, error) {
	logger := loggerFromContext(ctx)

	f, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}
	logger.Debug("scene loaded", "path", path, "widgets", len(s.Names()))
	return s, nil
}

// lookupWidget resolves name in s, defaulting to the root when name is empty.
func lookupWidget(s *scene.Scene, name string) (*anchor.Widget, error) {
	if name == "" {
		return s.Root, nil
	}
	w := s.Widget(name)
	if w == nil {
		return nil, fmt.Errorf("no widget named %q", name)
	}
	return w, nil
}
