package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	anchor "github.com/grindlemire/go-anchor"
)

// errInvalidFlag is wrapped by every flag parsing error.
var errInvalidFlag = errors.New("invalid flag value")

// parseSize parses "WIDTHxHEIGHT" (an "×" separator is accepted as well).
func parseSize(s string) (width, height int, err error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "×", "x")
	w, h, ok := strings.Cut(normalized, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q: want WIDTHxHEIGHT", errInvalidFlag, s)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: bad width", errInvalidFlag, s)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: bad height", errInvalidFlag, s)
	}
	return width, height, nil
}

// parseEdges parses four comma-separated integers in top, right, bottom,
// left order.
func parseEdges(s string) (anchor.Edges, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return anchor.Edges{}, fmt.Errorf("%w: edges %q: want TOP,RIGHT,BOTTOM,LEFT", errInvalidFlag, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return anchor.Edges{}, fmt.Errorf("%w: edges %q: %q is not a number", errInvalidFlag, s, p)
		}
		v[i] = n
	}
	return anchor.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
}

// parseAnchorToggle parses "EDGE=on" or "EDGE=off".
func parseAnchorToggle(s string) (anchor.Edge, bool, error) {
	name, state, ok := strings.Cut(s, "=")
	if !ok {
		return 0, false, fmt.Errorf("%w: anchor %q: want EDGE=on|off", errInvalidFlag, s)
	}
	edge, err := anchor.ParseEdge(name)
	if err != nil {
		return 0, false, fmt.Errorf("%w: anchor %q: %w", errInvalidFlag, s, err)
	}
	switch strings.ToLower(strings.TrimSpace(state)) {
	case "on", "true", "1":
		return edge, true, nil
	case "off", "false", "0":
		return edge, false, nil
	}
	return 0, false, fmt.Errorf("%w: anchor %q: state must be on or off", errInvalidFlag, s)
}
