package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	anchor "github.com/grindlemire/go-anchor"
)

const (
	defaultStep = 10
	maxStep     = 160
)

func newWatchCmd() *cobra.Command {
	var step int

	cmd := &cobra.Command{
		Use:   "watch SCENE",
		Short: "Resize the scene root interactively",
		Long: `Watch opens an interactive view of the scene. The arrow keys (or hjkl)
shrink and grow the root, + and - change the step, r resets the root to its
initial bounds and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			m := newWatchModel(s.Root, step)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&step, "step", defaultStep, "pixels added or removed per key press")

	return cmd
}

// watchModel drives the root of a scene from the keyboard.
type watchModel struct {
	root    *anchor.Widget
	initial anchor.Rect
	step    int
	resizes int
}

func newWatchModel(root *anchor.Widget, step int) watchModel {
	if step < 1 {
		step = defaultStep
	}
	return watchModel{root: root, initial: root.Bounds(), step: min(step, maxStep)}
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.resize(-m.step, 0)
	case "right", "l":
		m.resize(m.step, 0)
	case "up", "k":
		m.resize(0, -m.step)
	case "down", "j":
		m.resize(0, m.step)
	case "+", "=":
		m.step = min(m.step*2, maxStep)
	case "-", "_":
		m.step = max(m.step/2, 1)
	case "r":
		m.root.Place(m.initial)
		m.resizes = 0
	}
	return m, nil
}

func (m *watchModel) resize(dw, dh int) {
	b := m.root.Bounds()
	w, h := max(b.Width+dw, 0), max(b.Height+dh, 0)
	if w == b.Width && h == b.Height {
		return
	}
	m.root.SetSize(w, h)
	m.resizes++
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("anchor watch"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  step %d  resizes %d", m.step, m.resizes)))
	b.WriteString("\n\n")
	b.WriteString(renderTree(m.root))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ width  ↑/↓ height  +/- step  r reset  q quit"))
	b.WriteString("\n")
	return b.String()
}
