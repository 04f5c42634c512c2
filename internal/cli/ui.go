package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	anchor "github.com/grindlemire/go-anchor"
	"github.com/grindlemire/go-anchor/internal/inspector"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleRect     = lipgloss.NewStyle().Foreground(colorCyan)
	styleAnchored = lipgloss.NewStyle().Foreground(colorGreen)
	styleFree     = lipgloss.NewStyle().Foreground(colorAmber)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	branchMid  = "├─ "
	branchLast = "└─ "
	pipe       = "│  "
	blank      = "   "
)

// formatRect prints a rect as "x,y w×h".
func formatRect(r anchor.Rect) string {
	return fmt.Sprintf("%d,%d %d×%d", r.X, r.Y, r.Width, r.Height)
}

// formatAnchors lists anchored edges in top, right, bottom, left order.
func formatAnchors(c anchor.Constraints) string {
	edges := c.AnchoredEdges()
	if len(edges) == 0 {
		return "none"
	}
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.String()
	}
	return strings.Join(names, ",")
}

// renderTree draws w and its descendants, one line per widget.
func renderTree(w *anchor.Widget) string {
	var b strings.Builder
	renderNode(&b, w, "", "")
	return b.String()
}

func renderNode(b *strings.Builder, w *anchor.Widget, prefix, branch string) {
	b.WriteString(styleDim.Render(prefix + branch))
	b.WriteString(styleName.Render(w.String()))
	b.WriteString("  ")
	b.WriteString(styleRect.Render(formatRect(w.Bounds())))

	if t := anchor.TrackerOf(w); t != nil {
		c := t.Constraints()
		style := styleAnchored
		if len(c.AnchoredEdges()) == 0 {
			style = styleFree
		}
		b.WriteString("  ")
		b.WriteString(style.Render("anchors " + formatAnchors(c)))
		d := c.Distances()
		b.WriteString("  ")
		b.WriteString(styleDim.Render(fmt.Sprintf("inset r=%d b=%d", d.Right, d.Bottom)))
	} else if w.Parent() != nil {
		b.WriteString("  ")
		b.WriteString(styleDim.Render("untracked"))
	}
	b.WriteString("\n")

	switch branch {
	case branchMid:
		prefix += pipe
	case branchLast:
		prefix += blank
	}
	children := w.Children()
	for i, c := range children {
		next := branchMid
		if i == len(children)-1 {
			next = branchLast
		}
		renderNode(b, c, prefix, next)
	}
}

// renderBoxModel draws an inspector snapshot as a table with one row per edge.
func renderBoxModel(s inspector.Snapshot) string {
	if !s.Valid {
		return styleDim.Render("nothing selected") + "\n"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(s.Name))
	b.WriteString("  ")
	b.WriteString(styleRect.Render(fmt.Sprintf("%d×%d", s.Width, s.Height)))
	if s.ParentName != "" {
		b.WriteString(styleDim.Render("  in " + s.ParentName))
	}
	b.WriteString("\n")

	rows := make([][]string, 0, len(anchor.AllEdges))
	for i, e := range anchor.AllEdges {
		anchored, stored := "-", "-"
		if s.Tracked {
			anchored = "no"
			if s.Anchored[i] {
				anchored = "yes"
			}
			stored = fmt.Sprint(s.Stored.Get(e))
		}
		rows = append(rows, []string{e.String(), fmt.Sprint(s.ToParent.Get(e)), anchored, stored})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Edge", "To parent", "Anchored", "Stored").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 2 && s.Tracked && row < len(rows) && s.Anchored[row] {
				return base.Foreground(colorGreen)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
