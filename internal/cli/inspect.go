package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/document"
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive shape
// browser for a drawing.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [drawing.json]",
		Short: "Browse the shapes of a drawing interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snap, err := loadDrawing(args[0])
			if err != nil {
				return err
			}
			if snap.Len() == 0 {
				printInfo("Drawing is empty")
				return nil
			}

			model := NewShapeListModel(args[0], snap)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// ShapeListModel is the bubbletea model for the shape browser. The list
// scrolls within Height rows; enter toggles a detail panel for the shape
// under the cursor.
type ShapeListModel struct {
	Title    string
	Shapes   []shape.Shape
	Cursor   int
	Height   int
	Offset   int
	Detailed bool

	// Pick mode: enter selects the shape under the cursor and quits
	// instead of toggling the detail panel.
	Pick     bool
	Selected shape.Shape
}

// NewShapeListModel creates a shape browser over a snapshot.
func NewShapeListModel(title string, snap *document.Snapshot) ShapeListModel {
	return ShapeListModel{
		Title:  title,
		Shapes: snap.Shapes(),
		Height: 15,
	}
}

func (m ShapeListModel) Init() tea.Cmd {
	return nil
}

func (m ShapeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Shapes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if m.Pick {
				m.Selected = m.Shapes[m.Cursor]
				return m, tea.Quit
			}
			m.Detailed = !m.Detailed
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ShapeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Shapes in " + m.Title))
	b.WriteString("\n")
	hint := "↑/↓ navigate  ⏎ details  q quit"
	if m.Pick {
		hint = "↑/↓ navigate  ⏎ select  q cancel"
	}
	b.WriteString(listDimStyle.Render(hint))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Shapes) {
		end = len(m.Shapes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Shapes[i]
		h := s.Header()

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		flags := ""
		if h.Hidden {
			flags += "hidden "
		}
		if h.Locked {
			flags += "locked"
		}

		layer := h.Layer
		if layer == "" {
			layer = "-"
		}

		rows = append(rows, []string{cursor, string(s.Kind()), string(h.ID), layer, strings.TrimSpace(flags)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Kind", "ID", "Layer", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.Detailed {
		b.WriteString("\n")
		for _, line := range describeShape(m.Shapes[m.Cursor]) {
			b.WriteString("  " + StyleValue.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Shapes))))

	return b.String()
}

// pickShape runs the shape browser in pick mode and returns the shape
// the user selected with enter.
func pickShape(title string, snap *document.Snapshot) (shape.Shape, error) {
	model := NewShapeListModel(title, snap)
	model.Pick = true
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(ShapeListModel)
	if !ok || m.Selected == nil {
		return nil, fmt.Errorf("no shape selected")
	}
	return m.Selected, nil
}

// describeShape renders the kind-specific geometry of a shape as lines
// for the detail panel.
func describeShape(s shape.Shape) []string {
	switch t := s.(type) {
	case *shape.Line:
		return []string{segmentLine(t.Start, t.End)}
	case *shape.Wall:
		return append([]string{segmentLine(t.Start, t.End)}, memberLines(t.Structure())...)
	case *shape.Beam:
		return append([]string{segmentLine(t.Start, t.End)}, memberLines(t.Structure())...)
	case *shape.Gridline:
		return []string{segmentLine(t.Start, t.End), "label " + t.Label}
	case *shape.Level:
		return []string{segmentLine(t.Start, t.End), "label " + t.Label}
	case *shape.Dimension:
		return []string{segmentLine(t.Start, t.End), "text at " + pointStr(t.TextPosition)}
	case *shape.Rectangle:
		return []string{fmt.Sprintf("%s  %.0f × %.0f", pointStr(t.TopLeft), t.Width, t.Height)}
	case *shape.Image:
		return []string{fmt.Sprintf("%s  %.0f × %.0f  %s", pointStr(t.TopLeft), t.Width, t.Height, t.Source)}
	case *shape.Circle:
		return []string{fmt.Sprintf("center %s  r %.1f", pointStr(t.Center), t.Radius)}
	case *shape.Arc:
		return []string{fmt.Sprintf("center %s  r %.1f  %.2f → %.2f rad", pointStr(t.Center), t.Radius, t.StartAngle, t.EndAngle)}
	case *shape.Ellipse:
		return []string{fmt.Sprintf("center %s  rx %.1f  ry %.1f", pointStr(t.Center), t.RadiusX, t.RadiusY)}
	case *shape.Polyline:
		return []string{fmt.Sprintf("%d points, closed=%v", len(t.Points), t.Closed)}
	case *shape.Spline:
		return []string{fmt.Sprintf("%d control points", len(t.Points))}
	case *shape.Hatch:
		return []string{fmt.Sprintf("%d boundary points  pattern %s", len(t.Boundary), t.Pattern)}
	case *shape.Slab:
		return []string{fmt.Sprintf("%d outline points  thickness %.0f", len(t.Outline), t.Thickness)}
	case *shape.Space:
		return []string{fmt.Sprintf("%s  %.2f m²  %d contour points", t.Name, t.Area, len(t.ContourPoints))}
	case *shape.Text:
		return []string{fmt.Sprintf("%q at %s", t.Content, pointStr(t.Position))}
	default:
		return []string{string(s.Kind())}
	}
}

func segmentLine(start, end geom.Point) string {
	return pointStr(start) + " → " + pointStr(end)
}

func memberLines(m *shape.Member) []string {
	return []string{
		fmt.Sprintf("thickness %.0f  justify %s", m.Thickness, m.Justification),
		fmt.Sprintf("caps %s/%s", m.StartCap, m.EndCap),
	}
}

func pointStr(p geom.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}
