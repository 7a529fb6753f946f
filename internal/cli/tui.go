package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lunaterra/chartwheel/pkg/chart"
	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// BodyListModel is the bubbletea model for interactive body browsing.
type BodyListModel struct {
	Bodies   []chart.Body
	Cursor   int
	Selected *chart.Body
	Height   int
	Offset   int
}

// NewBodyListModel creates a new body list model over the chart's bodies.
func NewBodyListModel(c *chart.Chart) BodyListModel {
	return BodyListModel{
		Bodies: c.Bodies,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m BodyListModel) Init() tea.Cmd {
	return nil
}

func (m BodyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Bodies)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			body := m.Bodies[m.Cursor]
			m.Selected = &body
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BodyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Body"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Bodies) {
		end = len(m.Bodies)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		body := m.Bodies[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		position := "—"
		if body.Known() {
			position = wheel.FormatDegree(*body.Longitude)
		}

		motion := ""
		if body.Retrograde {
			motion = wheel.RetrogradeMark
		}

		rows = append(rows, []string{cursor, wheel.BodyGlyphText(body.Name), body.Name, position, motion})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Body", "Position", "Motion").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Bodies) {
				return lipgloss.NewStyle()
			}
			body := m.Bodies[actualIdx]

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				if body.Known() {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorDim).Bold(true)
			}
			if !body.Known() {
				return base.Foreground(colorDim)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Bodies))))

	return b.String()
}
