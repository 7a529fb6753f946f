package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lunaterra/chartwheel/pkg/chart"
	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// newInspectCmd creates the inspect command for examining chart documents
// without rendering them.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [chart.json]",
		Short: "Show the bodies, houses, and aspects of a chart document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chart.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if err := chart.Validate(c); err != nil {
				return err
			}

			if interactive {
				return runInteractiveInspect(c)
			}
			printChart(c)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse bodies interactively")
	return cmd
}

// printChart prints a summary table of the chart document.
func printChart(c *chart.Chart) {
	fmt.Println(StyleTitle.Render("Chart"))
	fmt.Println()

	rows := make([][]string, 0, len(c.Bodies))
	for _, b := range c.Bodies {
		rows = append(rows, bodyRow(b))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Body", "Position", "Motion").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	fmt.Println(t.Render())
	fmt.Println()

	houses := "absent"
	if c.HasHouses() {
		houses = "12 cusps"
	} else if len(c.Houses) > 0 {
		houses = fmt.Sprintf("malformed (%d cusps)", len(c.Houses))
	}
	printKeyValue("Houses", houses)
	printKeyValue("Aspects", fmt.Sprintf("%d", len(c.Aspects)))
	if len(c.Transits) > 0 {
		printKeyValue("Transits", fmt.Sprintf("%d bodies", len(c.Transits)))
	}
	if len(c.Segments) > 0 {
		printKeyValue("Segments", fmt.Sprintf("%d (sidereal boundaries)", len(c.Segments)))
	}

	if _, ok := c.Ascendant(); !ok {
		printWarning("no Ascendant: the wheel will render as a placeholder")
	}
	printNextStep("Render it", "chartwheel render <file> --legend")
}

// bodyRow formats one body as a table row.
func bodyRow(b chart.Body) []string {
	position := "—"
	if b.Known() {
		position = wheel.FormatDegree(*b.Longitude)
	}
	motion := ""
	if b.Retrograde {
		motion = wheel.RetrogradeMark
	}
	return []string{wheel.BodyGlyphText(b.Name), b.Name, position, motion}
}

// runInteractiveInspect launches the bubbletea body browser.
func runInteractiveInspect(c *chart.Chart) error {
	model := NewBodyListModel(c)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	m, ok := final.(BodyListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	b := *m.Selected
	printKeyValue("Body", b.Name)
	printKeyValue("Glyph", wheel.BodyGlyphText(b.Name))
	if b.Known() {
		printKeyValue("Position", wheel.FormatDegree(*b.Longitude))
		printKeyValue("Longitude", fmt.Sprintf("%.4f°", *b.Longitude))
	} else {
		printKeyValue("Position", "unknown")
	}
	if b.Retrograde {
		printKeyValue("Motion", "retrograde "+wheel.RetrogradeMark)
	}
	for _, a := range c.Aspects {
		if a.BodyA == b.Name || a.BodyB == b.Name {
			other := a.BodyB
			if other == b.Name {
				other = a.BodyA
			}
			printDetail("%s %s %s", wheel.AspectGlyph(a.Type), a.Type, other)
		}
	}
	return nil
}
