package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/object"
)

// objectsCommand creates the objects command for listing families.
func (c *CLI) objectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "objects",
		Short: "List object families and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printObjectTable()
			return nil
		},
	}
}

// printObjectTable renders the family capability table.
func printObjectTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, t := range object.Types() {
		c, _ := object.Lookup(t)
		faces := "—"
		if c.SupportsFaces {
			faces = "✓"
		}
		rows = append(rows, []string{
			string(t),
			strconv.Itoa(c.MinDimension),
			c.BaseMode,
			faces,
			c.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Object", "Min Dim", "Mode", "Faces", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}
