package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/rotation"
)

// groupColors maps rotation group color tags to terminal colors.
var groupColors = map[string]lipgloss.Color{
	rotation.ColorBlue:   colorBlue,
	rotation.ColorPurple: lipgloss.Color("135"),
	rotation.ColorOrange: lipgloss.Color("214"),
	rotation.ColorGreen:  colorGreen,
	rotation.ColorPink:   lipgloss.Color("211"),
}

// planesCommand creates the planes command for listing rotation planes.
func (c *CLI) planesCommand() *cobra.Command {
	var dimension int

	cmd := &cobra.Command{
		Use:   "planes",
		Short: "List rotation plane groups for a dimension",
		Long: `List rotation plane groups for a dimension.

An N-dimensional space has N·(N−1)/2 rotation planes. Planes are grouped
by their highest axis: the familiar 3D rotations first, then one group
per higher dimension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateDimension(dimension, 2); err != nil {
				return err
			}
			printPlaneGroups(dimension)
			return nil
		},
	}

	cmd.Flags().IntVarP(&dimension, "dimension", "d", defaultDimension, "ambient dimension")
	return cmd
}

// printPlaneGroups renders the grouped plane listing.
func printPlaneGroups(dim int) {
	groups := rotation.Groups(dim)
	total := dim * (dim - 1) / 2

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Rotation planes in %dD", dim)) +
		" " + StyleDim.Render(fmt.Sprintf("(%d planes)", total)))
	printNewline()

	for _, g := range groups {
		color, ok := groupColors[g.Color]
		if !ok {
			color = colorWhite
		}
		label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(g.Label)

		names := make([]string, len(g.Planes))
		for i, p := range g.Planes {
			names[i] = p.Name
		}
		fmt.Println("  " + label)
		fmt.Println("    " + StyleValue.Render(strings.Join(names, "  ")))
	}
}
