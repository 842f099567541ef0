package rotation

import "fmt"

// Color tags attached to plane groups. These drive UI accents only.
const (
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorOrange = "orange"
	ColorGreen  = "green"
	ColorPink   = "pink"
)

// Group is a UI-facing bundle of rotation planes sharing a highest axis.
type Group struct {
	Label    string  `json:"label"`
	Planes   []Plane `json:"planes"`
	Color    string  `json:"color"`
	Expanded bool    `json:"expanded"` // default expansion state in a controls panel
}

// axisColor returns the accent color for a higher axis.
func axisColor(axis int) string {
	switch axis {
	case 3:
		return ColorPurple
	case 4:
		return ColorOrange
	case 5:
		return ColorGreen
	default:
		return ColorPink
	}
}

// ordinal formats 1 → "1st", 2 → "2nd", etc.
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Groups partitions the rotation planes of a dimension for presentation:
// a "3D Rotations" group (both axes within X/Y/Z, expanded by default)
// followed by one collapsed group per axis from 3 up, holding every plane
// whose highest axis is that axis.
func Groups(dim int) []Group {
	var threeD []Plane
	higher := make(map[int][]Plane)

	for _, p := range Planes(dim) {
		if p.J < 3 {
			threeD = append(threeD, p)
		} else {
			higher[p.J] = append(higher[p.J], p)
		}
	}

	groups := []Group{{
		Label:    "3D Rotations",
		Planes:   threeD,
		Color:    ColorBlue,
		Expanded: true,
	}}

	for axis := 3; axis < dim; axis++ {
		groups = append(groups, Group{
			Label:    fmt.Sprintf("%s Dimension (%s)", ordinal(axis+1), AxisName(axis)),
			Planes:   higher[axis],
			Color:    axisColor(axis),
			Expanded: false,
		})
	}

	return groups
}
