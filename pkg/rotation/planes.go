package rotation

import (
	"strconv"
	"strings"

	"github.com/mdimension/mdim/pkg/errors"
)

// Plane is a 2D coordinate subspace spanned by two axes, the atomic unit of
// N-dimensional rotation. I < J always holds.
type Plane struct {
	I    int    `json:"i"`
	J    int    `json:"j"`
	Name string `json:"name"`
}

// namedAxes are the letter labels for the first six axes.
// Axes beyond these get generated "A<index>" labels.
var namedAxes = [6]string{"X", "Y", "Z", "W", "V", "U"}

// AxisName returns the display name of a coordinate axis.
func AxisName(index int) string {
	if index >= 0 && index < len(namedAxes) {
		return namedAxes[index]
	}
	return "A" + strconv.Itoa(index)
}

// Planes enumerates all rotation planes of the given dimension in ascending
// lexicographic order of their (i, j) index pairs: exactly dim·(dim−1)/2
// entries with unique names.
func Planes(dim int) []Plane {
	planes := make([]Plane, 0, dim*(dim-1)/2)
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			planes = append(planes, Plane{I: i, J: j, Name: AxisName(i) + AxisName(j)})
		}
	}
	return planes
}

// parseAxis resolves an axis label to its index, or −1 when the label is not
// a valid axis name.
func parseAxis(label string) int {
	for i, name := range namedAxes {
		if label == name {
			return i
		}
	}
	if strings.HasPrefix(label, "A") {
		if n, err := strconv.Atoi(label[1:]); err == nil && n >= len(namedAxes) {
			return n
		}
	}
	return -1
}

// splitAxisLabels splits a plane name into its axis labels. Labels start with
// an uppercase letter and may carry a numeric suffix ("XW" → X, W;
// "A6A7" → A6, A7).
func splitAxisLabels(name string) []string {
	var parts []string
	var current strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' && current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// ParsePlane resolves a plane name to its axis index pair with I < J.
// The name must consist of exactly two distinct valid axis labels; anything
// else fails with an INVALID_PLANE error. The returned plane is not checked
// against any particular dimension.
func ParsePlane(name string) (Plane, error) {
	parts := splitAxisLabels(name)
	if len(parts) != 2 {
		return Plane{}, errors.New(errors.ErrCodeInvalidPlane, "malformed plane name: %q", name)
	}
	i := parseAxis(parts[0])
	j := parseAxis(parts[1])
	if i < 0 || j < 0 {
		return Plane{}, errors.New(errors.ErrCodeInvalidPlane, "unknown axis in plane name: %q", name)
	}
	if i == j {
		return Plane{}, errors.New(errors.ErrCodeInvalidPlane, "plane axes must differ: %q", name)
	}
	if i > j {
		i, j = j, i
	}
	return Plane{I: i, J: j, Name: AxisName(i) + AxisName(j)}, nil
}
