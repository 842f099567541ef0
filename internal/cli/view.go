package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mdimension/mdim/pkg/animate"
	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/render"
	"github.com/mdimension/mdim/pkg/rotation"
	"github.com/mdimension/mdim/pkg/transform"
)

const (
	// viewFrameInterval is the animation frame period (~30 fps).
	viewFrameInterval = 33 * time.Millisecond

	// viewMaxAngle bounds the oscillating rotation angles.
	viewMaxAngle = 2 * math.Pi
)

// viewCommand creates the view command: an animated wireframe viewer in the
// terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		dimension int
		planesStr string
		speed     float64
		distance  float64
	)
	var cfg object.Config

	cmd := &cobra.Command{
		Use:   "view [object]",
		Short: "View an animated wireframe in the terminal",
		Long: `View an animated wireframe in the terminal.

The view command generates a geometry and animates it with oscillating
rotations on the selected planes, projected down to the terminal grid.

Keys: space pauses, +/- adjusts the projection distance, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(args[0], dimension, cfg, planesStr, speed, distance)
		},
	}

	cmd.Flags().IntVarP(&dimension, "dimension", "d", defaultDimension, "ambient dimension")
	cmd.Flags().StringVar(&planesStr, "planes", "", "rotation planes to animate (comma-separated, default: one per group)")
	cmd.Flags().Float64Var(&speed, "speed", 0.6, "base rotation speed in radians per second")
	cmd.Flags().Float64Var(&distance, "distance", render.DefaultProjectionDistance, "projection distance")
	cmd.Flags().IntVar(&cfg.Resolution, "resolution", 0, "tessellation resolution (torus families)")
	cmd.Flags().StringVar(&cfg.RootType, "root-type", "", "root system family: A (default), D, E8")

	return cmd
}

// runView generates the geometry and hands it to the bubbletea program.
func (c *CLI) runView(objectType string, dim int, cfg object.Config, planesStr string, speed, distance float64) error {
	t, err := object.ParseType(objectType)
	if err != nil {
		return err
	}
	g, err := object.Generate(t, dim, cfg)
	if err != nil {
		return err
	}

	planes, err := viewPlanes(dim, planesStr)
	if err != nil {
		return err
	}

	model := newViewModel(g, planes, speed, distance)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// viewPlanes resolves the animated planes: an explicit comma list, or the
// first plane of every rotation group.
func viewPlanes(dim int, planesStr string) ([]rotation.Plane, error) {
	if planesStr != "" {
		names := strings.Split(planesStr, ",")
		planes := make([]rotation.Plane, 0, len(names))
		for _, name := range names {
			p, err := rotation.ParsePlane(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			if p.J >= dim {
				return nil, errors.New(errors.ErrCodeInvalidPlane,
					"plane %s does not exist in %dD", p.Name, dim)
			}
			planes = append(planes, p)
		}
		return planes, nil
	}

	var planes []rotation.Plane
	for _, g := range rotation.Groups(dim) {
		if len(g.Planes) > 0 {
			planes = append(planes, g.Planes[0])
		}
	}
	return planes, nil
}

// planeColor maps a plane to the accent color of its rotation group.
func planeColor(p rotation.Plane) lipgloss.Color {
	tag := rotation.ColorBlue
	switch p.J {
	case 3:
		tag = rotation.ColorPurple
	case 4:
		tag = rotation.ColorOrange
	case 5:
		tag = rotation.ColorGreen
	default:
		if p.J > 5 {
			tag = rotation.ColorPink
		}
	}
	if c, ok := groupColors[tag]; ok {
		return c
	}
	return colorWhite
}

// frameMsg drives the animation loop.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(viewFrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// viewModel is the bubbletea model for the animated viewer.
type viewModel struct {
	geometry *object.Geometry
	planes   []rotation.Plane
	angles   []*animate.Oscillator

	distance float64
	paused   bool
	start    time.Time

	width  int
	height int
}

// newViewModel builds the model with one oscillator per animated plane.
// Speeds are staggered so higher planes drift out of phase.
func newViewModel(g *object.Geometry, planes []rotation.Plane, speed, distance float64) *viewModel {
	angles := make([]*animate.Oscillator, len(planes))
	for i := range planes {
		angles[i] = animate.NewOscillator(0, viewMaxAngle, speed*(1-0.15*float64(i%4)))
	}
	return &viewModel{
		geometry: g,
		planes:   planes,
		angles:   angles,
		distance: distance,
		start:    time.Now(),
		width:    80,
		height:   24,
	}
}

func (m *viewModel) Init() tea.Cmd {
	return frameTick()
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			for _, o := range m.angles {
				o.SetEnabled(!m.paused)
			}
		case "+", "=":
			m.distance += 0.25
		case "-":
			if m.distance > 1 {
				m.distance -= 0.25
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		elapsed := time.Since(m.start)
		for _, o := range m.angles {
			o.Tick(elapsed)
		}
		return m, frameTick()
	}
	return m, nil
}

func (m *viewModel) View() string {
	state := transform.State{}
	for i, p := range m.planes {
		state.Rotations = append(state.Rotations, rotation.Angle{
			Plane: p.Name,
			Value: m.angles[i].Value(),
		})
	}

	vertices, err := transform.Apply(m.geometry.Dimension, m.geometry.Vertices, state, transform.Options{})
	if err != nil {
		return "transform failed: " + err.Error()
	}
	projected := render.Project(vertices, m.distance)

	canvasW := m.width
	canvasH := m.height - 3
	if canvasW < 10 || canvasH < 5 {
		return "terminal too small"
	}

	var b strings.Builder
	b.WriteString(m.renderCanvas(projected, canvasW, canvasH))
	b.WriteString(m.statusLine())
	return b.String()
}

// renderCanvas plots edges and vertices onto a rune grid.
func (m *viewModel) renderCanvas(projected []render.Point3, w, h int) string {
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Terminal cells are roughly twice as tall as wide, so the vertical span
	// uses a smaller share of its axis.
	spanX := float64(w) * 0.38
	spanY := float64(h) * 0.42
	toCell := func(p render.Point3) (int, int) {
		x := w/2 + int(p[0]*spanX)
		y := h/2 - int(p[1]*spanY)
		return x, y
	}

	for _, e := range m.geometry.Edges {
		if e[0] >= len(projected) || e[1] >= len(projected) {
			continue
		}
		x0, y0 := toCell(projected[e[0]])
		x1, y1 := toCell(projected[e[1]])
		plotLine(grid, x0, y0, x1, y1)
	}
	for _, p := range projected {
		x, y := toCell(p)
		if y >= 0 && y < h && x >= 0 && x < w {
			grid[y][x] = '•'
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(StyleHighlight.Render(string(row)))
		b.WriteByte('\n')
	}
	return b.String()
}

// plotLine draws a Bresenham line of dots into the grid.
func plotLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[0]) {
			if grid[y0][x0] == ' ' {
				grid[y0][x0] = '·'
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// statusLine shows the object, animated planes with their group colors, and
// key hints.
func (m *viewModel) statusLine() string {
	var parts []string
	for i, p := range m.planes {
		style := lipgloss.NewStyle().Foreground(planeColor(p))
		parts = append(parts, style.Render(fmt.Sprintf("%s %.2f", p.Name, m.angles[i].Value())))
	}

	status := StyleTitle.Render(string(m.geometry.Type)) +
		StyleDim.Render(fmt.Sprintf(" %dD · d=%.2f · ", m.geometry.Dimension, m.distance)) +
		strings.Join(parts, StyleDim.Render(" · "))
	if m.paused {
		status += " " + StyleWarning.Render("paused")
	}

	hints := StyleDim.Render("space pause · +/- distance · q quit")
	return status + "\n" + hints
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
