// Package scene loads and saves scene files: TOML descriptions of one object,
// its transform state, and the view settings, the unit of sharing between CLI
// runs and server requests.
package scene

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mdimension/mdim/pkg/errors"
	"github.com/mdimension/mdim/pkg/object"
	"github.com/mdimension/mdim/pkg/rotation"
	"github.com/mdimension/mdim/pkg/transform"
)

// Scene is one saved view configuration.
type Scene struct {
	// Name identifies the scene in listings. Defaults to the file stem.
	Name string `toml:"name"`

	// Object selects what to generate.
	Object ObjectSpec `toml:"object"`

	// Transform is applied to the generated vertices.
	Transform TransformSpec `toml:"transform"`

	// View holds projection and artifact settings.
	View ViewSpec `toml:"view"`
}

// ObjectSpec names the generated object.
type ObjectSpec struct {
	Type      string        `toml:"type"`
	Dimension int           `toml:"dimension"`
	Config    object.Config `toml:"config"`
}

// AxisScale overrides the uniform scale for one axis. TOML tables cannot key
// on integers, so scene files carry axis scales as an array of tables.
type AxisScale struct {
	Axis  int     `toml:"axis"`
	Value float64 `toml:"value"`
}

// TransformSpec is the scene-file form of a transform state.
type TransformSpec struct {
	UniformScale float64           `toml:"uniform_scale"`
	AxisScales   []AxisScale       `toml:"axis_scales"`
	Shears       []transform.Shear `toml:"shears"`
	Rotations    []rotation.Angle  `toml:"rotations"`
	Translation  []float64         `toml:"translation"`
}

// State converts the spec to the transform state applied by the pipeline.
func (t TransformSpec) State() transform.State {
	s := transform.State{
		UniformScale: t.UniformScale,
		Shears:       t.Shears,
		Rotations:    t.Rotations,
		Translation:  t.Translation,
	}
	if len(t.AxisScales) > 0 {
		s.AxisScales = make(map[int]float64, len(t.AxisScales))
		for _, a := range t.AxisScales {
			s.AxisScales[a.Axis] = a.Value
		}
	}
	return s
}

// ViewSpec holds the rendering knobs.
type ViewSpec struct {
	// Distance is the projection distance. Zero means the default.
	Distance float64 `toml:"distance"`

	// FacesVisible draws face polygons.
	FacesVisible bool `toml:"faces_visible"`

	// Size is the output canvas edge in pixels.
	Size int `toml:"size"`
}

// Validate checks the scene before use.
func (s *Scene) Validate() error {
	if err := errors.ValidateSceneName(s.Name); err != nil {
		return err
	}
	typ, err := object.ParseType(s.Object.Type)
	if err != nil {
		return err
	}
	c, _ := object.Lookup(typ)
	if err := errors.ValidateDimension(s.Object.Dimension, c.MinDimension); err != nil {
		return err
	}
	return nil
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeSceneNotFound, err, "scene file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scene file: %s", path)
	}

	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parse scene file: %s", path)
	}
	if s.Name == "" {
		s.Name = stem(path)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes a scene file with 0644 permissions, creating parent
// directories as needed.
func Save(path string, s *Scene) error {
	if s.Name == "" {
		s.Name = stem(path)
	}
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create scene directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write scene file: %s", path)
	}
	return nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
