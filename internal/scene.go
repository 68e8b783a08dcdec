package internal

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Yeicor/hexstack-ui/transform"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gopkg.in/yaml.v3"
)

//go:embed scenes/*.yaml
var scenesFS embed.FS

// Vec3 is a YAML-friendly [x, y, z] (or [r, g, b] for colors in [0, 1]).
type Vec3 [3]float64

// V3 converts to the sdfx vector type used everywhere else.
func (v Vec3) V3() v3.Vec {
	return v3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// NRGBA converts a [0, 1] color to 8 bits per channel (clamped).
func (v Vec3) NRGBA() color.NRGBA {
	c := func(f float64) uint8 { return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255)) }
	return color.NRGBA{R: c(v[0]), G: c(v[1]), B: c(v[2]), A: 255}
}

// Scene describes everything drawn by the renderer. It is loaded from YAML and never mutated after Validate.
type Scene struct {
	Name          string         `yaml:"name"`
	Background    Vec3           `yaml:"background"`
	Camera        CameraSpec     `yaml:"camera"`
	Projection    ProjectionSpec `yaml:"projection"`
	Light         LightSpec      `yaml:"light"`
	Material      MaterialSpec   `yaml:"material"`
	WorldRotation RotationSpec   `yaml:"world_rotation"` // Applied to the whole scene after the camera
	Hexagons      []HexagonSpec  `yaml:"hexagons"`
	Cubes         []CubeSpec     `yaml:"cubes"`
}

type CameraSpec struct {
	Position      *Vec3   `yaml:"position"` // Defaults to looking at the scene bounds from +Z
	Pitch         float64 `yaml:"pitch"`    // Radians, around X
	Yaw           float64 `yaml:"yaw"`      // Radians, around Y
	Speed         float64 `yaml:"speed"`    // World units per tick
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type ProjectionSpec struct {
	Orthographic bool    `yaml:"orthographic"` // Initial mode (toggled at runtime)
	FovDeg       float64 `yaml:"fov_deg"`
	Near         float64 `yaml:"near"`
	Far          float64 `yaml:"far"`
	OrthoZoom    float64 `yaml:"ortho_zoom"` // Half height of the orthographic view volume
}

type LightSpec struct {
	Direction Vec3 `yaml:"direction"` // Directional light (points towards the light)
	Ambient   Vec3 `yaml:"ambient"`
	Diffuse   Vec3 `yaml:"diffuse"`
	Specular  Vec3 `yaml:"specular"`
}

type MaterialSpec struct {
	Specular  Vec3    `yaml:"specular"`
	Shininess float64 `yaml:"shininess"`
}

type RotationSpec struct {
	AngleDeg float64        `yaml:"angle_deg"`
	Axis     transform.Axis `yaml:"axis"`
}

// OutlineSpec configures the rasterized edge overlay. A zero width disables it.
type OutlineSpec struct {
	Width float64 `yaml:"width"` // Pixels
	Scale float64 `yaml:"scale"` // Virtual resolution multiplier (points per world unit)
	Color Vec3    `yaml:"color"`
}

type HexagonSpec struct {
	Radius   float64     `yaml:"radius"`
	Height   float64     `yaml:"height"`
	Segments int         `yaml:"segments"`
	Position Vec3        `yaml:"position"`
	Color    Vec3        `yaml:"color"`
	Outline  OutlineSpec `yaml:"outline"`
}

type CubeSpec struct {
	Size     float64     `yaml:"size"`
	Position Vec3        `yaml:"position"`
	Color    Vec3        `yaml:"color"`
	Spin     SpinSpec    `yaml:"spin"`
	Outline  OutlineSpec `yaml:"outline"`
}

type SpinSpec struct {
	DegPerSec float64          `yaml:"deg_per_sec"`
	Axes      []transform.Axis `yaml:"axes"`
}

const (
	defaultSegments     = 6
	defaultOutlineScale = 100
	maxOutlineScale     = 10000 // Points per world unit
)

// LoadScene reads a scene file from disk, falling back to the embedded scenes ("hexagons", "cube.yaml", ...) only when
// no such file exists.
func LoadScene(name string) (*Scene, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		clean := strings.TrimSuffix(filepath.Base(name), ".yaml") + ".yaml"
		var errEmbed error
		data, errEmbed = scenesFS.ReadFile("scenes/" + clean)
		if errEmbed != nil {
			return nil, fmt.Errorf("scene: load %s: %w", name, errors.Join(err, errEmbed))
		}
	} else if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	return parseNamedScene(name, data)
}

// LoadSceneFile reads a scene file from disk, without falling back to the embedded scenes.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return parseNamedScene(path, data)
}

func parseNamedScene(name string, data []byte) (*Scene, error) {
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	return s, nil
}

// ParseScene decodes, fills defaults and validates a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Camera.Speed == 0 {
		s.Camera.Speed = 0.1
	}
	if s.Camera.RotationSpeed == 0 {
		s.Camera.RotationSpeed = 0.02
	}
	if s.Projection.FovDeg == 0 {
		s.Projection.FovDeg = 45
	}
	if s.Projection.Near == 0 && s.Projection.Far == 0 {
		s.Projection.Near, s.Projection.Far = 0.1, 100
	}
	if s.Projection.OrthoZoom == 0 {
		s.Projection.OrthoZoom = 5
	}
	if s.Light.Direction == (Vec3{}) {
		s.Light.Direction = Vec3{0, 1, 1}
	}
	if s.Material.Shininess == 0 {
		s.Material.Shininess = 32
	}
	for i := range s.Hexagons {
		h := &s.Hexagons[i]
		if h.Segments == 0 {
			h.Segments = defaultSegments
		}
		h.Outline.applyDefaults()
	}
	for i := range s.Cubes {
		s.Cubes[i].Outline.applyDefaults()
	}
}

func (o *OutlineSpec) applyDefaults() {
	if o.Scale == 0 {
		o.Scale = defaultOutlineScale
	}
}

// Validate checks that every number is finite and that the geometry and projection make sense.
func (s *Scene) Validate() error {
	if err := CheckFinite(s); err != nil {
		return err
	}
	var errs []error
	p := s.Projection
	if p.FovDeg <= 0 || p.FovDeg >= 180 {
		errs = append(errs, fmt.Errorf("projection.fov_deg %v outside (0, 180)", p.FovDeg))
	}
	if p.Near <= 0 || p.Near >= p.Far {
		errs = append(errs, fmt.Errorf("projection needs 0 < near (%v) < far (%v)", p.Near, p.Far))
	}
	if p.OrthoZoom <= 0 {
		errs = append(errs, fmt.Errorf("projection.ortho_zoom %v must be positive", p.OrthoZoom))
	}
	if s.Material.Shininess < 0 {
		errs = append(errs, fmt.Errorf("material.shininess %v must not be negative", s.Material.Shininess))
	}
	for i, h := range s.Hexagons {
		if h.Radius <= 0 || h.Height <= 0 {
			errs = append(errs, fmt.Errorf("hexagons[%d]: radius %v and height %v must be positive", i, h.Radius, h.Height))
		}
		if h.Segments < 3 {
			errs = append(errs, fmt.Errorf("hexagons[%d]: %d segments, need at least 3", i, h.Segments))
		}
		errs = append(errs, h.Outline.validate(fmt.Sprintf("hexagons[%d]", i)))
	}
	for i, c := range s.Cubes {
		if c.Size <= 0 {
			errs = append(errs, fmt.Errorf("cubes[%d]: size %v must be positive", i, c.Size))
		}
		errs = append(errs, c.Outline.validate(fmt.Sprintf("cubes[%d]", i)))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid scene %q: %w", s.Name, err)
	}
	return nil
}

func (o OutlineSpec) validate(owner string) error {
	if o.Width < 0 {
		return fmt.Errorf("%s: outline.width %v must not be negative", owner, o.Width)
	}
	if o.Scale <= 0 || o.Scale > maxOutlineScale {
		return fmt.Errorf("%s: outline.scale %v outside (0, %v]", owner, o.Scale, maxOutlineScale)
	}
	return nil
}

// Bounds encloses every object of the scene (ignoring the world rotation and spins).
func (s *Scene) Bounds() sdf.Box3 {
	var boxes []sdf.Box3
	for _, h := range s.Hexagons {
		boxes = append(boxes, sdf.NewBox3(h.Position.V3(), v3.Vec{X: 2 * h.Radius, Y: 2 * h.Radius, Z: h.Height}))
	}
	for _, c := range s.Cubes {
		// A spinning cube sweeps a sphere of radius half its diagonal
		d := c.Size * math.Sqrt(3)
		boxes = append(boxes, sdf.NewBox3(c.Position.V3(), v3.Vec{X: d, Y: d, Z: d}))
	}
	if len(boxes) == 0 {
		return sdf.Box3{}
	}
	res := boxes[0]
	for _, b := range boxes[1:] {
		res = res.Extend(b)
	}
	return res
}

// InitialCameraPosition is the configured camera position, or a point in front (+Z) of the scene bounds far enough
// to see all of it.
func (s *Scene) InitialCameraPosition() v3.Vec {
	if s.Camera.Position != nil {
		return s.Camera.Position.V3()
	}
	bb := s.Bounds()
	return bb.Center().Add(v3.Vec{Z: bb.Size().Length()})
}
