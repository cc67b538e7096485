// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Projection modes.
const (
	ProjectionPerspective = "perspective"
	ProjectionOrtho       = "ortho"
)

// Camera modes.
const (
	CameraOrbit = "orbit"
	CameraFree  = "free"
)

// Config holds all scene settings.
type Config struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Models     []ModelConfig    `yaml:"models"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ViewportConfig holds the drawing buffer size. The aspect ratio of a
// perspective projection is derived from it.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProjectionConfig holds projection settings.
type ProjectionConfig struct {
	Mode string  `yaml:"mode"` // perspective or ortho
	FOV  float32 `yaml:"fov"`  // Vertical field of view in degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	// Ortho bounds
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

// CameraConfig holds the camera placement. Rotation is in degrees.
type CameraConfig struct {
	Mode     string     `yaml:"mode"` // orbit or free
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
}

// ModelConfig places one mesh in the scene. Rotation is in degrees.
type ModelConfig struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"`
	Scale    [3]float32 `yaml:"scale"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Matrices    string `yaml:"matrices"`     // YAML dump path, empty for stdout
	Preview     string `yaml:"preview"`      // Wireframe image path (.webp or .png), empty to skip
	PreviewSize int    `yaml:"preview_size"` // Preview width in pixels; height follows the viewport aspect
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Projection: ProjectionConfig{
			Mode:   ProjectionPerspective,
			FOV:    45,
			Near:   0.1,
			Far:    100,
			Left:   -1,
			Right:  1,
			Bottom: -1,
			Top:    1,
		},
		Camera: CameraConfig{
			Mode:     CameraOrbit,
			Position: [3]float32{0, 0, 5},
			Rotation: [3]float32{-25, 35, 0},
		},
		Models: []ModelConfig{
			{Name: "cube", Scale: [3]float32{1, 1, 1}},
		},
		Output: OutputConfig{
			PreviewSize: 512,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Aspect returns the viewport width/height ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Viewport.Width) / float32(c.Viewport.Height)
}

// Validate reports settings that would produce degenerate matrices.
func (c *Config) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport: size %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
	}

	p := c.Projection
	switch p.Mode {
	case ProjectionPerspective:
		if p.FOV <= 0 || p.FOV >= 180 {
			errs = append(errs, fmt.Errorf("projection: fov %v must be in (0, 180)", p.FOV))
		}
	case ProjectionOrtho:
		if p.Left == p.Right || p.Bottom == p.Top {
			errs = append(errs, errors.New("projection: ortho bounds must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("projection: unknown mode %q", p.Mode))
	}
	if p.Near == p.Far {
		errs = append(errs, fmt.Errorf("projection: near and far are both %v", p.Near))
	}

	switch c.Camera.Mode {
	case CameraOrbit, CameraFree:
	default:
		errs = append(errs, fmt.Errorf("camera: unknown mode %q", c.Camera.Mode))
	}

	for i, m := range c.Models {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("models[%d]: name is required", i))
		}
	}

	if c.Output.Preview != "" && c.Output.PreviewSize <= 0 {
		errs = append(errs, fmt.Errorf("output: preview_size %d must be positive", c.Output.PreviewSize))
	}

	return errors.Join(errs...)
}
