// Package scene builds per-model transform matrices from a scene config.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/glcore/internal/camera"
	"github.com/Faultbox/glcore/internal/config"
	"github.com/Faultbox/glcore/internal/logger"
	"github.com/Faultbox/glcore/pkg/math"
	"github.com/Faultbox/glcore/pkg/transform"
)

// Matrices holds everything a shader needs to draw one model.
type Matrices struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
	MVP        math.Mat4
	Normal     math.Mat3
}

// Frame is the matrix set for one named model.
type Frame struct {
	Name string
	Matrices
}

// Scene is a camera plus the models it looks at.
type Scene struct {
	Camera *camera.Camera
	Models []*transform.Model
}

// New builds a scene from cfg.
func New(cfg *config.Config) (*Scene, error) {
	cam, err := newCamera(cfg)
	if err != nil {
		return nil, err
	}

	s := &Scene{Camera: cam}
	for _, mc := range cfg.Models {
		m := transform.NewModel(mc.Name).
			SetPosition(mc.Position[0], mc.Position[1], mc.Position[2]).
			SetRotation(mc.Rotation[0], mc.Rotation[1], mc.Rotation[2]).
			SetScale(mc.Scale[0], mc.Scale[1], mc.Scale[2])
		s.Models = append(s.Models, m)
	}

	logger.Debug("scene built",
		zap.String("projection", cfg.Projection.Mode),
		zap.String("camera", cfg.Camera.Mode),
		zap.Int("models", len(s.Models)),
	)
	return s, nil
}

func newCamera(cfg *config.Config) (*camera.Camera, error) {
	p := cfg.Projection

	var cam *camera.Camera
	switch p.Mode {
	case config.ProjectionPerspective:
		cam = camera.NewPerspective(p.FOV, cfg.Aspect(), p.Near, p.Far)
	case config.ProjectionOrtho:
		cam = camera.NewOrtho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	default:
		return nil, fmt.Errorf("scene: unknown projection mode %q", p.Mode)
	}

	switch cfg.Camera.Mode {
	case config.CameraOrbit:
		cam.Mode = camera.Orbit
	case config.CameraFree:
		cam.Mode = camera.Free
	default:
		return nil, fmt.Errorf("scene: unknown camera mode %q", cfg.Camera.Mode)
	}

	pos, rot := cfg.Camera.Position, cfg.Camera.Rotation
	cam.Transform.Position.Set(pos[0], pos[1], pos[2])
	cam.Transform.Rotation.Set(rot[0], rot[1], rot[2])
	return cam, nil
}

// Frame refreshes the camera and every model and returns their matrices.
// A singular camera or model transform keeps its previous matrix and is logged.
func (s *Scene) Frame() []Frame {
	s.Camera.UpdateViewMatrix()
	if !s.Camera.ViewOK() {
		logger.Warn("camera transform is singular, keeping previous view")
	}

	var viewProj math.Mat4
	math.Mult(&viewProj, &s.Camera.Projection, &s.Camera.View)

	frames := make([]Frame, 0, len(s.Models))
	for _, m := range s.Models {
		m.PreRender()
		t := m.Transform
		if !t.NormalOK {
			logger.Warn("model matrix is singular, keeping previous normal matrix",
				zap.String("model", m.Mesh))
		}

		f := Frame{Name: m.Mesh}
		f.Model = t.View.Mat
		f.View = s.Camera.View
		f.Projection = s.Camera.Projection
		f.Normal = t.Normal
		math.Mult(&f.MVP, &viewProj, &f.Model)
		frames = append(frames, f)
	}
	return frames
}

// Project maps a model-space point through mvp to normalized device
// coordinates. ok is false when the point is behind the camera.
func Project(mvp *math.Mat4, p math.Vector3) (ndc math.Vector3, ok bool) {
	var clip math.Vec4
	math.TransformVec4(&clip, math.Vec4{p.X, p.Y, p.Z, 1}, mvp)
	if clip[3] <= 0 {
		return math.Vector3{}, false
	}
	return math.Vector3{X: clip[0] / clip[3], Y: clip[1] / clip[3], Z: clip[2] / clip[3]}, true
}
