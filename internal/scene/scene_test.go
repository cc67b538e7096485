package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/glcore/internal/config"
	"github.com/Faultbox/glcore/pkg/math"
)

func TestFrameDefaultScene(t *testing.T) {
	s, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	frames := s.Frame()
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	f := frames[0]
	if f.Name != "cube" {
		t.Errorf("frame name = %q, want cube", f.Name)
	}

	var vp, want math.Mat4
	math.Mult(&vp, &f.Projection, &f.View)
	math.Mult(&want, &vp, &f.Model)
	if f.MVP != want {
		t.Errorf("MVP = %v, want P*V*M = %v", f.MVP, want)
	}

	// The orbit camera looks at the origin.
	ndc, ok := Project(&f.MVP, math.Vector3{})
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if abs(ndc.X) > 1e-5 || abs(ndc.Y) > 1e-5 {
		t.Errorf("origin projects to %v, want screen center", ndc)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("origin depth %f outside the clip range", ndc.Z)
	}
}

func TestFrameOrthoFreeCamera(t *testing.T) {
	cfg := config.Default()
	cfg.Projection.Mode = config.ProjectionOrtho
	cfg.Projection.Left, cfg.Projection.Right = -4, 4
	cfg.Projection.Bottom, cfg.Projection.Top = -2, 2
	cfg.Projection.Near, cfg.Projection.Far = 0, 10
	cfg.Camera.Mode = config.CameraFree
	cfg.Camera.Position = [3]float32{0, 0, 5}
	cfg.Camera.Rotation = [3]float32{}
	cfg.Models = []config.ModelConfig{
		{Name: "right", Position: [3]float32{2, 1, 0}, Scale: [3]float32{1, 1, 1}},
	}

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := s.Frame()[0]

	ndc, ok := Project(&f.MVP, math.Vector3{})
	if !ok {
		t.Fatal("orthographic projection always has w = 1")
	}
	if abs(ndc.X-0.5) > 1e-6 || abs(ndc.Y-0.5) > 1e-6 {
		t.Errorf("model origin projects to %v, want (0.5, 0.5)", ndc)
	}
}

func TestFrameSingularModel(t *testing.T) {
	cfg := config.Default()
	cfg.Models = []config.ModelConfig{
		{Name: "flat", Scale: [3]float32{1, 0, 1}},
	}

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f := s.Frame()[0]

	if s.Models[0].Transform.NormalOK {
		t.Error("NormalOK should be false for a zero scale")
	}
	if f.Normal != (math.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}) {
		t.Errorf("Normal = %v, want the previous (identity) matrix", f.Normal)
	}
}

func TestNewUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.Projection.Mode = "fisheye"
	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an unknown projection mode")
	}

	cfg = config.Default()
	cfg.Camera.Mode = "dolly"
	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an unknown camera mode")
	}
}

func TestProjectBehindCamera(t *testing.T) {
	var p math.Mat4
	math.Perspective(&p, 1, 1, 0.1, 100)

	if _, ok := Project(&p, math.Vector3{Z: 5}); ok {
		t.Error("a point behind the camera should not project")
	}
	if _, ok := Project(&p, math.Vector3{Z: -5}); !ok {
		t.Error("a point in front of the camera should project")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Models = append(cfg.Models, config.ModelConfig{
		Name:     "tilted",
		Position: [3]float32{1, 2, 3},
		Rotation: [3]float32{10, 20, 30},
		Scale:    [3]float32{0.5, 2, 1},
	})
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	frames := s.Frame()

	var buf bytes.Buffer
	if err := Dump(&buf, frames); err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if !strings.Contains(buf.String(), "name: tilted") {
		t.Errorf("dump should name each model, got:\n%s", buf.String())
	}

	loaded, err := LoadDump(&buf)
	if err != nil {
		t.Fatalf("LoadDump() error: %v", err)
	}
	if len(loaded) != len(frames) {
		t.Fatalf("loaded %d frames, want %d", len(loaded), len(frames))
	}
	for i := range frames {
		if loaded[i] != frames[i] {
			t.Errorf("frame %d: got %+v, want %+v", i, loaded[i], frames[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
