// Package uniform uploads matrices and vectors to OpenGL shader uniforms.
// All functions require a current GL context on the calling thread.
package uniform

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glcore/internal/scene"
	"github.com/Faultbox/glcore/pkg/math"
)

// Standard uniform names used by the lesson shaders.
const (
	NameModel      = "uMVMatrix"
	NameView       = "uCameraMatrix"
	NameProjection = "uPMatrix"
	NameNormal     = "uNormMatrix"
	NameMVP        = "uMVP"
)

// Locations caches the standard uniform locations for one program.
// A location of -1 means the shader does not use that uniform.
type Locations struct {
	Model      int32
	View       int32
	Projection int32
	Normal     int32
	MVP        int32
}

// Location returns the uniform location for the given name, or -1.
func Location(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// MustLocation returns the uniform location for the given name.
// Returns an error if the uniform is not found or inactive.
func MustLocation(program uint32, name string) (int32, error) {
	loc := Location(program, name)
	if loc < 0 {
		return -1, fmt.Errorf("uniform %q not found in program %d", name, program)
	}
	return loc, nil
}

// Lookup resolves the standard uniform locations for program.
func Lookup(program uint32) Locations {
	return Locations{
		Model:      Location(program, NameModel),
		View:       Location(program, NameView),
		Projection: Location(program, NameProjection),
		Normal:     Location(program, NameNormal),
		MVP:        Location(program, NameMVP),
	}
}

// Mat4 uploads m as a column-major mat4.
func Mat4(loc int32, m *math.Mat4) {
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

// Mat3 uploads m as a column-major mat3.
func Mat3(loc int32, m *math.Mat3) {
	if loc < 0 {
		return
	}
	gl.UniformMatrix3fv(loc, 1, false, m.Ptr())
}

// Vec3 uploads v as a vec3.
func Vec3(loc int32, v *math.Vector3) {
	if loc < 0 {
		return
	}
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

// Upload sends every matrix in f to the locations in l.
// The program must already be bound with gl.UseProgram.
func Upload(l Locations, f *scene.Frame) {
	Mat4(l.Model, &f.Model)
	Mat4(l.View, &f.View)
	Mat4(l.Projection, &f.Projection)
	Mat4(l.MVP, &f.MVP)
	Mat3(l.Normal, &f.Normal)
}
