// Package preview rasterizes a wireframe of the scene so the matrices can
// be checked without a GPU.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	gomath "math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/glcore/internal/scene"
	"github.com/Faultbox/glcore/pkg/math"
)

// Options controls how the wireframe is drawn.
type Options struct {
	Width, Height int
	Background    color.Color
	Stroke        color.Color
	LineWidth     float32 // in pixels
}

// DefaultOptions returns a white-on-dark style at the given size.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Stroke:     color.RGBA{R: 230, G: 230, B: 230, A: 255},
		LineWidth:  1.5,
	}
}

// cubeCorners are the corners of a unit cube centered on the origin.
var cubeCorners = [8]math.Vector3{
	{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Render draws every frame's model as a unit-cube wireframe projected
// through its MVP matrix. Edges with a corner behind the camera are skipped.
func Render(frames []scene.Frame, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r := vector.NewRasterizer(opts.Width, opts.Height)
	w, h := float32(opts.Width), float32(opts.Height)

	for i := range frames {
		var screen [8][2]float32
		var visible [8]bool
		for c, p := range cubeCorners {
			ndc, ok := scene.Project(&frames[i].MVP, p)
			visible[c] = ok
			screen[c] = [2]float32{(ndc.X + 1) / 2 * w, (1 - ndc.Y) / 2 * h}
		}
		for _, e := range cubeEdges {
			if !visible[e[0]] || !visible[e[1]] {
				continue
			}
			a, b, ok := clip(screen[e[0]], screen[e[1]], w, h, opts.LineWidth)
			if ok {
				addLine(r, a, b, opts.LineWidth)
			}
		}
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(opts.Stroke), image.Point{})
	return dst
}

// clip trims segment ab to the image bounds grown by margin
// (Liang-Barsky). ok is false when nothing is left.
func clip(a, b [2]float32, w, h, margin float32) (ca, cb [2]float32, ok bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-dx, a[0] + margin},
		{dx, w + margin - a[0]},
		{-dy, a[1] + margin},
		{dy, h + margin - a[1]},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return ca, cb, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return ca, cb, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return ca, cb, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	ca = [2]float32{a[0] + t0*dx, a[1] + t0*dy}
	cb = [2]float32{a[0] + t1*dx, a[1] + t1*dy}
	return ca, cb, true
}

// addLine adds a line segment to r as a quad of the given width.
func addLine(r *vector.Rasterizer, a, b [2]float32, width float32) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(gomath.Hypot(float64(dx), float64(dy)))
	if l == 0 || gomath.IsNaN(float64(l)) || gomath.IsInf(float64(l), 0) {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	r.MoveTo(a[0]+nx, a[1]+ny)
	r.LineTo(b[0]+nx, b[1]+ny)
	r.LineTo(b[0]-nx, b[1]-ny)
	r.LineTo(a[0]-nx, a[1]-ny)
	r.ClosePath()
}

// Encode writes img in the given format ("webp" or "png").
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported preview format %q", format)
	}
}

// WriteFile encodes img to path, choosing the format from the extension.
func WriteFile(path string, img image.Image) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format != "webp" && format != "png" {
		return fmt.Errorf("unsupported preview format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
