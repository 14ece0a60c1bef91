// Package raster renders perturbation results and noise fields to images
// for visual tuning and pixel-level tests. It is a debug surface, not a
// document format.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/MeKo-Tech/roughen"
	"github.com/MeKo-Tech/roughen/noise"
)

// Draw renders a path into a w by h alpha mask, multiplying coordinates
// by scale first. Closed paths are filled with the vector rasterizer;
// open paths are stroked by stamping discs along each segment.
func Draw(p roughen.Path, w, h int, scale float64) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", w, h)
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	pts := pathPoints(p, scale)
	if len(pts) < 2 {
		return dst, nil
	}

	if p.Close {
		fillRing(dst, pts, w, h)
	} else {
		strokePolyline(dst, pts, 1.5)
	}
	return dst, nil
}

// FieldImage renders a noise field as a grayscale image, mapping [-1, 1]
// to [0, 255]. frequency scales pixel coordinates into noise space; more
// than one octave uses the fractal sum with lacunarity 2.
func FieldImage(f *noise.Field, w, h int, frequency float64, octaves int, persistence float64) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", w, h)
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := float64(x) * frequency
			ny := float64(y) * frequency
			var v float64
			if octaves <= 1 {
				v = f.Perlin2(nx, ny)
			} else {
				v = f.Fractal2(nx, ny, octaves, persistence, 2.0)
			}
			img.SetGray(x, y, color.Gray{Y: uint8((v + 1) / 2 * 255)})
		}
	}
	return img, nil
}

type point struct {
	x, y float64
}

// pathPoints collects the move/line coordinates of a path, scaled onto
// the canvas.
func pathPoints(p roughen.Path, scale float64) []point {
	pts := make([]point, 0, len(p.Commands))
	for _, c := range p.Commands {
		switch c.Op {
		case roughen.MoveTo, roughen.LineTo:
			pts = append(pts, point{c.X * scale, c.Y * scale})
		}
	}
	return pts
}

func fillRing(dst *image.Alpha, pts []point, w, h int) {
	ras := vector.NewRasterizer(w, h)

	first := true
	for _, pt := range pts {
		fx := float32(pt.x)
		fy := float32(pt.y)
		if first {
			ras.MoveTo(fx, fy)
			first = false
		} else {
			ras.LineTo(fx, fy)
		}
	}
	ras.ClosePath()

	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
}

func strokePolyline(dst *image.Alpha, pts []point, radius float64) {
	const step = 0.75

	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[i]
		p1 := pts[i+1]

		dx := p1.x - p0.x
		dy := p1.y - p0.y
		segLen := math.Hypot(dx, dy)
		if segLen == 0 {
			drawDisc(dst, p0.x, p0.y, radius)
			continue
		}

		steps := int(math.Ceil(segLen / step))
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			drawDisc(dst, p0.x+dx*t, p0.y+dy*t, radius)
		}
	}
}

func drawDisc(dst *image.Alpha, cx, cy, radius float64) {
	b := dst.Bounds()
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX >= b.Max.X {
		maxX = b.Max.X - 1
	}
	if maxY >= b.Max.Y {
		maxY = b.Max.Y - 1
	}

	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5) - cx
			dy := (float64(y) + 0.5) - cy
			if dx*dx+dy*dy <= r2 {
				dst.Pix[dst.PixOffset(x, y)] = 255
			}
		}
	}
}
