// Package preview rasterizes paths to grayscale images for quick visual
// inspection of edits.
//
// The path is scaled uniformly to fit the image, filled, and optionally
// every command end point is marked with a small square so that split
// points are visible.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/vpath"
)

// Options controls the output image.
type Options struct {
	Width, Height int
	// Padding is the margin, in pixels, kept free around the path.
	Padding float64
	// MarkerSize is the half width of the end point markers in pixels.
	// Zero disables markers.
	MarkerSize float64
}

// DefaultOptions returns a 256x256 preview with an 8 pixel margin.
func DefaultOptions() Options {
	return Options{Width: 256, Height: 256, Padding: 8}
}

// fit maps path coordinates onto the image.
func fit(bbox vpath.Rect, o Options) vpath.Matrix {
	availW := float64(o.Width) - 2*o.Padding
	availH := float64(o.Height) - 2*o.Padding
	scale := 1.0
	switch w, h := bbox.Width(), bbox.Height(); {
	case w > 0 && h > 0:
		scale = math.Min(availW/w, availH/h)
	case w > 0:
		scale = availW / w
	case h > 0:
		scale = availH / h
	}
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}
	// Center the scaled bounding box.
	offX := (float64(o.Width) - bbox.Width()*scale) / 2
	offY := (float64(o.Height) - bbox.Height()*scale) / 2
	return vpath.Translate(-bbox.Min.X, -bbox.Min.Y).
		Then(vpath.Scale(scale, scale), vpath.Translate(offX, offY))
}

// Rasterize fills p into a new alpha image.
func Rasterize(p *vpath.Path, o Options) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, o.Width, o.Height))
	if p.IsEmpty() || o.Width <= 0 || o.Height <= 0 {
		return dst
	}

	m := fit(p.BoundingBox(), o)
	r := vector.NewRasterizer(o.Width, o.Height)
	pt := func(q vpath.Point) (float32, float32) {
		q = m.TransformPoint(q)
		return float32(q.X), float32(q.Y)
	}

	for _, sub := range p.SubPaths() {
		cmds := sub.Commands()
		for _, c := range cmds {
			pts := c.Points()
			switch c.Verb() {
			case vpath.Move:
				r.MoveTo(pt(pts[1]))
			case vpath.Line:
				r.LineTo(pt(pts[1]))
			case vpath.Quad:
				cx, cy := pt(pts[1])
				x, y := pt(pts[2])
				r.QuadTo(cx, cy, x, y)
			case vpath.Cubic:
				c1x, c1y := pt(pts[1])
				c2x, c2y := pt(pts[2])
				x, y := pt(pts[3])
				r.CubeTo(c1x, c1y, c2x, c2y, x, y)
			case vpath.Close:
				r.ClosePath()
			}
		}
		if !sub.IsClosed() {
			r.ClosePath()
		}
	}

	if o.MarkerSize > 0 {
		s := float32(o.MarkerSize)
		for _, c := range p.Commands() {
			x, y := pt(c.End())
			r.MoveTo(x-s, y-s)
			r.LineTo(x+s, y-s)
			r.LineTo(x+s, y+s)
			r.LineTo(x-s, y+s)
			r.ClosePath()
		}
	}

	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	vpath.Logger().Debug("preview: rasterized path",
		"width", o.Width, "height", o.Height, "subpaths", p.NumSubPaths())
	return dst
}

// WritePNG rasterizes p and encodes it as a PNG with black ink on white.
func WritePNG(w io.Writer, p *vpath.Path, o Options) error {
	mask := Rasterize(p, o)
	img := image.NewGray(mask.Bounds())
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(img, img.Bounds(), image.Black, image.Point{}, mask, image.Point{}, draw.Over)
	return png.Encode(w, img)
}
