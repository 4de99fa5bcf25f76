package internal

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the points, in pixels, so that hull edges on the bounding box
// are visible
const previewPadding = 20

// Space under the drawing for the caption
const captionHeight = 20

// Draw the points and their hull into a square image of the given width.
// Points are gray dots, hull edges are green, hull vertices are cyan.
func DrawHull(points []Point, hull IndexList, width int, caption string) *gg.Context {
	box := Bounds(points)
	extent := box.Size()
	if extent == 0 || math.IsInf(extent, 0) {
		extent = 1
	}
	scale := float64(width-2*previewPadding) / extent

	height := width + captionHeight
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left of the drawing area
	c.Push()
	c.Translate(0, float64(width))
	c.Scale(1, -1)
	c.Translate(previewPadding, previewPadding)
	c.Scale(scale, scale)
	c.Translate(-box.MinX, -box.MinY)

	// Dot radius stays at one pixel regardless of the scale
	radius := 1 / scale
	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, radius)
	}
	c.Fill()

	if len(hull) > 0 {
		c.SetLineWidth(2)
		first := points[hull[0]]
		c.MoveTo(first.X, first.Y)
		for _, i := range hull[1:] {
			c.LineTo(points[i].X, points[i].Y)
		}
		c.ClosePath()
		c.SetRGB(0, 1, 0)
		c.Stroke()

		c.SetRGB(0, 1, 1)
		for _, i := range hull {
			c.DrawCircle(points[i].X, points[i].Y, 3*radius)
		}
		c.Fill()
	}
	c.Pop()

	// Caption in native coordinates
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(caption, float64(width)/2, float64(width)+captionHeight/2, 0.5, 0.5)
	return c
}

// Render a hull preview to a PNG file.
func SavePreview(path string, points []Point, hull IndexList, width int) error {
	caption := fmt.Sprintf("%d points, %d hull vertices", len(points), len(hull))
	c := DrawHull(points, hull, width, caption)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save preview %s", path)
	}
	return nil
}

// Print a saved preview inline. Only terminals speaking the iTerm image
// protocol will show anything useful.
func CatPreview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
