// User facing reports printed by the command line tool.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hullgen/hull"
)

type Console struct {
	w  io.Writer
	au aurora.Aurora
}

func NewConsole(w io.Writer, colors bool) *Console {
	return &Console{w: w, au: aurora.NewAurora(colors)}
}

func (c *Console) Analysis(analysis hull.Analysis) {
	coordinates := "real (float64)"
	if analysis.IsInteger {
		coordinates = "integer"
	}

	fmt.Fprintf(c.w, "\n%s\n", c.au.Bold("--- Input analysis ---"))
	fmt.Fprintf(c.w, "Points: %s\n", humanize.Comma(int64(analysis.PointCount)))
	fmt.Fprintf(c.w, "Coordinates: %s\n", coordinates)
	fmt.Fprintf(c.w, "Size: %s\n", analysis.SizeClass)
	fmt.Fprintf(c.w, "Recommended strategy: %s\n", c.au.Cyan(analysis.Strategy))
	if analysis.EstimatedReduction > 0 {
		fmt.Fprintf(c.w, "Expected reduction: %.1f%%\n", analysis.EstimatedReduction*100)
	}
	fmt.Fprintf(c.w, "Bounding box: %.2f\n", analysis.BoundingBoxSize)
}

// Report a computed hull. Perimeter and area are only shown for hulls with
// at least three vertices.
func (c *Console) Results(hullPoints []hull.Point, elapsed time.Duration, strategy string) {
	fmt.Fprintf(c.w, "\n%s\n", c.au.Bold("--- Results ---"))
	fmt.Fprintf(c.w, "Elapsed: %s\n", elapsed)
	fmt.Fprintf(c.w, "Hull vertices: %d\n", c.au.Green(len(hullPoints)))
	fmt.Fprintf(c.w, "Backend: %s\n", strategy)

	if len(hullPoints) >= 3 {
		fmt.Fprintf(c.w, "Perimeter: %.3f\n", hull.Perimeter(hullPoints))
		fmt.Fprintf(c.w, "Area: %.3f\n", hull.Area(hullPoints))
	}

	fmt.Fprintf(c.w, "\nVertices:\n")
	for _, p := range hullPoints {
		fmt.Fprintf(c.w, "  (%.2f, %.2f)\n", p.X, p.Y)
	}
}

func (c *Console) Generated(size, hullVertices int) {
	fmt.Fprintf(c.w, "%s %d_points (%s points, %d on the hull)\n",
		c.au.Green("✔ generated"), size, humanize.Comma(int64(size)), hullVertices)
}

func (c *Console) Verified(size int, err error) {
	if err != nil {
		fmt.Fprintf(c.w, "%s %d_points: %v\n", c.au.Red("✘ invalid"), size, err)
		return
	}
	fmt.Fprintf(c.w, "%s %d_points\n", c.au.Green("✔ valid"), size)
}

func (c *Console) Failed(err error) {
	fmt.Fprintf(c.w, "%s %v\n", c.au.Red("error:"), err)
}

func (c *Console) Note(format string, args ...interface{}) {
	fmt.Fprintf(c.w, "%s\n", c.au.Yellow(fmt.Sprintf(format, args...)))
}
