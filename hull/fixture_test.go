package hull_test

import (
	"embed"
	"log"

	"github.com/osuushi/hullgen/hull"
	"github.com/osuushi/hullgen/input"
)

// SVG fixtures, sketched in a vector editor. Polygon vertices and circle
// centers become points; see input.ReadSVG.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []hull.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := input.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}
