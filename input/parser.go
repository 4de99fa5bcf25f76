// Parsing of point lists given on the command line or in files.
package input

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/hullgen/hull"
	"github.com/pkg/errors"
)

// Parse points from command line arguments. A single argument naming a .csv
// or .svg file is read as a file. Otherwise the arguments are joined and read
// as "x;y" pairs if they contain a semicolon, "x,y" pairs if they contain a
// comma, and as alternating x and y arguments if neither. Tokens that don't
// parse are skipped.
func ParseArgs(args []string) ([]hull.Point, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if len(args) == 1 {
		lower := strings.ToLower(args[0])
		switch {
		case strings.HasSuffix(lower, ".csv"):
			return ReadCSVFile(args[0])
		case strings.HasSuffix(lower, ".svg"):
			return ReadSVGFile(args[0])
		}
	}

	joined := strings.Join(args, " ")
	switch {
	case strings.Contains(joined, ";"):
		return parsePairs(joined, ";"), nil
	case strings.Contains(joined, ","):
		return parsePairs(joined, ","), nil
	}
	return parseAlternating(args), nil
}

// Whitespace separated tokens of the form "x<sep>y".
func parsePairs(input, sep string) []hull.Point {
	var points []hull.Point
	for _, token := range strings.Fields(input) {
		parts := strings.Split(token, sep)
		if len(parts) != 2 {
			continue
		}
		if p, ok := parsePoint(parts[0], parts[1]); ok {
			points = append(points, p)
		}
	}
	return points
}

// Every two arguments make a point. A trailing odd argument is ignored.
func parseAlternating(args []string) []hull.Point {
	var points []hull.Point
	for i := 0; i+1 < len(args); i += 2 {
		if p, ok := parsePoint(args[i], args[i+1]); ok {
			points = append(points, p)
		}
	}
	return points
}

func parsePoint(xs, ys string) (hull.Point, bool) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return hull.Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return hull.Point{}, false
	}
	return hull.Point{X: x, Y: y}, true
}

// Read a ";" separated file. A line may hold several pairs (x;y;x;y). Blank
// lines and lines starting with # are skipped, as are pairs that don't parse.
func ReadCSVFile(path string) ([]hull.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open point file %s", path)
	}
	defer f.Close()

	var points []hull.Point
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var coords []string
		for _, field := range strings.Split(line, ";") {
			if strings.TrimSpace(field) != "" {
				coords = append(coords, field)
			}
		}
		for i := 0; i+1 < len(coords); i += 2 {
			if p, ok := parsePoint(coords[i], coords[i+1]); ok {
				points = append(points, p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read point file %s", path)
	}
	return points, nil
}
