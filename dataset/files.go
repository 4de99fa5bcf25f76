package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/hullgen/hull"
	"github.com/pkg/errors"
)

const (
	separator = ';'
	decimals  = 6
)

// The three files written for a dataset of a given size.
type FileSet struct {
	Points      string
	Indices     string
	FullIndices string
}

func Files(dir string, size int) FileSet {
	prefix := fmt.Sprintf("%d_points", size)
	return FileSet{
		Points:      filepath.Join(dir, prefix+".csv"),
		Indices:     filepath.Join(dir, prefix+"_indices.txt"),
		FullIndices: filepath.Join(dir, prefix+"_full_indices.csv"),
	}
}

// Create or truncate path, hand a buffered writer to fn, and make sure the
// file is flushed and closed whatever fn does.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "close %s", path)
		}
	}()

	buf := bufio.NewWriter(f)
	if err := fn(buf); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func WritePoints(path string, points []hull.Point) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodePoints(w, points)
	})
}

func WriteIndices(path string, indices []int) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeIndices(w, indices)
	})
}

// One "x;y" record per point, six decimals each.
func EncodePoints(w io.Writer, points []hull.Point) error {
	cw := csv.NewWriter(w)
	cw.Comma = separator
	record := make([]string, 2)
	for _, p := range points {
		record[0] = strconv.FormatFloat(p.X, 'f', decimals, 64)
		record[1] = strconv.FormatFloat(p.Y, 'f', decimals, 64)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func EncodeIndices(w io.Writer, indices []int) error {
	for _, i := range indices {
		if _, err := io.WriteString(w, strconv.Itoa(i)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func ReadPoints(path string) ([]hull.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	points, err := DecodePoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return points, nil
}

func ReadIndices(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	indices, err := DecodeIndices(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return indices, nil
}

// Strict counterpart of EncodePoints: every record must hold exactly two
// floats.
func DecodePoints(r io.Reader) ([]hull.Point, error) {
	cr := csv.NewReader(r)
	cr.Comma = separator
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	var points []hull.Point
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, hull.Point{X: x, Y: y})
	}
}

func DecodeIndices(r io.Reader) ([]int, error) {
	var indices []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		i, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		indices = append(indices, i)
	}
	return indices, scanner.Err()
}
