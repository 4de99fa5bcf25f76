package main

import (
	"strconv"
	"strings"

	"github.com/osuushi/hullgen/dataset"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Flag value holding a comma separated list of dataset sizes.
type sizeList []int

func (s *sizeList) Set(value string) error {
	var sizes []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		size, err := strconv.Atoi(field)
		if err != nil {
			return errors.Errorf("invalid size %q", field)
		}
		if size <= 0 {
			return errors.Errorf("size must be positive, got %d", size)
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return errors.New("no sizes given")
	}
	*s = sizes
	return nil
}

func (s *sizeList) String() string {
	fields := make([]string, len(*s))
	for i, size := range *s {
		fields[i] = strconv.Itoa(size)
	}
	return strings.Join(fields, ",")
}

func sizesFlag(flag *kingpin.FlagClause) *sizeList {
	sizes := &sizeList{}
	flag.Default(defaultSizes()).SetValue(sizes)
	return sizes
}

func defaultSizes() string {
	sizes := sizeList(dataset.DefaultSizes)
	return sizes.String()
}
