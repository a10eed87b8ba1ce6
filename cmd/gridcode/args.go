package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/subplot2grid/grid"
)

var errBadArg = errors.New("malformed argument")

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: %w", s, errBadArg)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, errBadArg)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, errBadArg)
	}
	return width, height, nil
}

// parseRect parses "x0,y0,x1,y1".
func parseRect(s string) (grid.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return grid.Rect{}, fmt.Errorf("rect %q: want x0,y0,x1,y1: %w", s, errBadArg)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return grid.Rect{}, fmt.Errorf("rect %q: %w", s, errBadArg)
		}
		v[i] = n
	}
	return grid.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}
