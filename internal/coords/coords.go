// Package coords parses the textual coordinate inputs of the demo
// programs: points, segments, clip windows and stroke widths given as
// comma-separated numbers on the command line.
//
// coords is the input boundary of the module. The rasterization
// kernel accepts any numeric input, so malformed text must be caught
// here; callers report the error and never invoke the kernel with
// partial data.
package coords

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/gogpu/rast"
)

// ErrSyntax reports input that does not have the expected shape
// (wrong number of fields or a field that is not a number).
var ErrSyntax = errors.New("coords: malformed input")

// fields splits s on commas and checks the field count, trimming
// surrounding spaces so "50, 50" parses like "50,50".
func fields(s string, n int) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q: want %d comma-separated values, got %d",
			ErrSyntax, s, n, len(parts))
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

func parseInt(s, field string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrSyntax, field, s)
	}
	return v, nil
}

func parseFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrSyntax, field, s)
	}
	return v, nil
}

// ParsePoint parses an integer pixel coordinate of the form "x,y".
func ParsePoint(s string) (image.Point, error) {
	parts, err := fields(s, 2)
	if err != nil {
		return image.Point{}, err
	}
	x, err := parseInt(parts[0], "x")
	if err != nil {
		return image.Point{}, err
	}
	y, err := parseInt(parts[1], "y")
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(x, y), nil
}

// ParseRealPoint parses a float64 coordinate of the form "x,y".
func ParseRealPoint(s string) (rast.Point, error) {
	parts, err := fields(s, 2)
	if err != nil {
		return rast.Point{}, err
	}
	x, err := parseFloat(parts[0], "x")
	if err != nil {
		return rast.Point{}, err
	}
	y, err := parseFloat(parts[1], "y")
	if err != nil {
		return rast.Point{}, err
	}
	return rast.Pt(x, y), nil
}

// ParseSegment parses a float64 segment of the form "x0,y0,x1,y1".
func ParseSegment(s string) (rast.Segment, error) {
	parts, err := fields(s, 4)
	if err != nil {
		return rast.Segment{}, err
	}
	var v [4]float64
	names := [4]string{"x0", "y0", "x1", "y1"}
	for i, p := range parts {
		v[i], err = parseFloat(p, names[i])
		if err != nil {
			return rast.Segment{}, err
		}
	}
	return rast.Seg(v[0], v[1], v[2], v[3]), nil
}

// ParseWindow parses a clip window of the form "xmin,ymin,xmax,ymax".
// Reversed bounds are normalized, matching the kernel's window
// policy.
func ParseWindow(s string) (rast.Window, error) {
	parts, err := fields(s, 4)
	if err != nil {
		return rast.Window{}, err
	}
	var v [4]float64
	names := [4]string{"xmin", "ymin", "xmax", "ymax"}
	for i, p := range parts {
		v[i], err = parseFloat(p, names[i])
		if err != nil {
			return rast.Window{}, err
		}
	}
	return rast.NewWindow(v[0], v[1], v[2], v[3]), nil
}

// ParseWidth parses a stroke width. Any integer is accepted; widths
// below 1 are the kernel's clamping policy to apply, not a parse
// error.
func ParseWidth(s string) (int, error) {
	return parseInt(strings.TrimSpace(s), "width")
}
