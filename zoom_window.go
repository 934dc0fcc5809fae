package main

import (
	"strconv"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/viewstate"
)

const (
	zoomPanFraction = 0.1
	zoomScaleFactor = 2.0
)

// parseZoomField reads one drawer input. Blank or malformed text is an error
// naming the field.
func parseZoomField(name, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, faults.Newf(faults.KindValidation, "zoom", "%s is empty", name)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, faults.Newf(faults.KindValidation, "zoom", "%s %q is not a number", name, text)
	}
	return v, nil
}

func parseZoomRect(xmin, xmax, ymin, ymax string) (viewstate.Rect, error) {
	var r viewstate.Rect
	var err error
	if r.XMin, err = parseZoomField("x min", xmin); err != nil {
		return r, err
	}
	if r.XMax, err = parseZoomField("x max", xmax); err != nil {
		return r, err
	}
	if r.YMin, err = parseZoomField("y min", ymin); err != nil {
		return r, err
	}
	if r.YMax, err = parseZoomField("y max", ymax); err != nil {
		return r, err
	}
	return r.Normalize(), nil
}

func formatZoomValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// panRect shifts r by a fraction of its own size.
func panRect(r viewstate.Rect, dx, dy float64) viewstate.Rect {
	w, h := r.Width(), r.Height()
	r.XMin += dx * w
	r.XMax += dx * w
	r.YMin += dy * h
	r.YMax += dy * h
	return r
}

// scaleRect grows (factor > 1) or shrinks r about its centre.
func scaleRect(r viewstate.Rect, factor float64) viewstate.Rect {
	if factor <= 0 {
		return r
	}
	cx := (r.XMin + r.XMax) / 2
	cy := (r.YMin + r.YMax) / 2
	hw := r.Width() / 2 * factor
	hh := r.Height() / 2 * factor
	return viewstate.Rect{XMin: cx - hw, XMax: cx + hw, YMin: cy - hh, YMax: cy + hh}
}
