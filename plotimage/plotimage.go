// Package plotimage renders the current view of a plot to a PNG, JPEG or SVG file.
package plotimage

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/fileio"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/viewstate"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 640
)

type Plot struct {
	Title   string
	Samples []series.Sample
	Peaks   []series.Sample
	Troughs []series.Sample
	View    viewstate.Rect
}

type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// pointStyle draws markers only, no connecting line.
func pointStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    width,
		DotColor:    col,
	}
}

// Chart builds the go-chart definition for p. Points outside the view are left out.
func Chart(p Plot, opts Options) chart.Chart {
	view := p.View.Normalize()
	w, h := opts.size()

	frame := chart.ContinuousSeries{
		Name:    "frame",
		XValues: []float64{view.XMin, view.XMax},
		YValues: []float64{view.YMin, view.YMax},
		Style:   chart.Style{Hidden: true},
	}
	out := []chart.Series{frame}
	add := func(name string, pts []series.Sample, st chart.Style) {
		xs, ys := clip(pts, view)
		if len(xs) == 0 {
			return
		}
		out = append(out, chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st})
	}
	add("data", p.Samples, pointStyle(chart.ColorBlue, 3))
	add("peaks", p.Peaks, pointStyle(chart.ColorRed, 6))
	add("troughs", p.Troughs, pointStyle(chart.ColorGreen, 6))

	ch := chart.Chart{
		Title:      p.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 12, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "x",
			Range:          &chart.ContinuousRange{Min: view.XMin, Max: view.XMax},
			ValueFormatter: tick,
		},
		YAxis: chart.YAxis{
			Name:           "y",
			Range:          &chart.ContinuousRange{Min: view.YMin, Max: view.YMax},
			ValueFormatter: tick,
		},
		Series: out,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

func tick(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.4g", f)
	}
	return fmt.Sprint(v)
}

func clip(pts []series.Sample, view viewstate.Rect) (xs, ys []float64) {
	for _, p := range pts {
		if !view.Contains(p.X, p.Y) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	return xs, ys
}

// Render writes the image in the given go-chart format (chart.PNG or chart.SVG).
func Render(w io.Writer, p Plot, opts Options, format chart.RendererProvider) error {
	ch := Chart(p, opts)
	if err := ch.Render(format, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

const jpegQuality = 90

// encoder renders a plot into one file format.
type encoder func(w io.Writer, p Plot, opts Options) error

func withProvider(format chart.RendererProvider) encoder {
	return func(w io.Writer, p Plot, opts Options) error {
		return Render(w, p, opts, format)
	}
}

// RenderJPEG rasterises through the PNG renderer and re-encodes the pixels.
func RenderJPEG(w io.Writer, p Plot, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, p, opts, chart.PNG); err != nil {
		return err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode raster: %w", err)
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return nil
}

func encoderFor(path string) (encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return withProvider(chart.PNG), nil
	case ".svg":
		return withProvider(chart.SVG), nil
	case ".jpg", ".jpeg":
		return RenderJPEG, nil
	default:
		return nil, faults.Newf(faults.KindValidation, "save image", "unsupported image extension %q (want .png, .jpg or .svg)", filepath.Ext(path))
	}
}

// Write saves the plot at path; the extension picks PNG, JPEG or SVG.
func Write(path string, p Plot, opts Options) error {
	if v := p.View.Normalize(); !v.Finite() || v.Width() <= 0 || v.Height() <= 0 {
		return faults.New(faults.KindNoPlot, "save image", "nothing plotted yet")
	}
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	logging.Infof("plotimage: saving %s (%d samples, view %s)", path, len(p.Samples), p.View)
	return fileio.WriteAtomic(path, func(w io.Writer) error {
		return encode(w, p, opts)
	})
}
