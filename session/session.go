// Package session ties parsing, detection, filtering and the view together.
//
// A Session is a value. Every action returns the next Session and leaves the
// receiver as it was, so a failed action never leaves half-applied state
// behind.
package session

import (
	"github.com/andareed/siftly-peaks/export"
	"github.com/andareed/siftly-peaks/extrema"
	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/plotimage"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/viewstate"
)

type Options struct {
	Delimiter       string
	FitMargin       float64
	MinSpanFraction float64
}

func DefaultOptions() Options {
	return Options{
		Delimiter:       series.DefaultDelimiter,
		FitMargin:       viewstate.DefaultFitMargin,
		MinSpanFraction: viewstate.DefaultMinSpanFraction,
	}
}

type Session struct {
	opts     Options
	source   series.Source
	series   series.Series
	set      extrema.Set
	bounds   extrema.Bounds
	filtered *extrema.Filtered
	view     viewstate.State
}

func New(opts Options) Session {
	if opts.FitMargin < 0 {
		opts.FitMargin = viewstate.DefaultFitMargin
	}
	return Session{
		opts:   opts,
		bounds: extrema.Unbounded(),
		view:   viewstate.New(opts.MinSpanFraction),
	}
}

// Frame is what a renderer needs to draw the current state.
type Frame struct {
	Series  series.Series
	Peaks   []series.Sample
	Troughs []series.Sample
	View    viewstate.Rect
	Home    viewstate.Rect
	Phase   viewstate.Phase
}

func (s Session) HasPlot() bool          { return s.filtered != nil }
func (s Session) Source() series.Source  { return s.source }
func (s Session) Bounds() extrema.Bounds { return s.bounds }
func (s Session) Series() series.Series  { return s.series }
func (s Session) Phase() viewstate.Phase { return s.view.Phase() }
func (s Session) View() viewstate.Rect   { return s.view.Current() }

// Detected is the unfiltered detection result.
func (s Session) Detected() extrema.Set { return s.set }

func (s Session) Frame() Frame {
	f := Frame{
		Series: s.series,
		View:   s.view.Current(),
		Home:   s.view.Home(),
		Phase:  s.view.Phase(),
	}
	if s.filtered != nil {
		f.Peaks = s.series.Points(s.filtered.Peaks)
		f.Troughs = s.series.Points(s.filtered.Troughs)
	}
	return f
}

// Plot loads src, detects extrema, applies the threshold texts and fits a new
// home view. On error the receiver is returned untouched.
func (s Session) Plot(src series.Source, peakText, troughText string) (Session, Frame, error) {
	parser := series.Parser{Delimiter: s.opts.Delimiter}
	data, err := parser.Load(src)
	if err != nil {
		return s, s.Frame(), err
	}
	if data.Len() == 0 {
		return s, s.Frame(), faults.Newf(faults.KindInput, "load", "no usable x,y lines in %s", src.Label())
	}
	set := extrema.Detect(data)

	bounds, err := extrema.ParseBounds(peakText, troughText)
	if err != nil {
		return s, s.Frame(), err
	}
	filtered := extrema.Filter(data, set, bounds)

	next := s
	next.source = src
	next.series = data
	next.set = set
	next.bounds = bounds
	next.filtered = &filtered
	next.view = s.view.NewPlot(viewstate.AutoFit(data, s.opts.FitMargin))

	logging.Infof("session: plotted %d samples from %s, %d/%d peaks, %d/%d troughs",
		data.Len(), src.Label(), len(filtered.Peaks), len(set.Peaks), len(filtered.Troughs), len(set.Troughs))
	return next, next.Frame(), nil
}

func (s Session) Zoom(r viewstate.Rect) (Session, error) {
	view, err := s.view.Zoom(r)
	if err != nil {
		logging.Debugf("session: zoom %s rejected: %v", r, err)
		return s, err
	}
	next := s
	next.view = view
	return next, nil
}

func (s Session) Reset() (Session, error) {
	view, err := s.view.Reset()
	if err != nil {
		return s, err
	}
	next := s
	next.view = view
	return next, nil
}

// Export assembles the filtered extrema from the last successful plot.
func (s Session) Export() (export.Table, error) {
	return export.Assemble(s.filtered, s.series)
}

// Image describes the current view for plotimage.
func (s Session) Image(title string) plotimage.Plot {
	f := s.Frame()
	if title == "" {
		title = s.source.Label()
	}
	return plotimage.Plot{
		Title:   title,
		Samples: f.Series.Samples(),
		Peaks:   f.Peaks,
		Troughs: f.Troughs,
		View:    f.View,
	}
}
