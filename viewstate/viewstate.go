// Package viewstate tracks the visible rectangle of the plot: the home view
// fitted to the data and the current, possibly zoomed, view.
package viewstate

import (
	"fmt"
	"math"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/series"
)

const (
	DefaultFitMargin       = 0.05
	DefaultMinSpanFraction = 1e-3
)

var (
	ErrNotPlotted = faults.New(faults.KindNoPlot, "view", "nothing has been plotted yet")
	ErrDegenerate = faults.New(faults.KindValidation, "zoom", "selection has no area")
	ErrNonFinite  = faults.New(faults.KindValidation, "zoom", "selection corners must be finite numbers")
)

type Rect struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// Corners builds a rect from two arbitrary drag corners.
func Corners(x1, y1, x2, y2 float64) Rect {
	return Rect{XMin: x1, XMax: x2, YMin: y1, YMax: y2}.Normalize()
}

func (r Rect) Normalize() Rect {
	if r.XMin > r.XMax {
		r.XMin, r.XMax = r.XMax, r.XMin
	}
	if r.YMin > r.YMax {
		r.YMin, r.YMax = r.YMax, r.YMin
	}
	return r
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

func (r Rect) Finite() bool {
	for _, v := range []float64{r.XMin, r.XMax, r.YMin, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

func (r Rect) String() string {
	return fmt.Sprintf("x[%.4g, %.4g] y[%.4g, %.4g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

type Phase int

const (
	Unset Phase = iota
	Home
	Zoomed
)

func (p Phase) String() string {
	switch p {
	case Home:
		return "home"
	case Zoomed:
		return "zoomed"
	default:
		return "unset"
	}
}

// State is a value; transitions return a new State and leave the receiver alone.
type State struct {
	phase           Phase
	home            Rect
	current         Rect
	minSpanFraction float64
}

// New starts an Unset state. A negative fraction selects the default; 0
// rejects only selections that are flat within float rounding.
func New(minSpanFraction float64) State {
	if minSpanFraction < 0 {
		minSpanFraction = DefaultMinSpanFraction
	}
	return State{minSpanFraction: minSpanFraction}
}

func (s State) Phase() Phase { return s.phase }
func (s State) Home() Rect { return s.home }
func (s State) Current() Rect { return s.current }
func (s State) Plotted() bool { return s.phase != Unset }

// NewPlot always lands in Home, whatever came before.
func (s State) NewPlot(fit Rect) State {
	fit = fit.Normalize()
	s.phase = Home
	s.home = fit
	s.current = fit
	return s
}

func (s State) Zoom(r Rect) (State, error) {
	if s.phase == Unset {
		return s, ErrNotPlotted
	}
	if !r.Finite() {
		return s, ErrNonFinite
	}
	r = r.Normalize()
	if s.degenerate(r) {
		return s, ErrDegenerate
	}
	s.phase = Zoomed
	s.current = r
	return s, nil
}

// degenerate reports a selection too thin to show anything: a side shorter
// than minSpanFraction of the view it was drawn on, or lost in float rounding.
func (s State) degenerate(r Rect) bool {
	frac := s.minSpanFraction
	minW := math.Max(s.current.Width()*frac, roundingSpan(r.XMin, r.XMax))
	minH := math.Max(s.current.Height()*frac, roundingSpan(r.YMin, r.YMax))
	return r.Width() <= minW || r.Height() <= minH
}

func roundingSpan(lo, hi float64) float64 {
	return 1e-12 * math.Max(math.Abs(lo), math.Abs(hi))
}

func (s State) Reset() (State, error) {
	if s.phase == Unset {
		return s, ErrNotPlotted
	}
	s.phase = Home
	s.current = s.home
	return s, nil
}

// AutoFit pads the bounding box of the series by margin on each side. An axis
// with no spread is widened so the rect always has area.
func AutoFit(s series.Series, margin float64) Rect {
	if s.Len() == 0 {
		return Rect{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
	}
	if margin < 0 {
		margin = 0
	}
	xMin, xMax := span(s.Xs())
	yMin, yMax := span(s.Ys())
	xMin, xMax = pad(xMin, xMax, margin)
	yMin, yMax = pad(yMin, yMax, margin)
	return Rect{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

func span(vs []float64) (float64, float64) {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func pad(lo, hi, margin float64) (float64, float64) {
	d := hi - lo
	if d <= 0 {
		w := math.Max(math.Abs(lo)*margin, 0.5)
		return lo - w, hi + w
	}
	return lo - d*margin, hi + d*margin
}
