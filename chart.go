package main

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
	"github.com/andareed/siftly-peaks/viewstate"
	"github.com/charmbracelet/lipgloss"
)

const (
	sampleRune = '•'
	peakRune   = '▲'
	troughRune = '▼'

	plotZoneID = "plot"

	minPlotWidth  = 20
	minPlotHeight = 6
)

// plotGeometry maps canvas cells back to data coordinates. It mirrors how the
// linechart scales points: graph area of graphW x graphH cells, one column
// right of the Y axis and one row above the X axis.
type plotGeometry struct {
	origin canvas.Point
	graphW int
	graphH int
	view   viewstate.Rect
	ok     bool
}

func geometryOf(lc *linechart.Model, view viewstate.Rect) plotGeometry {
	return plotGeometry{
		origin: lc.Origin(),
		graphW: lc.GraphWidth(),
		graphH: lc.GraphHeight(),
		view:   view,
		ok:     lc.GraphWidth() > 1 && lc.GraphHeight() > 1,
	}
}

// cellToData converts a canvas cell to data coordinates, clamping to the graph area.
func (g plotGeometry) cellToData(cx, cy int) (float64, float64) {
	sx := clamp(cx-g.origin.X-1, 0, g.graphW-1)
	sy := clamp(g.origin.Y-1-cy, 0, g.graphH-1)
	x := g.view.XMin + float64(sx)*g.view.Width()/float64(g.graphW-1)
	y := g.view.YMin + float64(sy)*g.view.Height()/float64(g.graphH-1)
	return x, y
}

// inGraph reports whether the cell lies on the plotting area rather than
// the axes or labels.
func (g plotGeometry) inGraph(cx, cy int) bool {
	sx := cx - g.origin.X - 1
	sy := g.origin.Y - 1 - cy
	return g.ok && sx >= 0 && sx < g.graphW && sy >= 0 && sy < g.graphH
}

func axisLabel(_ int, v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// renderPlot draws the frame's current view. Only points inside the view are drawn.
func renderPlot(f session.Frame, w, h int, drag dragState) (string, plotGeometry) {
	w = max(w, minPlotWidth)
	h = max(h, minPlotHeight)
	if f.Phase == viewstate.Unset {
		msg := emptyPlotStyle.Render("Nothing plotted yet. Press i to enter data or o to open a file.")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg), plotGeometry{}
	}

	v := f.View
	lc := linechart.New(w, h, v.XMin, v.XMax, v.YMin, v.YMax)
	lc.XLabelFormatter = axisLabel
	lc.YLabelFormatter = axisLabel
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.UpdateGraphSizes()
	lc.DrawXYAxisAndLabel()

	plotPoints(&lc, v, f.Series.Samples(), sampleRune, sampleStyle)
	plotPoints(&lc, v, f.Peaks, peakRune, peakStyle)
	plotPoints(&lc, v, f.Troughs, troughRune, troughStyle)

	g := geometryOf(&lc, v)
	if drag.active {
		drawSelection(&lc.Canvas, g, drag)
	}
	return lc.View(), g
}

func plotPoints(lc *linechart.Model, view viewstate.Rect, pts []series.Sample, r rune, st lipgloss.Style) {
	for _, p := range pts {
		if !view.Contains(p.X, p.Y) {
			continue
		}
		lc.DrawRuneWithStyle(canvas.Float64Point{X: p.X, Y: p.Y}, r, st)
	}
}

// drawSelection outlines the drag rectangle, clipped to the graph area.
func drawSelection(c *canvas.Model, g plotGeometry, d dragState) {
	x0, x1 := order(d.startX, d.curX)
	y0, y1 := order(d.startY, d.curY)
	set := func(x, y int, r rune) {
		if g.inGraph(x, y) {
			c.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(r, selectStyle))
		}
	}
	for x := x0 + 1; x < x1; x++ {
		set(x, y0, '─')
		set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		set(x0, y, '│')
		set(x1, y, '│')
	}
	set(x0, y0, '┌')
	set(x1, y0, '┐')
	set(x0, y1, '└')
	set(x1, y1, '┘')
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
