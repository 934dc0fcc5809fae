package main

import (
	"strings"
	"testing"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
	"github.com/andareed/siftly-peaks/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() plotGeometry {
	return plotGeometry{
		origin: canvas.Point{X: 5, Y: 18},
		graphW: 50,
		graphH: 18,
		view:   viewstate.Rect{XMin: 0, XMax: 49, YMin: 0, YMax: 17},
		ok:     true,
	}
}

func TestCellToData(t *testing.T) {
	g := testGeometry()

	x, y := g.cellToData(16, 14)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 3.0, y, 1e-9)

	// outside the graph area clamps to the nearest edge
	x, y = g.cellToData(0, 30)
	assert.InDelta(t, 0.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y = g.cellToData(200, -4)
	assert.InDelta(t, 49.0, x, 1e-9)
	assert.InDelta(t, 17.0, y, 1e-9)
}

func TestInGraph(t *testing.T) {
	g := testGeometry()
	assert.True(t, g.inGraph(16, 14))
	assert.False(t, g.inGraph(5, 14), "y axis column")
	assert.False(t, g.inGraph(16, 18), "x axis row")
	assert.False(t, plotGeometry{}.inGraph(16, 14))
}

func TestRenderPlotUnset(t *testing.T) {
	out, g := renderPlot(session.Frame{}, 40, 10, dragState{})
	assert.Contains(t, out, "Nothing plotted yet")
	assert.False(t, g.ok)
}

func TestRenderPlotMarksExtrema(t *testing.T) {
	_, f, err := session.New(session.DefaultOptions()).Plot(series.Source{Text: "1,2\n2,5\n3,1\n4,6\n5,0"}, "", "")
	require.NoError(t, err)

	out, g := renderPlot(f, 60, 20, dragState{})
	require.True(t, g.ok)
	assert.Equal(t, f.View, g.view)
	assert.Equal(t, 2, strings.Count(out, string(peakRune)))
	assert.Equal(t, 1, strings.Count(out, string(troughRune)))
}
