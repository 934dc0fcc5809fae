package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-peaks/dialogs"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = "1,2\n2,5\n3,1\n4,6\n5,0"

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func send(m *model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func plottedModel(t *testing.T) *model {
	t.Helper()
	m := newModel(nil, series.Source{})
	send(m, dialogs.DataConfirmedMsg{Text: testData})
	require.True(t, m.data.session.HasPlot())
	return m
}

func TestResetBeforePlotIsInformational(t *testing.T) {
	m := newModel(nil, series.Source{})
	send(m, runes("r"))
	assert.Equal(t, "info", m.ui.noticeType)
	assert.Equal(t, viewstate.Unset, m.data.session.Phase())
}

func TestDataDialogPlots(t *testing.T) {
	m := plottedModel(t)
	assert.Len(t, m.data.frame.Peaks, 2)
	assert.Len(t, m.data.frame.Troughs, 1)
	assert.Equal(t, "success", m.ui.noticeType)
	assert.Equal(t, 2, len(m.extrema.Rows()))
}

func TestGarbageReplotKeepsPlot(t *testing.T) {
	m := plottedModel(t)
	send(m, dialogs.DataConfirmedMsg{Text: "x,y\nnot,data"})

	assert.Equal(t, "info", m.ui.noticeType)
	assert.Contains(t, m.ui.noticeMsg, "no usable x,y lines")
	assert.Equal(t, 5, m.data.frame.Series.Len())
	assert.Len(t, m.extrema.Rows(), 2)
}

func TestPeakMinCommand(t *testing.T) {
	m := plottedModel(t)

	send(m, runes("p"))
	assert.Equal(t, modeCommand, m.ui.mode)
	send(m, runes("5.5"), enter)

	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, "5.5", m.data.peakText)
	assert.Equal(t, []series.Sample{{X: 4, Y: 6}}, m.data.frame.Peaks)
}

func TestBadThresholdKeepsPlot(t *testing.T) {
	m := plottedModel(t)

	send(m, runes("p"), runes("abc"), enter)
	assert.Equal(t, "warn", m.ui.noticeType)
	assert.Contains(t, m.ui.noticeMsg, "abc")
	assert.Len(t, m.data.frame.Peaks, 2)
}

func TestCommandEscCancels(t *testing.T) {
	m := plottedModel(t)
	send(m, runes("t"), runes("0.5"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeView, m.ui.mode)
	assert.Empty(t, m.data.troughText)
	assert.Len(t, m.data.frame.Troughs, 1)
}

func TestDragZoomAndReset(t *testing.T) {
	m := plottedModel(t)
	_, m.geom = renderPlot(m.data.frame, 60, 20, dragState{})
	require.True(t, m.geom.ok)

	o := m.geom.origin
	m.beginDrag(o.X+3, o.Y-3)
	require.True(t, m.ui.drag.active)
	m.moveDrag(o.X+20, o.Y-10)
	m.endDrag(o.X+20, o.Y-10)

	assert.False(t, m.ui.drag.active)
	assert.Equal(t, viewstate.Zoomed, m.data.session.Phase())

	x1, y1 := m.geom.cellToData(o.X+3, o.Y-3)
	x2, y2 := m.geom.cellToData(o.X+20, o.Y-10)
	assert.Equal(t, viewstate.Corners(x1, y1, x2, y2), m.data.frame.View)

	send(m, runes("r"))
	assert.Equal(t, viewstate.Home, m.data.session.Phase())
	assert.Equal(t, m.data.frame.Home, m.data.frame.View)
}

func TestDragWithoutAreaIsRejected(t *testing.T) {
	m := plottedModel(t)
	_, m.geom = renderPlot(m.data.frame, 60, 20, dragState{})
	home := m.data.frame.View

	o := m.geom.origin
	m.beginDrag(o.X+5, o.Y-5)
	m.endDrag(o.X+5, o.Y-5)

	assert.Equal(t, viewstate.Home, m.data.session.Phase())
	assert.Equal(t, home, m.data.frame.View)
	assert.Equal(t, "warn", m.ui.noticeType)
}

func TestDragAlongOneColumnIsRejected(t *testing.T) {
	m := plottedModel(t)
	_, m.geom = renderPlot(m.data.frame, 60, 20, dragState{})
	home := m.data.frame.View

	o := m.geom.origin
	m.beginDrag(o.X+5, o.Y-2)
	m.endDrag(o.X+5, o.Y-12)

	assert.Equal(t, viewstate.Home, m.data.session.Phase())
	assert.Equal(t, home, m.data.frame.View)
	assert.Contains(t, m.ui.noticeMsg, "no area")
}

func TestDeepDragZoomStillWorks(t *testing.T) {
	m := plottedModel(t)
	for i := 0; i < 3; i++ {
		_, m.geom = renderPlot(m.data.frame, 60, 20, dragState{})
		o := m.geom.origin
		m.beginDrag(o.X+2, o.Y-2)
		m.endDrag(o.X+7, o.Y-7)
		require.Equal(t, "success", m.ui.noticeType, "zoom %d", i+1)
	}
	assert.Equal(t, viewstate.Zoomed, m.data.session.Phase())
}

func TestZoomDrawerApplies(t *testing.T) {
	m := plottedModel(t)

	send(m, runes("z"))
	require.Equal(t, modeZoom, m.ui.mode)

	zw := &m.ui.zoom
	for i, v := range []string{"1", "3", "0", "4"} {
		zw.inputs[i].SetValue(v)
	}
	send(m, enter)

	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, viewstate.Rect{XMin: 1, XMax: 3, YMin: 0, YMax: 4}, m.data.frame.View)
}

func TestZoomDrawerNeedsPlot(t *testing.T) {
	m := newModel(nil, series.Source{})
	send(m, runes("z"))
	assert.Equal(t, modeView, m.ui.mode)
	assert.Equal(t, "info", m.ui.noticeType)
}

func TestExportBeforePlot(t *testing.T) {
	m := newModel(nil, series.Source{})
	send(m, runes("e"))
	assert.Nil(t, m.activeDialog)
	assert.Equal(t, "warn", m.ui.noticeType)
}

func TestViewRendersFooter(t *testing.T) {
	m := plottedModel(t)
	send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	assert.Contains(t, out, "VIEW")
	assert.Contains(t, out, "HOME")
	assert.Contains(t, out, "(inline data)")
}

func TestExportConfirmedWritesFile(t *testing.T) {
	m := plottedModel(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	_, cmd := m.Update(dialogs.ExportConfirmedMsg{Path: path})
	require.NotNil(t, cmd)
	assert.Equal(t, dialogs.ExportOKMsg{Path: path, Rows: 2}, cmd())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "peakX,peakY,troughX,troughY\n2,5,3,1\n4,6,,\n", string(data))
	assert.Equal(t, filepath.Dir(path), m.lastDir)
}

func TestSaveImageConfirmed(t *testing.T) {
	m := plottedModel(t)
	path := filepath.Join(t.TempDir(), "plot.svg")

	_, cmd := m.Update(dialogs.SaveImageConfirmedMsg{Path: path})
	require.NotNil(t, cmd)
	assert.Equal(t, dialogs.SaveImageOKMsg{Path: path}, cmd())
	assert.FileExists(t, path)

	bad := filepath.Join(t.TempDir(), "plot.bmp")
	_, cmd = m.Update(dialogs.SaveImageConfirmedMsg{Path: bad})
	msg, ok := cmd().(dialogs.SaveImageErrorMsg)
	require.True(t, ok)
	send(m, msg)
	assert.Equal(t, "warn", m.ui.noticeType)
	assert.NoFileExists(t, bad)
}
