package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-peaks/faults"
	"github.com/andareed/siftly-peaks/viewstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) openZoomWindowDrawer() tea.Cmd {
	if !m.data.session.HasPlot() {
		return m.errorNotice(viewstate.ErrNotPlotted)
	}
	zw := &m.ui.zoom
	zw.open = true
	zw.errorMsg = ""
	zw.draft = m.data.session.View()

	m.updateZoomInputsFromDraft()
	m.setZoomFocus(zoomFocusXMin)
	m.ui.mode = modeZoom
	return nil
}

func (m *model) closeZoomWindowDrawer() {
	m.ui.zoom.open = false
	m.ui.zoom.errorMsg = ""
	m.ui.mode = modeView
}

func (m *model) handleZoomWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	zw := &m.ui.zoom

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeZoomWindowDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyZoomFromInputs()
	case msg.String() == "r":
		return m, m.resetZoomDraft()
	case msg.Type == tea.KeyTab:
		m.setZoomFocus((zw.focus + 1) % zoomFocusCount)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setZoomFocus((zw.focus + zoomFocusCount - 1) % zoomFocusCount)
		return m, nil
	}

	if zw.focus == zoomFocusNavigator {
		m.navigateZoomDraft(msg)
		return m, nil
	}

	var cmd tea.Cmd
	zw.inputs[zw.focus], cmd = zw.inputs[zw.focus].Update(msg)
	return m, cmd
}

func (m *model) navigateZoomDraft(msg tea.KeyMsg) {
	zw := &m.ui.zoom
	zw.errorMsg = ""
	m.syncZoomDraftFromInputs()

	switch msg.String() {
	case "left", "h":
		zw.draft = panRect(zw.draft, -zoomPanFraction, 0)
	case "right", "l":
		zw.draft = panRect(zw.draft, zoomPanFraction, 0)
	case "up", "k":
		zw.draft = panRect(zw.draft, 0, zoomPanFraction)
	case "down", "j":
		zw.draft = panRect(zw.draft, 0, -zoomPanFraction)
	case "+", "=":
		zw.draft = scaleRect(zw.draft, 1/zoomScaleFactor)
	case "-":
		zw.draft = scaleRect(zw.draft, zoomScaleFactor)
	default:
		return
	}
	m.updateZoomInputsFromDraft()
}

func (m *model) setZoomFocus(focus int) {
	zw := &m.ui.zoom
	zw.focus = focus
	for i := range zw.inputs {
		if i == focus {
			zw.inputs[i].Focus()
		} else {
			zw.inputs[i].Blur()
		}
	}
}

func (m *model) updateZoomInputsFromDraft() {
	zw := &m.ui.zoom
	d := zw.draft
	for i, v := range []float64{d.XMin, d.XMax, d.YMin, d.YMax} {
		zw.inputs[i].SetValue(formatZoomValue(v))
	}
}

// syncZoomDraftFromInputs keeps whatever the user typed when it parses.
func (m *model) syncZoomDraftFromInputs() {
	zw := &m.ui.zoom
	r, err := parseZoomRect(zw.inputs[0].Value(), zw.inputs[1].Value(), zw.inputs[2].Value(), zw.inputs[3].Value())
	if err == nil {
		zw.draft = r
	}
}

// resetZoomDraft puts the home view back in the inputs and returns the
// plot to it.
func (m *model) resetZoomDraft() tea.Cmd {
	zw := &m.ui.zoom
	zw.errorMsg = ""

	next, err := m.data.session.Reset()
	if err != nil {
		zw.errorMsg = faults.Hint(err)
		return nil
	}
	m.setSession(next)
	zw.draft = next.View()
	m.updateZoomInputsFromDraft()
	return nil
}

func (m *model) applyZoomFromInputs() tea.Cmd {
	zw := &m.ui.zoom
	zw.errorMsg = ""

	r, err := parseZoomRect(zw.inputs[0].Value(), zw.inputs[1].Value(), zw.inputs[2].Value(), zw.inputs[3].Value())
	if err != nil {
		zw.errorMsg = faults.Hint(err)
		return nil
	}
	next, err := m.data.session.Zoom(r)
	if err != nil {
		zw.errorMsg = faults.Hint(err)
		return nil
	}
	m.setSession(next)
	zw.draft = next.View()
	m.closeZoomWindowDrawer()
	return m.startNotice("Zoomed to "+next.View().String(), "success", noticeDuration)
}

func (m *model) zoomWindowDrawerView(width int) string {
	zw := &m.ui.zoom
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	xLine := fmt.Sprintf("x: %s … %s", zw.inputs[zoomFocusXMin].View(), zw.inputs[zoomFocusXMax].View())
	yLine := fmt.Sprintf("y: %s … %s", zw.inputs[zoomFocusYMin].View(), zw.inputs[zoomFocusYMax].View())

	home := m.data.session.Frame().Home
	navMark := " "
	if zw.focus == zoomFocusNavigator {
		navMark = "▸"
	}
	xBar := navMark + " " + spanBar("x", innerWidth-2, zw.draft.XMin, zw.draft.XMax, home.XMin, home.XMax)
	yBar := "  " + spanBar("y", innerWidth-2, zw.draft.YMin, zw.draft.YMax, home.YMin, home.YMax)

	helpLine := "z: open  tab: next  enter: apply  r: reset  esc: cancel  (navigator) ←/→/↑/↓: pan  +/-: zoom"
	errorLine := ""
	if zw.errorMsg != "" {
		errorLine = "Error: " + zw.errorMsg
	}

	lines := []string{
		lineStyle.Render(xLine),
		lineStyle.Render(yLine),
		lineStyle.Render(xBar),
		lineStyle.Render(yBar),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return zoomWindowArea.Width(width).Render(content)
}

// spanBar draws where [lo, hi] sits within the home range [min, max].
func spanBar(axis string, width int, lo, hi, min, max float64) string {
	minLabel := formatZoomValue(min)
	maxLabel := formatZoomValue(max)
	prefix := axis + " "
	padding := 2
	barWidth := width - len(prefix) - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 || max <= min {
		return fmt.Sprintf("%s[%s, %s]", prefix, formatZoomValue(lo), formatZoomValue(hi))
	}

	bar := []rune(strings.Repeat("-", barWidth))
	pos := func(v float64) int {
		p := int(float64(barWidth-1) * (v - min) / (max - min))
		return clamp(p, 0, barWidth-1)
	}
	startPos, endPos := pos(lo), pos(hi)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s%s  %s  %s", prefix, minLabel, string(bar), maxLabel)
}

func (m *model) zoomStatusLabel() string {
	s := m.data.session
	switch s.Phase() {
	case viewstate.Zoomed:
		return "View: zoomed " + s.View().String()
	case viewstate.Home:
		return "View: home"
	default:
		return "View: —"
	}
}
