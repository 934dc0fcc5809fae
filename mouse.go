package main

import (
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/viewstate"
	tea "github.com/charmbracelet/bubbletea"
)

// dragState holds a zoom gesture in canvas cells.
type dragState struct {
	active bool
	startX int
	startY int
	curX   int
	curY   int
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil || m.zones == nil {
		return m, nil
	}
	z := m.zones.Get(plotZoneID)
	if z == nil {
		return m, nil
	}
	x, y := z.Pos(msg)
	inside := x >= 0 && y >= 0

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			m.beginDrag(x, y)
		}
	case msg.Action == tea.MouseActionMotion:
		if inside {
			m.moveDrag(x, y)
		}
	case msg.Action == tea.MouseActionRelease:
		if !inside {
			x, y = m.ui.drag.curX, m.ui.drag.curY
		}
		return m, m.endDrag(x, y)
	}
	return m, nil
}

func (m *model) beginDrag(cx, cy int) {
	if !m.geom.inGraph(cx, cy) {
		return
	}
	m.ui.drag = dragState{active: true, startX: cx, startY: cy, curX: cx, curY: cy}
}

func (m *model) moveDrag(cx, cy int) {
	if !m.ui.drag.active {
		return
	}
	m.ui.drag.curX = cx
	m.ui.drag.curY = cy
}

// endDrag turns the finished gesture into a zoom. A press and release in
// the same column or row has no area on screen.
func (m *model) endDrag(cx, cy int) tea.Cmd {
	d := m.ui.drag
	if !d.active {
		return nil
	}
	m.ui.drag = dragState{}
	if cx == d.startX || cy == d.startY {
		logging.Debugf("mouse: drag (%d,%d)-(%d,%d) has no area", d.startX, d.startY, cx, cy)
		return m.errorNotice(viewstate.ErrDegenerate)
	}

	x1, y1 := m.geom.cellToData(d.startX, d.startY)
	x2, y2 := m.geom.cellToData(cx, cy)
	logging.Debugf("mouse: drag (%d,%d)-(%d,%d) -> x[%g,%g] y[%g,%g]", d.startX, d.startY, cx, cy, x1, x2, y1, y2)
	return m.applyZoom(viewstate.Corners(x1, y1, x2, y2))
}
