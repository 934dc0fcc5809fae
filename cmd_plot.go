package main

import (
	"fmt"

	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/session"
	"github.com/andareed/siftly-peaks/viewstate"
	tea "github.com/charmbracelet/bubbletea"
)

// plot runs the full pipeline on the current source and threshold texts.
// A failure leaves the previous plot on screen.
func (m *model) plot() tea.Cmd {
	next, frame, err := m.data.session.Plot(m.data.source, m.data.peakText, m.data.troughText)
	if err != nil {
		logging.Warnf("Plot: %v", err)
		return m.errorNotice(err)
	}
	m.setSession(next)
	m.data.frame = frame
	m.ui.drag = dragState{}

	set := next.Detected()
	msg := fmt.Sprintf("Plotted %s · ▲ %d/%d · ▼ %d/%d",
		plural(frame.Series.Len(), "sample"),
		len(frame.Peaks), len(set.Peaks), len(frame.Troughs), len(set.Troughs))
	return m.startNotice(msg, "success", noticeDuration)
}

// setSession swaps in the next session and refreshes everything derived from it.
func (m *model) setSession(next session.Session) {
	m.data.session = next
	m.data.frame = next.Frame()
	m.refreshExtremaTable()
}

func (m *model) applyZoom(r viewstate.Rect) tea.Cmd {
	next, err := m.data.session.Zoom(r)
	if err != nil {
		return m.errorNotice(err)
	}
	m.setSession(next)
	return m.startNotice("Zoomed to "+next.View().String(), "success", noticeDuration)
}

func (m *model) resetView() tea.Cmd {
	next, err := m.data.session.Reset()
	if err != nil {
		return m.errorNotice(err)
	}
	m.setSession(next)
	return m.startNotice("View reset", "info", noticeDuration)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
