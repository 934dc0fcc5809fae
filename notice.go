package main

import (
	"time"

	"github.com/andareed/siftly-peaks/faults"
	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

func noticeText(msg, kind string) string {
	if msg == "" {
		return ""
	}
	var icon string
	switch kind {
	case "info":
		icon = "ℹ"
	case "success":
		icon = "✓"
	case "warn":
		icon = "!"
	case "error":
		icon = "×"
	default:
		icon = ""
	}
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (m *model) startNotice(msg, msgType string, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeType = msgType

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

// errorNotice shows the corrective hint for err. Missing input and empty
// plots are informational, not failures.
func (m *model) errorNotice(err error) tea.Cmd {
	kind := "error"
	switch faults.KindOf(err) {
	case faults.KindNoPlot, faults.KindInput:
		kind = "info"
	case faults.KindValidation, faults.KindExport:
		kind = "warn"
	}
	return m.startNotice(faults.Hint(err), kind, noticeDuration)
}
