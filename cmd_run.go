package main

import (
	"strings"

	"github.com/andareed/siftly-peaks/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdOpen:
		m.data.source.Path = buf
		logging.Infof("Open: data path set to %q", buf)
		if m.data.source.HasText() {
			return m.startNotice("Inline data is still set and takes precedence (i, ctrl+l to clear)", "warn", noticeDuration)
		}
		return m.plot()

	case CmdPeakMin:
		m.data.peakText = buf
		return m.replotIfPlotted()

	case CmdTroughMax:
		m.data.troughText = buf
		return m.replotIfPlotted()
	}
	return nil
}

// replotIfPlotted applies threshold changes straight away once there is a plot.
func (m *model) replotIfPlotted() tea.Cmd {
	if !m.data.session.HasPlot() {
		return m.startNotice("Threshold saved; it applies on the next plot", "info", noticeDuration)
	}
	return m.plot()
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyCtrlU:
		m.ui.command.buf = ""
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	// append printable runes (more than one when pasted)
	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
