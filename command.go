package main

import (
	"fmt"
)

type Command int

const (
	CmdNone Command = iota
	CmdOpen
	CmdPeakMin
	CmdTroughMax
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdOpen:
		return "file: "
	case CmdPeakMin:
		return "peak ≥ "
	case CmdTroughMax:
		return "trough ≤ "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdPeakMin, CmdTroughMax:
		return "enter: apply (empty clears)   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

// startCommand enters command mode, seeding the buffer with the current value.
func (m *model) startCommand(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
	switch cmd {
	case CmdOpen:
		m.ui.command.buf = m.data.source.Path
	case CmdPeakMin:
		m.ui.command.buf = m.data.peakText
	case CmdTroughMax:
		m.ui.command.buf = m.data.troughText
	}
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	return m.commandPrompt(m.ui.command.cmd) + m.ui.command.buf + "▏"
}

func (m *model) commandRightContext() string {
	f := m.data.frame
	return fmt.Sprintf("▲ %d/%d ▼ %d/%d",
		len(f.Peaks), len(m.data.session.Detected().Peaks),
		len(f.Troughs), len(m.data.session.Detected().Troughs),
	)
}
