package main

import (
	"fmt"

	"github.com/andareed/siftly-peaks/dialogs"
	"github.com/andareed/siftly-peaks/extrema"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/viewstate"
	"github.com/charmbracelet/lipgloss"
)

const (
	appMarginW = 4 // appstyle margin, both sides
	appMarginH = 2
	footerH    = 2
	frameW     = 2
)

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()

	modeInput := ""
	if m.ui.mode == modeCommand {
		modeInput = m.activeCommandLine()
	}

	bounds := m.data.session.Bounds()
	st := footerState{
		Mode:        modeLabel(m.ui.mode, m.ui.command.cmd),
		ModeInput:   modeInput,
		FileName:    m.data.source.Label(),
		PeakLabel:   extrema.FormatBound(bounds.PeakMin),
		TroughLabel: extrema.FormatBound(bounds.TroughMax),
		Peaks:       len(m.data.frame.Peaks),
		Troughs:     len(m.data.frame.Troughs),
		View:        phaseLabel(m.data.session.Phase()),
	}
	if m.ui.mode == modeCommand {
		st.StatusMessage = m.commandHintsLine(m.ui.command.cmd) + "   " + m.commandRightContext()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" {
		st.StatusMessage = m.zoomStatusLabel() + summaryLabel(m.data.frame.Series.Summary())
	}

	m.help.Width = width / 2
	st.Legend = m.help.ShortHelpView(m.keys.ShortHelp())

	if logging.IsDebugMode() {
		g := m.geom
		st.StatusMessage += fmt.Sprintf(" | dbg term=%dx%d graph=%dx%d origin=%d,%d",
			m.terminalWidth, m.terminalHeight, g.graphW, g.graphH, g.origin.X, g.origin.Y)
	}

	return renderFooter(width, st, styles)
}

func summaryLabel(sum series.Summary) string {
	if sum.Count == 0 {
		return ""
	}
	return fmt.Sprintf(" · n=%d y∈[%.4g, %.4g] mean %.4g", sum.Count, sum.MinY, sum.MaxY, sum.MeanY)
}

func phaseLabel(p viewstate.Phase) string {
	switch p {
	case viewstate.Home:
		return "HOME"
	case viewstate.Zoomed:
		return "ZOOMED"
	default:
		return "UNSET"
	}
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Center(m.activeDialog.View(), m.terminalWidth, m.terminalHeight)
	}

	contentW := max(minPlotWidth+frameW, m.terminalWidth-appMarginW)
	plotH := m.terminalHeight - appMarginH - footerH - frameW
	if m.ui.zoom.open {
		plotH -= zoomWindowDrawerHeight
	}

	var side string
	plotW := contentW - frameW
	if m.ui.showTable {
		side = m.tablePanelView()
		plotW -= lipgloss.Width(side)
	}

	plot, geom := renderPlot(m.data.frame, plotW, plotH, m.ui.drag)
	m.geom = geom
	body := plotFrameStyle.Render(m.zones.Mark(plotZoneID, plot))
	if side != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	parts := []string{body}
	if m.ui.zoom.open {
		parts = append(parts, m.zoomWindowDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return m.zones.Scan(appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}
