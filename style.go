package main

import "github.com/charmbracelet/lipgloss"

const (
	sampleColor  = "#5f87ff"
	peakColor    = "#ff5f5f"
	troughColor  = "#5fd75f"
	axisColor    = "#6c6c6c"
	labelColor   = "#a0a0a0"
	selectColor  = "#f5c542"
	emptyPlotFG  = "#8a8a8a"
	tableBorder  = "240"
	drawerBorder = "245"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	plotFrameStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tableBorder))

	sampleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(sampleColor))
	peakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(peakColor)).Bold(true)
	troughStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(troughColor)).Bold(true)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(axisColor))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(labelColor))
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(selectColor))

	emptyPlotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(emptyPlotFG)).Italic(true)

	zoomWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(drawerBorder)).
			Padding(0, 0).BorderLeft(true)

	tablePanelArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(drawerBorder)).
			Padding(0, 1)
)
