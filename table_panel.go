package main

import (
	"github.com/andareed/siftly-peaks/export"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	tablePanelWidth   = 52
	tableColumnWidth  = 10
	tablePanelMinRows = 3
)

func newExtremaTable() table.Model {
	cols := make([]table.Column, len(export.Header))
	for i, h := range export.Header {
		cols[i] = table.Column{Title: h, Width: tableColumnWidth}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(tablePanelMinRows),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(tableBorder)).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("#e0e0e0")).
		Background(lipgloss.Color("#3a3a3a")).
		Bold(false)
	t.SetStyles(st)
	return t
}

// extremaRows renders the export table; missing cells show as blanks.
func extremaRows(tbl export.Table) []table.Row {
	rows := make([]table.Row, tbl.Len())
	for i := range rows {
		cells := tbl.Row(i)
		row := make(table.Row, len(cells))
		for j, c := range cells {
			row[j] = c.Format("")
		}
		rows[i] = row
	}
	return rows
}

func (m *model) refreshExtremaTable() {
	tbl, err := m.data.session.Export()
	if err != nil {
		m.extrema.SetRows(nil)
		return
	}
	m.extrema.SetRows(extremaRows(tbl))
}

func (m *model) resizeExtremaTable() {
	h := m.terminalHeight - 10
	if h < tablePanelMinRows {
		h = tablePanelMinRows
	}
	m.extrema.SetHeight(h)
}

func (m *model) tablePanelView() string {
	return tablePanelArea.Render(m.extrema.View())
}
