package main

import (
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-peaks/clipboard"
	"github.com/andareed/siftly-peaks/dialogs"
	"github.com/andareed/siftly-peaks/export"
	"github.com/andareed/siftly-peaks/plotimage"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) openExportDialog() tea.Cmd {
	if _, err := m.data.session.Export(); err != nil {
		return m.errorNotice(err)
	}
	return m.openDialog(dialogs.NewExportDialog(m.cfg.Export.DefaultName, m.lastDir))
}

// exportTable writes the table before returning so no other action can
// interleave with the write; the outcome is reported as a message.
func (m *model) exportTable(path string) tea.Cmd {
	tbl, err := m.data.session.Export()
	if err != nil {
		return m.errorNotice(err)
	}
	m.lastDir = filepath.Dir(path)
	opts := export.Options{
		MissingMarker: m.cfg.Export.MissingMarker,
		Sheet:         m.cfg.Export.Sheet,
	}
	var result tea.Msg = dialogs.ExportOKMsg{Path: path, Rows: tbl.Len()}
	if err := export.Write(path, tbl, opts); err != nil {
		result = dialogs.ExportErrorMsg{Err: err}
	}
	return func() tea.Msg { return result }
}

func (m *model) openSaveImageDialog() tea.Cmd {
	if !m.data.session.HasPlot() {
		return m.startNotice("Nothing plotted yet", "info", noticeDuration)
	}
	return m.openDialog(dialogs.NewSaveImageDialog(m.cfg.Image.DefaultName, m.lastDir))
}

func (m *model) saveImage(path string) tea.Cmd {
	if !m.data.session.HasPlot() {
		return m.startNotice("Nothing plotted yet", "info", noticeDuration)
	}
	m.lastDir = filepath.Dir(path)
	plot := m.data.session.Image("")
	opts := plotimage.Options{Width: m.cfg.Image.Width, Height: m.cfg.Image.Height}
	var result tea.Msg = dialogs.SaveImageOKMsg{Path: path}
	if err := plotimage.Write(path, plot, opts); err != nil {
		result = dialogs.SaveImageErrorMsg{Err: err}
	}
	return func() tea.Msg { return result }
}

func (m *model) copyTable() tea.Cmd {
	tbl, err := m.data.session.Export()
	if err != nil {
		return m.errorNotice(err)
	}
	var b strings.Builder
	if err := export.WriteTSV(&b, tbl); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	if err := clipboard.Copy(b.String()); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Copied "+plural(tbl.Len(), "row")+" to clipboard", "success", noticeDuration)
}
