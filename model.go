package main

import (
	"github.com/andareed/siftly-peaks/config"
	"github.com/andareed/siftly-peaks/dialogs"
	"github.com/andareed/siftly-peaks/logging"
	"github.com/andareed/siftly-peaks/series"
	"github.com/andareed/siftly-peaks/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modeZoom
)

type model struct {
	data dataState
	ui   uiState
	cfg  *config.Config
	keys Keymap

	zones        *zone.Manager
	geom         plotGeometry // geometry of the last rendered plot, for mouse mapping
	extrema      table.Model
	help         help.Model
	activeDialog dialogs.Dialog
	lastDir      string

	ready          bool
	terminalWidth  int
	terminalHeight int
}

func newModel(cfg *config.Config, src series.Source) *model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &model{
		cfg:   cfg,
		keys:  Keys,
		zones: zone.New(),
		help:  help.New(),
		data: dataState{
			session:    session.New(cfg.SessionOptions()),
			source:     src,
			peakText:   cfg.Thresholds.PeakMin,
			troughText: cfg.Thresholds.TroughMax,
		},
	}
	m.ui.zoom = newZoomWindowUI()
	m.extrema = newExtremaTable()
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sfpeaks: initialised (source %q)", m.data.source.Label())
	if m.data.source.HasText() || m.data.source.Path != "" {
		return m.plot()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		m.resizeExtremaTable()
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dialogs.DataConfirmedMsg:
		m.closeDialog()
		m.data.source.Text = msg.Text
		return m, m.plot()
	case dialogs.DataCanceledMsg:
		m.closeDialog()
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportTable(msg.Path)
	case dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil
	case dialogs.ExportOKMsg:
		return m, m.startNotice(
			"Exported "+plural(msg.Rows, "row")+" to "+msg.Path, "success", noticeDuration)
	case dialogs.ExportErrorMsg:
		return m, m.errorNotice(msg.Err)

	case dialogs.SaveImageConfirmedMsg:
		m.closeDialog()
		return m, m.saveImage(msg.Path)
	case dialogs.SaveImageCanceledMsg:
		m.closeDialog()
		return m, nil
	case dialogs.SaveImageOKMsg:
		return m, m.startNotice("Saved plot to "+msg.Path, "success", noticeDuration)
	case dialogs.SaveImageErrorMsg:
		return m, m.errorNotice(msg.Err)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeZoom:
		return m.handleZoomWindowKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(k.Legend()))
	case key.Matches(msg, k.InlineData):
		w, h := m.dialogSize()
		return m, m.openDialog(dialogs.NewDataDialog(m.data.source.Text, w, h))
	case key.Matches(msg, k.OpenFile):
		m.startCommand(CmdOpen)
	case key.Matches(msg, k.PeakMin):
		m.startCommand(CmdPeakMin)
	case key.Matches(msg, k.TroughMax):
		m.startCommand(CmdTroughMax)
	case key.Matches(msg, k.Replot):
		return m, m.plot()
	case key.Matches(msg, k.ZoomWindow):
		return m, m.openZoomWindowDrawer()
	case key.Matches(msg, k.ResetView):
		return m, m.resetView()
	case key.Matches(msg, k.ToggleTable):
		m.ui.showTable = !m.ui.showTable
		m.resizeExtremaTable()
	case key.Matches(msg, k.Export):
		return m, m.openExportDialog()
	case key.Matches(msg, k.SaveImage):
		return m, m.openSaveImageDialog()
	case key.Matches(msg, k.CopyTable):
		return m, m.copyTable()
	case m.ui.showTable && (key.Matches(msg, k.RowDown) || key.Matches(msg, k.RowUp)):
		var cmd tea.Cmd
		m.extrema, cmd = m.extrema.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return tea.Batch(d.Init(), d.Focus())
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) dialogSize() (int, int) {
	w := clamp(m.terminalWidth-20, 30, 80)
	h := clamp(m.terminalHeight-14, 4, 20)
	return w, h
}
