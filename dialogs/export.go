package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct {
		Path string
		Rows int
	}
)

// Export asks where to write the extrema table. The extension picks the format.
type Export struct {
	pathInput
}

func NewExportDialog(defaultName, lastDir string) *Export {
	return &Export{pathInput: newPathInput("Export table as: ", defaultName, lastDir)}
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	cmd := d.update(msg, "export",
		func(p string) tea.Msg { return ExportConfirmedMsg{Path: p} },
		ExportCanceledMsg{})
	return d, cmd
}

func (d Export) View() string {
	return d.view("enter to export (.xlsx .csv .json) • esc to cancel")
}

func (d *Export) Show()          { d.show() }
func (d *Export) Hide()          { d.hide() }
func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
