package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
)

type (
	SaveImageConfirmedMsg struct{ Path string }
	SaveImageCanceledMsg  struct{}
	SaveImageErrorMsg     struct{ Err error }
	SaveImageOKMsg        struct{ Path string }
)

// SaveImage asks where to write a picture of the current view.
type SaveImage struct {
	pathInput
}

func NewSaveImageDialog(defaultName, lastDir string) *SaveImage {
	return &SaveImage{pathInput: newPathInput("Save plot as: ", defaultName, lastDir)}
}

func (d SaveImage) Init() tea.Cmd { return d.input.Focus() }

func (d *SaveImage) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	cmd := d.update(msg, "save image",
		func(p string) tea.Msg { return SaveImageConfirmedMsg{Path: p} },
		SaveImageCanceledMsg{})
	return d, cmd
}

func (d SaveImage) View() string {
	return d.view("enter to save (.png .jpg .svg) • esc to cancel")
}

func (d *SaveImage) Show()          { d.show() }
func (d *SaveImage) Hide()          { d.hide() }
func (d *SaveImage) Focus() tea.Cmd { return d.input.Focus() }
func (d *SaveImage) Blur()          { d.input.Blur() }
func (d SaveImage) IsVisible() bool { return d.visible }
