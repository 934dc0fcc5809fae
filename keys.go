package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit        key.Binding
	InlineData  key.Binding
	OpenFile    key.Binding
	Replot      key.Binding
	PeakMin     key.Binding
	TroughMax   key.Binding
	ZoomWindow  key.Binding
	ResetView   key.Binding
	ToggleTable key.Binding
	Export      key.Binding
	SaveImage   key.Binding
	CopyTable   key.Binding
	OpenHelp    key.Binding
	RowDown     key.Binding
	RowUp       key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	InlineData: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "enter inline data"),
	),
	OpenFile: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open data file"),
	),
	Replot: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "plot / replot"),
	),
	PeakMin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "set peak minimum"),
	),
	TroughMax: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "set trough maximum"),
	),
	ZoomWindow: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "zoom to typed range"),
	),
	ResetView: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset view"),
	),
	ToggleTable: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "toggle extrema table"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export table (.xlsx .csv .json)"),
	),
	SaveImage: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save plot image (.png .jpg .svg)"),
	),
	CopyTable: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy table to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "table down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "table up"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.InlineData,
		k.OpenFile,
		k.Replot,
		k.PeakMin,
		k.TroughMax,
		k.ZoomWindow,
		k.ResetView,
		k.ToggleTable,
		k.RowDown,
		k.RowUp,
		k.Export,
		k.SaveImage,
		k.CopyTable,
		k.OpenHelp,
		k.Quit,
	}
}

// ShortHelp feeds the footer legend through bubbles/help.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenHelp, k.InlineData, k.OpenFile, k.PeakMin, k.TroughMax, k.ResetView, k.Export}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Legend()}
}
