package main

import (
	"github.com/andareed/siftly-peaks/viewstate"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	zoomFocusXMin = iota
	zoomFocusXMax
	zoomFocusYMin
	zoomFocusYMax
	zoomFocusNavigator
	zoomFocusCount
)

const (
	zoomWindowDrawerContentHeight = 6
	zoomWindowDrawerHeight        = zoomWindowDrawerContentHeight + 2
	zoomInputWidth                = 14
)

type zoomWindowUI struct {
	open     bool
	focus    int
	inputs   [4]textinput.Model
	errorMsg string
	draft    viewstate.Rect
}

func initZoomInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = zoomInputWidth
	ti.Prompt = ""
	return ti
}

func newZoomWindowUI() zoomWindowUI {
	return zoomWindowUI{
		inputs: [4]textinput.Model{
			initZoomInput("x min"),
			initZoomInput("x max"),
			initZoomInput("y min"),
			initZoomInput("y max"),
		},
	}
}
