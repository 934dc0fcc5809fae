package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

const helpWidth = 64

// Help lists key bindings plus a short note on the zoom gesture.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func (d Help) Init() tea.Cmd { return nil }

func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

const zoomNote = "Drag with the left mouse button across the plot to zoom into " +
	"that rectangle. Press r to return to the fitted view. Peaks are drawn " +
	"as ▲ and troughs as ▼; only those passing the threshold bounds are shown."

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	note := wordwrap.String(zoomNote, helpWidth-6)
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		strings.Join(lines, "\n"), note, hintStyle.Render("enter/esc to return"))
	return boxStyle(helpWidth).Render(content)
}

func (d *Help) Show() { d.visible = true }
func (d *Help) Hide() { d.visible = false }

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
