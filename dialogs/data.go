package dialogs

import (
	"fmt"

	"github.com/andareed/siftly-peaks/logging"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	DataConfirmedMsg struct{ Text string }
	DataCanceledMsg  struct{}
)

var (
	dataConfirmKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "plot"))
	dataCancelKey  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	dataClearKey   = key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear"))
)

// Data is the multi-line editor for inline "x,y" samples.
type Data struct {
	area    textarea.Model
	visible bool
}

func NewDataDialog(text string, width, height int) *Data {
	ta := textarea.New()
	ta.Placeholder = "x,y per line, e.g.\n1,2\n2,5\n3,1"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(max(width, 20))
	ta.SetHeight(max(height, 3))
	ta.SetValue(text)
	ta.Focus()
	return &Data{area: ta, visible: true}
}

func (d Data) Init() tea.Cmd { return textarea.Blink }

func (d *Data) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(m, dataConfirmKey):
			text := d.area.Value()
			logging.Debugf("data dialog: confirmed %d bytes", len(text))
			return d, func() tea.Msg { return DataConfirmedMsg{Text: text} }
		case key.Matches(m, dataCancelKey):
			return d, func() tea.Msg { return DataCanceledMsg{} }
		case key.Matches(m, dataClearKey):
			d.area.Reset()
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.area, cmd = d.area.Update(msg)
	return d, cmd
}

func (d Data) Value() string { return d.area.Value() }

func (d Data) View() string {
	if !d.visible {
		return ""
	}
	hint := hintStyle.Render(fmt.Sprintf("%s to %s • %s to %s • %s to %s",
		dataConfirmKey.Help().Key, dataConfirmKey.Help().Desc,
		dataClearKey.Help().Key, dataClearKey.Help().Desc,
		dataCancelKey.Help().Key, dataCancelKey.Help().Desc))
	content := fmt.Sprintf("Inline data\n\n%s\n\n%s", d.area.View(), hint)
	return boxStyle(d.area.Width() + 8).Render(content)
}

func (d *Data) Show() {
	d.visible = true
	d.area.Focus()
}

func (d *Data) Hide() {
	d.visible = false
	d.area.Blur()
}

func (d *Data) Focus() tea.Cmd { return d.area.Focus() }
func (d *Data) Blur()          { d.area.Blur() }
func (d Data) IsVisible() bool { return d.visible }
