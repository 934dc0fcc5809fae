package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-peaks/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pathInput is the single-line file name prompt shared by the export and
// save image dialogs.
type pathInput struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func newPathInput(prompt, defaultName, lastDir string) pathInput {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return pathInput{input: ti, visible: true, lastDir: lastDir}
}

// resolve returns the path to write, or "" when there is nothing to use.
func (p pathInput) resolve() string {
	val := strings.TrimSpace(p.input.Value())
	if val == "" {
		// fall back to placeholder if user left it blank
		val = p.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if p.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		val = filepath.Join(p.lastDir, filepath.Base(val))
	}
	return val
}

// update handles enter/esc via the given constructors and forwards the rest
// to the text input.
func (p *pathInput) update(msg tea.Msg, name string, confirmed func(string) tea.Msg, canceled tea.Msg) tea.Cmd {
	if !p.visible {
		return nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := p.resolve()
			if path == "" {
				return nil
			}
			logging.Debugf("%s dialog: confirmed %s", name, path)
			return func() tea.Msg { return confirmed(path) }
		case "esc":
			logging.Debugf("%s dialog: canceled", name)
			return func() tea.Msg { return canceled }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p pathInput) view(hint string) string {
	if !p.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", p.input.View(), hintStyle.Render(hint))
	return boxStyle(60).Render(content)
}

func (p *pathInput) show() {
	p.visible = true
	p.input.Focus()
}

func (p *pathInput) hide() {
	p.visible = false
	p.input.Blur()
}
