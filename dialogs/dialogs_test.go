package dialogs

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestExportDialogConfirm(t *testing.T) {
	d := NewExportDialog("extrema.xlsx", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: "extrema.xlsx"}, run(t, cmd))
}

func TestExportDialogLastDir(t *testing.T) {
	dir := t.TempDir()
	d := NewExportDialog("out.csv", dir)
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ExportConfirmedMsg{Path: filepath.Join(dir, "out.csv")}, run(t, cmd))
}

func TestExportDialogCancel(t *testing.T) {
	d := NewExportDialog("extrema.xlsx", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ExportCanceledMsg{}, run(t, cmd))
}

func TestSaveImageDialogTyped(t *testing.T) {
	d := NewSaveImageDialog("", "")
	for _, r := range "p.svg" {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, SaveImageConfirmedMsg{Path: "p.svg"}, run(t, cmd))
}

func TestSaveImageDialogEmptyDoesNothing(t *testing.T) {
	d := NewSaveImageDialog("", "")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestDataDialog(t *testing.T) {
	d := NewDataDialog("1,2\n2,5", 40, 8)
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, DataConfirmedMsg{Text: "1,2\n2,5"}, run(t, cmd))

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, DataCanceledMsg{}, run(t, cmd))
}

func TestHelpDialog(t *testing.T) {
	b := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset view"))
	d := NewHelpDialog([]key.Binding{b})
	assert.Contains(t, d.View(), "reset view")

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}
