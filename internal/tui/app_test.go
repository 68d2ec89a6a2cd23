package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/config"
	"cotiza/internal/engine"
)

func testApp(t *testing.T) (App, *engine.Engine) {
	t.Helper()
	eng := engine.New()
	a := NewApp(eng, config.DefaultConfig())

	model, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return model.(App), eng
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTabSwitching(t *testing.T) {
	a, _ := testApp(t)
	require.Equal(t, 0, a.activeTab)

	model, _ := a.Update(keyRune('v'))
	a = model.(App)
	assert.Equal(t, 3, a.activeTab)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(App)
	assert.Equal(t, 0, a.activeTab)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a = model.(App)
	assert.Equal(t, 3, a.activeTab)
}

func TestAddProjectOpensForm(t *testing.T) {
	a, eng := testApp(t)

	model, _ := a.Update(keyRune('a'))
	a = model.(App)

	require.NotNil(t, a.form)
	assert.Equal(t, formProject, a.formKind)
	assert.Len(t, eng.Snapshot().Projects, 1)
	assert.Equal(t, eng.Snapshot().Projects[0].ID, a.targetProject)
}

func TestPreviewScrollsThroughViewport(t *testing.T) {
	a, eng := testApp(t)

	// Enough projects that the document overflows a 12-row window.
	for i := 0; i < 5; i++ {
		eng.AddProject()
	}

	model, _ := a.Update(keyRune('v'))
	a = model.(App)
	require.Equal(t, 0, a.preview.YOffset)

	model, cmd := a.Update(keyRune('j'))
	a = model.(App)
	assert.Equal(t, 1, a.preview.YOffset)
	_ = cmd // the viewport's command is surfaced, not swallowed

	model, _ = a.Update(keyRune('j'))
	a = model.(App)
	assert.Equal(t, 2, a.preview.YOffset)

	model, _ = a.Update(keyRune('g'))
	a = model.(App)
	assert.Equal(t, 0, a.preview.YOffset)
}

func TestTaxToggleKey(t *testing.T) {
	a, eng := testApp(t)
	require.True(t, eng.Snapshot().IGVEnabled)

	model, _ := a.Update(keyRune('x'))
	a = model.(App)
	assert.False(t, eng.Snapshot().IGVEnabled)

	model, _ = a.Update(keyRune('x'))
	_ = model.(App)
	assert.True(t, eng.Snapshot().IGVEnabled)
}
