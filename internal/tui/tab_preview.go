package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cotiza/internal/render"
)

func (a App) previewDocument() string {
	return render.Document(a.eng.Snapshot(), render.Options{
		Currency:  a.currency,
		Reference: a.previewRef,
	})
}

func (a *App) handlePreviewKey(msg tea.KeyMsg) tea.Cmd {
	a.preview.SetContent(a.previewDocument())
	if msg.String() == "g" {
		a.preview.GotoTop()
		return nil
	}
	var cmd tea.Cmd
	a.preview, cmd = a.preview.Update(msg)
	return cmd
}

func (a App) renderPreviewTab() string {
	a.preview.SetContent(a.previewDocument())
	return a.preview.View() + "\n"
}
