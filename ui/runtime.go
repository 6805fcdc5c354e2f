package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(dir string) error {
	editor := NewEditor(dir)
	if err := tea.NewProgram(editor, tea.WithAltScreen()).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
