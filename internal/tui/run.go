package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"xiangqi/internal/config"
)

func Run(cfg config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
