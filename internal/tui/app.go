package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/logger"
)

// App wraps the bubbletea program around the dashboard model.
type App struct {
	model Model
}

func NewApp(uc items.UseCase, debounce time.Duration, exportPath string, log logger.ZapLogger) *App {
	return &App{model: New(uc, debounce, exportPath, log)}
}

// Run blocks until the user quits the dashboard.
func (a *App) Run() error {
	program := tea.NewProgram(a.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
