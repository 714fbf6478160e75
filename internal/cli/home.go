package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/tui/home"
)

// HomeCmd launches the leaderboard and followed-users screen.
type HomeCmd struct{}

func (c *HomeCmd) Run(ctx *Context) error {
	model, err := home.NewModel(ctx.Client, ctx.Store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
