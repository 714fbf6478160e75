package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/tui/userdetail"
)

// UserCmd launches the detail screen for one user.
type UserCmd struct {
	ID string `arg:"" help:"User id to inspect."`
}

func (c *UserCmd) Run(ctx *Context) error {
	users, err := api.FetchUsers(context.Background(), ctx.Client)
	if err != nil {
		return err
	}

	user, ok := users[c.ID]
	if !ok {
		return fmt.Errorf("unknown user %q", c.ID)
	}

	p := tea.NewProgram(userdetail.NewModel(ctx.Client, ctx.Images, user), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
