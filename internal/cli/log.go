package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/models"
)

// LogCmd submits a logged-habit event for the viewer. With no
// argument it offers an interactive picker.
type LogCmd struct {
	Habit string `arg:"" optional:"" help:"Habit name to log. Prompts when omitted."`
}

func (c *LogCmd) Run(ctx *Context) error {
	habitsByName, err := api.FetchHabits(context.Background(), ctx.Client)
	if err != nil {
		return err
	}

	name := c.Habit
	if name == "" {
		name, err = pickHabit(habitsByName)
		if err != nil {
			return err
		}
	} else if _, ok := habitsByName[name]; !ok {
		return fmt.Errorf("unknown habit %q", name)
	}

	viewer, err := ctx.Store.GetViewer()
	if err != nil {
		return err
	}

	event := models.LoggedHabit{
		UserID:    viewer.ID,
		HabitName: name,
		Timestamp: time.Now(),
	}
	if err := api.LogHabit(context.Background(), ctx.Client, event); err != nil {
		return err
	}

	fmt.Printf("Logged %q.\n", name)
	return nil
}

func pickHabit(habitsByName map[string]models.Habit) (string, error) {
	names := make([]string, 0, len(habitsByName))
	for name := range habitsByName {
		names = append(names, name)
	}
	sort.Strings(names)

	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		options = append(options, huh.NewOption(name, name))
	}

	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which habit did you do?").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
