package cli

import (
	"fmt"
	"strings"
)

// SettingsCmd shows the viewer identity and preferences.
type SettingsCmd struct{}

func (c *SettingsCmd) Run(ctx *Context) error {
	viewer, err := ctx.Store.GetViewer()
	if err != nil {
		return err
	}
	favorites, err := ctx.Store.GetFavoriteHabits()
	if err != nil {
		return err
	}
	followed, err := ctx.Store.GetFollowedUserIDs()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(favorites))
	for _, h := range favorites {
		names = append(names, h.Name)
	}

	fmt.Printf("Viewer:          %s (%s)\n", viewer.Name, viewer.ID)
	fmt.Printf("Favorite habits: %s\n", orNone(strings.Join(names, ", ")))
	fmt.Printf("Following:       %s\n", orNone(strings.Join(followed, ", ")))
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
