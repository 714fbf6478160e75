package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/models"
)

// UsersCmd lists all users, or toggles following one.
type UsersCmd struct {
	Follow string `help:"Toggle following the user with this id." placeholder:"ID"`
}

func (c *UsersCmd) Run(ctx *Context) error {
	usersByID, err := api.FetchUsers(context.Background(), ctx.Client)
	if err != nil {
		return err
	}

	if c.Follow != "" {
		user, ok := usersByID[c.Follow]
		if !ok {
			return fmt.Errorf("unknown user %q", c.Follow)
		}
		if err := ctx.Store.ToggleFollowed(user); err != nil {
			return err
		}
	}

	viewer, err := ctx.Store.GetViewer()
	if err != nil {
		return err
	}
	followedIDs, err := ctx.Store.GetFollowedUserIDs()
	if err != nil {
		return err
	}
	followed := make(map[string]bool, len(followedIDs))
	for _, id := range followedIDs {
		followed[id] = true
	}

	users := make([]models.User, 0, len(usersByID))
	for _, u := range usersByID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Less(users[j])
	})

	for _, u := range users {
		marker := " "
		switch {
		case u.ID == viewer.ID:
			marker = "*"
		case followed[u.ID]:
			marker = "+"
		}
		bio := ""
		if u.Bio != nil {
			bio = *u.Bio
		}
		fmt.Printf("%s %-12s %-16s %s\n", marker, u.ID, u.Name, bio)
	}
	return nil
}
