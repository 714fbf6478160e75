package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/snapshot"
)

// HabitsCmd lists all habits grouped by favorite/category, or toggles
// a favorite.
type HabitsCmd struct {
	Favorite string `help:"Toggle the named habit as a favorite." placeholder:"NAME"`
}

const favoriteSection = "Favorites"

func (c *HabitsCmd) Run(ctx *Context) error {
	habitsByName, err := api.FetchHabits(context.Background(), ctx.Client)
	if err != nil {
		return err
	}

	if c.Favorite != "" {
		habit, ok := habitsByName[c.Favorite]
		if !ok {
			return fmt.Errorf("unknown habit %q", c.Favorite)
		}
		if err := ctx.Store.ToggleFavorite(habit); err != nil {
			return err
		}
	}

	favorites, err := ctx.Store.GetFavoriteHabits()
	if err != nil {
		return err
	}
	isFavorite := make(map[string]bool, len(favorites))
	for _, h := range favorites {
		isFavorite[h.Name] = true
	}

	// Favorites first, then categories ascending by name
	grouped := make(map[string][]models.Habit)
	for _, habit := range habitsByName {
		sec := habit.Category.Name
		if isFavorite[habit.Name] {
			sec = favoriteSection
		}
		grouped[sec] = append(grouped[sec], habit)
	}

	sectionIDs := make([]string, 0, len(grouped))
	itemsBySection := make(map[string][]string, len(grouped))
	for sec, habits := range grouped {
		sort.Slice(habits, func(i, j int) bool {
			return habits[i].Less(habits[j])
		})
		ids := make([]string, 0, len(habits))
		for _, h := range habits {
			ids = append(ids, h.ID())
		}
		sectionIDs = append(sectionIDs, sec)
		itemsBySection[sec] = ids
	}
	sort.Slice(sectionIDs, func(i, j int) bool {
		a, b := sectionIDs[i], sectionIDs[j]
		if (a == favoriteSection) != (b == favoriteSection) {
			return a == favoriteSection
		}
		return a < b
	})

	snap := snapshot.Build(sectionIDs, itemsBySection, nil)
	for _, sec := range snap.Sections {
		fmt.Println(sec.ID)
		for _, name := range sec.Items {
			fmt.Printf("  %-20s %s\n", name, habitsByName[name].Info)
		}
	}
	return nil
}
