package server

import (
	"github.com/julianstephens/habits/internal/models"
)

func strPtr(s string) *string { return &s }

// seed fills the dataset with a small community so a fresh server has
// something to rank.
func (d *dataset) seed() {
	exercise := models.Category{Name: "Exercise", Color: models.Color{Hue: 0.33, Saturation: 0.8, Brightness: 0.7}}
	mindfulness := models.Category{Name: "Mindfulness", Color: models.Color{Hue: 0.6, Saturation: 0.6, Brightness: 0.8}}
	chores := models.Category{Name: "Chores", Color: models.Color{Hue: 0.08, Saturation: 0.9, Brightness: 0.9}}

	habits := []models.Habit{
		{Name: "Bike to work", Category: exercise, Info: "Swap the commute for a ride."},
		{Name: "Daily run", Category: exercise, Info: "Any distance counts."},
		{Name: "Meditation", Category: mindfulness, Info: "Ten quiet minutes."},
		{Name: "Journaling", Category: mindfulness, Info: "Write down one thought."},
		{Name: "Wash dishes", Category: chores, Info: "An empty sink is a calm mind."},
		{Name: "Water plants", Category: chores, Info: "They notice when you forget."},
	}

	users := []models.User{
		{ID: "activeUser", Name: "Phi Long", Bio: strPtr("iOS developer")},
		{ID: "sara", Name: "Sara", Color: &models.Color{Hue: 0.9, Saturation: 0.7, Brightness: 0.8}, Bio: strPtr("Runs before sunrise")},
		{ID: "ben", Name: "Ben", Color: &models.Color{Hue: 0.55, Saturation: 0.5, Brightness: 0.9}},
		{ID: "maria", Name: "Maria", Color: &models.Color{Hue: 0.12, Saturation: 0.8, Brightness: 0.85}, Bio: strPtr("Plant parent")},
	}

	counts := map[string]map[string]int{
		"activeUser": {"Daily run": 3, "Meditation": 5, "Wash dishes": 2},
		"sara":       {"Daily run": 7, "Bike to work": 4, "Meditation": 5},
		"ben":        {"Meditation": 1, "Journaling": 2},
		"maria":      {"Water plants": 9, "Wash dishes": 2, "Daily run": 3},
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, h := range habits {
		d.habits[h.Name] = h
	}
	for _, u := range users {
		d.users[u.ID] = u
	}
	d.counts = counts
}
