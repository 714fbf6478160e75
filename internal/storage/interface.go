// Package storage persists the viewer's identity and preferences in a
// simple key-value settings store with JSON-serialized values.
package storage

import "github.com/julianstephens/habits/internal/models"

// Provider is the settings store consumed by the CLI and the screens.
type Provider interface {
	// Init creates the store, its schema, and first-run defaults.
	Init() error
	// Load opens an existing store.
	Load() error
	Close() error

	// GetViewer returns the current viewer identity.
	GetViewer() (models.User, error)
	SetViewer(user models.User) error

	// GetFavoriteHabits returns the habits pinned for the leaderboard.
	GetFavoriteHabits() ([]models.Habit, error)
	SetFavoriteHabits(habits []models.Habit) error

	// GetFollowedUserIDs returns the ids of users the viewer tracks.
	GetFollowedUserIDs() ([]string, error)
	SetFollowedUserIDs(ids []string) error

	// ToggleFavorite adds the habit to the favorites, or removes it if
	// already present.
	ToggleFavorite(habit models.Habit) error
	// ToggleFollowed follows or unfollows a user. Following yourself is
	// a no-op.
	ToggleFollowed(user models.User) error
}
