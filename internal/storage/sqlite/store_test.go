package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/habits/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	s := NewStore(filepath.Join(t.TempDir(), "habits.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitSeedsViewer(t *testing.T) {
	s := testStore(t)

	viewer, err := s.GetViewer()
	if err != nil {
		t.Fatalf("GetViewer failed: %v", err)
	}
	if viewer.ID == "" {
		t.Error("seeded viewer has no id")
	}
	if viewer.Name == "" {
		t.Error("seeded viewer has no name")
	}
}

func TestInitPreservesExistingViewer(t *testing.T) {
	s := testStore(t)

	first, err := s.GetViewer()
	if err != nil {
		t.Fatalf("GetViewer failed: %v", err)
	}

	// Re-running Init must not mint a new identity
	if err := s.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	second, err := s.GetViewer()
	if err != nil {
		t.Fatalf("GetViewer after re-init failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("viewer id changed across Init: %s -> %s", first.ID, second.ID)
	}
}

func TestLoadWithoutInit(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := s.Load(); err == nil {
		t.Error("Load of a missing database should fail")
	}
}

func TestUnsetPreferencesAreEmpty(t *testing.T) {
	s := testStore(t)

	favorites, err := s.GetFavoriteHabits()
	if err != nil {
		t.Fatalf("GetFavoriteHabits failed: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("fresh store has favorites: %v", favorites)
	}

	followed, err := s.GetFollowedUserIDs()
	if err != nil {
		t.Fatalf("GetFollowedUserIDs failed: %v", err)
	}
	if len(followed) != 0 {
		t.Errorf("fresh store follows users: %v", followed)
	}
}

func TestFavoritesRoundTrip(t *testing.T) {
	s := testStore(t)

	habits := []models.Habit{
		{Name: "Running", Category: models.Category{Name: "Exercise"}},
		{Name: "Meditation", Category: models.Category{Name: "Mindfulness"}},
	}
	if err := s.SetFavoriteHabits(habits); err != nil {
		t.Fatalf("SetFavoriteHabits failed: %v", err)
	}

	got, err := s.GetFavoriteHabits()
	if err != nil {
		t.Fatalf("GetFavoriteHabits failed: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Running" || got[1].Category.Name != "Mindfulness" {
		t.Errorf("favorites = %+v", got)
	}
}

func TestToggleFavorite(t *testing.T) {
	s := testStore(t)
	running := models.Habit{Name: "Running", Category: models.Category{Name: "Exercise"}}

	if err := s.ToggleFavorite(running); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	favorites, _ := s.GetFavoriteHabits()
	if len(favorites) != 1 || favorites[0].Name != "Running" {
		t.Fatalf("after add: %+v", favorites)
	}

	if err := s.ToggleFavorite(running); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	favorites, _ = s.GetFavoriteHabits()
	if len(favorites) != 0 {
		t.Errorf("after remove: %+v", favorites)
	}
}

func TestToggleFollowed(t *testing.T) {
	s := testStore(t)
	sara := models.User{ID: "sara", Name: "Sara"}

	if err := s.ToggleFollowed(sara); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	ids, _ := s.GetFollowedUserIDs()
	if len(ids) != 1 || ids[0] != "sara" {
		t.Fatalf("after follow: %v", ids)
	}

	if err := s.ToggleFollowed(sara); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	ids, _ = s.GetFollowedUserIDs()
	if len(ids) != 0 {
		t.Errorf("after unfollow: %v", ids)
	}
}

func TestCannotFollowSelf(t *testing.T) {
	s := testStore(t)

	viewer, err := s.GetViewer()
	if err != nil {
		t.Fatalf("GetViewer failed: %v", err)
	}

	if err := s.ToggleFollowed(viewer); err != nil {
		t.Fatalf("ToggleFollowed failed: %v", err)
	}
	ids, _ := s.GetFollowedUserIDs()
	if len(ids) != 0 {
		t.Errorf("viewer follows themselves: %v", ids)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.db")

	s := NewStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	viewer, _ := s.GetViewer()
	if err := s.SetFollowedUserIDs([]string{"sara", "ben"}); err != nil {
		t.Fatalf("SetFollowedUserIDs failed: %v", err)
	}
	s.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	viewer2, err := reopened.GetViewer()
	if err != nil {
		t.Fatalf("GetViewer after reopen failed: %v", err)
	}
	if viewer2.ID != viewer.ID {
		t.Errorf("viewer id = %s, want %s", viewer2.ID, viewer.ID)
	}
	ids, _ := reopened.GetFollowedUserIDs()
	if len(ids) != 2 {
		t.Errorf("followed ids after reopen = %v", ids)
	}
}
