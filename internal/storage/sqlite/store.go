package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec("CREATE TABLE IF NOT EXISTS settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)"); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	// Seed a viewer identity on first run
	if _, err := s.GetViewer(); err != nil {
		viewer := models.User{
			ID:   uuid.NewString(),
			Name: os.Getenv("USER"),
		}
		if viewer.Name == "" {
			viewer.Name = "You"
		}
		if err := s.SetViewer(viewer); err != nil {
			return fmt.Errorf("failed to seed viewer: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habits init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// get unmarshals the JSON value stored under key into out.
func (s *Store) get(key string, out any) error {
	var value string
	row := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), out)
}

// set stores in as a JSON value under key.
func (s *Store) set(key string, in any) error {
	value, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)", key, string(value))
	return err
}

func (s *Store) GetViewer() (models.User, error) {
	var viewer models.User
	if err := s.get(constants.SettingCurrentUser, &viewer); err != nil {
		return models.User{}, err
	}
	return viewer, nil
}

func (s *Store) SetViewer(user models.User) error {
	return s.set(constants.SettingCurrentUser, user)
}

func (s *Store) GetFavoriteHabits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.get(constants.SettingFavoriteHabits, &habits); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return habits, nil
}

func (s *Store) SetFavoriteHabits(habits []models.Habit) error {
	return s.set(constants.SettingFavoriteHabits, habits)
}

func (s *Store) GetFollowedUserIDs() ([]string, error) {
	var ids []string
	if err := s.get(constants.SettingFollowedUserIDs, &ids); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return ids, nil
}

func (s *Store) SetFollowedUserIDs(ids []string) error {
	return s.set(constants.SettingFollowedUserIDs, ids)
}

func (s *Store) ToggleFavorite(habit models.Habit) error {
	favorites, err := s.GetFavoriteHabits()
	if err != nil {
		return err
	}

	updated := favorites[:0]
	found := false
	for _, h := range favorites {
		if h.Equal(habit) {
			found = true
			continue
		}
		updated = append(updated, h)
	}
	if !found {
		updated = append(updated, habit)
	}

	return s.SetFavoriteHabits(updated)
}

func (s *Store) ToggleFollowed(user models.User) error {
	ids, err := s.GetFollowedUserIDs()
	if err != nil {
		return err
	}

	updated := ids[:0]
	found := false
	for _, id := range ids {
		if id == user.ID {
			found = true
			continue
		}
		updated = append(updated, id)
	}
	if !found {
		viewer, err := s.GetViewer()
		if err != nil {
			return err
		}
		if user.ID != viewer.ID {
			updated = append(updated, user.ID)
		}
	}

	return s.SetFollowedUserIDs(updated)
}
