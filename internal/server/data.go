package server

import (
	"sort"
	"sync"

	"github.com/julianstephens/habits/internal/models"
)

// dataset is the server's in-memory world: users, habits, and a count
// per (user, habit) pair. Statistics are derived on read so both views
// always agree.
type dataset struct {
	mu     sync.RWMutex
	users  map[string]models.User
	habits map[string]models.Habit
	counts map[string]map[string]int // user id -> habit name -> count
	events []models.LoggedHabit
}

func newDataset() *dataset {
	return &dataset{
		users:  make(map[string]models.User),
		habits: make(map[string]models.Habit),
		counts: make(map[string]map[string]int),
	}
}

func (d *dataset) logHabit(event models.LoggedHabit) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.counts[event.UserID] == nil {
		d.counts[event.UserID] = make(map[string]int)
	}
	d.counts[event.UserID][event.HabitName]++
	d.events = append(d.events, event)
}

func (d *dataset) allUsers() map[string]models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]models.User, len(d.users))
	for id, u := range d.users {
		out[id] = u
	}
	return out
}

func (d *dataset) allHabits() map[string]models.Habit {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]models.Habit, len(d.habits))
	for name, h := range d.habits {
		out[name] = h
	}
	return out
}

// habitStats derives the per-habit view. Only users who have logged a
// habit appear in its counts. filter narrows to the given habit names;
// nil means all.
func (d *dataset) habitStats(filter []string) []models.HabitStatistics {
	d.mu.RLock()
	defer d.mu.RUnlock()

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}

	var stats []models.HabitStatistics
	for name, habit := range d.habits {
		if len(filter) > 0 && !wanted[name] {
			continue
		}

		var counts []models.UserCount
		for userID, byHabit := range d.counts {
			if n := byHabit[name]; n > 0 {
				counts = append(counts, models.UserCount{User: d.users[userID], Count: n})
			}
		}
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].User.Less(counts[j].User)
		})
		stats = append(stats, models.HabitStatistics{Habit: habit, UserCounts: counts})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Habit.Less(stats[j].Habit)
	})
	return stats
}

// userStats derives the per-user view. filter narrows to the given
// user ids; nil means all users with at least one logged habit.
func (d *dataset) userStats(filter []string) []models.UserStatistics {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := filter
	if len(ids) == 0 {
		for id := range d.counts {
			ids = append(ids, id)
		}
	}

	var stats []models.UserStatistics
	for _, id := range ids {
		user, ok := d.users[id]
		if !ok {
			continue
		}
		stats = append(stats, models.UserStatistics{User: user, HabitCounts: d.habitCountsLocked(id)})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].User.Less(stats[j].User)
	})
	return stats
}

func (d *dataset) habitCountsLocked(userID string) []models.HabitCount {
	var counts []models.HabitCount
	for habitName, n := range d.counts[userID] {
		if habit, ok := d.habits[habitName]; ok && n > 0 {
			counts = append(counts, models.HabitCount{Habit: habit, Count: n})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Less(counts[j])
	})
	return counts
}

// leadingStats returns the subset of a user's counts in which they rank
// first (ties included) across all users.
func (d *dataset) leadingStats(userID string) (models.UserStatistics, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return models.UserStatistics{}, false
	}

	var leading []models.HabitCount
	for _, hc := range d.habitCountsLocked(userID) {
		max := 0
		for _, byHabit := range d.counts {
			if n := byHabit[hc.Habit.Name]; n > max {
				max = n
			}
		}
		if hc.Count >= max {
			leading = append(leading, hc)
		}
	}

	return models.UserStatistics{User: user, HabitCounts: leading}, true
}

func (d *dataset) combinedStats() models.CombinedStats {
	return models.CombinedStats{
		UserStatistics:  d.userStats(nil),
		HabitStatistics: d.habitStats(nil),
	}
}
