package models

// UserCount is one user's total for a single habit.
type UserCount struct {
	User  User `json:"user"`
	Count int  `json:"count"`
}

// HabitCount is one habit's total for a single user. Identity is the
// habit id.
type HabitCount struct {
	Habit Habit `json:"habit"`
	Count int   `json:"count"`
}

func (hc HabitCount) ID() string { return hc.Habit.ID() }

func (hc HabitCount) Equal(other HabitCount) bool {
	return hc.ID() == other.ID()
}

// Less orders habit counts by habit name.
func (hc HabitCount) Less(other HabitCount) bool {
	return hc.Habit.Less(other.Habit)
}

// HabitStatistics is the per-habit view: every user's count for one
// habit. Snapshots are replaced wholesale on each poll, never mutated.
type HabitStatistics struct {
	Habit      Habit       `json:"habit"`
	UserCounts []UserCount `json:"userCounts"`
}

// UserStatistics is the per-user view: every habit's count for one user.
type UserStatistics struct {
	User        User         `json:"user"`
	HabitCounts []HabitCount `json:"habitCounts"`
}

// CombinedStats is the single payload combining both views.
type CombinedStats struct {
	UserStatistics  []UserStatistics  `json:"userStatistics"`
	HabitStatistics []HabitStatistics `json:"habitStatistics"`
}
