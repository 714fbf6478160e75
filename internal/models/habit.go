package models

// Habit is a trackable activity. The name is the stable identity used
// for equality and as a diffing item identifier.
type Habit struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Info     string   `json:"info"`
}

// ID returns the habit's stable identifier.
func (h Habit) ID() string { return h.Name }

func (h Habit) Equal(other Habit) bool {
	return h.Name == other.Name
}

// Less orders habits by name.
func (h Habit) Less(other Habit) bool {
	return h.Name < other.Name
}
