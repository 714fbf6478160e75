package models

import "time"

// LoggedHabit is the write-only event sent to the server when a user
// logs a habit. The timestamp encodes as RFC 3339 on the wire.
type LoggedHabit struct {
	UserID    string    `json:"userID"`
	HabitName string    `json:"habitName"`
	Timestamp time.Time `json:"timestamp"`
}
