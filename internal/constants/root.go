package constants

import "time"

const (
	AppName           = "habits"
	DefaultConfigPath = "~/.config/habits/habits.db"
	Version           = "v0.2.0"

	// Server defaults, matching the reference server
	DefaultScheme = "http"
	DefaultHost   = "localhost"
	DefaultPort   = 8080

	// Poll intervals per screen
	HomePollInterval       = 5 * time.Second
	UserDetailPollInterval = 2 * time.Second

	// Timeout for a single API call
	RequestTimeout = 10 * time.Second
)

// Settings store keys. Values are JSON-serialized.
const (
	SettingCurrentUser     = "currentUser"
	SettingFavoriteHabits  = "favoriteHabits"
	SettingFollowedUserIDs = "followedUserIDs"
)

// Poll purposes. Starting a poll for a purpose cancels any in-flight
// poll for the same purpose.
const (
	PurposeCombinedStats = "combinedStats"
	PurposeHabits        = "habits"
	PurposeUsers         = "users"
	PurposeUserStats     = "userStats"
	PurposeLeadingStats  = "leadingStats"
	PurposeImage         = "image"
)
