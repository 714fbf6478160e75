package api

import (
	"context"
	"net/url"
	"strings"

	"github.com/julianstephens/habits/internal/models"
)

// FetchHabits returns all known habits keyed by name.
func FetchHabits(ctx context.Context, c *Client) (map[string]models.Habit, error) {
	return Send[map[string]models.Habit](ctx, c, Request{Path: "/habits"})
}

// FetchUsers returns all known users keyed by id.
func FetchUsers(ctx context.Context, c *Client) (map[string]models.User, error) {
	return Send[map[string]models.User](ctx, c, Request{Path: "/users"})
}

// FetchHabitStats returns per-habit statistics, optionally filtered to
// the given habit names.
func FetchHabitStats(ctx context.Context, c *Client, names []string) ([]models.HabitStatistics, error) {
	req := Request{Path: "/habitStats"}
	if len(names) > 0 {
		req.Query = url.Values{"names": {strings.Join(names, ",")}}
	}
	return Send[[]models.HabitStatistics](ctx, c, req)
}

// FetchUserStats returns per-user statistics, optionally filtered to
// the given user ids.
func FetchUserStats(ctx context.Context, c *Client, ids []string) ([]models.UserStatistics, error) {
	req := Request{Path: "/userStats"}
	if len(ids) > 0 {
		req.Query = url.Values{"ids": {strings.Join(ids, ",")}}
	}
	return Send[[]models.UserStatistics](ctx, c, req)
}

// FetchLeadingStats returns the habit counts in which the given user
// currently ranks first.
func FetchLeadingStats(ctx context.Context, c *Client, userID string) (models.UserStatistics, error) {
	return Send[models.UserStatistics](ctx, c, Request{Path: "/userLeadingStats/" + userID})
}

// FetchCombinedStats returns both statistic views in one payload.
func FetchCombinedStats(ctx context.Context, c *Client) (models.CombinedStats, error) {
	return Send[models.CombinedStats](ctx, c, Request{Path: "/combinedStats"})
}

// LogHabit submits a logged-habit event. The server returns no body.
func LogHabit(ctx context.Context, c *Client, logged models.LoggedHabit) error {
	return SendNoContent(ctx, c, Request{Path: "/loggedHabit", Body: logged})
}

// ImageRequest describes the fetch for an image id. Exposed so the
// image cache can key by the resolved URL.
func ImageRequest(imageID string) Request {
	return Request{Path: "/images/" + imageID}
}

// FetchImage returns the raw image bytes for an id.
func FetchImage(ctx context.Context, c *Client, imageID string) ([]byte, error) {
	return SendRaw(ctx, c, ImageRequest(imageID))
}
