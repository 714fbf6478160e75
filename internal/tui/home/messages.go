package home

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

type tickMsg time.Time

type statsMsg models.CombinedStats

type habitsMsg map[string]models.Habit

type usersMsg map[string]models.User

func tick() tea.Cmd {
	return tea.Tick(constants.HomePollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchStats starts a combined-stats poll, cancelling any still in
// flight. A failure degrades to empty data: the UI shows the previous
// or empty state and the next cycle self-heals.
func (m Model) fetchStats() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeCombinedStats)
	return func() tea.Msg {
		stats, err := api.FetchCombinedStats(ctx, m.client)
		if err != nil {
			logger.Warn("Combined stats poll failed", "error", err)
			stats = models.CombinedStats{}
		}
		if ctx.Err() != nil {
			// A newer poll superseded this one; drop the stale result.
			return nil
		}
		return statsMsg(stats)
	}
}

func (m Model) fetchHabits() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeHabits)
	return func() tea.Msg {
		habits, err := api.FetchHabits(ctx, m.client)
		if err != nil {
			logger.Warn("Habits fetch failed", "error", err)
			habits = map[string]models.Habit{}
		}
		if ctx.Err() != nil {
			return nil
		}
		return habitsMsg(habits)
	}
}

func (m Model) fetchUsers() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeUsers)
	return func() tea.Msg {
		users, err := api.FetchUsers(ctx, m.client)
		if err != nil {
			logger.Warn("Users fetch failed", "error", err)
			users = map[string]models.User{}
		}
		if ctx.Err() != nil {
			return nil
		}
		return usersMsg(users)
	}
}
