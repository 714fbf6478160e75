package userdetail

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/constants"
	"github.com/julianstephens/habits/internal/logger"
	"github.com/julianstephens/habits/internal/models"
)

type tickMsg time.Time

// stats is nil when the poll failed or returned nothing; the screen
// treats that as "no data yet".
type userStatsMsg struct {
	stats *models.UserStatistics
}

type leadingStatsMsg struct {
	stats *models.UserStatistics
}

type avatarMsg struct {
	size int
}

func tick() tea.Cmd {
	return tea.Tick(constants.UserDetailPollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetchUserStats() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeUserStats)
	return func() tea.Msg {
		stats, err := api.FetchUserStats(ctx, m.client, []string{m.user.ID})
		var result *models.UserStatistics
		if err != nil {
			logger.Warn("User stats poll failed", "user", m.user.ID, "error", err)
		} else if len(stats) > 0 {
			result = &stats[0]
		}
		if ctx.Err() != nil {
			return nil
		}
		return userStatsMsg{stats: result}
	}
}

func (m Model) fetchLeadingStats() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeLeadingStats)
	return func() tea.Msg {
		stats, err := api.FetchLeadingStats(ctx, m.client, m.user.ID)
		var result *models.UserStatistics
		if err != nil {
			logger.Warn("Leading stats poll failed", "user", m.user.ID, "error", err)
		} else {
			result = &stats
		}
		if ctx.Err() != nil {
			return nil
		}
		return leadingStatsMsg{stats: result}
	}
}

// fetchAvatar warms the image cache for this user. One-shot, not
// polled; the cache holds it for the rest of the session.
func (m Model) fetchAvatar() tea.Cmd {
	ctx := m.poller.Begin(constants.PurposeImage)
	return func() tea.Msg {
		img, err := m.images.Fetch(ctx, m.user.ID)
		if err != nil {
			logger.Warn("Avatar fetch failed", "user", m.user.ID, "error", err)
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		return avatarMsg{size: len(img)}
	}
}
