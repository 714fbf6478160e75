// Package ranking turns a statistics snapshot into leaderboard entries
// and per-followed-user comparison messages. The engine is pure: it
// never fails, and absent input degrades to empty output.
package ranking

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habits/internal/models"
)

// Context carries the viewer's identity and preferences into a ranking
// pass. It is built from the settings store by the caller.
type Context struct {
	ViewerID        string
	FavoriteHabits  []string // habit names pinned for the leaderboard
	FollowedUserIDs []string
}

// LeaderboardEntry is one favorite habit's ranking display.
type LeaderboardEntry struct {
	HabitName        string
	RankedUserCounts []models.UserCount
	Leading          string
	Secondary        *string // nil when there is nothing to show below the leader
}

// ItemID returns the entry's snapshot item identifier.
func (e LeaderboardEntry) ItemID() string {
	return "leaderboardHabit:" + e.HabitName
}

// FollowedUserItem is one followed user's comparison message.
type FollowedUserItem struct {
	User    models.User
	Message string
}

// ItemID returns the item's snapshot item identifier.
func (f FollowedUserItem) ItemID() string {
	return "followedUser:" + f.User.ID
}

// RankUserCounts sorts counts descending. The sort is stable: equal
// counts keep their original relative order.
func RankUserCounts(counts []models.UserCount) []models.UserCount {
	ranked := make([]models.UserCount, len(counts))
	copy(ranked, counts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func rankOf(ranked []models.UserCount, userID string) (int, bool) {
	for i, uc := range ranked {
		if uc.User.ID == userID {
			return i, true
		}
	}
	return 0, false
}

// Rank produces the leaderboard entries for the viewer's favorite
// habits and the comparison messages for the viewer's followed users.
// Followed users are resolved through the users map; ids without a
// known user are skipped.
func Rank(stats models.CombinedStats, rc Context, users map[string]models.User) ([]LeaderboardEntry, []FollowedUserItem) {
	return Leaderboard(stats, rc), FollowedMessages(stats, rc, users)
}

// Leaderboard produces one entry per favorite habit present in the
// statistics, ordered by habit name ascending.
func Leaderboard(stats models.CombinedStats, rc Context) []LeaderboardEntry {
	favorites := make(map[string]bool, len(rc.FavoriteHabits))
	for _, name := range rc.FavoriteHabits {
		favorites[name] = true
	}

	var selected []models.HabitStatistics
	for _, stat := range stats.HabitStatistics {
		if favorites[stat.Habit.Name] {
			selected = append(selected, stat)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Habit.Less(selected[j].Habit)
	})

	entries := make([]LeaderboardEntry, 0, len(selected))
	for _, stat := range selected {
		ranked := RankUserCounts(stat.UserCounts)
		viewerRank, viewerPresent := rankOf(ranked, rc.ViewerID)

		render := func(uc models.UserCount) string {
			name := uc.User.Name
			ranking := ""
			if uc.User.ID == rc.ViewerID {
				name = "You"
				ranking = "(" + Ordinal(viewerRank) + ")"
			}
			return fmt.Sprintf("%s %d %s", name, uc.Count, ranking)
		}

		entry := LeaderboardEntry{
			HabitName:        stat.Habit.Name,
			RankedUserCounts: ranked,
		}

		switch len(ranked) {
		case 0:
			entry.Leading = "Nobody yet!"
		case 1:
			entry.Leading = render(ranked[0])
		default:
			entry.Leading = render(ranked[0])
			var secondary string
			if viewerPresent && viewerRank != 0 {
				secondary = render(ranked[viewerRank])
			} else {
				secondary = render(ranked[1])
			}
			entry.Secondary = &secondary
		}

		entries = append(entries, entry)
	}
	return entries
}
