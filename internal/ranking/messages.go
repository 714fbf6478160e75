package ranking

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habits/internal/models"
)

const notMuchYetMessage = "This user doesn't seem to have done much yet. " +
	"Check in to see if they need any help getting started."

// loggedHabitNames returns the set of habit names a user has logged,
// i.e. the names present in that user's statistics.
func loggedHabitNames(stats []models.UserStatistics, userID string) map[string]bool {
	names := make(map[string]bool)
	for _, us := range stats {
		if us.User.ID == userID {
			for _, hc := range us.HabitCounts {
				names[hc.Habit.Name] = true
			}
			break
		}
	}
	return names
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for name := range a {
		if b[name] {
			out[name] = true
		}
	}
	return out
}

func firstSorted(set map[string]bool) string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}

func habitStatsByName(stats models.CombinedStats, name string) (models.HabitStatistics, bool) {
	for _, hs := range stats.HabitStatistics {
		if hs.Habit.Name == name {
			return hs, true
		}
	}
	return models.HabitStatistics{}, false
}

// FollowedMessages produces one comparison message per followed user,
// ordered by user name ascending. The viewer is never compared against
// themselves. When the statistics contain no entry for the viewer the
// data is treated as not yet ready and no messages are produced.
func FollowedMessages(stats models.CombinedStats, rc Context, users map[string]models.User) []FollowedUserItem {
	var hasViewer bool
	for _, us := range stats.UserStatistics {
		if us.User.ID == rc.ViewerID {
			hasViewer = true
			break
		}
	}
	if !hasViewer {
		return nil
	}

	var followed []models.User
	for _, id := range rc.FollowedUserIDs {
		if id == rc.ViewerID {
			continue
		}
		if user, ok := users[id]; ok {
			followed = append(followed, user)
		}
	}
	sort.Slice(followed, func(i, j int) bool {
		return followed[i].Less(followed[j])
	})

	viewerLogged := loggedHabitNames(stats.UserStatistics, rc.ViewerID)
	favoriteLogged := make(map[string]bool)
	for _, name := range rc.FavoriteHabits {
		if viewerLogged[name] {
			favoriteLogged[name] = true
		}
	}

	items := make([]FollowedUserItem, 0, len(followed))
	for _, user := range followed {
		theirLogged := loggedHabitNames(stats.UserStatistics, user.ID)
		common := intersect(theirLogged, viewerLogged)

		var message string
		switch {
		case len(common) > 0:
			message = comparisonMessage(stats, rc, user, common, favoriteLogged)
		case len(theirLogged) > 0:
			message = invitationMessage(stats, user, theirLogged)
		default:
			message = notMuchYetMessage
		}

		items = append(items, FollowedUserItem{User: user, Message: message})
	}
	return items
}

// comparisonMessage picks the habit to compare on (a commonly logged
// favorite when one exists, otherwise the lexicographically first
// commonly logged habit) and frames the message by strict comparison
// of the two rank indices.
func comparisonMessage(stats models.CombinedStats, rc Context, user models.User, common, favoriteLogged map[string]bool) string {
	habitName := ""
	if commonFavorites := intersect(common, favoriteLogged); len(commonFavorites) > 0 {
		habitName = firstSorted(commonFavorites)
	} else {
		habitName = firstSorted(common)
	}

	habitStats, ok := habitStatsByName(stats, habitName)
	if !ok {
		return notMuchYetMessage
	}

	ranked := RankUserCounts(habitStats.UserCounts)
	viewerRank, viewerOK := rankOf(ranked, rc.ViewerID)
	theirRank, theirOK := rankOf(ranked, user.ID)
	if !viewerOK || !theirOK {
		return notMuchYetMessage
	}

	switch {
	case viewerRank < theirRank:
		return fmt.Sprintf("Currently %s, behind you at %s in %s.\nSend them a friendly reminder!",
			Ordinal(theirRank), Ordinal(viewerRank), habitName)
	case viewerRank > theirRank:
		return fmt.Sprintf("Currently %s, ahead of you at %s in %s.\nYou might catch up with a little extra effort!",
			Ordinal(theirRank), Ordinal(viewerRank), habitName)
	default:
		return fmt.Sprintf("You're tied at %s in %s! Now's your chance to pull ahead.",
			Ordinal(theirRank), habitName)
	}
}

// invitationMessage reports the followed user's rank in the first habit
// they have logged, when the viewer shares none of their habits.
func invitationMessage(stats models.CombinedStats, user models.User, theirLogged map[string]bool) string {
	habitName := firstSorted(theirLogged)

	habitStats, ok := habitStatsByName(stats, habitName)
	if !ok {
		return notMuchYetMessage
	}

	ranked := RankUserCounts(habitStats.UserCounts)
	theirRank, theirOK := rankOf(ranked, user.ID)
	if !theirOK {
		return notMuchYetMessage
	}

	return fmt.Sprintf("Currently %s in %s.\nMaybe you should give this habit a look!",
		Ordinal(theirRank), habitName)
}
