package ranking

import (
	"reflect"
	"strings"
	"testing"

	"github.com/julianstephens/habits/internal/models"
)

func user(id, name string) models.User {
	return models.User{ID: id, Name: name}
}

func habit(name string) models.Habit {
	return models.Habit{Name: name, Category: models.Category{Name: "Test"}}
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		rank int
		want string
	}{
		{0, "1st"},
		{1, "2nd"},
		{2, "3rd"},
		{3, "4th"},
		{10, "11th"},
		{11, "12th"},
		{12, "13th"},
		{20, "21st"},
		{21, "22nd"},
		{22, "23rd"},
		{99, "100th"},
		{110, "111th"},
	}

	for _, tt := range tests {
		if got := Ordinal(tt.rank); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestRankUserCountsStableDescending(t *testing.T) {
	counts := []models.UserCount{
		{User: user("a", "A"), Count: 3},
		{User: user("b", "B"), Count: 5},
		{User: user("c", "C"), Count: 5},
		{User: user("d", "D"), Count: 1},
	}

	ranked := RankUserCounts(counts)

	wantOrder := []string{"b", "c", "a", "d"}
	for i, id := range wantOrder {
		if ranked[i].User.ID != id {
			t.Fatalf("rank %d = %s, want %s (full: %v)", i, ranked[i].User.ID, id, ranked)
		}
	}

	// Input order untouched
	if counts[0].User.ID != "a" {
		t.Error("RankUserCounts mutated its input")
	}
}

func TestLeaderboardViewerNotFirst(t *testing.T) {
	stats := models.CombinedStats{
		HabitStatistics: []models.HabitStatistics{{
			Habit: habit("Running"),
			UserCounts: []models.UserCount{
				{User: user("a", "A"), Count: 5},
				{User: user("b", "B"), Count: 5},
				{User: user("you", "Viewer"), Count: 3},
			},
		}},
	}
	rc := Context{ViewerID: "you", FavoriteHabits: []string{"Running"}}

	entries := Leaderboard(stats, rc)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Leading != "A 5 " {
		t.Errorf("leading = %q, want %q", e.Leading, "A 5 ")
	}
	if e.Secondary == nil || *e.Secondary != "You 3 (3rd)" {
		t.Errorf("secondary = %v, want %q", e.Secondary, "You 3 (3rd)")
	}
}

func TestLeaderboardViewerFirst(t *testing.T) {
	stats := models.CombinedStats{
		HabitStatistics: []models.HabitStatistics{{
			Habit: habit("Running"),
			UserCounts: []models.UserCount{
				{User: user("you", "Viewer"), Count: 9},
				{User: user("a", "A"), Count: 5},
			},
		}},
	}
	rc := Context{ViewerID: "you", FavoriteHabits: []string{"Running"}}

	e := Leaderboard(stats, rc)[0]
	if e.Leading != "You 9 (1st)" {
		t.Errorf("leading = %q, want %q", e.Leading, "You 9 (1st)")
	}
	// Viewer is rank 0, so the secondary shows rank 1
	if e.Secondary == nil || *e.Secondary != "A 5 " {
		t.Errorf("secondary = %v, want %q", e.Secondary, "A 5 ")
	}
}

func TestLeaderboardEmptyAndSingle(t *testing.T) {
	stats := models.CombinedStats{
		HabitStatistics: []models.HabitStatistics{
			{Habit: habit("Empty")},
			{Habit: habit("Solo"), UserCounts: []models.UserCount{
				{User: user("a", "A"), Count: 2},
			}},
		},
	}
	rc := Context{ViewerID: "you", FavoriteHabits: []string{"Empty", "Solo"}}

	entries := Leaderboard(stats, rc)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Leading != "Nobody yet!" || entries[0].Secondary != nil {
		t.Errorf("empty habit entry = %+v", entries[0])
	}
	if entries[1].Leading != "A 2 " || entries[1].Secondary != nil {
		t.Errorf("single-count entry = %+v", entries[1])
	}
}

func TestLeaderboardFiltersAndOrdersFavorites(t *testing.T) {
	stats := models.CombinedStats{
		HabitStatistics: []models.HabitStatistics{
			{Habit: habit("Zebra")},
			{Habit: habit("Apple")},
			{Habit: habit("Ignored")},
		},
	}
	rc := Context{ViewerID: "you", FavoriteHabits: []string{"Zebra", "Apple"}}

	entries := Leaderboard(stats, rc)
	var names []string
	for _, e := range entries {
		names = append(names, e.HabitName)
	}
	if !reflect.DeepEqual(names, []string{"Apple", "Zebra"}) {
		t.Errorf("entry order = %v, want [Apple Zebra]", names)
	}
}

// followedFixture builds stats where the viewer and "friend" share the
// habit "Shared" with configurable counts.
func followedFixture(viewerCount, friendCount int) (models.CombinedStats, Context, map[string]models.User) {
	shared := habit("Shared")
	viewer := user("you", "Viewer")
	friend := user("friend", "Friend")

	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{
			{User: viewer, HabitCounts: []models.HabitCount{{Habit: shared, Count: viewerCount}}},
			{User: friend, HabitCounts: []models.HabitCount{{Habit: shared, Count: friendCount}}},
		},
		HabitStatistics: []models.HabitStatistics{{
			Habit: shared,
			UserCounts: []models.UserCount{
				{User: viewer, Count: viewerCount},
				{User: friend, Count: friendCount},
			},
		}},
	}
	rc := Context{ViewerID: "you", FollowedUserIDs: []string{"friend"}}
	users := map[string]models.User{"you": viewer, "friend": friend}
	return stats, rc, users
}

func TestFollowedMessagePolarity(t *testing.T) {
	tests := []struct {
		name         string
		viewerCount  int
		friendCount  int
		wantContains string
	}{
		{"viewer ahead", 9, 2, "behind you"},
		{"viewer behind", 2, 9, "ahead of you"},
		{"tied", 5, 5, "tied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, rc, users := followedFixture(tt.viewerCount, tt.friendCount)

			items := FollowedMessages(stats, rc, users)
			if len(items) != 1 {
				t.Fatalf("got %d items, want 1", len(items))
			}
			if !contains(items[0].Message, tt.wantContains) {
				t.Errorf("message = %q, want substring %q", items[0].Message, tt.wantContains)
			}
		})
	}
}

func TestFollowedPrefersCommonFavorite(t *testing.T) {
	viewer := user("you", "Viewer")
	friend := user("friend", "Friend")
	apple, zebra := habit("Apple"), habit("Zebra")

	// Both logged Apple and Zebra; Zebra is the viewer's favorite, so
	// the comparison happens there even though Apple sorts first.
	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{
			{User: viewer, HabitCounts: []models.HabitCount{{Habit: apple, Count: 1}, {Habit: zebra, Count: 1}}},
			{User: friend, HabitCounts: []models.HabitCount{{Habit: apple, Count: 2}, {Habit: zebra, Count: 2}}},
		},
		HabitStatistics: []models.HabitStatistics{
			{Habit: apple, UserCounts: []models.UserCount{{User: friend, Count: 2}, {User: viewer, Count: 1}}},
			{Habit: zebra, UserCounts: []models.UserCount{{User: friend, Count: 2}, {User: viewer, Count: 1}}},
		},
	}
	rc := Context{ViewerID: "you", FavoriteHabits: []string{"Zebra"}, FollowedUserIDs: []string{"friend"}}
	users := map[string]models.User{"you": viewer, "friend": friend}

	items := FollowedMessages(stats, rc, users)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !contains(items[0].Message, "Zebra") {
		t.Errorf("message = %q, want it to reference Zebra", items[0].Message)
	}
}

func TestFollowedNoOverlapUsesInvitation(t *testing.T) {
	viewer := user("you", "Viewer")
	friend := user("friend", "Friend")
	mine, theirsA, theirsB := habit("Mine"), habit("Alpha"), habit("Beta")

	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{
			{User: viewer, HabitCounts: []models.HabitCount{{Habit: mine, Count: 1}}},
			{User: friend, HabitCounts: []models.HabitCount{{Habit: theirsB, Count: 2}, {Habit: theirsA, Count: 4}}},
		},
		HabitStatistics: []models.HabitStatistics{
			{Habit: theirsA, UserCounts: []models.UserCount{{User: friend, Count: 4}}},
			{Habit: theirsB, UserCounts: []models.UserCount{{User: friend, Count: 2}}},
		},
	}
	rc := Context{ViewerID: "you", FollowedUserIDs: []string{"friend"}}
	users := map[string]models.User{"you": viewer, "friend": friend}

	items := FollowedMessages(stats, rc, users)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	// Lexicographically first of the friend's habits: Alpha, where they
	// rank 1st
	msg := items[0].Message
	if !contains(msg, "Alpha") || !contains(msg, "1st") || !contains(msg, "give this habit a look") {
		t.Errorf("message = %q", msg)
	}
}

func TestFollowedNothingLogged(t *testing.T) {
	viewer := user("you", "Viewer")
	friend := user("friend", "Friend")

	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{
			{User: viewer, HabitCounts: []models.HabitCount{{Habit: habit("Mine"), Count: 1}}},
		},
	}
	rc := Context{ViewerID: "you", FollowedUserIDs: []string{"friend"}}
	users := map[string]models.User{"you": viewer, "friend": friend}

	items := FollowedMessages(stats, rc, users)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !contains(items[0].Message, "doesn't seem to have done much yet") {
		t.Errorf("message = %q", items[0].Message)
	}
}

func TestFollowedMissingViewerStatsShortCircuits(t *testing.T) {
	friend := user("friend", "Friend")
	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{
			{User: friend, HabitCounts: []models.HabitCount{{Habit: habit("Alpha"), Count: 2}}},
		},
	}
	rc := Context{ViewerID: "you", FollowedUserIDs: []string{"friend"}}
	users := map[string]models.User{"friend": friend}

	if items := FollowedMessages(stats, rc, users); len(items) != 0 {
		t.Errorf("got %d items, want none until viewer stats arrive", len(items))
	}
}

func TestFollowedOrderedByNameAndExcludesViewer(t *testing.T) {
	viewer := user("you", "Viewer")
	zoe := user("z", "Zoe")
	amy := user("a", "Amy")

	stats := models.CombinedStats{
		UserStatistics: []models.UserStatistics{{User: viewer}},
	}
	rc := Context{ViewerID: "you", FollowedUserIDs: []string{"z", "you", "a"}}
	users := map[string]models.User{"you": viewer, "z": zoe, "a": amy}

	items := FollowedMessages(stats, rc, users)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].User.Name != "Amy" || items[1].User.Name != "Zoe" {
		t.Errorf("order = [%s %s], want [Amy Zoe]", items[0].User.Name, items[1].User.Name)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
