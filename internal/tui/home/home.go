// Package home is the leaderboard + followed-users screen. It polls
// the combined statistics every few seconds and rebuilds its list
// through the ranking engine and the snapshot reconciler.
package home

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/poll"
	"github.com/julianstephens/habits/internal/ranking"
	"github.com/julianstephens/habits/internal/snapshot"
	"github.com/julianstephens/habits/internal/storage"
)

type section string

const (
	sectionLeaderboard section = "Leaderboard"
	sectionFollowed    section = "Followed Users"
)

type KeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

type Model struct {
	client *api.Client
	store  storage.Provider
	poller *poll.Poller

	rc           ranking.Context
	usersByID    map[string]models.User
	habitsByName map[string]models.Habit
	stats        models.CombinedStats

	entries  map[string]ranking.LeaderboardEntry
	messages map[string]ranking.FollowedUserItem
	snap     snapshot.Snapshot[section, string]

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	loaded   bool
	quitting bool
	width    int
}

func NewModel(client *api.Client, store storage.Provider) (Model, error) {
	viewer, err := store.GetViewer()
	if err != nil {
		return Model{}, err
	}
	favorites, err := store.GetFavoriteHabits()
	if err != nil {
		return Model{}, err
	}
	followed, err := store.GetFollowedUserIDs()
	if err != nil {
		return Model{}, err
	}

	names := make([]string, 0, len(favorites))
	for _, h := range favorites {
		names = append(names, h.Name)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client: client,
		store:  store,
		poller: poll.New(),
		rc: ranking.Context{
			ViewerID:        viewer.ID,
			FavoriteHabits:  names,
			FollowedUserIDs: followed,
		},
		usersByID:    make(map[string]models.User),
		habitsByName: make(map[string]models.Habit),
		entries:      make(map[string]ranking.LeaderboardEntry),
		messages:     make(map[string]ranking.FollowedUserItem),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchHabits(),
		m.fetchUsers(),
		m.fetchStats(),
		tick(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.poller.StopAll()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.fetchStats()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetchStats(), tick())

	case statsMsg:
		m.stats = models.CombinedStats(msg)
		m.loaded = true
		m.recompute()
		return m, nil

	case habitsMsg:
		m.habitsByName = msg
		m.recompute()
		return m, nil

	case usersMsg:
		m.usersByID = msg
		m.recompute()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// recompute reruns ranking over the current snapshot of data and
// rebuilds the target list structure. Tolerates partially arrived
// data: ranking is total and absent input produces empty sections.
func (m *Model) recompute() {
	entries, messages := ranking.Rank(m.stats, m.rc, m.usersByID)

	m.entries = make(map[string]ranking.LeaderboardEntry, len(entries))
	leaderboardIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		m.entries[e.ItemID()] = e
		leaderboardIDs = append(leaderboardIDs, e.ItemID())
	}

	m.messages = make(map[string]ranking.FollowedUserItem, len(messages))
	followedIDs := make([]string, 0, len(messages))
	for _, f := range messages {
		m.messages[f.ItemID()] = f
		followedIDs = append(followedIDs, f.ItemID())
	}

	m.snap = snapshot.Build(
		[]section{sectionLeaderboard, sectionFollowed},
		map[section][]string{
			sectionLeaderboard: leaderboardIDs,
			sectionFollowed:    followedIDs,
		},
		nil,
	)
}
