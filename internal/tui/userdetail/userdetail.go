// Package userdetail is the single-user screen: the user's habit
// counts grouped into a "Leading" section and per-category sections,
// refreshed on a short poll. The two statistics fetches race freely;
// the list is only rebuilt once both have arrived at least once.
package userdetail

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habits/internal/api"
	"github.com/julianstephens/habits/internal/imagecache"
	"github.com/julianstephens/habits/internal/models"
	"github.com/julianstephens/habits/internal/poll"
	"github.com/julianstephens/habits/internal/snapshot"
)

// section identifies one group of habit counts. The zero name marks
// the leading section.
type section struct {
	Leading  bool
	Category string
}

func (s section) title() string {
	if s.Leading {
		return "Leading"
	}
	return s.Category
}

type KeyMap struct {
	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "back"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Quit}} }

type Model struct {
	client *api.Client
	poller *poll.Poller
	images *imagecache.Cache

	user models.User

	userStats    *models.UserStatistics
	leadingStats *models.UserStatistics

	items map[string]models.HabitCount
	snap  snapshot.Snapshot[section, string]

	avatarBytes int

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	quitting bool
}

func NewModel(client *api.Client, images *imagecache.Cache, user models.User) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:  client,
		poller:  poll.New(),
		images:  images,
		user:    user,
		items:   make(map[string]models.HabitCount),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}

	if img, ok := images.Get(user.ID); ok {
		m.avatarBytes = len(img)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.fetchUserStats(), m.fetchLeadingStats(), tick()}
	if m.avatarBytes == 0 {
		cmds = append(cmds, m.fetchAvatar())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.poller.StopAll()
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetchUserStats(), m.fetchLeadingStats(), tick())

	case userStatsMsg:
		m.userStats = msg.stats
		m.recompute()
		return m, nil

	case leadingStatsMsg:
		m.leadingStats = msg.stats
		m.recompute()
		return m, nil

	case avatarMsg:
		m.avatarBytes = msg.size
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// recompute rebuilds the section structure. Deferred until both polls
// have produced a result: classifying counts as leading requires the
// leading stats, so rendering with half the data would misfile items.
func (m *Model) recompute() {
	if m.userStats == nil || m.leadingStats == nil {
		return
	}

	leading := make(map[string]bool, len(m.leadingStats.HabitCounts))
	for _, hc := range m.leadingStats.HabitCounts {
		leading[hc.ID()] = true
	}

	m.items = make(map[string]models.HabitCount, len(m.userStats.HabitCounts))
	grouped := make(map[section][]models.HabitCount)
	for _, hc := range m.userStats.HabitCounts {
		m.items[hc.ID()] = hc

		sec := section{Category: hc.Habit.Category.Name}
		if leading[hc.ID()] {
			sec = section{Leading: true}
		}
		grouped[sec] = append(grouped[sec], hc)
	}

	sectionIDs := make([]section, 0, len(grouped))
	itemsBySection := make(map[section][]string, len(grouped))
	for sec, counts := range grouped {
		sort.Slice(counts, func(i, j int) bool {
			return counts[i].Less(counts[j])
		})
		ids := make([]string, 0, len(counts))
		for _, hc := range counts {
			ids = append(ids, hc.ID())
		}
		sectionIDs = append(sectionIDs, sec)
		itemsBySection[sec] = ids
	}

	// Leading first, then categories by name descending
	sort.Slice(sectionIDs, func(i, j int) bool {
		a, b := sectionIDs[i], sectionIDs[j]
		if a.Leading != b.Leading {
			return a.Leading
		}
		return a.Category > b.Category
	})

	m.snap = snapshot.Build(sectionIDs, itemsBySection, nil)
}
