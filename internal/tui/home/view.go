package home

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginTop(1)

	habitNameStyle = lipgloss.NewStyle().
			Bold(true)

	leadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.loaded {
		return docStyle.Render(m.spinner.View() + " Loading statistics...")
	}

	var b strings.Builder
	if len(m.snap.Sections) == 0 {
		b.WriteString(emptyStyle.Render("Nothing to show yet. Favorite some habits or follow some users."))
		b.WriteString("\n")
	}

	for _, sec := range m.snap.Sections {
		b.WriteString(headerStyle.Render(string(sec.ID)))
		b.WriteString("\n")

		for _, itemID := range sec.Items {
			switch sec.ID {
			case sectionLeaderboard:
				entry, ok := m.entries[itemID]
				if !ok {
					continue
				}
				b.WriteString(habitNameStyle.Render(entry.HabitName))
				b.WriteString("\n  " + leadingStyle.Render(entry.Leading))
				if entry.Secondary != nil {
					b.WriteString("\n  " + secondaryStyle.Render(*entry.Secondary))
				}
				b.WriteString("\n")

			case sectionFollowed:
				item, ok := m.messages[itemID]
				if !ok {
					continue
				}
				b.WriteString(habitNameStyle.Render(item.User.Name))
				for _, line := range strings.Split(item.Message, "\n") {
					b.WriteString("\n  " + messageStyle.Render(line))
				}
				b.WriteString("\n")
			}
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		docStyle.Render(b.String()),
		m.help.View(m.keys),
	)
}
