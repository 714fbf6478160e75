package userdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	bioStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true).
			MarginTop(1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(nameStyle.Render(m.user.Name))
	if m.user.Bio != nil {
		b.WriteString("\n" + bioStyle.Render(*m.user.Bio))
	}
	b.WriteString("\n")

	if m.userStats == nil || m.leadingStats == nil {
		b.WriteString("\n" + m.spinner.View() + " Loading statistics...")
		return docStyle.Render(b.String())
	}

	if len(m.snap.Sections) == 0 {
		b.WriteString("\nNo habits logged yet.")
	}

	for _, sec := range m.snap.Sections {
		b.WriteString(sectionStyle.Render(sec.ID.title()))
		b.WriteString("\n")
		for _, itemID := range sec.Items {
			hc, ok := m.items[itemID]
			if !ok {
				continue
			}
			b.WriteString(countStyle.Render(fmt.Sprintf("  %s  %d", hc.Habit.Name, hc.Count)))
			b.WriteString("\n")
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		docStyle.Render(b.String()),
		m.help.View(m.keys),
	)
}
