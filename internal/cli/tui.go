package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/reactome-tools/reaction-layout/pkg/model"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// entityListModel is the bubbletea model for browsing a computed
// layout's participants.
type entityListModel struct {
	reactionName string
	entities     []*model.Entity
	cursor       int
	height       int
	offset       int
}

func newEntityListModel(reactionName string, entities []*model.Entity) entityListModel {
	return entityListModel{reactionName: reactionName, entities: entities, height: 15}
}

func (m entityListModel) Init() tea.Cmd { return nil }

func (m entityListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.entities)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m entityListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reaction: " + m.reactionName))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.entities) {
		end = len(m.entities)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		e := m.entities[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		roles := make([]string, len(e.Roles))
		for j, r := range e.Roles {
			roles[j] = r.Type.String()
		}
		pos := fmt.Sprintf("(%.0f, %.0f)", e.Position.X, e.Position.Y)
		rows = append(rows, []string{cursor, e.Name, strings.Join(roles, "+"), e.CompartmentID, pos})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Entity", "Roles", "Compartment", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == m.cursor-m.offset {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	return b.String()
}
