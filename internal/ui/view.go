package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// formHeight is the rendered height of the entry form pane, used when
// sizing the table against the terminal height.
const formHeight = 11

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.formView())
	b.WriteString("\n")
	b.WriteString(m.tableView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	title := titleStyle.Render("Food Management Dashboard")
	greeting := "Signed out"
	if m.actor != nil {
		greeting = fmt.Sprintf("Welcome back, %s!", m.actor.Name)
	}
	return title + "  " + subtitleStyle.Render(greeting)
}

func (m Model) formView() string {
	labels := [fieldCount]string{
		fieldName:        "Item Name",
		fieldCategory:    "Category",
		fieldDescription: "Description",
		fieldPrice:       "Price ($)",
	}

	var rows []string
	for i := range m.inputs {
		rows = append(rows, labelStyle.Render(fmt.Sprintf("%-12s", labels[i]))+m.inputs[i].View())
	}
	if m.formErr != "" {
		rows = append(rows, errStyle.Render(m.formErr))
	}

	pane := paneStyle
	if m.focus == focusForm {
		pane = focusedPaneStyle
	}
	content := labelStyle.Render("Add New Food Item") + "\n" + strings.Join(rows, "\n")
	return pane.Width(max(40, m.width-4)).Render(content)
}

func (m Model) tableView() string {
	heading := labelStyle.Render("Food Items Database") +
		subtitleStyle.Render(fmt.Sprintf("  Total items: %d", len(m.visible)))
	if m.dayOnly {
		heading += subtitleStyle.Render("  [today]")
	}

	body := m.table.View()
	if len(m.visible) == 0 {
		body = subtitleStyle.Render("No food items found. Add some items to get started!")
	}

	pane := paneStyle
	if m.focus == focusTable {
		pane = focusedPaneStyle
	}
	return pane.Width(max(40, m.width-4)).Render(heading + "\n" + body)
}

func (m Model) footerView() string {
	help := helpStyle.Render("tab focus · enter add · d delete · f today · p print report · q quit")
	if m.status == "" {
		return help
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusStyle.Render(m.status), help)
}
