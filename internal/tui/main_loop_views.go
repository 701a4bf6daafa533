package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
	} else {
		switch m.section {
		case sectionEvents:
			b.WriteString(m.viewEventsTable())
		case sectionRegistrations:
			b.WriteString(m.viewRegistrationsTable())
		case sectionResources:
			b.WriteString(m.viewResourcesTable())
		}
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	title := titleStyle.Render("CLUB CONSOLE") + helpStyle.Render("  signed in as "+m.user.Username)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.listHotKeys())
}

func (m mainLoopModel) viewTabs() string {
	tabs := make([]string, len(sectionTitles))
	for i, name := range sectionTitles {
		if section(i) == m.section {
			tabs[i] = titleStyle.Render("[" + name + "]")
		} else {
			tabs[i] = " " + name + " "
		}
	}
	return strings.Join(tabs, " ")
}

func (m mainLoopModel) listHotKeys() string {
	common := "tab: section │ r: reload │ l: logout │ q: quit"
	switch m.section {
	case sectionEvents:
		return "enter: detail │ n: new │ e: edit │ ctrl+d: deactivate │ x: export sign-ups │ c: copy id │ " + common
	case sectionRegistrations:
		return "enter: detail │ x: export csv │ c: copy moodle id │ " + common
	default:
		return "enter: detail │ n: upload │ e: edit │ ctrl+d: delete │ d: download │ c: copy url │ " + common
	}
}

func (m mainLoopModel) viewEventsTable() string {
	if len(m.events) == 0 {
		return "No events yet. Press n to create one."
	}

	titleWidth := lipgloss.Width("Title")
	typeWidth := lipgloss.Width("Type")
	for _, e := range m.events {
		if w := lipgloss.Width(fitText(e.Title, 32)); w > titleWidth {
			titleWidth = w
		}
		if w := lipgloss.Width(string(e.Type)); w > typeWidth {
			typeWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s │ %-*s │ %-10s │ %s\n", titleWidth, "Title", typeWidth, "Type", "Date", "Active")
	for i, e := range m.events {
		cursor := "  "
		if i == m.eventIdx {
			cursor = "> "
		}
		active := "yes"
		if !e.IsActive {
			active = "no"
		}
		fmt.Fprintf(&b, "%s%-*s │ %-*s │ %-10s │ %s\n",
			cursor, titleWidth, fitText(e.Title, 32), typeWidth, string(e.Type), e.Date.String(), active)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewRegistrationsTable() string {
	if len(m.registrations) == 0 {
		return "No registrations yet."
	}

	nameWidth := lipgloss.Width("Name")
	for _, r := range m.registrations {
		if w := lipgloss.Width(fitText(r.OperativeName, 28)); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s │ %-12s │ %-24s │ %s\n", nameWidth, "Name", "Moodle ID", "Event", "When")
	for i, r := range m.registrations {
		cursor := "  "
		if i == m.regIdx {
			cursor = "> "
		}
		event := r.EventID.String()[:8]
		if r.Event != nil {
			event = fitText(r.Event.Title, 24)
		}
		fmt.Fprintf(&b, "%s%-*s │ %-12s │ %-24s │ %s\n",
			cursor, nameWidth, fitText(r.OperativeName, 28), r.MoodleID, event, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewResourcesTable() string {
	if len(m.resources) == 0 {
		return "No resources yet. Press n to upload a PDF."
	}

	titleWidth := lipgloss.Width("Title")
	for _, r := range m.resources {
		if w := lipgloss.Width(fitText(r.Title, 36)); w > titleWidth {
			titleWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %-*s │ %-12s │ %-10s │ %s\n", titleWidth, "Title", "Level", "Size", "Updated")
	for i, r := range m.resources {
		cursor := "  "
		if i == m.resIdx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%-*s │ %-12s │ %-10s │ %s\n",
			cursor, titleWidth, fitText(r.Title, 36), string(r.Level), formatSize(r.FileSize), r.UpdatedAt.Format("2006-01-02"))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	var title string

	switch m.section {
	case sectionEvents:
		event, ok := m.currentEvent()
		if !ok {
			return m.viewList()
		}
		title = "EVENT"
		b.WriteString("ID:          " + event.ID.String() + "\n")
		b.WriteString("Title:       " + event.Title + "\n")
		b.WriteString("Type:        " + string(event.Type) + "\n")
		b.WriteString("Date:        " + event.Date.String() + "\n")
		b.WriteString("Description: " + valueOrDash(event.Description) + "\n")
		active := "yes"
		if !event.IsActive {
			active = "no"
		}
		b.WriteString("Active:      " + active + "\n")
		b.WriteString("Created:     " + event.CreatedAt.Format("2006-01-02 15:04") + "\n")

	case sectionRegistrations:
		reg, ok := m.currentRegistration()
		if !ok {
			return m.viewList()
		}
		title = "REGISTRATION"
		b.WriteString("ID:        " + reg.ID.String() + "\n")
		b.WriteString("Name:      " + reg.OperativeName + "\n")
		b.WriteString("Moodle ID: " + reg.MoodleID + "\n")
		event := reg.EventID.String()
		if reg.Event != nil {
			event = reg.Event.Title
		}
		b.WriteString("Event:     " + event + "\n")
		b.WriteString("When:      " + reg.Timestamp.Format("2006-01-02 15:04:05") + "\n")

	case sectionResources:
		resource, ok := m.currentResource()
		if !ok {
			return m.viewList()
		}
		title = "RESOURCE"
		b.WriteString("ID:      " + resource.ID.String() + "\n")
		b.WriteString("Title:   " + resource.Title + "\n")
		b.WriteString("Level:   " + string(resource.Level) + "\n")
		b.WriteString("Size:    " + formatSize(resource.FileSize) + "\n")
		b.WriteString("URL:     " + valueOrDash(resource.FileURL) + "\n")
		b.WriteString("Updated: " + resource.UpdatedAt.Format("2006-01-02 15:04") + "\n")
	}

	if line := m.statusLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	return renderPage(titleStyle.Render(title), strings.TrimRight(b.String(), "\n"), "esc: back │ e: edit │ ctrl+d: delete │ c: copy")
}
