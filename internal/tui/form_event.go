package tui

import (
	"fmt"
	"strings"

	"github.com/clubops/clubkit/models"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"
)

// eventFormModel holds the widgets for the create/edit event form. Focus
// row 1 is the type selector cycled with left/right; the remaining rows are
// plain text inputs.
type eventFormModel struct {
	inputs  []textinput.Model // title, date, description
	typeIdx int
	focus   int
	editing bool
	eventID uuid.UUID
	errMsg  string
}

const (
	eventRowTitle = iota
	eventRowType
	eventRowDate
	eventRowDescription
	eventRowCount
)

func newEventFormModel(item *models.Event) eventFormModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 40
	title.Focus()

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 40

	description := textinput.New()
	description.Placeholder = "Description (optional)"
	description.Width = 40

	m := eventFormModel{inputs: []textinput.Model{title, date, description}}
	if item == nil {
		return m
	}

	m.editing = true
	m.eventID = item.ID
	m.inputs[0].SetValue(item.Title)
	m.inputs[1].SetValue(item.Date.String())
	m.inputs[2].SetValue(item.Description)
	for i, t := range models.EventTypes {
		if t == item.Type {
			m.typeIdx = i
		}
	}
	return m
}

// inputIdx maps a focus row to its index in inputs, skipping the selector row.
func (m eventFormModel) inputIdx() (int, bool) {
	switch m.focus {
	case eventRowTitle:
		return 0, true
	case eventRowDate:
		return 1, true
	case eventRowDescription:
		return 2, true
	}
	return 0, false
}

func (m *eventFormModel) setFocus(row int) {
	if idx, ok := m.inputIdx(); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (row + eventRowCount) % eventRowCount
	if idx, ok := m.inputIdx(); ok {
		m.inputs[idx].Focus()
	}
}

func (m *eventFormModel) cycleType(delta int) {
	m.typeIdx = (m.typeIdx + delta + len(models.EventTypes)) % len(models.EventTypes)
}

func (m eventFormModel) toCreate() (models.EventCreate, error) {
	title := strings.TrimSpace(m.inputs[0].Value())
	if title == "" {
		return models.EventCreate{}, fmt.Errorf("title is required")
	}

	date, err := models.ParseDate(strings.TrimSpace(m.inputs[1].Value()))
	if err != nil {
		return models.EventCreate{}, fmt.Errorf("date must be YYYY-MM-DD")
	}

	return models.EventCreate{
		Title:       title,
		Type:        models.EventTypes[m.typeIdx],
		Date:        date,
		Description: strings.TrimSpace(m.inputs[2].Value()),
	}, nil
}

func (m eventFormModel) toUpdate() (models.EventUpdate, error) {
	create, err := m.toCreate()
	if err != nil {
		return models.EventUpdate{}, err
	}

	return models.EventUpdate{
		Title:       &create.Title,
		Type:        &create.Type,
		Date:        &create.Date,
		Description: &create.Description,
	}, nil
}

func (m eventFormModel) View() string {
	title := "NEW EVENT"
	if m.editing {
		title = "EDIT EVENT"
	}

	typeCell := string(models.EventTypes[m.typeIdx])
	if m.focus == eventRowType {
		typeCell = "< " + typeCell + " >"
	}

	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼──────────────────────────────────────────\n")
	b.WriteString("Title       │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Type        │ " + typeCell + "\n")
	b.WriteString("Date        │ [" + m.inputs[1].View() + "]\n")
	b.WriteString("Description │ [" + m.inputs[2].View() + "]\n")

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab: next field │ left/right: type │ enter: save")
}
