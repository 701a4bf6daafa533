package tui

import (
	"fmt"
	"strings"

	"github.com/clubops/clubkit/models"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"
)

// resourceFormModel holds the widgets for the upload/edit resource form.
// Editing only touches metadata; the file path row is shown for new uploads.
type resourceFormModel struct {
	inputs     []textinput.Model // title, file path
	levelIdx   int
	focus      int
	editing    bool
	resourceID uuid.UUID
	errMsg     string
}

const (
	resourceRowTitle = iota
	resourceRowLevel
	resourceRowPath
)

func newResourceFormModel(item *models.Resource) resourceFormModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 40
	title.Focus()

	path := textinput.New()
	path.Placeholder = "/path/to/file.pdf"
	path.Width = 54

	m := resourceFormModel{inputs: []textinput.Model{title, path}}
	if item == nil {
		return m
	}

	m.editing = true
	m.resourceID = item.ID
	m.inputs[0].SetValue(item.Title)
	for i, l := range models.ResourceLevels {
		if l == item.Level {
			m.levelIdx = i
		}
	}
	return m
}

func (m resourceFormModel) rowCount() int {
	if m.editing {
		return 2
	}
	return 3
}

func (m resourceFormModel) inputIdx() (int, bool) {
	switch m.focus {
	case resourceRowTitle:
		return 0, true
	case resourceRowPath:
		return 1, true
	}
	return 0, false
}

func (m *resourceFormModel) setFocus(row int) {
	if idx, ok := m.inputIdx(); ok {
		m.inputs[idx].Blur()
	}
	count := m.rowCount()
	m.focus = (row + count) % count
	if idx, ok := m.inputIdx(); ok {
		m.inputs[idx].Focus()
	}
}

func (m *resourceFormModel) cycleLevel(delta int) {
	m.levelIdx = (m.levelIdx + delta + len(models.ResourceLevels)) % len(models.ResourceLevels)
}

func (m resourceFormModel) title() (string, error) {
	title := strings.TrimSpace(m.inputs[0].Value())
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	return title, nil
}

func (m resourceFormModel) level() models.ResourceLevel {
	return models.ResourceLevels[m.levelIdx]
}

func (m resourceFormModel) filePath() (string, error) {
	path := strings.TrimSpace(m.inputs[1].Value())
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}
	return path, nil
}

func (m resourceFormModel) toUpdate() (models.ResourceUpdate, error) {
	title, err := m.title()
	if err != nil {
		return models.ResourceUpdate{}, err
	}

	level := m.level()
	return models.ResourceUpdate{Title: &title, Level: &level}, nil
}

func (m resourceFormModel) View() string {
	title := "UPLOAD RESOURCE"
	if m.editing {
		title = "EDIT RESOURCE"
	}

	levelCell := string(m.level())
	if m.focus == resourceRowLevel {
		levelCell = "< " + levelCell + " >"
	}

	var b strings.Builder
	b.WriteString("Field │ Value\n")
	b.WriteString("──────┼──────────────────────────────────────────────\n")
	b.WriteString("Title │ [" + m.inputs[0].View() + "]\n")
	b.WriteString("Level │ " + levelCell + "\n")
	if !m.editing {
		b.WriteString("File  │ [" + m.inputs[1].View() + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab: next field │ left/right: level │ enter: save")
}
