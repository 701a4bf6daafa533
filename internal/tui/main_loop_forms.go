package tui

import (
	"github.com/clubops/clubkit/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *mainLoopModel) startEventForm(item *models.Event) {
	m.form = formEvent
	m.eventForm = newEventFormModel(item)
	m.saving = false
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) startResourceForm(item *models.Resource) {
	m.form = formResource
	m.resourceForm = newResourceFormModel(item)
	m.saving = false
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.form {
	case formEvent:
		return m.updateEventForm(msg)
	case formResource:
		return m.updateResourceForm(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateEventForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.form = formNone
			return m, nil
		case "tab", "down":
			m.eventForm.setFocus(m.eventForm.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.eventForm.setFocus(m.eventForm.focus - 1)
			return m, nil
		case "left":
			if m.eventForm.focus == eventRowType {
				m.eventForm.cycleType(-1)
				return m, nil
			}
		case "right":
			if m.eventForm.focus == eventRowType {
				m.eventForm.cycleType(1)
				return m, nil
			}
		case "enter":
			if m.saving {
				return m, nil
			}
			m.eventForm.errMsg = ""
			m.saving = true
			return m, m.cmdSaveEvent()
		}
	}

	idx, ok := m.eventForm.inputIdx()
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.eventForm.inputs[idx], cmd = m.eventForm.inputs[idx].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateResourceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.form = formNone
			return m, nil
		case "tab", "down":
			m.resourceForm.setFocus(m.resourceForm.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.resourceForm.setFocus(m.resourceForm.focus - 1)
			return m, nil
		case "left":
			if m.resourceForm.focus == resourceRowLevel {
				m.resourceForm.cycleLevel(-1)
				return m, nil
			}
		case "right":
			if m.resourceForm.focus == resourceRowLevel {
				m.resourceForm.cycleLevel(1)
				return m, nil
			}
		case "enter":
			if m.saving {
				return m, nil
			}
			m.resourceForm.errMsg = ""
			m.saving = true
			return m, m.cmdSaveResource()
		}
	}

	idx, ok := m.resourceForm.inputIdx()
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.resourceForm.inputs[idx], cmd = m.resourceForm.inputs[idx].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) cmdSaveEvent() tea.Cmd {
	ctx := m.ctx
	svc := m.services.EventService
	form := m.eventForm

	if form.editing {
		upd, err := form.toUpdate()
		if err != nil {
			m.eventForm.errMsg = err.Error()
			m.saving = false
			return nil
		}
		return func() tea.Msg {
			_, err := svc.Update(ctx, form.eventID, upd)
			return savedMsg{err: err}
		}
	}

	create, err := form.toCreate()
	if err != nil {
		m.eventForm.errMsg = err.Error()
		m.saving = false
		return nil
	}
	return func() tea.Msg {
		_, err := svc.Create(ctx, create)
		return savedMsg{err: err}
	}
}

func (m *mainLoopModel) cmdSaveResource() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ResourceService
	form := m.resourceForm

	title, err := form.title()
	if err != nil {
		m.resourceForm.errMsg = err.Error()
		m.saving = false
		return nil
	}
	level := form.level()

	if form.editing {
		upd, err := form.toUpdate()
		if err != nil {
			m.resourceForm.errMsg = err.Error()
			m.saving = false
			return nil
		}
		return func() tea.Msg {
			_, err := svc.Update(ctx, form.resourceID, upd)
			return savedMsg{err: err}
		}
	}

	path, err := form.filePath()
	if err != nil {
		m.resourceForm.errMsg = err.Error()
		m.saving = false
		return nil
	}
	return func() tea.Msg {
		_, err := svc.Upload(ctx, title, level, path)
		return savedMsg{err: err}
	}
}
