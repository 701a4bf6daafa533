package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubops/clubkit/internal/service"
	"github.com/clubops/clubkit/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type section int

const (
	sectionEvents section = iota
	sectionRegistrations
	sectionResources
)

var sectionTitles = []string{"Events", "Registrations", "Resources"}

type formStage int

const (
	formNone formStage = iota
	formEvent
	formResource
)

type mainLoopModel struct {
	ctx         context.Context
	services    *service.Services
	user        models.User
	downloadDir string
	expired     <-chan struct{}

	section section
	loading bool
	status  string
	errMsg  string
	detail  bool

	events   []models.Event
	eventIdx int

	registrations []models.Registration
	regIdx        int

	resources []models.Resource
	resIdx    int

	form         formStage
	eventForm    eventFormModel
	resourceForm resourceFormModel
	saving       bool

	logout bool
}

type eventsLoadedMsg struct {
	items []models.Event
	err   error
}

type registrationsLoadedMsg struct {
	items []models.Registration
	err   error
}

type resourcesLoadedMsg struct {
	items []models.Resource
	err   error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type sessionExpiredMsg struct{}

func newMainLoopModel(ctx context.Context, services *service.Services, user models.User, downloadDir string, expired <-chan struct{}) mainLoopModel {
	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		user:        user,
		downloadDir: downloadDir,
		expired:     expired,
		loading:     true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadSection(), m.cmdWatchSession())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionExpiredMsg:
		m.logout = true
		return m, tea.Quit
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.events = msg.items
		m.eventIdx = clampIndex(m.eventIdx, len(m.events))
		return m, nil
	case registrationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.registrations = msg.items
		m.regIdx = clampIndex(m.regIdx, len(m.registrations))
		return m, nil
	case resourcesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.resources = msg.items
		m.resIdx = clampIndex(m.resIdx, len(m.resources))
		return m, nil
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.form = formNone
		m.status = "Saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSection()
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.detail = false
		m.status = "Deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSection()
	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = "Exported to " + msg.path
		m.errMsg = ""
		return m, nil
	case downloadDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Download failed: %v", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = "Downloaded to " + msg.path
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.form != formNone {
			return m.updateForm(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.form != formNone {
		return m.updateForm(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.services.AuthService.Logout()
		m.logout = true
		return m, tea.Quit
	case "tab", "right":
		m.section = (m.section + 1) % section(len(sectionTitles))
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSection()
	case "shift+tab", "left":
		m.section = (m.section - 1 + section(len(sectionTitles))) % section(len(sectionTitles))
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadSection()
	case "r":
		m.status = ""
		m.loading = true
		return m, m.cmdLoadSection()
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "enter":
		if m.currentEmpty() {
			m.status = "Nothing selected"
			return m, nil
		}
		m.detail = true
	case "n":
		switch m.section {
		case sectionEvents:
			m.startEventForm(nil)
		case sectionResources:
			m.startResourceForm(nil)
		default:
			m.status = "Sign-ups come in from the public site"
		}
		return m, nil
	case "e":
		return m.startEditCurrent()
	case "ctrl+d":
		return m.deleteCurrent()
	case "x":
		switch m.section {
		case sectionEvents:
			event, ok := m.currentEvent()
			if !ok {
				m.status = "No events"
				return m, nil
			}
			m.status = "Exporting..."
			return m, m.cmdExport(event.ID)
		case sectionRegistrations:
			m.status = "Exporting..."
			return m, m.cmdExport(uuid.Nil)
		}
	case "d":
		if m.section != sectionResources {
			return m, nil
		}
		resource, ok := m.currentResource()
		if !ok {
			m.status = "No resources"
			return m, nil
		}
		m.status = "Downloading..."
		return m, m.cmdDownload(resource.ID)
	case "c":
		return m.copyCurrent()
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
	case "e":
		m.detail = false
		return m.startEditCurrent()
	case "ctrl+d":
		return m.deleteCurrent()
	case "c":
		return m.copyCurrent()
	}
	return m, nil
}

func (m mainLoopModel) startEditCurrent() (tea.Model, tea.Cmd) {
	switch m.section {
	case sectionEvents:
		event, ok := m.currentEvent()
		if !ok {
			m.status = "No events"
			return m, nil
		}
		m.startEventForm(&event)
	case sectionResources:
		resource, ok := m.currentResource()
		if !ok {
			m.status = "No resources"
			return m, nil
		}
		m.startResourceForm(&resource)
	default:
		m.status = "Registrations cannot be edited"
	}
	return m, nil
}

func (m mainLoopModel) deleteCurrent() (tea.Model, tea.Cmd) {
	switch m.section {
	case sectionEvents:
		event, ok := m.currentEvent()
		if !ok {
			m.status = "No events"
			return m, nil
		}
		return m, m.cmdDeleteEvent(event.ID)
	case sectionResources:
		resource, ok := m.currentResource()
		if !ok {
			m.status = "No resources"
			return m, nil
		}
		return m, m.cmdDeleteResource(resource.ID)
	}
	m.status = "Registrations cannot be deleted here"
	return m, nil
}

func (m mainLoopModel) copyCurrent() (tea.Model, tea.Cmd) {
	var text string
	switch m.section {
	case sectionEvents:
		event, ok := m.currentEvent()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		text = event.ID.String()
	case sectionResources:
		resource, ok := m.currentResource()
		if !ok || resource.FileURL == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		text = resource.FileURL
	default:
		reg, ok := m.currentRegistration()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		text = reg.MoodleID
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.status = "Copied"
	return m, nil
}

func (m *mainLoopModel) moveCursor(delta int) {
	switch m.section {
	case sectionEvents:
		m.eventIdx = clampIndex(m.eventIdx+delta, len(m.events))
	case sectionRegistrations:
		m.regIdx = clampIndex(m.regIdx+delta, len(m.registrations))
	case sectionResources:
		m.resIdx = clampIndex(m.resIdx+delta, len(m.resources))
	}
}

func (m mainLoopModel) currentEmpty() bool {
	switch m.section {
	case sectionEvents:
		return len(m.events) == 0
	case sectionRegistrations:
		return len(m.registrations) == 0
	default:
		return len(m.resources) == 0
	}
}

func (m mainLoopModel) currentEvent() (models.Event, bool) {
	if m.eventIdx < 0 || m.eventIdx >= len(m.events) {
		return models.Event{}, false
	}
	return m.events[m.eventIdx], true
}

func (m mainLoopModel) currentRegistration() (models.Registration, bool) {
	if m.regIdx < 0 || m.regIdx >= len(m.registrations) {
		return models.Registration{}, false
	}
	return m.registrations[m.regIdx], true
}

func (m mainLoopModel) currentResource() (models.Resource, bool) {
	if m.resIdx < 0 || m.resIdx >= len(m.resources) {
		return models.Resource{}, false
	}
	return m.resources[m.resIdx], true
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m mainLoopModel) cmdLoadSection() tea.Cmd {
	switch m.section {
	case sectionEvents:
		return m.cmdLoadEvents()
	case sectionRegistrations:
		return m.cmdLoadRegistrations()
	default:
		return m.cmdLoadResources()
	}
}

func (m mainLoopModel) cmdLoadEvents() tea.Cmd {
	ctx := m.ctx
	svc := m.services.EventService
	return func() tea.Msg {
		items, err := svc.List(ctx, models.EventFilter{})
		return eventsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadRegistrations() tea.Cmd {
	ctx := m.ctx
	svc := m.services.RegistrationService
	return func() tea.Msg {
		items, err := svc.List(ctx, models.RegistrationFilter{})
		return registrationsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadResources() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ResourceService
	return func() tea.Msg {
		items, err := svc.List(ctx, "")
		return resourcesLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdDeleteEvent(id uuid.UUID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EventService
	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdDeleteResource(id uuid.UUID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ResourceService
	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdExport(eventID uuid.UUID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.RegistrationService
	destDir := m.downloadDir
	return func() tea.Msg {
		path, err := svc.ExportCSV(ctx, eventID, destDir)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m mainLoopModel) cmdDownload(id uuid.UUID) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ResourceService
	destDir := m.downloadDir
	return func() tea.Msg {
		path, err := svc.Download(ctx, id, destDir)
		return downloadDoneMsg{path: path, err: err}
	}
}

// cmdWatchSession turns a signal from the keep-alive job into a message the
// program can act on. The job sends on (or closes) expired when the backend
// stops accepting the session token.
func (m mainLoopModel) cmdWatchSession() tea.Cmd {
	if m.expired == nil {
		return nil
	}

	expired := m.expired
	done := m.ctx.Done()
	return func() tea.Msg {
		select {
		case <-expired:
			return sessionExpiredMsg{}
		case <-done:
			return nil
		}
	}
}

func (m mainLoopModel) View() string {
	switch m.form {
	case formEvent:
		return m.eventForm.View()
	case formResource:
		return m.resourceForm.View()
	}

	if m.detail {
		return m.viewDetail()
	}

	return m.viewList()
}

func (m mainLoopModel) statusLine() string {
	var parts []string
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render("Error: "+m.errMsg))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}
