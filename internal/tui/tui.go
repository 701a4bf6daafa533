package tui

import (
	"context"
	"errors"

	"github.com/clubops/clubkit/internal/logger"
	"github.com/clubops/clubkit/internal/service"
	"github.com/clubops/clubkit/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services    *service.Services
	downloadDir string
	buildInfo   models.AppBuildInfo
}

func New(services *service.Services, downloadDir string, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, downloadDir: downloadDir, buildInfo: buildInfo}, nil
}

// LoginFlow runs the login screen until the admin authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the admin console until the admin logs out or quits.
// A receive on expired (closed or sent to by the session keep-alive job)
// ends the loop with logout=true so the caller can re-run the login flow.
func (t *TUI) MainLoop(ctx context.Context, user models.User, expired <-chan struct{}) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user, t.downloadDir, expired)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
