package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubops/clubkit/internal/config"
	"github.com/clubops/clubkit/internal/logger"
	"github.com/clubops/clubkit/internal/service"
	"github.com/clubops/clubkit/internal/tui"
	"github.com/clubops/clubkit/internal/workers"
)

// App ties the service layer, the terminal UI, and the session keep-alive
// worker into the console process lifecycle.
type App struct {
	services   *service.Services
	tui        *tui.TUI
	workersCfg config.ClientWorkers

	// expired receives a signal from the keep-alive job when the backend
	// stops accepting the session token. The UI main loop watches it.
	expired chan struct{}

	log *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, workersCfg config.ClientWorkers, expired chan struct{}, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and tui are required")
	}

	return &App{
		services:   services,
		tui:        ui,
		workersCfg: workersCfg,
		expired:    expired,
		log:        log,
	}, nil
}

// Run establishes a session (restoring a persisted one when possible,
// otherwise via the login screen), starts the keep-alive worker, and runs
// the console main loop. A logout restarts the whole cycle so the next
// admin can sign in.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) && !errors.Is(err, service.ErrSessionExpired) {
			return fmt.Errorf("restore session: %w", err)
		}

		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.log.Info().Str("username", user.Username).Msg("session established")

	ws := workers.NewWorkers(
		workers.NewKeepAliveWorker(ctx, a.services.SessionJob, a.workersCfg.KeepAliveInterval),
	)
	ws.Run()
	defer ws.Stop()

	logout, err := a.tui.MainLoop(ctx, user, a.expired)
	if err != nil {
		return err
	}
	if logout {
		ws.Stop()
		a.drainExpired()
		return a.Run()
	}

	return nil
}

// drainExpired clears a stale expiry signal left over from the session that
// just ended, so it cannot terminate the next one.
func (a *App) drainExpired() {
	if a.expired == nil {
		return
	}
	select {
	case <-a.expired:
	default:
	}
}
