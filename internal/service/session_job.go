package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

type sessionJob struct {
	auth AuthService

	// onExpired, when set, fires once if a ping reports session expiry.
	// The job stops itself afterwards.
	onExpired func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionJob creates a sessionJob that calls auth.Ping on a ticker. The
// job is idle until Start is called. onExpired may be nil.
func NewSessionJob(auth AuthService, onExpired func()) SessionJob {
	return &sessionJob{auth: auth, onExpired: onExpired}
}

// Start implements SessionJob. It stops any previously running job, then
// launches a background goroutine that pings every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled, Stop is called, or the session expires.
func (j *sessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := j.auth.Ping(jobCtx)
				if errors.Is(err, ErrSessionExpired) {
					if j.onExpired != nil {
						j.onExpired()
					}
					return
				}
			}
		}
	}()
}

// Stop implements SessionJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *sessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
