package workers

import (
	"context"
	"time"

	"github.com/clubops/clubkit/internal/service"
)

// KeepAliveWorker adapts the session keep-alive job to the Worker contract
// so it can be managed alongside any other background worker.
type KeepAliveWorker struct {
	ctx      context.Context
	job      service.SessionJob
	interval time.Duration
}

func NewKeepAliveWorker(ctx context.Context, job service.SessionJob, interval time.Duration) *KeepAliveWorker {
	return &KeepAliveWorker{ctx: ctx, job: job, interval: interval}
}

// Run implements Worker. It launches the keep-alive job and returns
// immediately; the job runs on its own goroutine.
func (w *KeepAliveWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

// Stop implements StoppableWorker.
func (w *KeepAliveWorker) Stop() {
	w.job.Stop()
}
