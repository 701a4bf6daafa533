package workers

type Workers struct {
	workers []Worker
}

// NewWorkers bundles ws into one aggregate. Run starts them in the given
// order; Stop shuts them down in reverse.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports it, last started first.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if s, ok := w.workers[i].(StoppableWorker); ok {
			s.Stop()
		}
	}
}
