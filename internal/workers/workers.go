package workers

import "context"

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every worker with the shared ctx.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
