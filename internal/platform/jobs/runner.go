// Package jobs runs periodic maintenance work in the background. The only
// current job re-derives document statuses, which go stale as expiry dates
// approach.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Job is one named unit of periodic work. Run reports how many records it
// touched.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(context.Context) (int, error)
}

type Runner struct {
	jobs []Job
}

func NewRunner(jobs ...Job) *Runner {
	return &Runner{jobs: jobs}
}

// Start launches one goroutine per job. Each job runs once immediately and
// then on its interval until ctx is cancelled. Jobs with a zero interval are
// skipped.
func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		if j.Interval <= 0 {
			continue
		}
		go r.loop(ctx, j)
	}
}

func (r *Runner) loop(ctx context.Context, j Job) {
	r.runOnce(ctx, j)
	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx, j)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, j Job) {
	touched, err := j.Run(ctx)
	if err != nil {
		slog.Error("background job failed", "job", j.Name, "err", err)
		return
	}
	if touched > 0 {
		slog.Info("background job ran", "job", j.Name, "touched", touched)
	}
}
