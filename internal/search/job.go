// Package search runs marketplace searches as background jobs behind a fixed
// delay. A job is a future with exactly one terminal outcome.
package search

import (
	"context"
	"sync"
	"time"

	"luxemarket/internal/domain"
)

type State string

const (
	StatePending   State = "pending"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

func (s State) Terminal() bool { return s != StatePending }

// Outcome is what a job published. Results is non-nil on success, possibly
// empty; Err is set for failed and cancelled jobs.
type Outcome struct {
	State   State
	Results []domain.Product
	Err     error
}

type Job struct {
	ID      string
	Owner   string
	Started time.Time

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	outcome  Outcome
	finished time.Time
}

func newJob(id, owner string, cancel context.CancelFunc) *Job {
	return &Job{
		ID:      id,
		Owner:   owner,
		Started: time.Now(),
		cancel:  cancel,
		done:    make(chan struct{}),
		outcome: Outcome{State: StatePending},
	}
}

// Done is closed once the outcome is final.
func (j *Job) Done() <-chan struct{} { return j.done }

func (j *Job) Outcome() Outcome {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outcome
}

// Took is the time from trigger to outcome, or zero while pending.
func (j *Job) Took() time.Duration {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.finished.IsZero() {
		return 0
	}
	return j.finished.Sub(j.Started)
}

// Wait blocks until the job finishes or ctx ends. Giving up on the wait does
// not cancel the job.
func (j *Job) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-j.done:
		return j.Outcome(), nil
	case <-ctx.Done():
		return Outcome{State: StatePending}, ctx.Err()
	}
}

// Cancel asks a pending job to stop. It has no effect on a finished job.
func (j *Job) Cancel() { j.cancel() }

// finish records the outcome. Only the first call has any effect.
func (j *Job) finish(o Outcome) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.outcome.State.Terminal() {
		return false
	}
	j.outcome = o
	j.finished = time.Now()
	close(j.done)
	return true
}
