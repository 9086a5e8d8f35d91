package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/xid"

	"luxemarket/internal/domain"
	"luxemarket/internal/metrics"
)

const (
	defaultJobTTL = 10 * time.Minute
	cleanupEvery  = time.Minute
)

// Task produces the search results once the delay has passed.
type Task func(ctx context.Context) ([]domain.Product, error)

// Runner executes at most one pending job per owner.
type Runner struct {
	delay   time.Duration
	log     *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	pending map[string]*Job
	closed  bool

	jobs *cache.Cache
}

type Option func(*Runner)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option { return func(r *Runner) { r.metrics = m } }

// WithJobTTL sets how long finished jobs stay queryable by ID.
func WithJobTTL(ttl time.Duration) Option {
	return func(r *Runner) { r.jobs = cache.New(ttl, cleanupEvery) }
}

func NewRunner(delay time.Duration, opts ...Option) *Runner {
	r := &Runner{
		delay:   delay,
		log:     slog.Default(),
		pending: make(map[string]*Job),
		jobs:    cache.New(defaultJobTTL, cleanupEvery),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var ErrClosed = errors.New("search runner closed")

// Trigger starts task for owner after the configured delay. If owner already
// has a pending job, that job is returned with started == false and task is
// dropped. notify, when not nil, runs once with the finished job.
func (r *Runner) Trigger(owner string, task Task, notify func(*Job)) (job *Job, started bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if j, ok := r.pending[owner]; ok {
		return j, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := newJob(xid.New().String(), owner, cancel)
	if r.closed {
		cancel()
		j.finish(Outcome{State: StateCancelled, Err: ErrClosed})
		return j, false
	}
	r.pending[owner] = j
	r.jobs.Set(j.ID, j, cache.NoExpiration)

	go r.run(ctx, j, task, notify)
	return j, true
}

// Job looks up a pending or recently finished job.
func (r *Runner) Job(id string) (*Job, bool) {
	v, ok := r.jobs.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Job), true
}

// Pending returns the owner's in-flight job, if any.
func (r *Runner) Pending(owner string) (*Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.pending[owner]
	return j, ok
}

// Close cancels every pending job and refuses new ones.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	jobs := make([]*Job, 0, len(r.pending))
	for _, j := range r.pending {
		jobs = append(jobs, j)
	}
	r.mu.Unlock()

	for _, j := range jobs {
		j.Cancel()
	}
}

func (r *Runner) run(ctx context.Context, j *Job, task Task, notify func(*Job)) {
	defer j.cancel()

	out := r.execute(ctx, task)

	r.mu.Lock()
	if r.pending[j.Owner] == j {
		delete(r.pending, j.Owner)
	}
	r.mu.Unlock()

	if !j.finish(out) {
		return
	}
	r.jobs.Set(j.ID, j, cache.DefaultExpiration)
	r.metrics.SearchFinished(string(out.State), j.Took(), len(out.Results))

	attrs := []any{slog.String("job", j.ID), slog.String("outcome", string(out.State)), slog.Duration("took", j.Took())}
	if out.Err != nil {
		r.log.Warn("search.job.done", append(attrs, slog.String("err", out.Err.Error()))...)
	} else {
		r.log.Info("search.job.done", append(attrs, slog.Int("results", len(out.Results)))...)
	}

	if notify != nil {
		notify(j)
	}
}

func (r *Runner) execute(ctx context.Context, task Task) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			out = Outcome{State: StateFailed, Err: fmt.Errorf("search task panicked: %v", rec)}
		}
	}()

	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Outcome{State: StateCancelled, Err: ctx.Err()}
	case <-timer.C:
	}

	res, err := task(ctx)
	switch {
	case err != nil && ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return Outcome{State: StateCancelled, Err: err}
	case err != nil:
		return Outcome{State: StateFailed, Err: err}
	}
	if res == nil {
		res = []domain.Product{}
	}
	return Outcome{State: StateSucceeded, Results: res}
}
