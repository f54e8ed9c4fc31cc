// Package queue provides the background work queue: named tasks dispatched
// to registered handlers with at-least-once execution. Enqueue is
// fire-and-forget; the enqueuing call never waits for the task to run and
// gets no result back.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"conferencecentral/internal/domain"
)

// ErrClosed is returned by Enqueue after Close has been called.
var ErrClosed = errors.New("dispatcher closed")

// HandlerFunc processes one task delivery. A non-nil error triggers
// redelivery until the attempt budget is spent.
type HandlerFunc func(ctx context.Context, params map[string]string) error

type task struct {
	id      string
	name    string
	params  map[string]string
	attempt int
}

// Dispatcher is an in-process work queue with a fixed worker pool.
type Dispatcher struct {
	logger      *slog.Logger
	handlers    map[string]HandlerFunc
	tasks       chan task
	maxAttempts int
	backoff     time.Duration

	wg      sync.WaitGroup
	senders sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// Options configures a Dispatcher. Zero values fall back to defaults.
type Options struct {
	Workers     int
	BufferSize  int
	MaxAttempts int
	Backoff     time.Duration
}

// NewDispatcher creates a Dispatcher with a running worker pool. Call
// RegisterHandler before enqueuing tasks of a given name.
func NewDispatcher(logger *slog.Logger, opts Options) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 64
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 500 * time.Millisecond
	}
	d := &Dispatcher{
		logger:      logger,
		handlers:    make(map[string]HandlerFunc),
		tasks:       make(chan task, opts.BufferSize),
		maxAttempts: opts.MaxAttempts,
		backoff:     opts.Backoff,
	}
	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// RegisterHandler binds a task name to a handler. Must be called before
// the first Enqueue of that name.
func (d *Dispatcher) RegisterHandler(name string, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = fn
}

// Enqueue submits a task for asynchronous execution. It returns once the
// task is accepted; execution happens on a worker goroutine. After Close
// it returns ErrClosed instead of accepting the task.
func (d *Dispatcher) Enqueue(ctx context.Context, name string, params map[string]string) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrClosed
	}
	d.senders.Add(1)
	d.mu.Unlock()
	defer d.senders.Done()

	t := task{id: uuid.NewString(), name: name, params: params, attempt: 1}
	select {
	case d.tasks <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks and waits for in-flight ones to finish.
// The task channel is closed only after every pending Enqueue has
// completed its send.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()
	d.senders.Wait()
	close(d.tasks)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.tasks {
		d.run(t)
	}
}

func (d *Dispatcher) run(t task) {
	d.mu.Lock()
	fn, ok := d.handlers[t.name]
	d.mu.Unlock()
	if !ok {
		d.logger.Error("no handler registered for task", "task", t.name, "id", t.id)
		return
	}

	ctx := context.Background()
	for ; t.attempt <= d.maxAttempts; t.attempt++ {
		err := fn(ctx, t.params)
		if err == nil {
			return
		}
		d.logger.Warn("task attempt failed",
			"task", t.name, "id", t.id, "attempt", t.attempt, "err", err)
		if t.attempt < d.maxAttempts {
			time.Sleep(d.backoff * time.Duration(t.attempt))
		}
	}
	// Out of attempts: drop the task. Derived facts tolerate a stale
	// value until the next qualifying event.
	d.logger.Error("task dropped after retry budget", "task", t.name, "id", t.id)
}

var _ domain.TaskQueue = (*Dispatcher)(nil)
