package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/randalmurphal/taskkit/model"
	"github.com/randalmurphal/taskkit/retry"
)

// Sentinel errors for registry operations.
var (
	// ErrDuplicateTask indicates a name collision at registration.
	// Registering under an existing name is a hard failure, never a
	// silent overwrite.
	ErrDuplicateTask = errors.New("task already registered")

	// ErrInvalidTask indicates a task missing its name or Run function.
	ErrInvalidTask = errors.New("invalid task")
)

// CatalogSource supplies the current pricing catalog. *model.Watcher
// implements it for file-backed catalogs that reload on change.
type CatalogSource interface {
	Catalog() *model.Catalog
}

type staticCatalog struct {
	c *model.Catalog
}

func (s staticCatalog) Catalog() *model.Catalog { return s.c }

// Registry maps task names to implementations and dispatches executions.
// Register and Unregister are serialized; Get, Has, and Execute are safe to
// call concurrently.
type Registry struct {
	mu        sync.RWMutex
	tasks     map[string]*Task
	logger    *slog.Logger
	catalog   CatalogSource
	tracker   *model.CostTracker
	baseDelay time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for retry and cost-tracking warnings.
// Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCatalog sets a fixed pricing catalog. Defaults to model.DefaultCatalog.
func WithCatalog(c *model.Catalog) Option {
	return func(r *Registry) {
		if c != nil {
			r.catalog = staticCatalog{c}
		}
	}
}

// WithCatalogSource sets a dynamic pricing catalog, e.g. a model.Watcher.
func WithCatalogSource(src CatalogSource) Option {
	return func(r *Registry) {
		if src != nil {
			r.catalog = src
		}
	}
}

// WithRetryBaseDelay sets the delay before the first retry of a transient
// failure; each subsequent delay doubles. Defaults to retry.DefaultBaseDelay.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.baseDelay = d
		}
	}
}

// WithTracker sets the cost tracker executions record into. Defaults to a
// fresh tracker priced against the registry's catalog.
func WithTracker(t *model.CostTracker) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracker = t
		}
	}
}

// NewRegistry creates an empty task registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{tasks: make(map[string]*Task)}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.catalog == nil {
		r.catalog = staticCatalog{model.DefaultCatalog()}
	}
	if r.tracker == nil {
		r.tracker = model.NewCostTracker(r.catalog.Catalog())
	}
	if r.baseDelay == 0 {
		r.baseDelay = retry.DefaultBaseDelay
	}
	return r
}

// Register adds a task. Returns ErrDuplicateTask if the name is taken (the
// existing registration is unaffected) and ErrInvalidTask for tasks missing
// a name or Run function.
func (r *Registry) Register(t *Task) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTask)
	}
	if t.Run == nil {
		return fmt.Errorf("%w: %q has no Run function", ErrInvalidTask, t.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, t.Name)
	}
	r.tasks[t.Name] = t
	return nil
}

// Get returns the task registered under name. Pure lookup, no side effects.
func (r *Registry) Get(name string) (*Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[name]
	return t, ok
}

// Has reports whether a task is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Execute resolves the named task and runs it through the execution
// pipeline. Every outcome is a Result: an unknown name reports a failure
// rather than panicking, because callers typically dispatch by a dynamic
// string, and a panicking task implementation is recovered and reported the
// same way.
func (r *Registry) Execute(ctx context.Context, name string, input any, override *Config) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	t, ok := r.Get(name)
	if !ok {
		return Result{Error: fmt.Sprintf("task %q not found", name)}
	}
	return r.run(ctx, t, input, override)
}

// Unregister removes a task, reporting whether it was present. Primarily
// useful for testing.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.tasks[name]
	delete(r.tasks, name)
	return ok
}

// Clear removes all tasks. Primarily useful for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = make(map[string]*Task)
}

// Count returns the number of registered tasks.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Names returns the registered task names, sorted for consistent ordering.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tracker returns the cost tracker executions record into.
func (r *Registry) Tracker() *model.CostTracker {
	return r.tracker
}
