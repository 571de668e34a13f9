package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/taskkit/retry"
)

// run is the execution pipeline shared by every task: merge config,
// validate input, execute under retry, validate output, meter cost,
// assemble the Result. Steps run strictly in that order.
func (r *Registry) run(ctx context.Context, t *Task, input any, override *Config) (res Result) {
	start := time.Now()
	cfg := t.Defaults.merged(override)

	fail := func(format string, args ...any) Result {
		return Result{
			Error: fmt.Sprintf(format, args...),
			Metadata: Metadata{
				Duration: time.Since(start),
				Model:    cfg.Model,
			},
		}
	}

	// A panicking task implementation must not crash the caller or corrupt
	// registry state; it surfaces as a failed Result like any other error.
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("task panicked",
				slog.String("task", t.Name),
				slog.Any("panic", rec))
			res = fail("task %q panicked: %v", t.Name, rec)
		}
	}()

	// Validation failures are deterministic: retrying cannot change the
	// outcome, so they stop the pipeline immediately.
	validated := input
	if t.Input != nil {
		v, err := t.Input.Validate(input)
		if err != nil {
			return fail("input validation failed: %v", err)
		}
		validated = v
	}

	var retries int
	exec, err := retry.Do(ctx, func(ctx context.Context) (*Execution, error) {
		return t.Run(ctx, validated, cfg)
	},
		retry.WithMaxRetries(cfg.retries()),
		retry.WithBaseDelay(r.baseDelay),
		retry.WithOnRetry(func(attempt int, err error) {
			retries = attempt
			r.logger.Warn("task retrying",
				slog.String("task", t.Name),
				slog.String("model", cfg.Model),
				slog.Int("attempt", attempt),
				slog.Any("error", err))
		}),
	)
	if err != nil {
		out := fail("%v", err)
		out.Metadata.Retries = retries
		return out
	}
	if exec == nil {
		return fail("task %q returned no execution", t.Name)
	}

	// The underlying call already succeeded here, so a malformed response
	// is reported distinctly from a call failure.
	data := exec.Data
	if t.Output != nil {
		v, err := t.Output.Validate(exec.Data)
		if err != nil {
			out := fail("output validation failed: %v", err)
			out.Metadata.Retries = retries
			return out
		}
		data = v
	}

	meta := Metadata{
		Duration: time.Since(start),
		Model:    cfg.Model,
		Retries:  retries,
	}
	if exec.Usage != nil {
		usage := *exec.Usage
		meta.TokensUsed = usage.Total()
		cost, err := r.catalog.Catalog().Cost(cfg.Model, usage)
		if err != nil {
			// Instrumentation failure, not task failure: the result stays
			// successful, the cost figure is flagged untrustworthy.
			meta.CostTrackingFailed = true
			r.logger.Warn("cost tracking failed",
				slog.String("task", t.Name),
				slog.String("model", cfg.Model),
				slog.Any("error", err))
		} else {
			meta.CostUSD = cost
		}
		r.tracker.Record(cfg.Model, usage)
	}

	return Result{Success: true, Data: data, Metadata: meta}
}
