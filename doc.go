// Package taskkit provides a framework for executing named, schema-validated
// tasks backed by Large Language Models.
//
// taskkit is a standalone toolkit extracted from flowgraph, designed to be
// imported à la carte. Each subpackage can be used independently:
//
//   - task: task contract, registry, and the execution pipeline
//   - retry: transient-error classification and exponential backoff
//   - model: model pricing catalog, alias resolution, and cost metering
//   - schema: input/output validators, including JSON Schema support
//
// # Quick Start
//
// Register and execute a task:
//
//	import "github.com/randalmurphal/taskkit/task"
//	reg := task.NewRegistry()
//	reg.Register(&task.Task{
//	    Name: "summarize",
//	    Defaults: task.Config{Model: "anthropic/claude-sonnet-4"},
//	    Run: func(ctx context.Context, input any, cfg task.Config) (*task.Execution, error) {
//	        ...
//	    },
//	})
//	res := reg.Execute(ctx, "summarize", map[string]any{"prompt": "hi"}, nil)
//
// Cost metering:
//
//	import "github.com/randalmurphal/taskkit/model"
//	catalog := model.DefaultCatalog()
//	cost, _ := catalog.Cost("openai/gpt-5-nano", model.Usage{InputTokens: 1000, OutputTokens: 2000})
//
// Retry with backoff:
//
//	import "github.com/randalmurphal/taskkit/retry"
//	resp, err := retry.Do(ctx, callProvider, retry.Options{MaxRetries: 3})
//
// # Design Philosophy
//
// taskkit follows these principles:
//
//   - Each package usable independently
//   - Every failure surfaces as a value, never an escaping panic
//   - Sensible defaults with full configurability
//   - Interfaces for extensibility, concrete types for simplicity
package taskkit
