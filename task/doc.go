// Package task provides the task contract, registry, and execution pipeline.
//
// A Task is a named capability: input/output validators, a default config,
// and a Run function performing one underlying call (typically an LLM
// request). The Registry maps names to tasks and dispatches executions.
//
// Every execution runs the same pipeline: merge config, validate input,
// run under bounded exponential-backoff retry, validate output, meter cost
// from token usage, and assemble a Result. The Registry itself never
// retries, validates, or meters — it is a dispatch table, and all resilience
// lives in the pipeline so every task gets it uniformly.
//
//	reg := task.NewRegistry(task.WithLogger(logger))
//	err := reg.Register(&task.Task{
//	    Name:     "summarize",
//	    Input:    schema.MustFromJSON(inputSchema),
//	    Output:   schema.MustFromJSON(outputSchema),
//	    Defaults: task.Config{Model: "anthropic/claude-sonnet-4"},
//	    Run: func(ctx context.Context, input any, cfg task.Config) (*task.Execution, error) {
//	        resp, err := client.Complete(ctx, buildRequest(input, cfg))
//	        if err != nil {
//	            return nil, err
//	        }
//	        return &task.Execution{Data: resp.Data, Usage: &resp.Usage}, nil
//	    },
//	})
//	res := reg.Execute(ctx, "summarize", map[string]any{"prompt": "..."}, nil)
//
// Execute never panics and never returns a Go error: every outcome,
// including "task not found" and a panicking implementation, surfaces as a
// Result value. This makes it safe to drive from batch loops that must not
// be interrupted by a single bad task.
package task
