package task

import (
	"context"

	"github.com/randalmurphal/taskkit/model"
	"github.com/randalmurphal/taskkit/schema"
)

// DefaultRetries is the retry budget applied when a config doesn't set one.
const DefaultRetries = 3

// Config controls one task execution. A call-site Config is shallow-merged
// over the task's Defaults; set fields win. Temperature and Retries are
// pointers so an explicit zero survives the merge.
type Config struct {
	// Model is the model id: canonical name, API identifier, or alias.
	Model string `json:"model" yaml:"model"`

	// Temperature controls response randomness. Nil means provider default.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// MaxTokens limits the response length. Zero means provider default.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`

	// Retries is the budget for transient failures. Nil means
	// DefaultRetries; an explicit zero disables retrying.
	Retries *int `json:"retries,omitempty" yaml:"retries,omitempty"`

	// PromptVersion tags which prompt revision produced a result.
	PromptVersion string `json:"prompt_version,omitempty" yaml:"prompt_version,omitempty"`
}

// Float returns a pointer to v, for Config literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for Config literals.
func Int(v int) *int { return &v }

// merged returns the config with override's set fields applied on top.
func (c Config) merged(override *Config) Config {
	out := c
	if override == nil {
		return out
	}
	if override.Model != "" {
		out.Model = override.Model
	}
	if override.Temperature != nil {
		out.Temperature = override.Temperature
	}
	if override.MaxTokens != 0 {
		out.MaxTokens = override.MaxTokens
	}
	if override.Retries != nil {
		out.Retries = override.Retries
	}
	if override.PromptVersion != "" {
		out.PromptVersion = override.PromptVersion
	}
	return out
}

// retries returns the effective retry budget.
func (c Config) retries() int {
	if c.Retries == nil {
		return DefaultRetries
	}
	if *c.Retries < 0 {
		return 0
	}
	return *c.Retries
}

// Execution is the raw outcome of one successful underlying call. It is
// produced by the task implementation and consumed only by the pipeline;
// callers receive a Result instead.
type Execution struct {
	// Data is the produced value, validated against the task's Output
	// schema before it reaches the caller.
	Data any

	// Usage reports token consumption when the underlying call provides
	// it. Nil skips cost metering.
	Usage *model.Usage
}

// RunFunc is the task implementation: one underlying call, with no retry,
// validation, or metering concerns. Transient failures should be returned
// as errors the retry package can classify (retry.HTTPError, transport
// errors, or retry.Error with an explicit flag).
type RunFunc func(ctx context.Context, input any, cfg Config) (*Execution, error)

// Task is a named, schema-validated unit of work. Identity is the Name;
// tasks are immutable once registered.
type Task struct {
	// Name uniquely identifies the task within a Registry.
	Name string

	// Description says what the task does, for listings and tooling.
	Description string

	// Input validates the raw input before execution. Nil accepts any input.
	Input schema.Validator

	// Output validates produced data after execution. Nil accepts any output.
	Output schema.Validator

	// Defaults is the task's base config; Execute merges call-site
	// overrides on top of it.
	Defaults Config

	// Run performs the underlying call.
	Run RunFunc
}
