package model

import (
	"fmt"
	"sync"
)

const tokensPerMillion = 1_000_000

// Usage tracks token consumption for one model call.
type Usage struct {
	InputTokens  int `json:"input_tokens" yaml:"input_tokens"`
	OutputTokens int `json:"output_tokens" yaml:"output_tokens"`

	// TotalTokens is optional; when zero, Total derives it from the parts.
	TotalTokens int `json:"total_tokens,omitempty" yaml:"total_tokens,omitempty"`
}

// Total returns the total tokens used. An explicit TotalTokens wins over
// the sum of the parts (some providers report extra overhead tokens).
func (u Usage) Total() int {
	if u.TotalTokens > 0 {
		return u.TotalTokens
	}
	return u.InputTokens + u.OutputTokens
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// Cost computes the USD cost of the given usage against the model's pricing.
// The id may be a canonical name, API identifier, or alias.
//
// An unresolvable model returns ErrUnknownModel rather than a zero cost:
// an unknown model is a configuration bug, and a silent zero would be
// indistinguishable from a legitimately free call.
func (c *Catalog) Cost(id string, usage Usage) (float64, error) {
	entry, ok := c.Resolve(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, id)
	}
	inputCost := float64(usage.InputTokens) / tokensPerMillion * entry.Pricing.InputPerMillion
	outputCost := float64(usage.OutputTokens) / tokensPerMillion * entry.Pricing.OutputPerMillion
	return inputCost + outputCost, nil
}

// CostTracker aggregates token usage and estimated spend across executions.
// Usage is keyed by canonical model name; unresolvable ids are tracked under
// the raw id so the tokens are never lost, they just price at zero.
type CostTracker struct {
	mu      sync.RWMutex
	catalog *Catalog
	totals  map[string]Usage
}

// NewCostTracker creates a tracker that prices usage against the given
// catalog. A nil catalog uses DefaultCatalog.
func NewCostTracker(catalog *Catalog) *CostTracker {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &CostTracker{
		catalog: catalog,
		totals:  make(map[string]Usage),
	}
}

// Record adds a usage record for the given model id.
func (t *CostTracker) Record(id string, usage Usage) {
	key := id
	if entry, ok := t.catalog.Resolve(id); ok {
		key = entry.Name
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[key]
	u.Add(usage)
	t.totals[key] = u
}

// Usage returns the accumulated usage for a model id.
func (t *CostTracker) Usage(id string) Usage {
	key := id
	if entry, ok := t.catalog.Resolve(id); ok {
		key = entry.Name
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[key]
}

// Summary returns a copy of all usage totals keyed by canonical model name.
func (t *CostTracker) Summary() map[string]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// TotalUsage returns aggregated usage across all models.
func (t *CostTracker) TotalUsage() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// TotalCost returns the estimated USD spend across all models, priced at
// current catalog rates. Models absent from the catalog contribute zero.
func (t *CostTracker) TotalCost() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for id, usage := range t.totals {
		cost, err := t.catalog.Cost(id, usage)
		if err != nil {
			continue
		}
		total += cost
	}
	return total
}

// CostByModel returns the estimated USD spend per canonical model name.
func (t *CostTracker) CostByModel() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]float64, len(t.totals))
	for id, usage := range t.totals {
		cost, err := t.catalog.Cost(id, usage)
		if err != nil {
			continue
		}
		result[id] = cost
	}
	return result
}

// Reset clears all tracked usage.
func (t *CostTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Usage)
}
