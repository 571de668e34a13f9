package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnknownModel indicates the model id could not be resolved.
	ErrUnknownModel = errors.New("unknown model")

	// ErrDuplicateModel indicates two entries share a canonical name.
	ErrDuplicateModel = errors.New("duplicate model")
)

// Pricing holds per-million-token pricing for a model, in USD.
type Pricing struct {
	InputPerMillion  float64 `json:"input_per_million" yaml:"input_per_million" toml:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million" yaml:"output_per_million" toml:"output_per_million"`

	// CachedInputPerMillion is the discounted rate for cache-read tokens.
	// Zero means the provider doesn't offer prompt caching.
	CachedInputPerMillion float64 `json:"cached_input_per_million,omitempty" yaml:"cached_input_per_million,omitempty" toml:"cached_input_per_million,omitempty"`
}

// Capabilities describes what a model supports.
type Capabilities struct {
	Vision     bool `json:"vision" yaml:"vision" toml:"vision"`
	Tools      bool `json:"tools" yaml:"tools" toml:"tools"`
	Streaming  bool `json:"streaming" yaml:"streaming" toml:"streaming"`
	JSONOutput bool `json:"json_output" yaml:"json_output" toml:"json_output"`
}

// Limits describes a model's token limits.
type Limits struct {
	ContextWindow   int `json:"context_window" yaml:"context_window" toml:"context_window"`
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens" toml:"max_output_tokens"`
}

// ModelConfig is a single pricing-catalog entry. Entries are immutable once
// added to a Catalog.
type ModelConfig struct {
	// Provider is the vendor name ("anthropic", "openai", "google", ...).
	Provider string `json:"provider" yaml:"provider" toml:"provider"`

	// Name is the canonical identifier, e.g. "openai/gpt-5-nano".
	Name string `json:"name" yaml:"name" toml:"name"`

	// APIIdentifier is the name the provider's API expects,
	// e.g. "claude-sonnet-4-20250514".
	APIIdentifier string `json:"api_identifier" yaml:"api_identifier" toml:"api_identifier"`

	// Aliases are additional names that resolve to this entry, typically
	// shorthands or legacy identifiers.
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty" toml:"aliases,omitempty"`

	Pricing      Pricing      `json:"pricing" yaml:"pricing" toml:"pricing"`
	Capabilities Capabilities `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Limits       Limits       `json:"limits" yaml:"limits" toml:"limits"`
}

// Catalog is a read-only collection of model entries. Insertion order is
// preserved so alias lookups resolve deterministically when two entries
// claim the same alias.
//
// A Catalog is safe for concurrent use once constructed.
type Catalog struct {
	order   []string
	entries map[string]*ModelConfig
}

// NewCatalog builds a catalog from the given entries. Returns
// ErrDuplicateModel if two entries share a canonical name, and an error for
// entries with an empty name.
func NewCatalog(entries ...ModelConfig) (*Catalog, error) {
	c := &Catalog{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]*ModelConfig, len(entries)),
	}
	for i := range entries {
		entry := entries[i]
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d: empty model name", i)
		}
		if _, exists := c.entries[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateModel, entry.Name)
		}
		c.entries[entry.Name] = &entry
		c.order = append(c.order, entry.Name)
	}
	return c, nil
}

// Resolve looks up a model by canonical name, API identifier, or alias.
// Canonical names are checked first; otherwise entries are scanned in
// insertion order and the first match wins.
//
// The returned entry is shared and must not be modified.
func (c *Catalog) Resolve(id string) (*ModelConfig, bool) {
	if entry, ok := c.entries[id]; ok {
		return entry, true
	}
	for _, name := range c.order {
		entry := c.entries[name]
		for _, alias := range entry.Aliases {
			if alias == id {
				return entry, true
			}
		}
		if entry.APIIdentifier == id || entry.Name == id {
			return entry, true
		}
	}
	return nil, false
}

// Names returns the canonical names of all entries in insertion order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.order)
}
