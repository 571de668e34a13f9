package model

// builtinModels is the embedded pricing table (USD per 1M tokens, as of 2025).
// Order matters: alias resolution scans entries in this order.
var builtinModels = []ModelConfig{
	{
		Provider:      "anthropic",
		Name:          "anthropic/claude-opus-4",
		APIIdentifier: "claude-opus-4-20250514",
		Aliases:       []string{"opus", "claude-opus"},
		Pricing:       Pricing{InputPerMillion: 15.0, OutputPerMillion: 75.0, CachedInputPerMillion: 1.5},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 200_000, MaxOutputTokens: 32_000},
	},
	{
		Provider:      "anthropic",
		Name:          "anthropic/claude-sonnet-4",
		APIIdentifier: "claude-sonnet-4-20250514",
		Aliases:       []string{"sonnet", "claude-sonnet"},
		Pricing:       Pricing{InputPerMillion: 3.0, OutputPerMillion: 15.0, CachedInputPerMillion: 0.3},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 200_000, MaxOutputTokens: 64_000},
	},
	{
		Provider:      "anthropic",
		Name:          "anthropic/claude-haiku-3-5",
		APIIdentifier: "claude-3-5-haiku-20241022",
		Aliases:       []string{"haiku", "claude-haiku"},
		Pricing:       Pricing{InputPerMillion: 0.25, OutputPerMillion: 1.25, CachedInputPerMillion: 0.03},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 200_000, MaxOutputTokens: 8_192},
	},
	{
		Provider:      "openai",
		Name:          "openai/gpt-5",
		APIIdentifier: "gpt-5",
		Pricing:       Pricing{InputPerMillion: 1.25, OutputPerMillion: 10.0, CachedInputPerMillion: 0.125},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 400_000, MaxOutputTokens: 128_000},
	},
	{
		Provider:      "openai",
		Name:          "openai/gpt-5-mini",
		APIIdentifier: "gpt-5-mini",
		Pricing:       Pricing{InputPerMillion: 0.25, OutputPerMillion: 2.0, CachedInputPerMillion: 0.025},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 400_000, MaxOutputTokens: 128_000},
	},
	{
		Provider:      "openai",
		Name:          "openai/gpt-5-nano",
		APIIdentifier: "gpt-5-nano",
		Pricing:       Pricing{InputPerMillion: 0.05, OutputPerMillion: 0.40, CachedInputPerMillion: 0.005},
		Capabilities:  Capabilities{Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 400_000, MaxOutputTokens: 128_000},
	},
	{
		Provider:      "google",
		Name:          "google/gemini-3-pro",
		APIIdentifier: "gemini-3-pro",
		Aliases:       []string{"gemini-pro"},
		Pricing:       Pricing{InputPerMillion: 2.0, OutputPerMillion: 12.0},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 1_000_000, MaxOutputTokens: 65_536},
	},
	{
		// Free tier: pricing is legitimately zero, not a lookup failure.
		Provider:      "google",
		Name:          "google/gemini-3-flash",
		APIIdentifier: "gemini-3-flash",
		Aliases:       []string{"gemini-flash"},
		Pricing:       Pricing{},
		Capabilities:  Capabilities{Vision: true, Tools: true, Streaming: true, JSONOutput: true},
		Limits:        Limits{ContextWindow: 1_000_000, MaxOutputTokens: 65_536},
	},
}

// DefaultCatalog returns a catalog backed by the builtin pricing table.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinModels...)
	if err != nil {
		// The builtin table is static; a duplicate here is a programmer error.
		panic("model: invalid builtin catalog: " + err.Error())
	}
	return c
}
