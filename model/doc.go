// Package model provides the model pricing catalog and cost metering.
//
// A Catalog maps canonical model identifiers (e.g. "openai/gpt-5-nano") to
// provider, pricing, capability, and limit metadata. Lookups also accept API
// identifiers and aliases, so legacy or shorthand names resolve to the same
// entry:
//
//	catalog := model.DefaultCatalog()
//	entry, ok := catalog.Resolve("gpt-5-nano") // canonical: "openai/gpt-5-nano"
//
// # Cost Metering
//
// Cost converts token usage into USD against the resolved entry's
// per-million-token pricing. An unresolvable model is a hard error, never a
// silent zero:
//
//	cost, err := catalog.Cost("openai/gpt-5-nano", model.Usage{
//	    InputTokens:  1000,
//	    OutputTokens: 2000,
//	})
//
// # Custom Catalogs
//
// Catalogs can be built in code with NewCatalog, or loaded from a YAML, TOML,
// or JSON file with LoadCatalog. Watch reloads a file-backed catalog when the
// file changes, so pricing updates don't require a restart:
//
//	w, _ := model.Watch("pricing.yaml", nil)
//	defer w.Close()
//	current := w.Catalog()
//
// CostTracker aggregates usage and estimated spend across many executions.
package model
