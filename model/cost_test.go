package model

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestUsageTotal(t *testing.T) {
	tests := []struct {
		name     string
		usage    Usage
		expected int
	}{
		{"derived from parts", Usage{InputTokens: 10, OutputTokens: 5}, 15},
		{"explicit total wins", Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 17}, 17},
		{"zero", Usage{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.usage.Total(); got != tt.expected {
				t.Errorf("Total() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCatalogCost(t *testing.T) {
	c := DefaultCatalog()

	cost, err := c.Cost("openai/gpt-5-nano", Usage{InputTokens: 1000, OutputTokens: 2000})
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	// 1000*0.05/1e6 + 2000*0.40/1e6
	if want := 0.00085; math.Abs(cost-want) > 1e-12 {
		t.Errorf("Cost = %v, want %v", cost, want)
	}
}

func TestCatalogCostViaAlias(t *testing.T) {
	c := DefaultCatalog()

	direct, err := c.Cost("anthropic/claude-sonnet-4", Usage{InputTokens: 500, OutputTokens: 500})
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	aliased, err := c.Cost("sonnet", Usage{InputTokens: 500, OutputTokens: 500})
	if err != nil {
		t.Fatalf("Cost via alias: %v", err)
	}
	if direct != aliased {
		t.Errorf("alias cost %v != canonical cost %v", aliased, direct)
	}
}

func TestCatalogCostUnknownModel(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Cost("mystery-model", Usage{InputTokens: 100, OutputTokens: 100})
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestCatalogCostFreeTier(t *testing.T) {
	c := DefaultCatalog()

	cost, err := c.Cost("google/gemini-3-flash", Usage{InputTokens: 10, OutputTokens: 5})
	if err != nil {
		t.Fatalf("free-tier model must resolve: %v", err)
	}
	if cost != 0 {
		t.Errorf("Cost = %v, want 0 for free tier", cost)
	}
}

func TestCostTrackerRecord(t *testing.T) {
	tr := NewCostTracker(nil)

	tr.Record("gpt-5-nano", Usage{InputTokens: 1000, OutputTokens: 2000})
	tr.Record("openai/gpt-5-nano", Usage{InputTokens: 1000, OutputTokens: 2000})

	// Both ids resolve to the same canonical entry.
	u := tr.Usage("openai/gpt-5-nano")
	if u.InputTokens != 2000 || u.OutputTokens != 4000 {
		t.Errorf("Usage = %+v, want aggregated under canonical name", u)
	}

	if want := 2 * 0.00085; math.Abs(tr.TotalCost()-want) > 1e-12 {
		t.Errorf("TotalCost = %v, want %v", tr.TotalCost(), want)
	}

	byModel := tr.CostByModel()
	if len(byModel) != 1 {
		t.Fatalf("CostByModel has %d entries, want 1", len(byModel))
	}
	if want := 2 * 0.00085; math.Abs(byModel["openai/gpt-5-nano"]-want) > 1e-12 {
		t.Errorf("CostByModel[openai/gpt-5-nano] = %v, want %v", byModel["openai/gpt-5-nano"], want)
	}
}

func TestCostTrackerUnknownModel(t *testing.T) {
	tr := NewCostTracker(nil)
	tr.Record("mystery-model", Usage{InputTokens: 100, OutputTokens: 100})

	// Tokens are retained under the raw id, priced at zero.
	if got := tr.Usage("mystery-model").Total(); got != 200 {
		t.Errorf("Usage().Total() = %d, want 200", got)
	}
	if cost := tr.TotalCost(); cost != 0 {
		t.Errorf("TotalCost = %v, want 0", cost)
	}
}

func TestCostTrackerSummaryAndReset(t *testing.T) {
	tr := NewCostTracker(nil)
	tr.Record("sonnet", Usage{InputTokens: 10, OutputTokens: 20})
	tr.Record("haiku", Usage{InputTokens: 1, OutputTokens: 2})

	summary := tr.Summary()
	if len(summary) != 2 {
		t.Fatalf("Summary has %d entries, want 2", len(summary))
	}
	if _, ok := summary["anthropic/claude-sonnet-4"]; !ok {
		t.Error("summary missing canonical sonnet entry")
	}

	total := tr.TotalUsage()
	if total.InputTokens != 11 || total.OutputTokens != 22 {
		t.Errorf("TotalUsage = %+v", total)
	}

	tr.Reset()
	if len(tr.Summary()) != 0 {
		t.Error("Reset did not clear totals")
	}
}

func TestCostTrackerConcurrent(t *testing.T) {
	tr := NewCostTracker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record("sonnet", Usage{InputTokens: 1, OutputTokens: 1})
				_ = tr.TotalCost()
			}
		}()
	}
	wg.Wait()

	if got := tr.TotalUsage().InputTokens; got != 1000 {
		t.Errorf("InputTokens = %d, want 1000", got)
	}
}
