package task

import "testing"

func TestConfigMerged(t *testing.T) {
	base := Config{
		Model:         "anthropic/claude-sonnet-4",
		Temperature:   Float(0.7),
		MaxTokens:     1024,
		Retries:       Int(3),
		PromptVersion: "v1",
	}

	t.Run("nil override keeps base", func(t *testing.T) {
		got := base.merged(nil)
		if got.Model != base.Model || got.MaxTokens != 1024 || *got.Temperature != 0.7 {
			t.Errorf("merged(nil) = %+v", got)
		}
	})

	t.Run("set fields win", func(t *testing.T) {
		got := base.merged(&Config{
			Model:         "openai/gpt-5",
			MaxTokens:     64,
			PromptVersion: "v2",
		})
		if got.Model != "openai/gpt-5" || got.MaxTokens != 64 || got.PromptVersion != "v2" {
			t.Errorf("merged = %+v", got)
		}
		// Unset fields fall through to the base.
		if *got.Temperature != 0.7 || *got.Retries != 3 {
			t.Errorf("merged lost base fields: %+v", got)
		}
	})

	t.Run("explicit zero temperature wins", func(t *testing.T) {
		got := base.merged(&Config{Temperature: Float(0)})
		if *got.Temperature != 0 {
			t.Errorf("Temperature = %v, want explicit 0", *got.Temperature)
		}
	})

	t.Run("explicit zero retries wins", func(t *testing.T) {
		got := base.merged(&Config{Retries: Int(0)})
		if got.retries() != 0 {
			t.Errorf("retries() = %d, want 0", got.retries())
		}
	})
}

func TestConfigRetries(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected int
	}{
		{"unset uses default", Config{}, DefaultRetries},
		{"explicit zero", Config{Retries: Int(0)}, 0},
		{"explicit value", Config{Retries: Int(5)}, 5},
		{"negative clamps to zero", Config{Retries: Int(-1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.retries(); got != tt.expected {
				t.Errorf("retries() = %d, want %d", got, tt.expected)
			}
		})
	}
}
