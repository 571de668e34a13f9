package schema

import (
	"errors"
	"testing"
)

const promptSchema = `{
  "type": "object",
  "properties": {
    "prompt": {"type": "string", "minLength": 1}
  },
  "required": ["prompt"],
  "additionalProperties": false
}`

func TestFromJSONValidateAccepts(t *testing.T) {
	v, err := FromJSON(promptSchema)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	input := map[string]any{"prompt": "hi"}
	got, err := v.Validate(input)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok || m["prompt"] != "hi" {
		t.Errorf("Validate returned %v, want the input back", got)
	}
}

func TestFromJSONValidateRejects(t *testing.T) {
	v := MustFromJSON(promptSchema)

	tests := []struct {
		name  string
		input any
	}{
		{"missing prompt", map[string]any{}},
		{"empty prompt", map[string]any{"prompt": ""}},
		{"wrong type", map[string]any{"prompt": 42}},
		{"extra field", map[string]any{"prompt": "hi", "x": 1}},
		{"not an object", "just a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.input)
			if err == nil {
				t.Fatal("expected rejection")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
			if ve.Error() == "" {
				t.Error("rejection should carry a cause")
			}
		})
	}
}

func TestFromJSONInvalidSchema(t *testing.T) {
	if _, err := FromJSON(`{"type": 123}`); err == nil {
		t.Error("expected compile error for invalid schema")
	}
	if _, err := FromJSON(`not json`); err == nil {
		t.Error("expected parse error for malformed json")
	}
}

func TestFromMap(t *testing.T) {
	v, err := FromMap(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"count": map[string]any{"type": "integer", "minimum": 0},
		},
		"required": []any{"count"},
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}

	if _, err := v.Validate(map[string]any{"count": 3}); err != nil {
		t.Errorf("Validate(count=3): %v", err)
	}
	if _, err := v.Validate(map[string]any{"count": -1}); err == nil {
		t.Error("expected rejection for count=-1")
	}
}

type summarizeInput struct {
	Prompt    string `json:"prompt" jsonschema:"minLength=1"`
	MaxLength int    `json:"max_length,omitempty"`
}

func TestForStruct(t *testing.T) {
	v, err := ForStruct[summarizeInput]()
	if err != nil {
		t.Fatalf("ForStruct: %v", err)
	}

	got, err := v.Validate(map[string]any{"prompt": "summarize this", "max_length": 100})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	typed, ok := got.(summarizeInput)
	if !ok {
		t.Fatalf("expected summarizeInput, got %T", got)
	}
	if typed.Prompt != "summarize this" || typed.MaxLength != 100 {
		t.Errorf("decoded %+v", typed)
	}
}

func TestForStructRejects(t *testing.T) {
	v := MustForStruct[summarizeInput]()

	if _, err := v.Validate(map[string]any{}); err == nil {
		t.Error("expected rejection for missing prompt")
	}
	if _, err := v.Validate(map[string]any{"prompt": ""}); err == nil {
		t.Error("expected rejection for empty prompt")
	}
}

func TestMustFromJSONPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for broken schema")
		}
	}()
	MustFromJSON(`{`)
}
