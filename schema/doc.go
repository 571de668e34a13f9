// Package schema provides input/output validators for tasks.
//
// A Validator checks a raw value and returns its validated, possibly
// converted, form. Three implementations are provided:
//
//   - Func wraps a plain function, for hand-written validation.
//   - FromJSON / FromMap compile a JSON Schema document and validate
//     against it.
//   - ForStruct reflects a JSON Schema from a Go struct type and decodes
//     validated values into that type, so task code receives typed input.
//
// # JSON Schema
//
//	v, err := schema.FromJSON(`{
//	    "type": "object",
//	    "properties": {"prompt": {"type": "string", "minLength": 1}},
//	    "required": ["prompt"]
//	}`)
//	validated, err := v.Validate(map[string]any{"prompt": "hi"})
//
// # Struct Reflection
//
//	type SummarizeInput struct {
//	    Prompt string `json:"prompt" jsonschema:"minLength=1"`
//	}
//	v, err := schema.ForStruct[SummarizeInput]()
//	out, err := v.Validate(raw) // out.(SummarizeInput)
//
// Rejections are reported as *ValidationError with one cause per failing
// instance location.
package schema
