package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// errPrinter formats schema validation error messages.
var errPrinter = message.NewPrinter(language.English)

// JSONSchema validates values against a compiled JSON Schema document.
type JSONSchema struct {
	compiled *jsonschema.Schema
}

// FromJSON compiles a JSON Schema from its JSON source.
func FromJSON(doc string) (*JSONSchema, error) {
	var parsed any
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return compileSchema(parsed)
}

// MustFromJSON is FromJSON panicking on error, for static schema literals.
func MustFromJSON(doc string) *JSONSchema {
	s, err := FromJSON(doc)
	if err != nil {
		panic(fmt.Sprintf("schema.MustFromJSON: %v", err))
	}
	return s
}

// FromMap compiles a JSON Schema from an already-decoded document.
func FromMap(doc map[string]any) (*JSONSchema, error) {
	// Round trip through JSON so non-JSON types (ints, custom maps) are
	// normalized before compilation.
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialize schema: %w", err)
	}
	return FromJSON(string(data))
}

func compileSchema(doc any) (*JSONSchema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &JSONSchema{compiled: compiled}, nil
}

// Validate checks raw against the schema and returns it unchanged on
// success. The value is normalized through an encoding/json round trip
// before validation, so structs and integer-keyed values validate the same
// way their wire form would.
func (s *JSONSchema) Validate(raw any) (any, error) {
	instance, err := toJSONValue(raw)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	if err := s.validateInstance(instance); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *JSONSchema) validateInstance(instance any) error {
	err := s.compiled.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return NewValidationError(err.Error())
	}
	var causes []string
	collectCauses(ve, &causes)
	return NewValidationError(causes...)
}

func collectCauses(ve *jsonschema.ValidationError, causes *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*causes = append(*causes, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(errPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectCauses(c, causes)
	}
}

func toJSONValue(raw any) (any, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("value is not JSON-compatible: %v", err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("value is not JSON-compatible: %v", err)
	}
	return instance, nil
}

// Struct validates raw values against a schema reflected from T and decodes
// them into T, so consumers receive a typed value rather than a raw map.
type Struct[T any] struct {
	inner *JSONSchema
}

// ForStruct reflects a JSON Schema from T's json and jsonschema struct tags
// and returns a validator producing T values.
func ForStruct[T any]() (*Struct[T], error) {
	reflector := &invopop.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	reflected := reflector.Reflect(new(T))
	data, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("serialize reflected schema: %w", err)
	}
	inner, err := FromJSON(string(data))
	if err != nil {
		return nil, err
	}
	return &Struct[T]{inner: inner}, nil
}

// MustForStruct is ForStruct panicking on error, for package-level validators.
func MustForStruct[T any]() *Struct[T] {
	s, err := ForStruct[T]()
	if err != nil {
		panic(fmt.Sprintf("schema.MustForStruct: %v", err))
	}
	return s
}

// Validate implements Validator. On success the returned value is a T.
func (s *Struct[T]) Validate(raw any) (any, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("value is not JSON-compatible: %v", err))
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, NewValidationError(fmt.Sprintf("value is not JSON-compatible: %v", err))
	}
	if err := s.inner.validateInstance(instance); err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, NewValidationError(fmt.Sprintf("decode into %T: %v", out, err))
	}
	return out, nil
}
