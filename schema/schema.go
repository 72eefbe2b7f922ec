// Package schema builds and validates JSON Schemas for textreact's
// configuration documents.
//
// # Quick Start
//
//	s := schema.MustCompile(schema.Strict(schema.Object(map[string]*schema.Property{
//	    "react": schema.Nested("Loop settings", map[string]*schema.Property{
//	        "max_steps": schema.Integer("Step budget").Min(1).Default(7),
//	    }),
//	})))
//
//	var doc map[string]any
//	_ = yaml.Unmarshal(data, &doc)
//	err := s.Validate(doc)
//
// Documents decoded from YAML are normalized through JSON before validation,
// so any value yaml.v3 produces can be validated.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema definition together with its compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map[string]any representation.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates data against the schema. data may be any value that
// encoding/json can marshal. Returns nil if valid, or a *ValidationError.
func (s *Schema) Validate(data any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	inst, err := normalize(data)
	if err != nil {
		return &ValidationError{Err: err}
	}
	if err := s.compiled.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// normalize converts data into the value types the validator expects.
func normalize(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("document is not JSON compatible: %w", err)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
}

// ValidationError wraps a JSON Schema validation error with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map into a Schema with a compiled validator.
// A nil map compiles to a nil Schema, which accepts everything.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaData, err := normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{
		raw:      raw,
		compiled: compiled,
	}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Schema Builders
// -----------------------------------------------------------------------------

// Object creates an object schema with the given properties.
// Pass property names as variadic arguments to mark them as required.
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}

	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// Strict rejects properties that obj does not declare, so typos in a
// document fail validation instead of being ignored.
func Strict(obj map[string]any) map[string]any {
	obj["additionalProperties"] = false
	return obj
}

// Property represents a property in an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	minimum     *float64
	maximum     *float64
	minLength   *int
	pattern     string
	items       map[string]any
	object      map[string]any
	def         any // default value
}

func (p *Property) build() map[string]any {
	m := map[string]any{}

	// Nested objects start from their own object schema.
	for k, v := range p.object {
		m[k] = v
	}

	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.minimum != nil {
		m["minimum"] = *p.minimum
	}
	if p.maximum != nil {
		m["maximum"] = *p.maximum
	}
	if p.minLength != nil {
		m["minLength"] = *p.minLength
	}
	if p.pattern != "" {
		m["pattern"] = p.pattern
	}
	if p.items != nil {
		m["items"] = p.items
	}
	if p.def != nil {
		m["default"] = p.def
	}

	return m
}

// String creates a string property.
//
// Example:
//
//	schema.String("Provider").Enum("openai", "github")
//	schema.String("Timeout").Pattern(`^[0-9]+(ms|s|m)$`)
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Integer creates an integer property.
//
// Example:
//
//	schema.Integer("Step budget").Min(1).Default(7)
func Integer(description string) *Property {
	return &Property{typ: "integer", description: description}
}

// Number creates a number property (floating point).
//
// Example:
//
//	schema.Number("Temperature").Min(0).Max(2)
func Number(description string) *Property {
	return &Property{typ: "number", description: description}
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Array creates an array property with the given item schema.
//
// Example:
//
//	schema.Array("Stop words", map[string]any{"type": "string"})
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// Nested creates a closed object property: unknown keys fail validation.
// Pass property names as variadic arguments to mark them as required.
func Nested(description string, properties map[string]*Property, required ...string) *Property {
	return &Property{
		typ:         "object",
		description: description,
		object:      Strict(Object(properties, required...)),
	}
}

// Enum sets allowed values for the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Min sets the minimum value for number/integer properties.
func (p *Property) Min(min float64) *Property {
	p.minimum = &min
	return p
}

// Max sets the maximum value for number/integer properties.
func (p *Property) Max(max float64) *Property {
	p.maximum = &max
	return p
}

// MinLength sets the minimum length for string properties.
func (p *Property) MinLength(min int) *Property {
	p.minLength = &min
	return p
}

// Pattern sets a regex pattern for string validation.
func (p *Property) Pattern(pattern string) *Property {
	p.pattern = pattern
	return p
}

// Default sets the default value for the property.
func (p *Property) Default(value any) *Property {
	p.def = value
	return p
}
