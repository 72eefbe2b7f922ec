package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCompile(t *testing.T) {
	type input struct {
		raw map[string]any
	}

	type expected struct {
		isNil  bool
		hasErr bool
	}

	tests := []struct {
		name     string
		input    input
		expected expected
	}{
		{
			name:     "nil schema returns nil",
			input:    input{raw: nil},
			expected: expected{isNil: true},
		},
		{
			name: "valid schema compiles",
			input: input{raw: Object(map[string]*Property{
				"max_steps": Integer("Step budget").Min(1),
			})},
			expected: expected{},
		},
		{
			name:     "invalid schema fails",
			input:    input{raw: map[string]any{"type": 42}},
			expected: expected{isNil: true, hasErr: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compile(tt.input.raw)

			if tt.expected.hasErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expected.isNil {
				assert.Nil(t, s)
			} else {
				require.NotNil(t, s)
				assert.Equal(t, tt.input.raw, s.Raw())
			}
		})
	}
}

func configSchema() *Schema {
	return MustCompile(Strict(Object(map[string]*Property{
		"model": Nested("Model settings", map[string]*Property{
			"provider": String("Provider").Enum("openai", "github"),
			"name":     String("Model name").MinLength(1),
			"decoding": Nested("Sampling", map[string]*Property{
				"temperature": Number("Temperature").Min(0).Max(2),
				"stop_words":  Array("Stop words", map[string]any{"type": "string"}),
			}),
		}, "provider"),
		"react": Nested("Loop", map[string]*Property{
			"max_steps":     Integer("Step budget").Min(1).Default(7),
			"show_activity": Boolean("Activity"),
			"timeout":       String("Timeout").Pattern(`^[0-9]+(ms|s|m)$`),
		}),
	})))
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid document passes",
			doc: `
model:
  provider: openai
  name: gpt-4o-mini
  decoding:
    temperature: 0.5
    stop_words: ["\nObservation"]
react:
  max_steps: 7
  show_activity: true
  timeout: 30s
`,
		},
		{
			name: "empty document passes",
			doc:  `{}`,
		},
		{
			name:    "missing required field fails",
			doc:     "model:\n  name: x\n",
			wantErr: true,
		},
		{
			name:    "enum violation fails",
			doc:     "model:\n  provider: vertex\n",
			wantErr: true,
		},
		{
			name:    "wrong type fails",
			doc:     "react:\n  max_steps: many\n",
			wantErr: true,
		},
		{
			name:    "minimum violation fails",
			doc:     "react:\n  max_steps: 0\n",
			wantErr: true,
		},
		{
			name:    "float for integer fails",
			doc:     "react:\n  max_steps: 1.5\n",
			wantErr: true,
		},
		{
			name:    "pattern violation fails",
			doc:     "react:\n  timeout: soon\n",
			wantErr: true,
		},
		{
			name:    "unknown top level key fails",
			doc:     "reactt:\n  max_steps: 3\n",
			wantErr: true,
		},
		{
			name:    "unknown nested key fails",
			doc:     "react:\n  max_step: 3\n",
			wantErr: true,
		},
		{
			name:    "nested array item type fails",
			doc:     "model:\n  provider: openai\n  decoding:\n    stop_words: [1]\n",
			wantErr: true,
		},
	}

	s := configSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &doc))

			err := s.Validate(doc)

			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchema_Validate_NilSchema(t *testing.T) {
	var s *Schema
	err := s.Validate(map[string]any{"foo": "bar"})
	assert.NoError(t, err, "nil schema should always pass validation")
}

func TestSchema_Validate_NonJSONValue(t *testing.T) {
	s := MustCompile(Object(nil))
	err := s.Validate(map[string]any{"ch": make(chan int)})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(map[string]any{"type": 42})
	})
}

func TestObject_Basic(t *testing.T) {
	schema := Object(map[string]*Property{
		"name": String("The name"),
		"age":  Integer("The age"),
	}, "name")

	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "expected properties map")
	assert.Len(t, props, 2)

	required, ok := schema["required"].([]string)
	require.True(t, ok, "expected required array")
	assert.Equal(t, []string{"name"}, required)
	assert.NotContains(t, schema, "additionalProperties")
}

func TestNested_Build(t *testing.T) {
	prop := Nested("Loop", map[string]*Property{
		"max_steps": Integer("Step budget").Min(1).Max(50).Default(7),
	}, "max_steps").build()

	assert.Equal(t, "object", prop["type"])
	assert.Equal(t, "Loop", prop["description"])
	assert.Equal(t, false, prop["additionalProperties"])
	assert.Equal(t, []string{"max_steps"}, prop["required"])

	props := prop["properties"].(map[string]any)
	steps := props["max_steps"].(map[string]any)
	assert.Equal(t, map[string]any{
		"type":        "integer",
		"description": "Step budget",
		"minimum":     float64(1),
		"maximum":     float64(50),
		"default":     7,
	}, steps)
}
