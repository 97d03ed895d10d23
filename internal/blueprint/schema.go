package blueprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// blueprintSchema is the persisted-document contract. Loads that fail it
// are treated as corrupt records, not silently repaired.
const blueprintSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema", "id", "document_id", "version", "strategy", "sections"],
  "properties": {
    "schema": {"type": "string"},
    "id": {"type": "string", "minLength": 1},
    "document_id": {"type": "string", "minLength": 1},
    "version": {"type": "integer", "minimum": 1},
    "strategy": {
      "type": "object",
      "required": ["visual_style", "pacing"],
      "properties": {
        "visual_style": {"enum": ["editorial", "marketing", "minimal", "bold", "warm-modern"]},
        "pacing": {"enum": ["dense", "balanced", "spacious"]}
      }
    },
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["section_id", "type", "selection"],
        "properties": {
          "section_id": {"type": "string", "minLength": 1},
          "selection": {
            "type": "object",
            "required": ["component"],
            "properties": {
              "component": {"type": "string", "minLength": 1},
              "confidence": {"type": "number", "minimum": 0, "maximum": 1}
            }
          }
        }
      }
    }
  }
}`

var (
	compiledSchemaOnce sync.Once
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
)

func schema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("blueprint.schema.json", strings.NewReader(blueprintSchema)); err != nil {
			compiledSchemaErr = err
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile("blueprint.schema.json")
	})
	return compiledSchema, compiledSchemaErr
}

// Marshal serializes a blueprint for persistence.
func Marshal(bp *Blueprint) ([]byte, error) {
	return json.Marshal(bp)
}

// Unmarshal parses and validates a persisted blueprint document.
func Unmarshal(data []byte) (*Blueprint, error) {
	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile blueprint schema: %w", err)
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("blueprint record is not valid JSON: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("blueprint record failed schema validation: %w", err)
	}

	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		return nil, err
	}
	return &bp, nil
}
