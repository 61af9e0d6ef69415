package document

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// sheetSchema describes the on-disk sheet format. Junction flags are
// optional and default to false; everything else is required.
const sheetSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["wires"],
  "properties": {
    "wires": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "anchor", "points"],
        "properties": {
          "id": {"type": "integer"},
          "anchor": {"$ref": "#/$defs/coord"},
          "points": {
            "type": "array",
            "items": {"$ref": "#/$defs/point"}
          }
        }
      }
    },
    "metadata": {"type": "object"}
  },
  "$defs": {
    "coord": {
      "type": "object",
      "required": ["x", "y"],
      "properties": {
        "x": {"type": "integer"},
        "y": {"type": "integer"}
      }
    },
    "point": {
      "type": "object",
      "required": ["x", "y"],
      "properties": {
        "x": {"type": "integer"},
        "y": {"type": "integer"},
        "junction": {"type": "boolean"}
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("sheet.schema.json", sheetSchema)

// validate checks raw sheet JSON against the schema.
func validate(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
