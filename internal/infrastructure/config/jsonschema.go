package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/bnema/urlbar/config.schema.json"

// GenerateSchema returns the JSON schema describing config.toml.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = schemaID
	schema.Title = "urlbar Configuration"
	schema.Description = "Configuration schema for the urlbar toolbar chrome"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
