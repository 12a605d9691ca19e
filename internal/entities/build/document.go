package build

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseDocument reads a build written by hand as JSON or YAML. Enumerations
// are given by name; unknown keys are rejected.
func ParseDocument(data []byte) (*Build, error) {
	doc := bytes.TrimSpace(data)
	if len(doc) == 0 {
		return nil, fmt.Errorf("build document is empty")
	}

	if doc[0] != '{' {
		var fields map[string]any
		if err := yaml.Unmarshal(doc, &fields); err != nil {
			return nil, fmt.Errorf("invalid build YAML: %w", err)
		}
		if fields == nil {
			return nil, fmt.Errorf("build document is not a mapping")
		}
		converted, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("invalid build YAML: %w", err)
		}
		doc = converted
	}

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()

	var b Build
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("invalid build document: %w", err)
	}
	b.Normalize()
	return &b, nil
}
