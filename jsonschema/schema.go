package jsonschema

import (
	json "github.com/goccy/go-json"
)

// Schema is a minimal draft-04 style JSON Schema representation used for
// export. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	ID   string `json:"id,omitempty"`
	Type any    `json:"type,omitempty"` // string or []string

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	Dependencies         map[string]any     `json:"dependencies,omitempty"` // *Schema or []string

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Keywords carries free-form keywords (from field options). Structural
	// keys above win on conflict.
	Keywords map[string]any `json:"-"`
}

type schemaAlias Schema

func (s *Schema) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal((*schemaAlias)(s))
	if err != nil || len(s.Keywords) == 0 {
		return b, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range s.Keywords {
		if _, taken := m[k]; taken {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		m[k] = raw
	}
	return json.Marshal(m)
}
