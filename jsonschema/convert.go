package jsonschema

import (
	"errors"
	"slices"

	"github.com/reoring/shorthand"
)

// ErrNilNode is returned by FromNode for a nil tree.
var ErrNilNode = errors.New("jsonschema: nil node")

// FromNode converts a shorthand tree into a JSON Schema document.
//
// Children of an array-only node describe its items (one child is the item
// schema, several become anyOf); children of any other node become
// properties. Required children are listed in "required" in source order, and
// a field's dependent properties become a property dependency of its parent.
// When a @dependencies fragment uses the same key, the dependent properties
// are appended to the fragment's "required" list.
func FromNode(n *shorthand.Node) (*Schema, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	return convert(n), nil
}

func convert(n *shorthand.Node) *Schema {
	s := &Schema{ID: n.ID}
	if t, ok := n.Type.Single(); ok {
		s.Type = t
	} else if n.Type.IsUnion() {
		s.Type = []string(n.Type)
	}
	if len(n.Options) > 0 {
		s.Keywords = make(map[string]any, len(n.Options))
		for k, v := range n.Options {
			s.Keywords[k] = v.Any()
		}
	}

	if len(n.Props) > 0 {
		if n.Type.Has("array") && !n.Type.Has("object") {
			convertItems(s, n.Props)
		} else {
			convertProperties(s, n.Props)
		}
	}
	if len(n.PatternProperties) > 0 {
		s.PatternProperties = make(map[string]*Schema, len(n.PatternProperties))
		for k, c := range n.PatternProperties {
			s.PatternProperties[k] = convert(c)
		}
	}
	if n.AdditionalProperties != nil {
		s.AdditionalProperties = convert(n.AdditionalProperties)
	}
	for k, c := range n.Dependencies {
		if s.Dependencies == nil {
			s.Dependencies = map[string]any{}
		}
		frag := convert(c)
		if names, ok := s.Dependencies[k].([]string); ok {
			frag.Required = appendMissing(frag.Required, names)
		}
		s.Dependencies[k] = frag
	}
	return s
}

func appendMissing(dst, names []string) []string {
	for _, name := range names {
		if !slices.Contains(dst, name) {
			dst = append(dst, name)
		}
	}
	return dst
}

func convertItems(s *Schema, props []*shorthand.Node) {
	if len(props) == 1 {
		s.Items = convert(props[0])
		return
	}
	alts := make([]*Schema, 0, len(props))
	for _, c := range props {
		alts = append(alts, convert(c))
	}
	s.Items = &Schema{AnyOf: alts}
}

func convertProperties(s *Schema, props []*shorthand.Node) {
	s.Properties = make(map[string]*Schema, len(props))
	for _, c := range props {
		name := c.Field
		s.Properties[name] = convert(c)
		if c.Required {
			s.Required = append(s.Required, name)
		}
		if len(c.DependentProps) > 0 {
			if s.Dependencies == nil {
				s.Dependencies = map[string]any{}
			}
			s.Dependencies[name] = append([]string(nil), c.DependentProps...)
		}
	}
}
