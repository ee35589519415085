package shorthand

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ToMap returns the JSON-like view of n: absent attributes are omitted,
// unions become []any, options keep their string/int/bool values.
func (n *Node) ToMap() map[string]any {
	if n == nil {
		return nil
	}
	m := map[string]any{}
	if n.ID != "" {
		m["id"] = n.ID
	}
	if n.Field != "" {
		m["field"] = n.Field
	}
	if len(n.Type) > 0 {
		if s, ok := n.Type.Single(); ok {
			m["type"] = s
		} else {
			ts := make([]any, len(n.Type))
			for i, t := range n.Type {
				ts[i] = t
			}
			m["type"] = ts
		}
	}
	if n.Required {
		m["required"] = true
	}
	if n.Options != nil {
		opts := make(map[string]any, len(n.Options))
		for k, v := range n.Options {
			opts[k] = v.Any()
		}
		m["options"] = opts
	}
	if n.DependentProps != nil {
		deps := make([]any, len(n.DependentProps))
		for i, d := range n.DependentProps {
			deps[i] = d
		}
		m["dependentProps"] = deps
	}
	if n.Props != nil {
		props := make([]any, len(n.Props))
		for i, c := range n.Props {
			props[i] = c.ToMap()
		}
		m["props"] = props
	}
	if n.PatternProperties != nil {
		m["patternProperties"] = nodeMapToMap(n.PatternProperties)
	}
	if n.AdditionalProperties != nil {
		m["additionalProperties"] = n.AdditionalProperties.ToMap()
	}
	if n.Dependencies != nil {
		m["dependencies"] = nodeMapToMap(n.Dependencies)
	}
	return m
}

func nodeMapToMap(nm map[string]*Node) map[string]any {
	out := make(map[string]any, len(nm))
	for k, c := range nm {
		out[k] = c.ToMap()
	}
	return out
}

// field is one present attribute of a node in encoding order.
type field struct {
	key string
	val any
}

func (n *Node) fields() []field {
	var fs []field
	if n.ID != "" {
		fs = append(fs, field{"id", n.ID})
	}
	if n.Field != "" {
		fs = append(fs, field{"field", n.Field})
	}
	if len(n.Type) > 0 {
		fs = append(fs, field{"type", n.Type.value()})
	}
	if n.Required {
		fs = append(fs, field{"required", true})
	}
	if n.Options != nil {
		fs = append(fs, field{"options", n.Options})
	}
	if n.DependentProps != nil {
		fs = append(fs, field{"dependentProps", n.DependentProps})
	}
	if n.Props != nil {
		fs = append(fs, field{"props", n.Props})
	}
	if n.PatternProperties != nil {
		fs = append(fs, field{"patternProperties", n.PatternProperties})
	}
	if n.AdditionalProperties != nil {
		fs = append(fs, field{"additionalProperties", n.AdditionalProperties})
	}
	if n.Dependencies != nil {
		fs = append(fs, field{"dependencies", n.Dependencies})
	}
	return fs
}

// MarshalJSON encodes n with a stable key order: id, field, type, required,
// options, dependentProps, props, patternProperties, additionalProperties,
// dependencies. Map keys are sorted.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range n.fields() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(f.key))
		b.WriteByte(':')
		v, err := json.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (v OptionValue) MarshalJSON() ([]byte, error) { return json.Marshal(v.Any()) }

// MarshalYAML renders n as a mapping node in the same key order as
// MarshalJSON.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode()
}

func (n *Node) yamlNode() (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range n.fields() {
		var val *yaml.Node
		switch t := f.val.(type) {
		case []*Node:
			val = &yaml.Node{Kind: yaml.SequenceNode}
			for _, c := range t {
				cn, err := c.yamlNode()
				if err != nil {
					return nil, err
				}
				val.Content = append(val.Content, cn)
			}
		case map[string]*Node:
			val = &yaml.Node{Kind: yaml.MappingNode}
			for _, k := range sortedKeys(t) {
				cn, err := t[k].yamlNode()
				if err != nil {
					return nil, err
				}
				val.Content = append(val.Content, yamlString(k), cn)
			}
		case *Node:
			cn, err := t.yamlNode()
			if err != nil {
				return nil, err
			}
			val = cn
		case Options:
			val = &yaml.Node{Kind: yaml.MappingNode}
			for _, k := range t.Keys() {
				vn := &yaml.Node{}
				if err := vn.Encode(t[k].Any()); err != nil {
					return nil, err
				}
				val.Content = append(val.Content, yamlString(k), vn)
			}
		default:
			val = &yaml.Node{}
			if err := val.Encode(t); err != nil {
				return nil, err
			}
			if val.Kind == yaml.SequenceNode {
				val.Style = yaml.FlowStyle
			}
		}
		out.Content = append(out.Content, yamlString(f.key), val)
	}
	return out, nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
