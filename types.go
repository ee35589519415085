package shorthand

import (
	"fmt"
	"sort"
	"strconv"
)

// TypeSpec is the type of a node: one lowercase keyword, or a union of two or
// more keywords in source order.
type TypeSpec []string

// Single returns the keyword when the spec is not a union.
func (t TypeSpec) Single() (string, bool) {
	if len(t) == 1 {
		return t[0], true
	}
	return "", false
}

// IsUnion reports whether the spec lists more than one keyword.
func (t TypeSpec) IsUnion() bool { return len(t) > 1 }

// Has reports whether keyword k is part of the spec.
func (t TypeSpec) Has(k string) bool {
	for _, s := range t {
		if s == k {
			return true
		}
	}
	return false
}

func (t TypeSpec) value() any {
	if s, ok := t.Single(); ok {
		return s
	}
	return []string(t)
}

// OptionKind identifies the variant held by an OptionValue.
type OptionKind int

const (
	OptionString OptionKind = iota
	OptionInteger
	OptionBoolean
)

func (k OptionKind) String() string {
	switch k {
	case OptionString:
		return "string"
	case OptionInteger:
		return "integer"
	case OptionBoolean:
		return "boolean"
	default:
		return "OptionKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OptionValue is a closed union of the values a key:value option can carry.
// Integers only ever come from a single unquoted digit.
type OptionValue struct {
	kind   OptionKind
	str    string
	num    int
	flag   bool
	quoted bool
}

// StringOption builds a string value; quoted records a "..." literal.
func StringOption(s string, quoted bool) OptionValue {
	return OptionValue{kind: OptionString, str: s, quoted: quoted}
}

// IntOption builds an integer value.
func IntOption(n int) OptionValue { return OptionValue{kind: OptionInteger, num: n} }

// BoolOption builds a boolean value.
func BoolOption(b bool) OptionValue { return OptionValue{kind: OptionBoolean, flag: b} }

func (v OptionValue) Kind() OptionKind { return v.kind }

// Quoted reports whether a string value was written as a "..." literal.
func (v OptionValue) Quoted() bool { return v.kind == OptionString && v.quoted }

func (v OptionValue) String() string {
	switch v.kind {
	case OptionInteger:
		return strconv.Itoa(v.num)
	case OptionBoolean:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

// Int returns the integer and whether the value is an integer.
func (v OptionValue) Int() (int, bool) { return v.num, v.kind == OptionInteger }

// Bool returns the boolean and whether the value is a boolean.
func (v OptionValue) Bool() (bool, bool) { return v.flag, v.kind == OptionBoolean }

// Any returns the value as string, int or bool.
func (v OptionValue) Any() any {
	switch v.kind {
	case OptionInteger:
		return v.num
	case OptionBoolean:
		return v.flag
	default:
		return v.str
	}
}

func (v OptionValue) GoString() string {
	return fmt.Sprintf("shorthand.OptionValue{%s:%#v}", v.kind, v.Any())
}

// Options maps option keys to values. A later duplicate key replaces the
// earlier one.
type Options map[string]OptionValue

// Keys returns the option keys sorted.
func (o Options) Keys() []string {
	ks := make([]string, 0, len(o))
	for k := range o {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Node is one unit of the schema tree. Absent attributes are zero values:
// empty ID/Field, false Required, nil maps and slices.
type Node struct {
	ID       string   // root only, "/" + name
	Field    string   // non-root named fields
	Type     TypeSpec // nil only for dependency fragments
	Required bool

	Options        Options
	DependentProps []string

	Props                []*Node
	PatternProperties    map[string]*Node
	AdditionalProperties *Node
	Dependencies         map[string]*Node
}

// Walk visits n and its descendants depth-first. path is a JSON Pointer
// naming the position of each node inside the encoded document. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(path string, n *Node) bool) {
	n.walk(pathRef{}, fn)
}

func (n *Node) walk(p pathRef, fn func(string, *Node) bool) {
	if n == nil || !fn(p.Pointer(), n) {
		return
	}
	for i, c := range n.Props {
		c.walk(p.Field("props").Index(i), fn)
	}
	for _, k := range sortedKeys(n.PatternProperties) {
		n.PatternProperties[k].walk(p.Field("patternProperties").Field(k), fn)
	}
	n.AdditionalProperties.walk(p.Field("additionalProperties"), fn)
	for _, k := range sortedKeys(n.Dependencies) {
		n.Dependencies[k].walk(p.Field("dependencies").Field(k), fn)
	}
}

func sortedKeys(m map[string]*Node) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
