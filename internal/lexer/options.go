package lexer

import "strings"

// ValueKind identifies how an option value was classified.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInteger
	ValueBoolean
)

// Value is a classified option value.
type Value struct {
	Kind   ValueKind
	Str    string
	Int    int
	Bool   bool
	Quoted bool // the string came from a "..." literal
}

// Option is one key:value pair in source order.
type Option struct {
	Key   string
	Value Value
}

// ParseOptions splits each token on its first ':' and classifies the rest.
// A token without ':' yields an empty bare string value.
func ParseOptions(toks []string) []Option {
	if len(toks) == 0 {
		return nil
	}
	out := make([]Option, 0, len(toks))
	for _, t := range toks {
		key, val, _ := strings.Cut(t, ":")
		out = append(out, Option{Key: key, Value: ClassifyValue(val)})
	}
	return out
}

// ClassifyValue applies the option value rules: a quoted literal is a string
// without its quotes, exactly one decimal digit is an integer, true/false are
// booleans and everything else stays a bare string. Multi-digit numerals are
// deliberately left as strings.
func ClassifyValue(s string) Value {
	if u, ok := Unquote(s); ok {
		return Value{Kind: ValueString, Str: u, Quoted: true}
	}
	switch {
	case len(s) == 1 && s[0] >= '0' && s[0] <= '9':
		return Value{Kind: ValueInteger, Int: int(s[0] - '0')}
	case s == "true":
		return Value{Kind: ValueBoolean, Bool: true}
	case s == "false":
		return Value{Kind: ValueBoolean, Bool: false}
	}
	return Value{Kind: ValueString, Str: s}
}
