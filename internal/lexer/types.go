package lexer

import "strings"

// Keywords lists the type keywords accepted by type expressions, in the
// spelling the input must use.
var Keywords = []string{"Array", "Object", "Number", "Integer", "String", "Boolean", "Null"}

func isKeyword(s string) bool {
	for _, k := range Keywords {
		if s == k {
			return true
		}
	}
	return false
}

// IsTypeExpr reports whether tok is a valid type expression:
// ['!']Keyword('|'Keyword)*. Matching is case-sensitive and only the first
// segment may carry the '!' marker.
func IsTypeExpr(tok string) bool {
	for i, seg := range strings.Split(tok, "|") {
		if i == 0 {
			seg = strings.TrimPrefix(seg, "!")
		}
		if !isKeyword(seg) {
			return false
		}
	}
	return true
}

// TypeExpr is the result of parsing a type expression token.
type TypeExpr struct {
	Types    []string // lowercased segments, at least one
	Required bool
}

// ParseTypeExpr splits tok on '|', strips a leading '!' from the first
// segment and lowercases every segment. It never fails: unknown keywords are
// kept verbatim (lowercased).
func ParseTypeExpr(tok string) TypeExpr {
	segs := strings.Split(tok, "|")
	var te TypeExpr
	if strings.HasPrefix(segs[0], "!") {
		te.Required = true
		segs[0] = segs[0][1:]
	}
	te.Types = make([]string, len(segs))
	for i, s := range segs {
		te.Types[i] = strings.ToLower(s)
	}
	return te
}
