package lexer

// Package lexer implements the token-level micro grammars of the shorthand
// notation: splitting a line into tokens, type expressions, option values and
// the dependent-properties suffix of a field name.

import (
	"strings"
	"unicode"
)

// Tokenize splits a line on runs of whitespace. Whitespace inside a
// double-quoted span or inside a [...] group does not split. A '"' or '['
// without a closing partner is an ordinary character.
func Tokenize(line string) []string {
	var (
		toks []string
		cur  strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '"':
			end := strings.IndexByte(line[i+1:], '"')
			if end < 0 {
				cur.WriteByte(c)
				i++
				continue
			}
			cur.WriteString(line[i : i+end+2])
			i += end + 2
		case c == '[':
			end := strings.IndexByte(line[i+1:], ']')
			if end < 0 {
				cur.WriteByte(c)
				i++
				continue
			}
			cur.WriteString(line[i : i+end+2])
			i += end + 2
		case c < 0x80 && unicode.IsSpace(rune(c)):
			flush()
			i++
		default:
			cur.WriteByte(c)
			i++
		}
	}
	flush()
	return toks
}

// UnclosedBracket reports the byte offset of the last '[' in tok when no ']'
// follows it.
func UnclosedBracket(tok string) (int, bool) {
	i := strings.LastIndexByte(tok, '[')
	if i < 0 || strings.IndexByte(tok[i:], ']') >= 0 {
		return 0, false
	}
	return i, true
}

// Unquote strips one pair of surrounding double quotes.
func Unquote(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], true
	}
	return s, false
}
