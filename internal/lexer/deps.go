package lexer

import "strings"

// SplitName separates a field name token from its trailing [a,b,...] group.
// The group must be non-empty, end the token and follow a non-empty name;
// otherwise name is returned unchanged and deps is nil. Each entry is trimmed and unquoted.
func SplitName(tok string) (name string, deps []string) {
	if !strings.HasSuffix(tok, "]") {
		return tok, nil
	}
	body := tok[:len(tok)-1]
	from := strings.LastIndexByte(body, ']') + 1
	open := strings.IndexByte(body[from:], '[')
	if open < 0 {
		return tok, nil
	}
	open += from
	if open == 0 {
		return tok, nil
	}
	inner := body[open+1:]
	if inner == "" {
		return tok, nil
	}
	for _, p := range strings.Split(inner, ",") {
		p, _ = Unquote(strings.TrimSpace(p))
		deps = append(deps, p)
	}
	return tok[:open], deps
}
