package lines

// Package lines turns raw shorthand text into indentation-carrying lines and
// provides the cursor that the tree builder drains. This package is internal
// and not part of the public API.

import (
	"strings"
	"unicode"
)

// Line is a pre-processed source line. Text keeps its leading whitespace
// because it encodes nesting; trailing whitespace is already removed.
type Line struct {
	Num  int    // 1-based line number in the original input (0 when synthesized)
	Text string // Content with leading whitespace preserved
}

// Indent returns the number of leading whitespace characters. Tabs and spaces
// count as one character each; nothing is normalized.
func (l Line) Indent() int { return Indent(l.Text) }

// Content returns the line without its indentation.
func (l Line) Content() string { return strings.TrimLeftFunc(l.Text, unicode.IsSpace) }

// Indent counts leading whitespace characters of s.
func Indent(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// Preprocess splits text on newlines, strips trailing whitespace, and drops
// blank lines and lines whose first non-blank characters are "//".
func Preprocess(text string) []Line {
	raw := strings.Split(text, "\n")
	out := make([]Line, 0, len(raw))
	for i, r := range raw {
		t := strings.TrimRightFunc(r, unicode.IsSpace)
		if t == "" || isComment(t) {
			continue
		}
		out = append(out, Line{Num: i + 1, Text: t})
	}
	return out
}

func isComment(s string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(s, unicode.IsSpace), "//")
}
