package shorthand

import (
	"strings"
	"unicode"

	"github.com/reoring/shorthand/internal/lexer"
	"github.com/reoring/shorthand/internal/lines"
)

// Directive markers. A marker must be followed by whitespace or end the line.
const (
	markerPatternProperties    = "@patternProperties"
	markerAdditionalProperties = "@additionalProperties"
	markerDependencies         = "@dependencies"
)

type parser struct {
	cfg config
}

// parseDocument runs the whole pipeline over q: the first line becomes the
// root and the remaining lines are attached below it by indentation.
func (p *parser) parseDocument(q *lines.Queue) (*Node, error) {
	head, ok := q.Next()
	if !ok {
		return nil, &ParseError{Kind: KindEmptyInput, Filename: p.cfg.filename}
	}
	root, err := p.parseLine(head, true)
	if err != nil {
		return nil, err
	}
	// A line shallower than every open level still belongs to the root.
	for {
		next, ok := q.Peek()
		if !ok {
			return root, nil
		}
		if err := p.build(q, root, next.Indent()); err != nil {
			return nil, err
		}
	}
}

// build attaches lines to cur until the input ends or a line is indented less
// than baseline. Lines at baseline are children or directives of cur; deeper
// lines belong to the most recent child.
func (p *parser) build(q *lines.Queue, cur *Node, baseline int) error {
	for {
		l, ok := q.Next()
		if !ok {
			return nil
		}
		width := l.Indent()
		switch {
		case width < baseline:
			q.Unread()
			return nil
		case width == baseline:
			if err := p.child(q, cur, l); err != nil {
				return err
			}
		default:
			q.Unread()
			owner := cur
			if n := len(cur.Props); n > 0 {
				owner = cur.Props[n-1]
			}
			if err := p.build(q, owner, width); err != nil {
				return err
			}
		}
	}
}

func (p *parser) child(q *lines.Queue, cur *Node, l lines.Line) error {
	content := l.Content()
	if _, ok := cutMarker(content, markerPatternProperties); ok {
		m, err := p.patternProperties(q, l)
		if err != nil {
			return err
		}
		if cur.PatternProperties == nil {
			cur.PatternProperties = m
			return nil
		}
		for k, v := range m {
			cur.PatternProperties[k] = v
		}
		return nil
	}
	if rest, ok := cutMarker(content, markerAdditionalProperties); ok {
		n, err := p.additionalProperties(q, l, rest)
		if err != nil {
			return err
		}
		cur.AdditionalProperties = n
		return nil
	}
	if _, ok := cutMarker(content, markerDependencies); ok {
		m, err := p.dependencies(q, l)
		if err != nil {
			return err
		}
		if cur.Dependencies == nil {
			cur.Dependencies = m
			return nil
		}
		for k, v := range m {
			cur.Dependencies[k] = v
		}
		return nil
	}
	n, err := p.parseLine(l, false)
	if err != nil {
		return err
	}
	cur.Props = append(cur.Props, n)
	return nil
}

// patternProperties maps each entry of the directive's block, keyed by its
// /pattern/, to a schema parsed from the rest of the entry.
func (p *parser) patternProperties(q *lines.Queue, l lines.Line) (map[string]*Node, error) {
	block := q.Block(l.Indent())
	if len(block) == 0 {
		return nil, p.errAt(KindUnterminatedDirectiveBlock, l, 0, markerPatternProperties+" needs an indented block")
	}
	out := make(map[string]*Node)
	for _, entry := range lines.Entries(block) {
		key, sub, err := p.splitEntry(entry, "")
		if err != nil {
			return nil, err
		}
		key = strings.TrimPrefix(key, "/")
		key = strings.TrimSuffix(key, "/")
		n, err := p.parseDocument(lines.NewQueue(sub))
		if err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, nil
}

// additionalProperties parses the rest of the directive line plus its block
// as one schema. A bare marker describes an object.
func (p *parser) additionalProperties(q *lines.Queue, l lines.Line, rest string) (*Node, error) {
	block := q.Block(l.Indent())
	if rest == "" && len(block) == 0 {
		return nil, p.errAt(KindUnterminatedDirectiveBlock, l, 0, markerAdditionalProperties+" needs a type or an indented block")
	}
	if rest == "" {
		rest = "Object"
	}
	sub := make([]lines.Line, 0, len(block)+1)
	sub = append(sub, lines.Line{Num: l.Num, Text: rest})
	sub = append(sub, block...)
	return p.parseDocument(lines.NewQueue(sub))
}

// dependencies maps each entry key of the directive's block to an untyped
// fragment: the entry is parsed as an Object and its type is dropped.
func (p *parser) dependencies(q *lines.Queue, l lines.Line) (map[string]*Node, error) {
	block := q.Block(l.Indent())
	if len(block) == 0 {
		return nil, p.errAt(KindUnterminatedDirectiveBlock, l, 0, markerDependencies+" needs an indented block")
	}
	out := make(map[string]*Node)
	for _, entry := range lines.Entries(block) {
		key, sub, err := p.splitEntry(entry, "Object")
		if err != nil {
			return nil, err
		}
		key, _ = lexer.Unquote(key)
		n, err := p.parseDocument(lines.NewQueue(sub))
		if err != nil {
			return nil, err
		}
		n.Type = nil
		out[key] = n
	}
	return out, nil
}

// splitEntry takes the first token of an entry's head line as its key and
// builds the sub-document from the remaining tokens, prefixed by prefix, and
// the entry's deeper lines. An entry without anything after its key is an
// object when it has deeper lines.
func (p *parser) splitEntry(entry []lines.Line, prefix string) (string, []lines.Line, error) {
	head := entry[0]
	toks := lexer.Tokenize(head.Content())
	key := toks[0]
	rest := toks[1:]
	if prefix != "" {
		rest = append([]string{prefix}, rest...)
	}
	if len(rest) == 0 {
		if len(entry) == 1 {
			return "", nil, p.errAt(KindUnterminatedDirectiveBlock, head, 0, "entry "+key+" has no schema")
		}
		rest = []string{"Object"}
	}
	sub := make([]lines.Line, 0, len(entry))
	sub = append(sub, lines.Line{Num: head.Num, Text: strings.Join(rest, " ")})
	sub = append(sub, entry[1:]...)
	return key, sub, nil
}

// cutMarker reports whether content starts with marker as a whole word and
// returns the trimmed remainder.
func cutMarker(content, marker string) (string, bool) {
	rest, ok := strings.CutPrefix(content, marker)
	if !ok {
		return "", false
	}
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func (p *parser) errAt(kind ErrorKind, l lines.Line, col int, detail string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Filename: p.cfg.filename,
		Line:     l.Num,
		Column:   col,
		Text:     l.Content(),
		Detail:   detail,
	}
}
