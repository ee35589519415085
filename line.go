package shorthand

import (
	"github.com/reoring/shorthand/internal/lexer"
	"github.com/reoring/shorthand/internal/lines"
)

// parseLine turns one line into a node without children. The first line of a
// document names the node through ID, every other line through Field.
func (p *parser) parseLine(l lines.Line, first bool) (*Node, error) {
	content := l.Content()
	toks := lexer.Tokenize(content)
	if len(toks) == 0 {
		return nil, p.errAt(KindEmptyInput, l, 0, "")
	}

	n := &Node{}
	if hasName(toks) {
		if off, ok := lexer.UnclosedBracket(toks[0]); ok {
			return nil, p.errAt(KindUnbalancedBracket, l, l.Indent()+off+1, "'[' is not closed")
		}
		n.setType(lexer.ParseTypeExpr(toks[1]))
		name, deps := lexer.SplitName(toks[0])
		if first {
			n.ID = "/" + name
		} else {
			n.Field = name
		}
		n.DependentProps = deps
		toks = toks[2:]
	} else {
		if p.cfg.strict && !lexer.IsTypeExpr(toks[0]) {
			return nil, p.errAt(KindMalformedTypeExpression, l, l.Indent()+1, "unknown type "+toks[0])
		}
		n.setType(lexer.ParseTypeExpr(toks[0]))
		toks = toks[1:]
	}

	for _, o := range lexer.ParseOptions(toks) {
		if n.Options == nil {
			n.Options = Options{}
		}
		n.Options[o.Key] = fromLexerValue(o.Value)
	}
	return n, nil
}

// hasName decides whether the first token is a field name by checking that
// the second token alone is a valid type expression.
func hasName(toks []string) bool {
	return len(toks) > 1 && lexer.IsTypeExpr(toks[1])
}

func (n *Node) setType(te lexer.TypeExpr) {
	n.Type = TypeSpec(te.Types)
	n.Required = te.Required
}

func fromLexerValue(v lexer.Value) OptionValue {
	switch v.Kind {
	case lexer.ValueInteger:
		return IntOption(v.Int)
	case lexer.ValueBoolean:
		return BoolOption(v.Bool)
	default:
		return StringOption(v.Str, v.Quoted)
	}
}
