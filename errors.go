package shorthand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/shorthand/i18n"
)

// ErrorKind identifies the class of a ParseError. The values double as i18n
// message codes.
type ErrorKind string

// Error kinds (exported consts for IDE completion and type safety by convention)
const (
	KindEmptyInput                 ErrorKind = "empty_input"
	KindMalformedTypeExpression    ErrorKind = "malformed_type_expression"
	KindUnterminatedDirectiveBlock ErrorKind = "unterminated_directive_block"
	KindUnbalancedBracket          ErrorKind = "unbalanced_bracket"
)

// Sentinels for errors.Is; a *ParseError matches the sentinel of its Kind.
var (
	ErrEmptyInput                 = &ParseError{Kind: KindEmptyInput}
	ErrMalformedTypeExpression    = &ParseError{Kind: KindMalformedTypeExpression}
	ErrUnterminatedDirectiveBlock = &ParseError{Kind: KindUnterminatedDirectiveBlock}
	ErrUnbalancedBracket          = &ParseError{Kind: KindUnbalancedBracket}
)

// ParseError aborts a parse. No partial tree accompanies it.
type ParseError struct {
	Kind     ErrorKind
	Filename string // Optional: set through WithFilename.
	Line     int    // 1-based source line, 0 when not tied to a line.
	Column   int    // 1-based column, 0 when unknown.
	Text     string // Offending source line, trimmed.
	Detail   string // Optional: what exactly was wrong.
	Cause    error  // Optional: underlying error.
}

func (e *ParseError) Error() string {
	b := &strings.Builder{}
	if e.Filename != "" {
		b.WriteString(e.Filename)
		b.WriteByte(':')
	}
	if e.Line > 0 {
		fmt.Fprintf(b, "%d:", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(b, "%d:", e.Column)
		}
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(i18n.T(string(e.Kind), map[string]string{"text": e.Text}))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Text != "" {
		fmt.Fprintf(b, " (%q)", e.Text)
	}
	return b.String()
}

// Is matches another *ParseError of the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func (e *ParseError) Unwrap() error { return e.Cause }

// AsParseError extracts a *ParseError from an error using errors.As
// internally.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
