package shorthand

import (
	"fmt"
	"io"

	"github.com/reoring/shorthand/internal/lines"
)

// Option configures a parse.
type Option func(*config)

type config struct {
	strict   bool
	filename string
}

// WithStrict rejects type expressions that are not built from the keywords
// Array, Object, Number, Integer, String, Boolean and Null. The default is
// permissive: an unknown type is stored lowercased as written.
func WithStrict(strict bool) Option { return func(c *config) { c.strict = strict } }

// WithFilename names the input in error messages.
func WithFilename(name string) Option { return func(c *config) { c.filename = name } }

// Parse compiles shorthand text into a schema tree.
//
// Typical usage:
//
//	n, err := shorthand.Parse("user Object\n    name !String\n    age Integer")
//	if pe, ok := shorthand.AsParseError(err); ok {
//		log.Printf("line %d: %v", pe.Line, pe)
//	}
func Parse(text string, opts ...Option) (*Node, error) {
	var cfg config
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	p := &parser{cfg: cfg}
	return p.parseDocument(lines.NewQueue(lines.Preprocess(text)))
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(data []byte, opts ...Option) (*Node, error) {
	return Parse(string(data), opts...)
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("shorthand: read input: %w", err)
	}
	return Parse(string(data), opts...)
}

// MustParse is like Parse but panics on error. It is intended for schemas
// embedded in source code.
func MustParse(text string, opts ...Option) *Node {
	n, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}
	return n
}
