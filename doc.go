// Package shorthand compiles a whitespace-indented shorthand notation into a
// JSON-Schema-like tree.
//
// One line describes one field:
//
//	[name[dep1,dep2]] ['!']Type['|'Type...] [key:value ...]
//
// Types are Array, Object, Number, Integer, String, Boolean and Null. A
// leading '!' marks the field required. Deeper indentation nests fields under
// the line above; equal indentation makes siblings. Lines starting with "//"
// are comments.
//
// Three directives open sub-grammars inside an object:
//
//	user Object
//	    name !String minLength:1
//	    @patternProperties
//	        /^x-/ String
//	    @additionalProperties Integer
//	    @dependencies
//	        creditCard
//	            billingAddress !String
//
// Design policy:
// - Keep only public APIs in the root package; put token grammars and the
//   line cursor under internal/.
// - The parser is permissive by default: unknown type names are kept as
//   written. WithStrict rejects them.
// - Every failure is a *ParseError carrying its source line; no partial tree
//   is returned.
//
// Typical usage:
//
//	n, err := shorthand.Parse(src)
//	b, err := json.Marshal(n)
//	s, err := jsonschema.FromNode(n)
package shorthand
