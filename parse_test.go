package shorthand_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/shorthand"
)

func mustMap(t *testing.T, src string, opts ...shorthand.Option) map[string]any {
	t.Helper()
	n, err := shorthand.Parse(src, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n.ToMap()
}

func TestParse_BareKeywords(t *testing.T) {
	for _, k := range []string{"Array", "Object", "Number", "Integer", "String", "Boolean", "Null"} {
		for _, in := range []string{k, strings.ToLower(k), strings.ToUpper(k)} {
			got := mustMap(t, in)
			want := map[string]any{"type": strings.ToLower(k)}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("%q mismatch (-want +got):\n%s", in, diff)
			}
		}
	}
}

func TestParse_LineForms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want map[string]any
	}{
		{"id", "idName Integer", map[string]any{"id": "/idName", "type": "integer"}},
		{"union", "String|Integer", map[string]any{"type": []any{"string", "integer"}}},
		{"union with name", "fieldName String|Number", map[string]any{"id": "/fieldName", "type": []any{"string", "number"}}},
		{"required", "!Array", map[string]any{"type": "array", "required": true}},
		{"required union", "!Array|Number", map[string]any{"type": []any{"array", "number"}, "required": true}},
		{"required with id", "foo !String", map[string]any{"id": "/foo", "type": "string", "required": true}},
		{"keyword as name", "Array String", map[string]any{"id": "/Array", "type": "string"}},
		{
			"options",
			`String a:1 b:"2" c:true d:false e:/reg/`,
			map[string]any{"type": "string", "options": map[string]any{"a": 1, "b": "2", "c": true, "d": false, "e": "/reg/"}},
		},
		{
			"named required union options",
			`foo !String|Array a:1 b:"foo"`,
			map[string]any{"id": "/foo", "type": []any{"string", "array"}, "required": true, "options": map[string]any{"a": 1, "b": "foo"}},
		},
		{"multi digit stays string", "String f:10", map[string]any{"type": "string", "options": map[string]any{"f": "10"}}},
		{"value with colons", "String pattern:a:b", map[string]any{"type": "string", "options": map[string]any{"pattern": "a:b"}}},
		{"quoted value with space", `String title:"Hello world"`, map[string]any{"type": "string", "options": map[string]any{"title": "Hello world"}}},
		{"key without value", "String flag", map[string]any{"type": "string", "options": map[string]any{"flag": ""}}},
		{"unknown type is kept", "Strin", map[string]any{"type": "strin"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, mustMap(t, tc.in)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_DependentProps(t *testing.T) {
	got := mustMap(t, "Object\n    name[a,\"b c\"] String")
	want := map[string]any{
		"type": "object",
		"props": []any{
			map[string]any{"field": "name", "type": "string", "dependentProps": []any{"a", "b c"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	root := mustMap(t, "card[billing, shipping] Object")
	if diff := cmp.Diff(map[string]any{"id": "/card", "type": "object", "dependentProps": []any{"billing", "shipping"}}, root); diff != "" {
		t.Fatalf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ObjectFields(t *testing.T) {
	got := mustMap(t, `
            Object
                a !String
                b Number
        `)
	want := map[string]any{
		"type": "object",
		"props": []any{
			map[string]any{"field": "a", "type": "string", "required": true},
			map[string]any{"field": "b", "type": "number"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NestedObjects(t *testing.T) {
	got := mustMap(t, `id Object
                a !Object
                  aa String
                  ab Object

                     abc Integer
                  ac !String a:1
                b Number
        `)
	want := map[string]any{
		"id":   "/id",
		"type": "object",
		"props": []any{
			map[string]any{
				"field":    "a",
				"type":     "object",
				"required": true,
				"props": []any{
					map[string]any{"field": "aa", "type": "string"},
					map[string]any{
						"field": "ab",
						"type":  "object",
						"props": []any{map[string]any{"field": "abc", "type": "integer"}},
					},
					map[string]any{"field": "ac", "type": "string", "options": map[string]any{"a": 1}, "required": true},
				},
			},
			map[string]any{"field": "b", "type": "number"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RequiredRootScenario(t *testing.T) {
	got := mustMap(t, "idField !Object\n    a !String")
	want := map[string]any{
		"id": "/idField", "type": "object", "required": true,
		"props": []any{map[string]any{"field": "a", "type": "string", "required": true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_CommentsAndBlankLines(t *testing.T) {
	src := "// header\n\nObject   \n    // inside\n    a String\n\n\t\n    b Boolean\n// trailer\n"
	got := mustMap(t, src)
	want := map[string]any{
		"type": "object",
		"props": []any{
			map[string]any{"field": "a", "type": "string"},
			map[string]any{"field": "b", "type": "boolean"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoPropsWithoutChildren(t *testing.T) {
	n, err := shorthand.Parse("Object\n    a Object\n    b String")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, c := range n.Props {
		if c.Props != nil {
			t.Fatalf("%s: expected no props, got %v", c.Field, c.Props)
		}
	}
	if _, ok := n.Props[0].ToMap()["props"]; ok {
		t.Fatalf("props key must be absent on a leaf")
	}
}

func TestParse_DedentBetweenLevels(t *testing.T) {
	// A line between two indentation levels nests under the last child of the
	// shallower level.
	got := mustMap(t, "Object\n    a Object\n        b String\n      c String\n    d String")
	want := map[string]any{
		"type": "object",
		"props": []any{
			map[string]any{
				"field": "a", "type": "object",
				"props": []any{
					map[string]any{"field": "b", "type": "string"},
					map[string]any{"field": "c", "type": "string"},
				},
			},
			map[string]any{"field": "d", "type": "string"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ShallowerThanFirstChildAttachesToRoot(t *testing.T) {
	got := mustMap(t, "Object\n    a Object\n        x String\n  b String\n c Integer")
	want := map[string]any{
		"type": "object",
		"props": []any{
			map[string]any{
				"field": "a", "type": "object",
				"props": []any{map[string]any{"field": "x", "type": "string"}},
			},
			map[string]any{"field": "b", "type": "string"},
			map[string]any{"field": "c", "type": "integer"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_BracketOnlyNameIsKept(t *testing.T) {
	got := mustMap(t, "Object\n  [a] String")
	want := map[string]any{
		"type":  "object",
		"props": []any{map[string]any{"field": "[a]", "type": "string"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_TabsCountAsOneCharacter(t *testing.T) {
	got := mustMap(t, "Object\n\ta String\n\t\tb String\n\tc String")
	props := got["props"].([]any)
	if len(props) != 2 {
		t.Fatalf("expected 2 props, got %d: %v", len(props), props)
	}
	a := props[0].(map[string]any)
	if _, ok := a["props"]; !ok {
		t.Fatalf("expected b nested under a: %v", a)
	}
}

func TestParse_Deterministic(t *testing.T) {
	src := "root Object\n  a[b] !String x:1\n  @patternProperties\n    /^x-/ String\n  @dependencies\n    a\n      b String\n"
	first, err := shorthand.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := shorthand.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(first.ToMap(), second.ToMap()); diff != "" {
		t.Fatalf("parses differ:\n%s", diff)
	}
}

func TestParseReaderAndBytes(t *testing.T) {
	a, err := shorthand.ParseReader(strings.NewReader("x Object\n  y String"))
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	b, err := shorthand.ParseBytes([]byte("x Object\n  y String"))
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if diff := cmp.Diff(a.ToMap(), b.ToMap()); diff != "" {
		t.Fatalf("reader and bytes differ:\n%s", diff)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty input")
		}
	}()
	shorthand.MustParse("")
}

func TestNode_TypedAccessors(t *testing.T) {
	n := shorthand.MustParse(`String|Null a:1 b:true c:"x" d:y`)
	if !n.Type.IsUnion() || !n.Type.Has("null") {
		t.Fatalf("unexpected type %v", n.Type)
	}
	if v, ok := n.Options["a"].Int(); !ok || v != 1 {
		t.Fatalf("a: got %v %v", v, ok)
	}
	if v, ok := n.Options["b"].Bool(); !ok || !v {
		t.Fatalf("b: got %v %v", v, ok)
	}
	if !n.Options["c"].Quoted() || n.Options["d"].Quoted() {
		t.Fatalf("quoted flags wrong: c=%v d=%v", n.Options["c"].Quoted(), n.Options["d"].Quoted())
	}
	if got := n.Options.Keys(); !cmp.Equal(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("keys: %v", got)
	}
}
