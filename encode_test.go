package shorthand_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/reoring/shorthand"
)

const encodeSrc = `user !Object title:"User"
    name[email] !String
    tags Array
        String
    @additionalProperties Integer
`

func TestMarshalJSON_KeyOrder(t *testing.T) {
	n := shorthand.MustParse(encodeSrc)
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"/user","type":"object","required":true,"options":{"title":"User"},` +
		`"props":[{"field":"name","type":"string","required":true,"dependentProps":["email"]},` +
		`{"field":"tags","type":"array","props":[{"type":"string"}]}],` +
		`"additionalProperties":{"type":"integer"}}`
	if string(b) != want {
		t.Fatalf("json mismatch\n got=%s\nwant=%s", b, want)
	}
}

func TestMarshalJSON_MatchesToMap(t *testing.T) {
	n := shorthand.MustParse("x String|Null a:1 b:true c:10")
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"id":      "/x",
		"type":    []any{"string", "null"},
		"options": map[string]any{"a": float64(1), "b": true, "c": "10"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalYAML(t *testing.T) {
	n := shorthand.MustParse(encodeSrc)
	b, err := yaml.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)
	for _, want := range []string{"id: /user\n", "type: object\n", "dependentProps: [email]\n", "additionalProperties:\n    type: integer\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml lacks %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "id:") > strings.Index(out, "props:") {
		t.Fatalf("id must precede props:\n%s", out)
	}

	var back map[string]any
	if err := yaml.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(n.ToMap()["options"], back["options"]); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_Paths(t *testing.T) {
	n := shorthand.MustParse(`Object
  a Object
    b String
  @patternProperties
    /^x\/y/ Number
  @dependencies
    a
      c String`)
	var paths []string
	n.Walk(func(p string, _ *shorthand.Node) bool {
		paths = append(paths, p)
		return true
	})
	want := []string{
		"/",
		"/props/0",
		"/props/0/props/0",
		"/patternProperties/^x\\~1y",
		"/dependencies/a",
		"/dependencies/a/props/0",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	n := shorthand.MustParse("Object\n  a Object\n    b String\n  c String")
	count := 0
	n.Walk(func(p string, c *shorthand.Node) bool {
		count++
		return c.Field != "a"
	})
	if count != 3 {
		t.Fatalf("expected 3 visits, got %d", count)
	}
}
