package render

import (
	"strings"
	"testing"
)

func TestEnvelopeBuilders_SetKind(t *testing.T) {
	cases := []struct {
		env  *Envelope
		want Kind
	}{
		{Info("i"), KindInfo},
		{Success("s"), KindSuccess},
		{Warning("w"), KindWarning},
		{Error("e"), KindError},
	}
	for _, tc := range cases {
		if tc.env.Kind != tc.want {
			t.Errorf("envelope %q: kind = %v, want %v", tc.env.Title, tc.env.Kind, tc.want)
		}
	}
}

func TestEnvelope_FieldsKeepInsertionOrder(t *testing.T) {
	env := Info("t").
		WithField("first", "1").
		WithInlineField("second", "2").
		WithField("third", "3")

	if len(env.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(env.Fields))
	}
	for i, name := range []string{"first", "second", "third"} {
		if env.Fields[i].Name != name {
			t.Errorf("field %d = %q, want %q", i, env.Fields[i].Name, name)
		}
	}
	if !env.Fields[1].Inline {
		t.Error("second field should be inline")
	}
}

func TestTable_RendersHeadersAndRows(t *testing.T) {
	out := Table(
		[]string{"Name", "Region"},
		[][]string{
			{"web-1", "GRA9"},
			{"web-2", "WAW1"},
		},
	)

	if !strings.HasPrefix(out, "```") || !strings.HasSuffix(out, "```") {
		t.Fatalf("table output is not fenced:\n%s", out)
	}
	for _, want := range []string{"Name", "Region", "web-1", "GRA9", "web-2", "WAW1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTable_PanicsOnCellCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on row arity mismatch")
		}
	}()
	Table([]string{"a", "b"}, [][]string{{"only-one"}})
}

func TestJSONBlock_IndentsWithFourSpaces(t *testing.T) {
	out := JSONBlock(map[string]string{"status": "ok"})

	if !strings.HasPrefix(out, "```json\n") {
		t.Fatalf("expected json fence, got:\n%s", out)
	}
	if !strings.Contains(out, "    \"status\": \"ok\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", out)
	}
}

func TestTruncateBlock_ClosesCutFences(t *testing.T) {
	block := CodeBlock("", strings.Repeat("x", 100))

	out := TruncateBlock(block, 50)
	if len([]rune(out)) > 50 {
		t.Errorf("length %d exceeds 50", len([]rune(out)))
	}
	if strings.Count(out, "```")%2 != 0 {
		t.Errorf("fences left unbalanced:\n%s", out)
	}
	if !strings.HasSuffix(out, "```") {
		t.Errorf("cut block must end with a closing fence:\n%s", out)
	}

	if got := TruncateBlock(block, 1000); got != block {
		t.Errorf("block within the limit must pass through unchanged")
	}
	if got := TruncateBlock("plain text that runs long", 10); got != "plain t..." {
		t.Errorf("plain text truncation changed: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is a longer string", 10, "this is..."},
		{"abc", 2, "ab"},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
