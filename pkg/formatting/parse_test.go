package formatting_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/formatio/formatio/pkg/formatting"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[sample](`{"name":"test","value":42}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "test" || got.Value != 42 {
			t.Errorf("Parse = %+v, want {Name:test Value:42}", got)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		input := "```json\n{\"name\":\"fenced\",\"value\":7}\n```"
		got, err := formatting.Parse[sample](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Name != "fenced" || got.Value != 7 {
			t.Errorf("Parse = %+v, want {Name:fenced Value:7}", got)
		}
	})

	t.Run("unparseable content", func(t *testing.T) {
		_, err := formatting.Parse[sample]("this is not json")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			"object in prose",
			`here is your json: {"a":1} trailing text`,
			`{"a":1}`,
			true,
		},
		{
			"brace inside string value",
			`here is your json: {"a":1, "b": "}"} trailing text`,
			`{"a":1, "b": "}"}`,
			true,
		},
		{
			"escaped quote inside string",
			`result {"text": "he said \"hi\" {ok}"} end`,
			`{"text": "he said \"hi\" {ok}"}`,
			true,
		},
		{
			"nested objects",
			`{"outer": {"inner": 2}}`,
			`{"outer": {"inner": 2}}`,
			true,
		},
		{
			"no object",
			"no braces here",
			"",
			false,
		},
		{
			"unbalanced",
			`{"a": 1`,
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := formatting.ExtractObject(tt.input)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidateObject(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		raw, err := formatting.CandidateObject(`{"a":1}`)
		if err != nil {
			t.Fatalf("CandidateObject error: %v", err)
		}
		if string(raw) != `{"a":1}` {
			t.Errorf("got %s", raw)
		}
	})

	t.Run("fenced", func(t *testing.T) {
		raw, err := formatting.CandidateObject("```json\n{\"a\":1}\n```")
		if err != nil {
			t.Fatalf("CandidateObject error: %v", err)
		}
		if string(raw) != `{"a":1}` {
			t.Errorf("got %s", raw)
		}
	})

	t.Run("embedded in prose", func(t *testing.T) {
		raw, err := formatting.CandidateObject(`here is your json: {"a":1, "b": "}"} trailing text`)
		if err != nil {
			t.Fatalf("CandidateObject error: %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("candidate is not valid JSON: %v", err)
		}
		if got["b"] != "}" {
			t.Errorf("b = %v, want \"}\"", got["b"])
		}
	})

	t.Run("no object", func(t *testing.T) {
		_, err := formatting.CandidateObject("the model refused to answer")
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})
}

func TestUnwrap(t *testing.T) {
	t.Run("wrapper key promoted", func(t *testing.T) {
		raw := json.RawMessage(`{"blueprint": {"header": {"title": "x"}}}`)
		got := formatting.Unwrap(raw, "blueprint", "data", "result")
		if string(got) != `{"header": {"title": "x"}}` {
			t.Errorf("got %s", got)
		}
	})

	t.Run("json-encoded string reparsed", func(t *testing.T) {
		raw := json.RawMessage(`"{\"header\":{\"title\":\"x\"}}"`)
		got := formatting.Unwrap(raw)

		var obj map[string]json.RawMessage
		if err := json.Unmarshal(got, &obj); err != nil {
			t.Fatalf("unwrapped content is not an object: %v", err)
		}
		if _, ok := obj["header"]; !ok {
			t.Error("header key missing after unwrap")
		}
	})

	t.Run("non-wrapper object unchanged", func(t *testing.T) {
		raw := json.RawMessage(`{"header": {"title": "x"}, "overview": {}}`)
		got := formatting.Unwrap(raw, "blueprint")
		if string(got) != string(raw) {
			t.Errorf("got %s, want unchanged", got)
		}
	})

	t.Run("wrapper key with non-object value unchanged", func(t *testing.T) {
		raw := json.RawMessage(`{"data": "just a string"}`)
		got := formatting.Unwrap(raw, "data")
		if string(got) != string(raw) {
			t.Errorf("got %s, want unchanged", got)
		}
	})
}
