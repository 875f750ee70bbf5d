package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON,
// either directly, from a markdown code fence, or by balanced-brace extraction.
var ErrParseFailed = errors.New("failed to parse response")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse attempts to unmarshal content as JSON into T.
// If direct parsing fails, it extracts JSON from a markdown code fence
// and retries. Returns ErrParseFailed if both attempts fail.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}

// ExtractObject locates the first balanced {...} object in content, tracking
// brace depth while respecting quoted-string boundaries and escape sequences.
// Returns the candidate substring and whether one was found.
func ExtractObject(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(content); i++ {
		c := content[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return content[start : i+1], true
			}
		}
	}

	return "", false
}

// CandidateObject resolves raw model output to a single JSON object.
// It tries direct parsing, then markdown fence extraction, then balanced-brace
// scanning for an object embedded in surrounding prose. Returns ErrParseFailed
// when no strategy yields valid JSON.
func CandidateObject(content string) (json.RawMessage, error) {
	content = strings.TrimSpace(content)

	var direct json.RawMessage
	if err := json.Unmarshal([]byte(content), &direct); err == nil {
		return direct, nil
	}

	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		var fenced json.RawMessage
		if err := json.Unmarshal([]byte(cleaned), &fenced); err == nil {
			return fenced, nil
		}
	}

	if candidate, ok := ExtractObject(content); ok {
		var scanned json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &scanned); err == nil {
			return scanned, nil
		}
	}

	return nil, ErrParseFailed
}

// Unwrap normalizes common over-nesting in model output. A top-level
// JSON-encoded string is parsed again; an object whose payload sits under
// one of the given wrapper keys is promoted to the top level. Content that
// matches neither pattern is returned unchanged.
func Unwrap(raw json.RawMessage, wrapperKeys ...string) json.RawMessage {
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		var inner json.RawMessage
		if err := json.Unmarshal([]byte(nested), &inner); err == nil {
			return Unwrap(inner, wrapperKeys...)
		}
		return raw
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raw
	}

	for _, key := range wrapperKeys {
		inner, ok := obj[key]
		if !ok {
			continue
		}
		var innerObj map[string]json.RawMessage
		if err := json.Unmarshal(inner, &innerObj); err == nil {
			return inner
		}
	}

	return raw
}
