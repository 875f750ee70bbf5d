package schema_test

import (
	"strings"
	"testing"

	"github.com/formatio/formatio/internal/schema"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"present", "value", false},
		{"empty", "", true},
		{"whitespace", "   \t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var is schema.Issues
			schema.Required(&is, "field", tt.value)
			if (len(is) > 0) != tt.wantErr {
				t.Errorf("got %d issues, wantErr %v", len(is), tt.wantErr)
			}
		})
	}
}

func TestEnum(t *testing.T) {
	allowed := []schema.Role{schema.RoleTeacher, schema.RolePastorLeader}

	var is schema.Issues
	schema.Enum(&is, "role", schema.RoleTeacher, allowed)
	if len(is) != 0 {
		t.Errorf("valid member recorded issues: %v", is)
	}

	schema.Enum(&is, "role", schema.Role("Deacon"), allowed)
	if len(is) != 1 {
		t.Fatalf("invalid member recorded %d issues, want 1", len(is))
	}
	if !strings.Contains(is[0].Message, "Deacon") {
		t.Errorf("issue message %q does not name the bad value", is[0].Message)
	}
}

func TestIntBetween(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"below min", 9, true},
		{"min", 10, false},
		{"max", 240, false},
		{"above max", 241, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var is schema.Issues
			schema.IntBetween(&is, "durationMinutes", tt.value, 10, 240)
			if (len(is) > 0) != tt.wantErr {
				t.Errorf("value %d: got %d issues, wantErr %v", tt.value, len(is), tt.wantErr)
			}
		})
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"https", "https://www.amazon.com/s?k=discipleship", false},
		{"http", "http://example.com/books", false},
		{"relative", "/books/123", true},
		{"no scheme", "www.amazon.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var is schema.Issues
			schema.ValidURL(&is, "amazonUrl", tt.value)
			if (len(is) > 0) != tt.wantErr {
				t.Errorf("value %q: got %d issues, wantErr %v", tt.value, len(is), tt.wantErr)
			}
		})
	}
}

func TestIssuesFlatten(t *testing.T) {
	var is schema.Issues
	is.Add("header.title", "required")
	is.Add("", "unexpected root key \"extra\"")

	got := is.Flatten()
	want := "header.title: required\nunexpected root key \"extra\""
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var empty schema.Issues
	if empty.Flatten() != "" {
		t.Error("empty issues should flatten to empty string")
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range schema.Roles() {
		if _, err := schema.ParseRole(string(role)); err != nil {
			t.Errorf("ParseRole(%q) failed: %v", role, err)
		}
	}

	if _, err := schema.ParseRole("teacher"); err == nil {
		t.Error("lowercase spelling should be rejected")
	}
	if _, err := schema.ParseRole(""); err == nil {
		t.Error("empty role should be rejected")
	}
}
