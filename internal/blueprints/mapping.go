package blueprints

import (
	"encoding/json"
	"net/url"

	"github.com/formatio/formatio/pkg/query"
	"github.com/formatio/formatio/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "blueprints", "b").
	Project("id", "ID").
	Project("title", "Title").
	Project("role", "Role").
	Project("group_name", "GroupName").
	Project("intake", "Intake").
	Project("document", "Document").
	Project("created_at", "CreatedAt")

var summaryProjection = query.
	NewProjectionMap("public", "blueprints", "b").
	Project("id", "ID").
	Project("title", "Title").
	Project("role", "Role").
	Project("group_name", "GroupName").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for blueprint queries.
// Nil fields are ignored. Role uses exact matching; Title and GroupName use
// case-insensitive contains matching.
type Filters struct {
	Role      *string `json:"role,omitempty"`
	Title     *string `json:"title,omitempty"`
	GroupName *string `json:"group_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Role", f.Role).
		WhereContains("Title", f.Title).
		WhereContains("GroupName", f.GroupName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if role := values.Get("role"); role != "" {
		f.Role = &role
	}

	if title := values.Get("title"); title != "" {
		f.Title = &title
	}

	if gn := values.Get("group_name"); gn != "" {
		f.GroupName = &gn
	}

	return f
}

func scanRecord(s repository.Scanner) (Record, error) {
	var (
		rec          Record
		intakeJSON   []byte
		documentJSON []byte
	)

	if err := s.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Role,
		&rec.GroupName,
		&intakeJSON,
		&documentJSON,
		&rec.CreatedAt,
	); err != nil {
		return rec, err
	}

	if err := json.Unmarshal(intakeJSON, &rec.Intake); err != nil {
		return rec, err
	}

	if err := json.Unmarshal(documentJSON, &rec.Document); err != nil {
		return rec, err
	}

	return rec, nil
}

func scanSummary(s repository.Scanner) (Summary, error) {
	var sum Summary
	err := s.Scan(
		&sum.ID,
		&sum.Title,
		&sum.Role,
		&sum.GroupName,
		&sum.CreatedAt,
	)
	return sum, err
}
