package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/formatio/formatio/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		request      pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 20},
		{"negative page", pagination.PageRequest{Page: -2, PageSize: 10}, 1, 10},
		{"oversized page size", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 100},
		{"valid", pagination.PageRequest{Page: 3, PageSize: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.request.Normalize(cfg)
			if tt.request.Page != tt.wantPage || tt.request.PageSize != tt.wantPageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d",
					tt.request.Page, tt.request.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "25")
	values.Set("search", "romans")
	values.Set("sort", "-createdAt")

	req := pagination.PageRequestFromQuery(values, cfg)

	if req.Page != 2 || req.PageSize != 25 {
		t.Errorf("page=%d size=%d", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "romans" {
		t.Errorf("search = %v", req.Search)
	}
	if len(req.Sort) != 1 || !req.Sort[0].Descending {
		t.Errorf("sort = %+v", req.Sort)
	}
	if req.Offset() != 25 {
		t.Errorf("offset = %d", req.Offset())
	}
}

func TestSortFieldsUnmarshal(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var req pagination.PageRequest
		if err := json.Unmarshal([]byte(`{"sort": "-createdAt,title"}`), &req); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(req.Sort) != 2 || !req.Sort[0].Descending {
			t.Errorf("sort = %+v", req.Sort)
		}
	})

	t.Run("array form", func(t *testing.T) {
		var req pagination.PageRequest
		input := `{"sort": [{"Field": "title", "Descending": true}]}`
		if err := json.Unmarshal([]byte(input), &req); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if len(req.Sort) != 1 || req.Sort[0].Field != "title" {
			t.Errorf("sort = %+v", req.Sort)
		}
	})
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact pages", 40, 20, 2},
		{"partial last page", 41, 20, 3},
		{"empty", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("total pages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}

	t.Run("nil data becomes empty slice", func(t *testing.T) {
		result := pagination.NewPageResult[string](nil, 0, 1, 20)
		if result.Data == nil {
			t.Error("data is nil")
		}
	})
}
