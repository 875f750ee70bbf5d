package playbooks_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/playbooks"
	"github.com/formatio/formatio/pkg/pagination"
	"github.com/formatio/formatio/pkg/routes"
)

// stubSystem scripts domain responses for handler tests.
type stubSystem struct {
	handler   *playbooks.Handler
	generated *playbooks.Generated
	record    *playbooks.Record
	err       error
}

func (s *stubSystem) Handler() *playbooks.Handler { return s.handler }

func (s *stubSystem) Generate(_ context.Context, _ intake.Intake) (*playbooks.Generated, error) {
	return s.generated, s.err
}

func (s *stubSystem) List(
	_ context.Context,
	page pagination.PageRequest,
	_ playbooks.Filters,
) (*pagination.PageResult[playbooks.Summary], error) {
	if s.err != nil {
		return nil, s.err
	}
	result := pagination.NewPageResult([]playbooks.Summary{}, 0, page.Page, page.PageSize)
	return &result, nil
}

func (s *stubSystem) Find(_ context.Context, _ uuid.UUID) (*playbooks.Record, error) {
	return s.record, s.err
}

func (s *stubSystem) Delete(_ context.Context, _ uuid.UUID) error {
	return s.err
}

func newServer(sys *stubSystem) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	handler := playbooks.NewHandler(sys, logger, cfg)

	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())
	return httptest.NewServer(mux)
}

func TestFindEndpointNotFound(t *testing.T) {
	srv := newServer(&stubSystem{err: playbooks.ErrNotFound})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/playbooks/" + uuid.NewString())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestFindEndpointInvalidID(t *testing.T) {
	srv := newServer(&stubSystem{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/playbooks/not-a-uuid")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestPDFEndpoint(t *testing.T) {
	rec := &playbooks.Record{
		ID:       uuid.New(),
		Title:    "Rooted Youth",
		Document: validPlaybook(),
	}

	srv := newServer(&stubSystem{record: rec})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/playbooks/" + rec.ID.String() + "/pdf")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}

	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "formatio-rooted-youth.pdf") {
		t.Errorf("content disposition = %q, want formatio-rooted-youth.pdf", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	if !strings.HasPrefix(string(body), "%PDF") {
		t.Error("response body is not a PDF document")
	}
}

func TestDeleteEndpoint(t *testing.T) {
	srv := newServer(&stubSystem{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/playbooks/"+uuid.NewString(), nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
}
