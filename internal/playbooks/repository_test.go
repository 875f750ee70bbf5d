package playbooks_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/playbooks"
	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/pkg/pagination"
)

// stubConnector serves scripted rows through the database/sql driver
// interfaces so repository queries run without a live database.
type stubConnector struct {
	rows *stubRows
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{rows: c.rows}, nil
}

func (c stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by name unsupported")
}

type stubConn struct {
	rows *stubRows
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare unsupported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions unsupported")
}

func (c *stubConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return c.rows, nil
}

type stubRows struct {
	cols []string
	rows [][]driver.Value
	i    int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.i >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.i])
	r.i++
	return nil
}

func recordDB(t *testing.T, id uuid.UUID, documentJSON []byte) *sql.DB {
	t.Helper()

	intakeJSON, err := json.Marshal(intake.Intake{
		Role:           schema.RoleYouthLeader,
		DesignType:     intake.DesignMultiWeekSeries,
		TimeHorizon:    intake.HorizonWeeks4To6,
		AgeGroup:       intake.AgeTeens,
		Setting:        intake.SettingSmallGroup,
		Duration:       intake.Duration60To90,
		DesiredOutcome: "Students own their faith beyond youth group",
		LeaderName:     "Casey Morgan",
		GroupName:      "Wednesday Youth",
	})
	if err != nil {
		t.Fatalf("marshal intake: %v", err)
	}

	rows := &stubRows{
		cols: []string{"id", "title", "track", "group_name", "intake", "document", "created_at"},
		rows: [][]driver.Value{{
			id.String(),
			"Rooted Youth",
			"Youth Leader",
			"Wednesday Youth",
			intakeJSON,
			documentJSON,
			time.Now(),
		}},
	}

	return sql.OpenDB(stubConnector{rows: rows})
}

func testRepo(db *sql.DB) playbooks.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return playbooks.New(db, nil, logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func TestFindReturnsValidatedRecord(t *testing.T) {
	documentJSON, err := json.Marshal(validPlaybook())
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	id := uuid.New()
	sys := testRepo(recordDB(t, id, documentJSON))

	rec, err := sys.Find(context.Background(), id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	if rec.ID != id {
		t.Errorf("id = %s, want %s", rec.ID, id)
	}
	if rec.Document.Header.Title != "Rooted Youth" {
		t.Errorf("title = %q", rec.Document.Header.Title)
	}
}

// A stored row whose document no longer satisfies the contract is treated
// as absent rather than served partially.
func TestFindRejectsInvalidStoredDocument(t *testing.T) {
	raw, err := json.Marshal(validPlaybook())
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	delete(doc, "recommendedResources")

	documentJSON, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("remarshal document: %v", err)
	}

	id := uuid.New()
	sys := testRepo(recordDB(t, id, documentJSON))

	_, err = sys.Find(context.Background(), id)
	if !errors.Is(err, playbooks.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
