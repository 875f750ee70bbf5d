package playbooks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/internal/workflow"
	"github.com/formatio/formatio/pkg/pagination"
	"github.com/formatio/formatio/pkg/query"
	"github.com/formatio/formatio/pkg/repository"
)

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a playbook repository implementing the System interface.
func New(
	db *sql.DB,
	rt *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		rt:         rt,
		logger:     logger.With("system", "playbooks"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

// Generate validates the intake, runs the generation workflow, and persists
// the validated document. Nothing is stored when any stage fails.
func (r *repo) Generate(ctx context.Context, in intake.Intake) (*Generated, error) {
	if issues := in.Validate(); len(issues) > 0 {
		return nil, schema.NewValidationError(ErrInvalidIntake, issues, "")
	}

	result, err := workflow.Execute(ctx, r.rt, NewContract(&in))
	if err != nil {
		return nil, err
	}

	pb, ok := result.Document.(*Playbook)
	if !ok {
		return nil, fmt.Errorf("workflow returned %T, expected *Playbook", result.Document)
	}

	id, err := r.insert(ctx, &in, pb)
	if err != nil {
		return nil, err
	}

	r.logger.Info(
		"playbook created",
		"id", id,
		"title", pb.Header.Title,
		"repaired", result.Repaired,
	)

	return &Generated{ID: id, Document: *pb, Repaired: result.Repaired}, nil
}

func (r *repo) insert(ctx context.Context, in *intake.Intake, pb *Playbook) (uuid.UUID, error) {
	intakeJSON, err := json.Marshal(in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal intake: %w", err)
	}

	documentJSON, err := json.Marshal(pb)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal playbook: %w", err)
	}

	q := `
		INSERT INTO playbooks(title, track, group_name, intake, document)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	args := []any{
		pb.Header.Title,
		pb.Header.Track,
		pb.Header.PreparedFor.GroupName,
		intakeJSON,
		documentJSON,
	}

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (uuid.UUID, error) {
		return repository.QueryOne(ctx, tx, q, args, scanID)
	})

	if err != nil {
		return uuid.Nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return id, nil
}

func scanID(s repository.Scanner) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.Scan(&id)
	return id, err
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Summary], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(summaryProjection, defaultSort).
		WhereSearch(page.Search, "Title", "GroupName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count playbooks: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	summaries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSummary)
	if err != nil {
		return nil, fmt.Errorf("query playbooks: %w", err)
	}

	result := pagination.NewPageResult(summaries, total, page.Page, page.PageSize)
	return &result, nil
}

// Find retrieves a stored playbook and re-validates its document. A row
// whose content no longer satisfies the contract is reported as absent.
func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if issues := rec.Document.Validate(); len(issues) > 0 {
		r.logger.Warn(
			"stored playbook failed schema validation",
			"id", id,
			"issues", issues.Flatten(),
		)
		return nil, ErrNotFound
	}

	return &rec, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM playbooks WHERE id = $1",
			id,
		)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("playbook deleted", "id", id)
	return nil
}
