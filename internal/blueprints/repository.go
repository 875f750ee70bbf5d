package blueprints

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/internal/workflow"
	"github.com/formatio/formatio/pkg/pagination"
	"github.com/formatio/formatio/pkg/query"
	"github.com/formatio/formatio/pkg/repository"
)

// batchWorkers bounds concurrent generation calls within one batch request.
const batchWorkers = 4

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a blueprint repository implementing the System interface.
func New(
	db *sql.DB,
	rt *workflow.Runtime,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		rt:         rt,
		logger:     logger.With("system", "blueprints"),
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

	bp, ok := result.Document.(*Blueprint)
	if !ok {
		return nil, fmt.Errorf("workflow returned %T, expected *Blueprint", result.Document)
	}

	id, err := r.insert(ctx, &in, bp)
	if err != nil {
		return nil, err
	}

	r.logger.Info(
		"blueprint created",
		"id", id,
		"title", bp.Header.Title,
		"repaired", result.Repaired,
	)

	return &Generated{ID: id, Document: *bp, Repaired: result.Repaired}, nil
}

// GenerateBatch runs independent generations with bounded concurrency.
// Each intake succeeds or fails on its own; one bad item never aborts the rest.
func (r *repo) GenerateBatch(ctx context.Context, ins []intake.Intake) []BatchResult {
	results := make([]BatchResult, len(ins))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, in := range ins {
		g.Go(func() error {
			results[i] = BatchResult{Index: i}

			gen, err := r.Generate(gctx, in)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}

			results[i].Generated = gen
			return nil
		})
	}

	// Worker funcs never return errors; failures land in their result slot.
	_ = g.Wait()

	return results
}

func (r *repo) insert(ctx context.Context, in *intake.Intake, bp *Blueprint) (uuid.UUID, error) {
	intakeJSON, err := json.Marshal(in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal intake: %w", err)
	}

	documentJSON, err := json.Marshal(bp)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal blueprint: %w", err)
	}

	q := `
		INSERT INTO blueprints(title, role, group_name, intake, document)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	args := []any{
		bp.Header.Title,
		bp.Header.Role,
		bp.Header.PreparedFor.GroupName,
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
		return nil, fmt.Errorf("count blueprints: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	summaries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSummary)
	if err != nil {
		return nil, fmt.Errorf("query blueprints: %w", err)
	}

	result := pagination.NewPageResult(summaries, total, page.Page, page.PageSize)
	return &result, nil
}

// Find retrieves a stored blueprint and re-validates its document. A row
// whose content no longer satisfies the contract is reported as absent, not
// surfaced as a partial document.
func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if issues := rec.Document.Validate(); len(issues) > 0 {
		r.logger.Warn(
			"stored blueprint failed schema validation",
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
			"DELETE FROM blueprints WHERE id = $1",
			id,
		)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("blueprint deleted", "id", id)
	return nil
}
