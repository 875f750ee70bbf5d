package playbooks

import (
	"context"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/pkg/pagination"
)

// System defines the public contract for playbook domain operations.
type System interface {
	Handler() *Handler

	Generate(ctx context.Context, in intake.Intake) (*Generated, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Summary], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
