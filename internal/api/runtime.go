package api

import (
	"fmt"

	"github.com/formatio/formatio/internal/config"
	"github.com/formatio/formatio/internal/infrastructure"
	"github.com/formatio/formatio/internal/workflow"
	"github.com/formatio/formatio/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// generation workflow runtime shared by all domain systems.
type Runtime struct {
	*infrastructure.Infrastructure
	Workflow   *workflow.Runtime
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	generator, err := workflow.NewAgentGenerator(cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("agent generator init failed: %w", err)
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
		},
		Workflow: &workflow.Runtime{
			Generator: generator,
			Logger:    logger,
		},
		Pagination: cfg.API.Pagination,
	}, nil
}
