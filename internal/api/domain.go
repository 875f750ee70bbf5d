package api

import (
	"github.com/formatio/formatio/internal/blueprints"
	"github.com/formatio/formatio/internal/playbooks"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Blueprints blueprints.System
	Playbooks  playbooks.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	blueprintsSystem := blueprints.New(
		runtime.Database.Connection(),
		runtime.Workflow,
		runtime.Logger,
		runtime.Pagination,
	)

	playbooksSystem := playbooks.New(
		runtime.Database.Connection(),
		runtime.Workflow,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Blueprints: blueprintsSystem,
		Playbooks:  playbooksSystem,
	}
}
