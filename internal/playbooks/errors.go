package playbooks

import (
	"errors"
	"net/http"

	"github.com/formatio/formatio/internal/workflow"
)

// Domain errors for playbook operations.
var (
	ErrNotFound      = errors.New("playbook not found")
	ErrDuplicate     = errors.New("playbook already exists")
	ErrInvalidIntake = errors.New("invalid intake")
	ErrInvalidID     = errors.New("invalid playbook id")
)

// MapHTTPStatus maps playbook domain and generation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidIntake) || errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return workflow.MapHTTPStatus(err)
}
