package blueprints

import (
	"errors"
	"net/http"

	"github.com/formatio/formatio/internal/workflow"
)

// Domain errors for blueprint operations.
var (
	ErrNotFound      = errors.New("blueprint not found")
	ErrDuplicate     = errors.New("blueprint already exists")
	ErrInvalidIntake = errors.New("invalid intake")
	ErrInvalidID     = errors.New("invalid blueprint id")
)

// MapHTTPStatus maps blueprint domain and generation errors to HTTP status codes.
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
