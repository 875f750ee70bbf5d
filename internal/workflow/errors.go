// Package workflow implements the generation pipeline for documents: prompt
// the model, parse and validate the response, and attempt exactly one repair
// pass before giving up. The pipeline is expressed as a 5-node state graph
// (generate → resolve → repair? → resolveRepair? → finalize).
package workflow

import (
	"errors"
	"net/http"
)

// Sentinel errors for generation failures. Each maps to a distinguishable,
// user-presentable failure kind.
var (
	ErrConfigMissing = errors.New("generation agent is not configured")
	ErrEmptyOutput   = errors.New("model returned empty output")
	ErrInvalidJSON   = errors.New("model returned invalid JSON")
	ErrRepairFailed  = errors.New("schema validation failed after repair")
)

// MapHTTPStatus maps workflow errors to appropriate HTTP status codes.
// Upstream model failures surface as bad gateway.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyOutput) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrRepairFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
