package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/pkg/formatting"
)

// ResolveNode returns a state node that parses the raw model output,
// strips conventional over-nesting, and validates the candidate against
// the contract. A candidate that fails validation is recorded for the
// repair branch; output that is not JSON at all is terminal.
func ResolveNode(rt *Runtime, c Contract) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		raw, err := extractString(s, KeyRaw)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		doc, issues, err := resolveCandidate(c, raw)
		if err != nil {
			return s, fmt.Errorf("resolve: %w", err)
		}

		if len(issues) > 0 {
			rt.Logger.WarnContext(
				ctx, "schema validation failed, attempting repair",
				"kind", c.Kind(),
				"issue_count", len(issues),
				"issues", issues.Flatten(),
			)

			s = s.Set(KeyIssues, issues)
			return s, nil
		}

		rt.Logger.InfoContext(ctx, "resolve node complete", "kind", c.Kind())

		s = s.Set(KeyDocument, doc)
		return s, nil
	})
}

// resolveCandidate runs the parse → unwrap → decode sequence shared by the
// first pass and the repair pass.
func resolveCandidate(c Contract, raw string) (any, schema.Issues, error) {
	candidate, err := formatting.CandidateObject(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	candidate = formatting.Unwrap(candidate, c.WrapperKeys()...)

	doc, issues, err := c.Decode(candidate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return doc, issues, nil
}

func extractString(s state.State, key string) (string, error) {
	val, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("missing %s in state", key)
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s is not string", key)
	}

	return str, nil
}
