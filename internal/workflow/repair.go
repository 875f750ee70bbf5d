package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/formatio/formatio/internal/schema"
)

// RepairNode returns a state node that sends the single repair prompt,
// built from the recorded validation issues and the bad output. There is
// exactly one repair pass; its result either validates or the workflow fails.
func RepairNode(rt *Runtime, c Contract) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		raw, err := extractString(s, KeyRaw)
		if err != nil {
			return s, fmt.Errorf("repair: %w", err)
		}

		issues, err := extractIssues(s)
		if err != nil {
			return s, fmt.Errorf("repair: %w", err)
		}

		out, err := rt.Generator.Generate(ctx, c.RepairPrompt(issues.Flatten(), raw))
		if err != nil {
			return s, fmt.Errorf("repair: %w: %w", ErrRepairFailed, err)
		}

		if strings.TrimSpace(out) == "" {
			return s, fmt.Errorf("repair: %w: %w", ErrRepairFailed, ErrEmptyOutput)
		}

		rt.Logger.InfoContext(
			ctx, "repair node complete",
			"kind", c.Kind(),
			"output_length", len(out),
		)

		s = s.Set(KeyRepairRaw, out)
		return s, nil
	})
}

// ResolveRepairNode returns a state node that validates the repaired output.
// Any failure here is terminal: the error carries the validation issues and
// a truncated raw prefix for diagnostics.
func ResolveRepairNode(rt *Runtime, c Contract) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		raw, err := extractString(s, KeyRepairRaw)
		if err != nil {
			return s, fmt.Errorf("resolve repair: %w", err)
		}

		doc, issues, err := resolveCandidate(c, raw)
		if err != nil {
			return s, fmt.Errorf("resolve repair: %w: %w", ErrRepairFailed, err)
		}

		if len(issues) > 0 {
			return s, fmt.Errorf(
				"resolve repair: %w",
				schema.NewValidationError(ErrRepairFailed, issues, raw),
			)
		}

		rt.Logger.InfoContext(ctx, "resolve repair node complete", "kind", c.Kind())

		s = s.Set(KeyDocument, doc)
		s = s.Set(KeyRepaired, true)
		return s, nil
	})
}

func extractIssues(s state.State) (schema.Issues, error) {
	val, ok := s.Get(KeyIssues)
	if !ok {
		return nil, fmt.Errorf("missing %s in state", KeyIssues)
	}

	issues, ok := val.(schema.Issues)
	if !ok {
		return nil, fmt.Errorf("%s is not schema.Issues", KeyIssues)
	}

	return issues, nil
}
