package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// FinalizeNode returns the exit node. By the time it runs the state holds a
// validated document from either the first pass or the repair pass.
func FinalizeNode(rt *Runtime, c Contract) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		if _, ok := s.Get(KeyDocument); !ok {
			return s, fmt.Errorf("finalize: missing %s in state", KeyDocument)
		}

		rt.Logger.InfoContext(
			ctx, "generation workflow complete",
			"kind", c.Kind(),
			"repaired", wasRepaired(s),
		)

		return s, nil
	})
}

func wasRepaired(s state.State) bool {
	val, ok := s.Get(KeyRepaired)
	if !ok {
		return false
	}

	repaired, ok := val.(bool)
	return ok && repaired
}
