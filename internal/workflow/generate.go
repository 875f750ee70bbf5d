package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// GenerateNode returns a state node that sends the contract's generation
// prompt to the model and stores the raw output. Empty output is terminal;
// nothing downstream can repair a response that never arrived.
func GenerateNode(rt *Runtime, c Contract) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		raw, err := rt.Generator.Generate(ctx, c.Prompt())
		if err != nil {
			return s, fmt.Errorf("generate: %w", err)
		}

		if strings.TrimSpace(raw) == "" {
			return s, fmt.Errorf("generate: %w", ErrEmptyOutput)
		}

		rt.Logger.InfoContext(
			ctx, "generate node complete",
			"kind", c.Kind(),
			"output_length", len(raw),
		)

		s = s.Set(KeyRaw, raw)
		return s, nil
	})
}
