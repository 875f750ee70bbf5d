package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// Execute runs the generation workflow for one document. It builds the state
// graph (generate → resolve → repair? → resolveRepair? → finalize), executes
// it, and extracts the validated document from the final state. On any
// failure nothing is persisted; persistence belongs to the calling domain.
func Execute(ctx context.Context, rt *Runtime, c Contract) (*Result, error) {
	graph, err := buildGraph(rt, c)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	finalState, err := graph.Execute(ctx, state.New(nil))
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime, c Contract) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("formatio-generate-" + c.Kind())
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("generate", GenerateNode(rt, c)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("resolve", ResolveNode(rt, c)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("repair", RepairNode(rt, c)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("resolveRepair", ResolveRepairNode(rt, c)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("finalize", FinalizeNode(rt, c)); err != nil {
		return nil, err
	}

	// generate → resolve (unconditional)
	if err := graph.AddEdge("generate", "resolve", nil); err != nil {
		return nil, err
	}

	// resolve → repair (when first-pass validation failed)
	if err := graph.AddEdge("resolve", "repair", needsRepair); err != nil {
		return nil, err
	}

	// resolve → finalize (when first-pass output validated)
	if err := graph.AddEdge("resolve", "finalize", state.Not(needsRepair)); err != nil {
		return nil, err
	}

	// repair → resolveRepair → finalize (unconditional)
	if err := graph.AddEdge("repair", "resolveRepair", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("resolveRepair", "finalize", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("generate"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("finalize"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	doc, ok := s.Get(KeyDocument)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyDocument)
	}

	return &Result{
		Document:    doc,
		Repaired:    wasRepaired(s),
		CompletedAt: time.Now(),
	}, nil
}

func needsRepair(s state.State) bool {
	_, ok := s.Get(KeyDocument)
	return !ok
}
