package blueprints

import (
	"encoding/json"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/prompts"
	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/internal/workflow"
)

// contract adapts the blueprint document to the generation workflow.
// The prompt is built once from the intake; Decode is pure.
type contract struct {
	prompt string
}

// NewContract builds the workflow contract for generating a blueprint from
// the given intake.
func NewContract(in *intake.Intake) workflow.Contract {
	return &contract{
		prompt: prompts.System() + "\n\n" + prompts.BuildBlueprint(in),
	}
}

func (c *contract) Kind() string {
	return "blueprint"
}

func (c *contract) WrapperKeys() []string {
	return []string{"blueprint", "data", "result"}
}

func (c *contract) Prompt() string {
	return c.prompt
}

func (c *contract) RepairPrompt(issues string, raw string) string {
	return prompts.BuildRepair(c.Kind(), issues, raw)
}

func (c *contract) Decode(raw json.RawMessage) (any, schema.Issues, error) {
	bp, issues, err := decode(raw)
	if err != nil || len(issues) > 0 {
		return nil, issues, err
	}
	return bp, nil, nil
}
