package playbooks

import (
	"encoding/json"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/prompts"
	"github.com/formatio/formatio/internal/schema"
	"github.com/formatio/formatio/internal/workflow"
)

type contract struct {
	prompt string
}

// NewContract builds the workflow contract for generating a playbook from
// the given intake.
func NewContract(in *intake.Intake) workflow.Contract {
	return &contract{
		prompt: prompts.System() + "\n\n" + prompts.BuildPlaybook(in),
	}
}

func (c *contract) Kind() string {
	return "playbook"
}

func (c *contract) WrapperKeys() []string {
	return []string{"playbook", "data", "result"}
}

func (c *contract) Prompt() string {
	return c.prompt
}

func (c *contract) RepairPrompt(issues string, raw string) string {
	return prompts.BuildRepair(c.Kind(), issues, raw)
}

func (c *contract) Decode(raw json.RawMessage) (any, schema.Issues, error) {
	pb, issues, err := decode(raw)
	if err != nil || len(issues) > 0 {
		return nil, issues, err
	}
	return pb, nil, nil
}
