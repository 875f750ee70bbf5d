package workflow

import "time"

const (
	KeyRaw       = "raw_output"
	KeyRepairRaw = "repair_raw_output"
	KeyIssues    = "validation_issues"
	KeyDocument  = "document"
	KeyRepaired  = "repaired"
)

// Result is the final output from a generation workflow execution. Document
// holds the validated typed document produced by the contract's Decode.
type Result struct {
	Document    any       `json:"document"`
	Repaired    bool      `json:"repaired"`
	CompletedAt time.Time `json:"completed_at"`
}
