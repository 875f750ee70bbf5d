package workflow

import (
	"encoding/json"

	"github.com/formatio/formatio/internal/schema"
)

// Contract is supplied by a document domain and tells the workflow how to
// prompt for, decode, and validate one document kind. Implementations are
// pure; all model interaction stays in the workflow nodes.
type Contract interface {
	// Kind names the document type ("blueprint", "playbook"). Used for
	// logging, wrapper-key stripping, and repair prompt text.
	Kind() string

	// WrapperKeys lists the conventional over-nesting keys the model uses
	// despite instructions ("blueprint", "data", "result", ...).
	WrapperKeys() []string

	// Prompt returns the generation prompt for the intake this contract
	// was built from.
	Prompt() string

	// RepairPrompt returns the single-pass repair prompt from flattened
	// validation issues and the raw output that failed.
	RepairPrompt(issues string, raw string) string

	// Decode unmarshals a candidate JSON object and validates it against
	// the document's contract. A non-empty Issues result means the
	// candidate is structurally invalid; err is reserved for candidates
	// that cannot be decoded at all.
	Decode(raw json.RawMessage) (any, schema.Issues, error)
}
