// Package prompts builds the model prompts for document generation. Every
// builder is a pure function of its inputs so prompt text is reproducible
// for a given intake.
package prompts

import (
	"fmt"
	"strings"

	"github.com/formatio/formatio/internal/intake"
)

// System returns the system instruction sent with every generation call.
func System() string {
	return systemInstruction
}

// BuildBlueprint renders the full blueprint generation prompt for an intake.
func BuildBlueprint(in *intake.Intake) string {
	var b strings.Builder

	b.WriteString(blueprintInstructions)
	b.WriteString("\n\n")
	b.WriteString(outputRules)
	b.WriteString("\n\nINPUTS\n")
	writeInputs(&b, in)
	b.WriteString("\n")
	b.WriteString(blueprintSpec)
	b.WriteString("\n\n")
	b.WriteString(trackRules)
	b.WriteString("\n\n")
	b.WriteString(countRules)
	b.WriteString("\n\n")
	b.WriteString(linkRules)
	b.WriteString("\n\nReturn ONLY the JSON object described above.")

	return b.String()
}

// BuildPlaybook renders the full playbook generation prompt for an intake.
func BuildPlaybook(in *intake.Intake) string {
	var b strings.Builder

	b.WriteString(playbookInstructions)
	b.WriteString("\n\n")
	b.WriteString(outputRules)
	b.WriteString("\n\nINPUTS\n")
	writeInputs(&b, in)
	b.WriteString("\n")
	b.WriteString(playbookSpec)
	b.WriteString("\n\n")
	b.WriteString(trackRules)
	b.WriteString("\n\n")
	b.WriteString(countRules)
	b.WriteString("\n\n")
	b.WriteString(linkRules)
	b.WriteString("\n\nReturn ONLY the JSON object described above.")

	return b.String()
}

// BuildRepair renders the single-pass repair prompt from the validation
// issues and the raw model output that failed.
func BuildRepair(kind string, issues string, raw string) string {
	return fmt.Sprintf(`You must FIX the JSON to match the required schema. Return ONLY the corrected JSON object (no prose).

Validation errors:
%s

Bad JSON you produced:
%s

Rules:
- Output ONLY a single JSON object.
- Root keys must be exactly: header, overview, modules, recommendedResources
- Do not wrap in { %q: ... } or add extra root keys.
- The "modules" object must contain exactly one entry, matching the declared role.
- Ensure every required field exists with the correct type.`, issues, raw, kind)
}

// writeInputs renders the intake as labeled prompt lines. Enum labels pass
// through verbatim so spellings cannot drift between form and prompt.
func writeInputs(b *strings.Builder, in *intake.Intake) {
	topic := strings.TrimSpace(in.TopicOrText)
	if topic == "" {
		topic = "(not provided)"
	}

	constraints := "None provided"
	if len(in.Constraints) > 0 {
		constraints = strings.Join(in.Constraints, "; ")
	}

	fmt.Fprintf(b, "Role: %s\n", in.Role)
	fmt.Fprintf(b, "Design type: %s\n", in.DesignType)
	fmt.Fprintf(b, "Time horizon: %s\n", in.TimeHorizon)
	fmt.Fprintf(b, "Age group: %s\n", in.AgeGroup)
	fmt.Fprintf(b, "Group name: %s\n", in.GroupName)
	fmt.Fprintf(b, "Leader name: %s\n", in.Leader())
	fmt.Fprintf(b, "Setting: %s\n", in.SettingLabel())
	fmt.Fprintf(b, "Session duration: %s\n", in.DurationLabel())
	fmt.Fprintf(b, "Topic or text: %s\n", topic)
	fmt.Fprintf(b, "Desired outcome (north star): %s\n", in.DesiredOutcome)
	fmt.Fprintf(b, "Constraints: %s\n", constraints)
}
