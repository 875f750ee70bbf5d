package prompts_test

import (
	"strings"
	"testing"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/prompts"
	"github.com/formatio/formatio/internal/schema"
)

func sampleIntake() *intake.Intake {
	return &intake.Intake{
		Role:           schema.RoleTeacher,
		DesignType:     intake.DesignMultiWeekSeries,
		TimeHorizon:    intake.HorizonWeeks4To6,
		AgeGroup:       intake.AgeAdults,
		Setting:        intake.SettingSundaySchool,
		Duration:       intake.Duration45To60,
		TopicOrText:    "Romans 12",
		DesiredOutcome: "Members practice daily scripture engagement",
		LeaderName:     "Jordan Avery",
		GroupName:      "Adult Bible Fellowship",
		Constraints:    intake.ConstraintList{"no homework"},
	}
}

func TestBuildBlueprintDeterministic(t *testing.T) {
	in := sampleIntake()
	first := prompts.BuildBlueprint(in)
	second := prompts.BuildBlueprint(in)
	if first != second {
		t.Error("identical intakes must produce identical prompts")
	}
}

func TestBuildBlueprintContent(t *testing.T) {
	in := sampleIntake()
	prompt := prompts.BuildBlueprint(in)

	for _, want := range []string{
		"Teacher",
		"Adult Bible Fellowship",
		"Romans 12",
		"Desired outcome (north star): Members practice daily scripture engagement",
		"45–60 min",
		"no homework",
		`"header"`,
		`"overview"`,
		`"modules"`,
		`"recommendedResources"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildBlueprintOmittedFields(t *testing.T) {
	in := sampleIntake()
	in.TopicOrText = ""
	in.Constraints = nil
	in.LeaderName = ""

	prompt := prompts.BuildBlueprint(in)

	if !strings.Contains(prompt, "(not provided)") {
		t.Error("empty topic should render as (not provided)")
	}
	if !strings.Contains(prompt, "None provided") {
		t.Error("empty constraints should render as None provided")
	}
	if !strings.Contains(prompt, "Teacher/Leader") {
		t.Error("empty leader name should fall back to Teacher/Leader")
	}
}

func TestBuildPlaybookContent(t *testing.T) {
	in := sampleIntake()
	prompt := prompts.BuildPlaybook(in)

	for _, want := range []string{
		"Adult Bible Fellowship",
		`"formationProblem"`,
		`"audience"`,
		`"track"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("playbook prompt missing %q", want)
		}
	}
}

func TestBuildRepair(t *testing.T) {
	prompt := prompts.BuildRepair(
		"blueprint",
		"header.title: required",
		`{"overview": {}}`,
	)

	for _, want := range []string{
		"header.title: required",
		`{"overview": {}}`,
		"ONLY the corrected JSON object",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("repair prompt missing %q", want)
		}
	}
}

func TestSystem(t *testing.T) {
	system := prompts.System()
	if !strings.Contains(system, "ONLY valid JSON") {
		t.Errorf("system instruction missing JSON-only directive: %q", system)
	}
}
